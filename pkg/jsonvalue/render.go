package jsonvalue

import "github.com/tidwall/gjson"

// AppendJSON appends the compact JSON rendering of v to dst.
// Numbers are written as their literal text.
func (v *Value) AppendJSON(dst []byte) []byte {
	switch v.Kind() {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, v.text...)
	case KindString:
		return gjson.AppendJSONString(dst, v.text)
	case KindObject:
		dst = append(dst, '{')
		for i := range v.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = gjson.AppendJSONString(dst, v.members[i].Key)
			dst = append(dst, ':')
			dst = v.members[i].Value.AppendJSON(dst)
		}
		return append(dst, '}')
	case KindArray:
		dst = append(dst, '[')
		for i := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = v.items[i].AppendJSON(dst)
		}
		return append(dst, ']')
	default:
		return dst
	}
}

// String returns the compact JSON rendering of v.
func (v *Value) String() string {
	return string(v.AppendJSON(nil))
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}
