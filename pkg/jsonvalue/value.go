package jsonvalue

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is any JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindObject is a JSON object with members in document order.
	KindObject
	// KindArray is a JSON array.
	KindArray
)

// String returns the JSON type name of k.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// indexThreshold is the member count above which objects keep a key index.
const indexThreshold = 8

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON document node.
// The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	text    string
	members []Member
	items   []Value
	index   map[string]int
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer number value.
func Int(i int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)} }

// Uint returns an unsigned integer number value.
func Uint(u uint64) Value { return Value{kind: KindNumber, text: strconv.FormatUint(u, 10)} }

// Float returns a number value using the shortest representation of f.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a number value from its literal text. The text is not checked.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Field is shorthand for a Member literal.
func Field(key string, value Value) Member { return Member{Key: key, Value: value} }

// Object returns an object value. Duplicate keys keep the first position and
// the last value.
func Object(members ...Member) Value {
	out := make([]Member, 0, len(members))
	var seen map[string]int
	if len(members) > indexThreshold {
		seen = make(map[string]int, len(members))
	}
	for _, m := range members {
		if pos, ok := lookupMember(out, seen, m.Key); ok {
			out[pos].Value = m.Value
			continue
		}
		if seen != nil {
			seen[m.Key] = len(out)
		}
		out = append(out, m)
	}
	return Value{kind: KindObject, members: out, index: seen}
}

// Array returns an array value.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

func lookupMember(members []Member, index map[string]int, key string) (int, bool) {
	if index != nil {
		pos, ok := index[key]
		return pos, ok
	}
	for i := range members {
		if members[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

// Kind returns the variant of v.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Bool returns the boolean payload; false for other kinds.
func (v *Value) Bool() bool {
	return v != nil && v.kind == KindBool && v.b
}

// Text returns the string payload of a string, or the literal of a number.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Len returns the member count of an object or the length of an array.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Members returns the object members in document order. Do not modify.
func (v *Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return v.members
}

// Items returns the array elements. Do not modify.
func (v *Value) Items() []Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.items
}

// Get returns the member value stored under key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	pos, ok := lookupMember(v.members, v.index, key)
	if !ok {
		return nil, false
	}
	return &v.members[pos].Value, true
}

// Index returns the i-th array element.
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != KindArray || i < 0 || i >= len(v.items) {
		return nil, false
	}
	return &v.items[i], true
}

// Lookup walks tokens from v: object keys, or decimal indexes for arrays.
func (v *Value) Lookup(tokens ...string) (*Value, bool) {
	cur := v
	for _, tok := range tokens {
		switch cur.Kind() {
		case KindObject:
			next, ok := cur.Get(tok)
			if !ok {
				return nil, false
			}
			cur = next
		case KindArray:
			i, err := strconv.Atoi(tok)
			if err != nil || (len(tok) > 1 && tok[0] == '0') {
				return nil, false
			}
			next, ok := cur.Index(i)
			if !ok {
				return nil, false
			}
			cur = next
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// IsInt64 reports whether v is a number whose literal parses as an int64.
func (v *Value) IsInt64() bool {
	if v.Kind() != KindNumber || strings.ContainsAny(v.text, ".eE") {
		return false
	}
	_, err := strconv.ParseInt(v.text, 10, 64)
	return err == nil
}

// IsUint64 reports whether v is a number whose literal parses as a uint64.
func (v *Value) IsUint64() bool {
	if v.Kind() != KindNumber || strings.ContainsAny(v.text, ".eE-") {
		return false
	}
	_, err := strconv.ParseUint(v.text, 10, 64)
	return err == nil
}

// IsInteger reports whether v is a number exactly representable as an int64
// or a uint64: no fractional part and within range. "1.0" and "1e2" qualify.
// It does not allocate.
func (v *Value) IsInteger() bool {
	return v.Kind() == KindNumber && isIntegerLiteral(v.text)
}

// maxExponent caps parsed exponents. It exceeds any literal length, so a
// clamped exponent still dominates the digit count.
const maxExponent = 1 << 30

// isIntegerLiteral decides integrality on the decimal digits of a JSON number
// literal, so huge exponents cost nothing.
func isIntegerLiteral(text string) bool {
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	mantissa, expPart := text, ""
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		mantissa, expPart = text[:i], text[i+1:]
	}
	intPart, fracPart, _ := strings.Cut(mantissa, ".")

	// value = significant digits (intPart then fracPart) * 10^scale
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	scale := -len(fracPart)
	if fracPart == "" {
		trimmed := strings.TrimRight(intPart, "0")
		scale += len(intPart) - len(trimmed)
		intPart = trimmed
	}
	if intPart == "" {
		fracPart = strings.TrimLeft(fracPart, "0")
	}
	if intPart == "" && fracPart == "" {
		return true
	}

	exp, ok := parseExponent(expPart)
	if !ok {
		return false
	}
	scale += exp
	if scale < 0 || len(intPart)+len(fracPart)+scale > 20 {
		return false
	}

	var u uint64
	for _, part := range [2]string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			d := uint64(part[i] - '0')
			if part[i] < '0' || part[i] > '9' || u > (math.MaxUint64-d)/10 {
				return false
			}
			u = u*10 + d
		}
	}
	for ; scale > 0; scale-- {
		if u > math.MaxUint64/10 {
			return false
		}
		u *= 10
	}
	if neg {
		return u <= 1<<63
	}
	return true
}

// parseExponent parses an optionally signed exponent, clamping its magnitude
// to maxExponent.
func parseExponent(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	var n int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = min(n*10+int64(s[i]-'0'), maxExponent)
	}
	if neg {
		n = -n
	}
	return int(n), true
}

// Int64 parses the number literal as an int64.
func (v *Value) Int64() (int64, error) {
	return strconv.ParseInt(v.Text(), 10, 64)
}

// Float64 parses the number literal as a float64.
func (v *Value) Float64() (float64, error) {
	return strconv.ParseFloat(v.Text(), 64)
}
