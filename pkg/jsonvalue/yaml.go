package jsonvalue

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gopkg.in/yaml.v2"
)

// FromYAML decodes a YAML document into a Value. Mapping order is preserved;
// mapping keys must be strings.
func FromYAML(data []byte) (Value, error) {
	var ordered yaml.MapSlice
	if err := yaml.Unmarshal(data, &ordered); err == nil {
		return fromYAMLMapSlice(ordered)
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	return fromYAML(doc)
}

func fromYAMLMapSlice(ms yaml.MapSlice) (Value, error) {
	members := make([]Member, 0, len(ms))
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return Value{}, fmt.Errorf("decode yaml: mapping key %v is %T, want string", item.Key, item.Key)
		}
		v, err := fromYAML(item.Value)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: v})
	}
	return Object(members...), nil
}

func fromYAML(doc interface{}) (Value, error) {
	switch x := doc.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint64:
		return Uint(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Value{}, fmt.Errorf("decode yaml: %v is not a json number", x)
		}
		return Float(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case yaml.MapSlice:
		return fromYAMLMapSlice(x)
	case map[interface{}]interface{}:
		ms := make(yaml.MapSlice, 0, len(x))
		for k, v := range x {
			ms = append(ms, yaml.MapItem{Key: k, Value: v})
		}
		sort.Slice(ms, func(i, j int) bool {
			return fmt.Sprint(ms[i].Key) < fmt.Sprint(ms[j].Key)
		})
		return fromYAMLMapSlice(ms)
	case []interface{}:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			v, err := fromYAML(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	default:
		return Value{}, fmt.Errorf("decode yaml: unsupported value of type %T", doc)
	}
}
