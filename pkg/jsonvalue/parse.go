package jsonvalue

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/tidwall/gjson"
)

const defaultMaxDepth = 10000

var (
	// ErrSyntax reports malformed JSON input.
	ErrSyntax = errors.New("invalid json")
	// ErrMaxDepth reports input nested deeper than the configured limit.
	ErrMaxDepth = errors.New("json nesting too deep")
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxDepth int
}

// MaxDepth bounds container nesting; 0 or less keeps the default.
func MaxDepth(n int) ParseOption {
	return func(cfg *parseConfig) {
		if n > 0 {
			cfg.maxDepth = n
		}
	}
}

// Parse decodes one JSON document into a Value.
func Parse(data []byte, opts ...ParseOption) (Value, error) {
	cfg := parseConfig{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !gjson.ValidBytes(data) {
		return Value{}, ErrSyntax
	}
	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return parseValue(raw, typ, 0, &cfg)
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("jsonvalue: MustParse(%q): %v", s, err))
	}
	return v
}

func parseValue(raw []byte, typ jsonparser.ValueType, depth int, cfg *parseConfig) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Bool(b), nil
	case jsonparser.Number:
		return Number(string(raw)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return String(s), nil
	case jsonparser.Object:
		if depth >= cfg.maxDepth {
			return Value{}, ErrMaxDepth
		}
		return parseObject(raw, depth+1, cfg)
	case jsonparser.Array:
		if depth >= cfg.maxDepth {
			return Value{}, ErrMaxDepth
		}
		return parseArray(raw, depth+1, cfg)
	default:
		return Value{}, fmt.Errorf("%w: unexpected %s value", ErrSyntax, typ)
	}
}

func parseObject(raw []byte, depth int, cfg *parseConfig) (Value, error) {
	var members []Member
	err := jsonparser.ObjectEach(raw, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		v, err := parseValue(value, typ, depth, cfg)
		if err != nil {
			return err
		}
		// key may alias a stack buffer inside jsonparser; copy it.
		members = append(members, Member{Key: string(key), Value: v})
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrMaxDepth) || errors.Is(err, ErrSyntax) {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Object(members...), nil
}

func parseArray(raw []byte, depth int, cfg *parseConfig) (Value, error) {
	items := []Value{}
	var itemErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil {
			itemErr = fmt.Errorf("%w: %v", ErrSyntax, err)
			return
		}
		v, err := parseValue(value, typ, depth, cfg)
		if err != nil {
			itemErr = err
			return
		}
		items = append(items, v)
	})
	if itemErr != nil {
		return Value{}, itemErr
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Array(items...), nil
}
