// Package jsonpointer tracks instance locations during validation and renders
// them as RFC 6901 JSON pointers.
package jsonpointer

import (
	"errors"
	"strings"
)

const (
	encodedTilde = "~0"
	encodedSlash = "~1"
	separator    = '/'
)

// ErrInvalidPointer is returned by Parse for malformed pointers.
var ErrInvalidPointer = errors.New("invalid json pointer")

var (
	escaper   = strings.NewReplacer("~", encodedTilde, "/", encodedSlash)
	unescaper = strings.NewReplacer(encodedSlash, "/", encodedTilde, "~")
)

// Escape encodes one reference token.
func Escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	return escaper.Replace(token)
}

// Unescape decodes one reference token.
func Unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	return unescaper.Replace(token)
}

// Format renders segments as a pointer: "" for none, "/a/b" otherwise.
func Format(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	size := 0
	for _, seg := range segments {
		size += 1 + len(seg)
	}
	b.Grow(size)
	for _, seg := range segments {
		b.WriteByte(separator)
		b.WriteString(Escape(seg))
	}
	return b.String()
}

// Parse splits pointer into unescaped reference tokens.
func Parse(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != separator {
		return nil, ErrInvalidPointer
	}
	tokens := strings.Split(pointer[1:], string(separator))
	for i, tok := range tokens {
		if err := checkEscapes(tok); err != nil {
			return nil, err
		}
		tokens[i] = Unescape(tok)
	}
	return tokens, nil
}

func checkEscapes(token string) error {
	for i := 0; i < len(token); i++ {
		if token[i] != '~' {
			continue
		}
		if i+1 >= len(token) || (token[i+1] != '0' && token[i+1] != '1') {
			return ErrInvalidPointer
		}
	}
	return nil
}
