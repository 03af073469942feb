// FILE: src/internal/core/value.go
package core

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind discriminates the closed set of payload variants a channel call
// may carry.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindList
	KindMap
)

// Value is one channel-call argument. The zero value is the null value.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number wraps a numeric payload.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// Text wraps a string payload.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// List wraps an ordered sequence of values.
func List(vs ...Value) Value {
	list := make([]Value, len(vs))
	copy(list, vs)
	return Value{kind: KindList, list: list}
}

// Map wraps a string-keyed structured payload.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, m: cp}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the string payload when the value is text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Items returns the element sequence when the value is a list.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	items := make([]Value, len(v.list))
	copy(items, v.list)
	return items, true
}

// String renders the value the way a console would print it: text
// verbatim, list elements joined by spaces, structured payloads as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindText:
		return v.s
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return strings.Join(parts, " ")
	case KindMap:
		b, err := json.Marshal(v)
		if err != nil {
			return "{}"
		}
		return string(b)
	}
	return ""
}

// MarshalJSON renders the natural JSON form of each kind.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindText:
		return json.Marshal(v.s)
	case KindList:
		return json.Marshal(v.list)
	case KindMap:
		return json.Marshal(v.m)
	}
	return []byte("null"), nil
}
