// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"encoding/json"
)

// EnumValue is the underlying kind of every generated enumeration.
type EnumValue interface {
	~int32
}

// Enum is implemented by every generated enumeration.
type Enum interface {
	IsValid() bool
	String() string
}

// EnumTable exposes the wire strings of an enumeration without its Go type.
type EnumTable interface {
	Names() []string
	Contains(name string) bool
	Ordinal(name string) (int32, bool)
	NameOf(ordinal int32) string
}

// EnumNames maps the values of an enumeration to their canonical wire strings.
// Value i+1 corresponds to the i-th name; the zero value is unset and has no wire string.
type EnumNames[T EnumValue] struct {
	names  []string
	values map[string]T
}

func NewEnumNames[T EnumValue](names ...string) EnumNames[T] {
	values := make(map[string]T, len(names))
	for i, name := range names {
		values[name] = T(i + 1)
	}

	return EnumNames[T]{names: names, values: values}
}

// Name returns the wire string of v, false when v is unset or out of range.
func (e EnumNames[T]) Name(v T) (string, bool) {
	if v < 1 || int(v) > len(e.names) {
		return "", false
	}

	return e.names[int(v)-1], true
}

func (e EnumNames[T]) String(v T) string {
	name, _ := e.Name(v)

	return name
}

func (e EnumNames[T]) IsValid(v T) bool {
	_, ok := e.Name(v)

	return ok
}

// Parse matches s exactly against the wire strings.
func (e EnumNames[T]) Parse(s string) (T, bool) {
	v, ok := e.values[s]

	return v, ok
}

// Names returns the wire strings in declaration order.
func (e EnumNames[T]) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)

	return out
}

func (e EnumNames[T]) Contains(name string) bool {
	_, ok := e.values[name]

	return ok
}

// Ordinal is Parse without the Go type of the enumeration.
func (e EnumNames[T]) Ordinal(name string) (int32, bool) {
	v, ok := e.Parse(name)

	return int32(v), ok
}

func (e EnumNames[T]) NameOf(ordinal int32) string {
	return e.String(T(ordinal))
}

// MarshalJSON writes the quoted wire string of v, or null when v has none.
func (e EnumNames[T]) MarshalJSON(v T) ([]byte, error) {
	name, ok := e.Name(v)
	if !ok {
		return []byte("null"), nil
	}

	return json.Marshal(name)
}

// UnmarshalJSON sets *v only when data is a string naming one of the values.
// Anything else leaves *v as it was and is not an error.
func (e EnumNames[T]) UnmarshalJSON(data []byte, v *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if parsed, ok := e.values[s]; ok {
		*v = parsed
	}

	return nil
}
