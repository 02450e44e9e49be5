// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

// Index names the records and enumerations of one model package.
type Index struct {
	Service string
	Types   map[string]func() any
	Enums   map[string]EnumTable
}

func NewIndex(service string) *Index {
	return &Index{
		Service: service,
		Types:   make(map[string]func() any),
		Enums:   make(map[string]EnumTable),
	}
}

// AddType registers T under name. The factory returns a fresh *T.
func AddType[T any](idx *Index, name string) {
	idx.Types[name] = func() any { return new(T) }
}

func (idx *Index) AddEnum(name string, table EnumTable) {
	idx.Enums[name] = table
}
