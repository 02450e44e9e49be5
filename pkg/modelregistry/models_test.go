// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package modelregistry

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/jsonutil"
)

const fillDepth = 3

var (
	timeType   = reflect.TypeOf(jsonutil.Time{})
	sampleTime = jsonutil.NewTime(time.Date(2024, 5, 6, 7, 8, 9, 10000000, time.UTC))
)

// fill sets every field of v to a non-empty value. Containers below fillDepth stay empty.
func fill(v reflect.Value, depth int) {
	if v.Type() == timeType {
		v.Set(reflect.ValueOf(sampleTime))

		return
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString("s")
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(1)
	case reflect.Float32, reflect.Float64:
		v.SetFloat(1.5)
	case reflect.Interface:
		v.Set(reflect.ValueOf("opaque"))
	case reflect.Pointer:
		if depth >= fillDepth {
			return
		}
		p := reflect.New(v.Type().Elem())
		fill(p.Elem(), depth+1)
		v.Set(p)
	case reflect.Slice:
		if depth >= fillDepth {
			return
		}
		s := reflect.MakeSlice(v.Type(), 1, 1)
		fill(s.Index(0), depth+1)
		v.Set(s)
	case reflect.Map:
		if depth >= fillDepth || v.Type().Key().Kind() != reflect.String {
			return
		}
		m := reflect.MakeMap(v.Type())
		entry := reflect.New(v.Type().Elem()).Elem()
		fill(entry, depth+1)
		key := reflect.New(v.Type().Key()).Elem()
		key.SetString("k")
		m.SetMapIndex(key, entry)
		v.Set(m)
	case reflect.Struct:
		if depth >= fillDepth {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				fill(v.Field(i), depth+1)
			}
		}
	}
}

// mismatched returns a document giving every field a value of the wrong JSON shape.
func mismatched(t reflect.Type) map[string]any {
	doc := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		base := f.Type
		for base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		switch base.Kind() {
		case reflect.Interface:
			continue
		case reflect.String:
			doc[key] = 5
		default:
			doc[key] = "not-a-value"
		}
	}

	return doc
}

func eachType(t *testing.T, fn func(t *testing.T, newRecord func() any)) {
	r := Default()
	for _, service := range r.Services() {
		types, err := r.Types(service)
		require.NoError(t, err)
		for _, name := range types {
			service, name := service, name
			t.Run(service+"/"+name, func(t *testing.T) {
				fn(t, func() any {
					record, err := r.New(service, name)
					require.NoError(t, err)

					return record
				})
			})
		}
	}
}

func TestEveryRecordRoundTrips(t *testing.T) {
	eachType(t, func(t *testing.T, newRecord func() any) {
		// Arrange
		record := newRecord()
		fill(reflect.ValueOf(record).Elem(), 0)

		// Act
		data, err := jsonutil.Encode(record)
		require.NoError(t, err)
		back := newRecord()
		err = jsonutil.Decode(data, back)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, record, back)
	})
}

func TestEveryRecordToleratesPartialInput(t *testing.T) {
	eachType(t, func(t *testing.T, newRecord func() any) {
		empty := newRecord()
		record := newRecord()

		require.NoError(t, jsonutil.Decode([]byte(`{}`), record))
		require.NoError(t, jsonutil.Decode([]byte(`{"X":[1]}`), record))

		assert.Equal(t, empty, record)
	})
}

func TestEveryRecordIgnoresMismatchedValues(t *testing.T) {
	eachType(t, func(t *testing.T, newRecord func() any) {
		empty := newRecord()
		record := newRecord()
		tree := mismatched(reflect.TypeOf(record).Elem())

		err := jsonutil.DecodeValue(tree, record)

		require.NoError(t, err)
		assert.Equal(t, empty, record)
	})
}

func TestEveryEnumValueRoundTrips(t *testing.T) {
	r := Default()
	for _, service := range r.Services() {
		enums, err := r.Enums(service)
		require.NoError(t, err)
		for _, name := range enums {
			table, err := r.Enum(service, name)
			require.NoError(t, err)
			names := table.Names()
			require.NotEmpty(t, names, "%s/%s", service, name)

			for i, wire := range names {
				ordinal, ok := table.Ordinal(wire)
				assert.True(t, ok, "%s/%s %s", service, name, wire)
				assert.Equal(t, int32(i+1), ordinal)
				assert.Equal(t, wire, table.NameOf(ordinal))
			}
			assert.Empty(t, table.NameOf(0))
			assert.Empty(t, table.NameOf(int32(len(names)+1)))
		}
	}
}
