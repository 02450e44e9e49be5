// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"reflect"
)

var enumInterface = reflect.TypeOf((*Enum)(nil)).Elem()

func isEnum(t reflect.Type) bool {
	return t.Kind() == reflect.Int32 && t.Implements(enumInterface)
}

// Normalize drops enum values that did not resolve during decoding: boxed enums
// go back to nil, and such elements are removed from enum slices and maps.
// Plain enum fields are left alone, they keep whatever they held before.
func Normalize(v any) {
	normalizeValue(reflect.ValueOf(v))
}

func normalizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		if isEnum(v.Type().Elem()) {
			if !v.Elem().Interface().(Enum).IsValid() && v.CanSet() {
				v.Set(reflect.Zero(v.Type()))
			}

			return
		}
		normalizeValue(v.Elem())
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			normalizeValue(v.Field(i))
		}
	case reflect.Slice:
		if v.IsNil() {
			return
		}
		if isEnum(v.Type().Elem()) {
			if v.CanSet() {
				v.Set(validEnums(v))
			}

			return
		}
		for i := 0; i < v.Len(); i++ {
			normalizeValue(v.Index(i))
		}
	case reflect.Map:
		normalizeMap(v)
	}
}

func validEnums(v reflect.Value) reflect.Value {
	out := reflect.MakeSlice(v.Type(), 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if v.Index(i).Interface().(Enum).IsValid() {
			out = reflect.Append(out, v.Index(i))
		}
	}

	return out
}

func normalizeMap(v reflect.Value) {
	if v.IsNil() {
		return
	}
	elem := v.Type().Elem()
	switch {
	case isEnum(elem):
		for _, key := range v.MapKeys() {
			if !v.MapIndex(key).Interface().(Enum).IsValid() {
				v.SetMapIndex(key, reflect.Value{})
			}
		}
	case elem.Kind() == reflect.Struct:
		for _, key := range v.MapKeys() {
			entry := reflect.New(elem).Elem()
			entry.Set(v.MapIndex(key))
			normalizeValue(entry)
			v.SetMapIndex(key, entry)
		}
	case elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Slice:
		for _, key := range v.MapKeys() {
			normalizeValue(v.MapIndex(key))
		}
	}
}
