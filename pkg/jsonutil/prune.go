// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	timeType        = reflect.TypeOf(Time{})
)

// prune removes from a generic JSON tree every value that cannot be stored in
// the Go value it maps to. The second result is false when tree itself does
// not fit t.
func prune(tree any, t reflect.Type, path string) (any, bool) {
	if tree == nil {
		return nil, true
	}
	if t == timeType {
		s, ok := tree.(string)
		if !ok {
			return nil, false
		}
		_, ok = ParseTime(s)

		return tree, ok
	}
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return tree, true
	}

	switch t.Kind() {
	case reflect.Pointer:
		return prune(tree, t.Elem(), path)
	case reflect.Interface:
		return tree, true
	case reflect.String:
		_, ok := tree.(string)

		return tree, ok
	case reflect.Bool:
		_, ok := tree.(bool)

		return tree, ok
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return tree, fitsNumber(tree, func(s string) error {
			_, err := strconv.ParseInt(s, 10, t.Bits())

			return err
		})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return tree, fitsNumber(tree, func(s string) error {
			_, err := strconv.ParseUint(s, 10, t.Bits())

			return err
		})
	case reflect.Float32, reflect.Float64:
		return tree, fitsNumber(tree, func(s string) error {
			_, err := strconv.ParseFloat(s, t.Bits())

			return err
		})
	case reflect.Struct:
		obj, ok := tree.(map[string]any)
		if !ok {
			return nil, false
		}
		fields := jsonFields(t)
		for key, value := range obj {
			ft, found := fields[key]
			if !found {
				// encoding/json would match it ignoring case
				delete(obj, key)

				continue
			}
			pruneEntry(obj, key, value, ft, path+"."+key)
		}

		return obj, true
	case reflect.Slice:
		arr, ok := tree.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, 0, len(arr))
		for i, value := range arr {
			elemPath := path + "[" + strconv.Itoa(i) + "]"
			if pruned, fits := prune(value, t.Elem(), elemPath); fits {
				out = append(out, pruned)
			} else {
				logrus.WithField("path", elemPath).Debugf("dropping element that does not fit %s", t.Elem())
			}
		}

		return out, true
	case reflect.Map:
		obj, ok := tree.(map[string]any)
		if !ok {
			return nil, false
		}
		if t.Key().Kind() != reflect.String {
			return obj, true
		}
		for key, value := range obj {
			pruneEntry(obj, key, value, t.Elem(), path+"."+key)
		}

		return obj, true
	}

	return tree, true
}

func pruneEntry(obj map[string]any, key string, value any, t reflect.Type, path string) {
	pruned, ok := prune(value, t, path)
	if !ok {
		logrus.WithField("path", path).Debugf("dropping value that does not fit %s", t)
		delete(obj, key)

		return
	}
	obj[key] = pruned
}

func fitsNumber(tree any, parse func(string) error) bool {
	n, ok := tree.(json.Number)
	if !ok {
		return false
	}

	return parse(n.String()) == nil
}

// jsonFields maps the wire keys of t to their field types.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			if tagName, _, _ := strings.Cut(tag, ","); tagName != "" {
				name = tagName
			}
		}
		fields[name] = f.Type
	}

	return fields
}
