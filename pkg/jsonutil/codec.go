// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Decode fills v from data. Keys are matched exactly. Values whose JSON shape
// does not fit their field are dropped, so the field keeps what it held before.
// Numbers inside opaque values are kept as json.Number. Only malformed JSON or a
// target that is not a non-nil pointer is an error.
func Decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Errorf("decode: target must be a non-nil pointer, got %T", v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return errors.Wrap(err, "decode")
	}

	tree, ok := prune(tree, rv.Type().Elem(), "$")
	if !ok {
		logrus.Debugf("ignoring document that does not fit %T", v)

		return nil
	}
	pruned, err := json.Marshal(tree)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	// opaque values keep their numbers as written
	final := json.NewDecoder(bytes.NewReader(pruned))
	final.UseNumber()
	if err = final.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return errors.Wrap(err, "decode")
		}
		logrus.Debugf("ignoring mismatched field %q: %s", typeErr.Field, typeErr.Error())
	}
	Normalize(v)

	return nil
}

// DecodeValue fills v from a generic JSON tree such as the result of EncodeValue.
func DecodeValue(tree any, v any) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return errors.Wrap(err, "decode value")
	}

	return Decode(data, v)
}

func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	return data, nil
}

// EncodeValue encodes v into a generic JSON tree. Records always become a map.
func EncodeValue(v any) (map[string]any, error) {
	data, err := Encode(v)
	if err != nil {
		return nil, err
	}

	var tree map[string]any
	if err = json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrap(err, "encode value")
	}

	return tree, nil
}

var cloneOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: Time{},
			DstType: Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return src.(Time), nil
			},
		},
		{
			SrcType: &Time{},
			DstType: &Time{},
			Fn: func(src interface{}) (interface{}, error) {
				t, ok := src.(*Time)
				if !ok || t == nil {
					return (*Time)(nil), nil
				}
				c := *t

				return &c, nil
			},
		},
	},
}

// Clone returns a deep copy of src: pointers, slices and maps are not shared.
func Clone[T any](src T) (T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, cloneOption); err != nil {
		return dst, errors.Wrap(err, "clone")
	}

	return dst, nil
}

// Ptr boxes v.
func Ptr[T any](v T) *T {
	return &v
}
