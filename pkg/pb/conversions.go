// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package pb converts model records and opaque payloads to protobuf
// well-known types for services that carry them over gRPC.
package pb

import (
	"encoding/json"

	pie_ "github.com/elliotchance/pie/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"playfab-models-go/pkg/jsonutil"
)

// PayloadToValue converts an opaque JSON payload, such as a FunctionResult, to a proto value
func PayloadToValue(payload any) (*structpb.Value, error) {
	if value, err := structpb.NewValue(payload); err == nil {
		return value, nil
	}

	// not a plain JSON tree, go through the encoder
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "payload to proto value")
	}
	var tree any
	if err = json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrap(err, "payload to proto value")
	}

	return structpb.NewValue(tree)
}

// ValueToPayload converts a proto value back to a plain JSON tree
func ValueToPayload(value *structpb.Value) any {
	if value == nil {
		return nil
	}

	return value.AsInterface()
}

func TimeToProto(t jsonutil.Time) *timestamppb.Timestamp {
	return timestamppb.New(t.Time)
}

func TimeFromProto(ts *timestamppb.Timestamp) jsonutil.Time {
	if ts == nil {
		return jsonutil.Time{}
	}

	return jsonutil.NewTime(ts.AsTime())
}

// StringMapToStruct converts CustomTags and other string maps to a proto struct
func StringMapToStruct(m map[string]string) (*structpb.Struct, error) {
	fields := make(map[string]interface{}, len(m))
	for k, v := range m {
		fields[k] = v
	}

	return structpb.NewStruct(fields)
}

// RecordToStruct encodes a model record into a proto struct keyed by wire names
func RecordToStruct(record any) (*structpb.Struct, error) {
	tree, err := jsonutil.EncodeValue(record)
	if err != nil {
		return nil, err
	}

	return structpb.NewStruct(tree)
}

// StructToRecord fills record from a proto struct with the usual permissive decoding.
// Proto numbers are doubles: 64-bit integers above 2^53 lose precision, and
// values of 1e21 or more arrive in exponent form and are dropped from integer fields.
func StructToRecord(s *structpb.Struct, record any) error {
	if s == nil {
		return nil
	}

	return jsonutil.DecodeValue(s.AsMap(), record)
}

// RecordsToList will convert model records to a proto list, one struct per record
func RecordsToList[T any](records []T) *structpb.ListValue {
	return &structpb.ListValue{
		Values: pie_.Map(records, func(r T) *structpb.Value {
			s, err := RecordToStruct(r)
			if err != nil {
				logrus.Errorf("failed to create proto struct for record: %v", err)

				return structpb.NewNullValue()
			}

			return structpb.NewStructValue(s)
		}),
	}
}

// ListToRecords will convert a proto list back to model records, skipping entries that are not structs.
// Numbers have the same double precision limits as StructToRecord.
func ListToRecords[T any](list *structpb.ListValue) []T {
	if list == nil {
		return nil
	}
	structs := pie_.Filter(list.Values, func(v *structpb.Value) bool {
		return v.GetStructValue() != nil
	})

	return pie_.Map(structs, func(v *structpb.Value) T {
		var record T
		if err := StructToRecord(v.GetStructValue(), &record); err != nil {
			logrus.Errorf("failed to decode record from proto struct: %v", err)
		}

		return record
	})
}
