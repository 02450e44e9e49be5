// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package datamodels

import "playfab-models-go/pkg/jsonutil"

type OperationTypes int32

const (
	OperationTypesCreated OperationTypes = iota + 1
	OperationTypesUpdated
	OperationTypesDeleted
	OperationTypesNone
)

var operationTypesNames = jsonutil.NewEnumNames[OperationTypes]("Created", "Updated", "Deleted", "None")

func (v OperationTypes) String() string { return operationTypesNames.String(v) }
func (v OperationTypes) IsValid() bool { return operationTypesNames.IsValid(v) }
func (v OperationTypes) MarshalJSON() ([]byte, error) { return operationTypesNames.MarshalJSON(v) }

func (v *OperationTypes) UnmarshalJSON(data []byte) error { return operationTypesNames.UnmarshalJSON(data, v) }

func ParseOperationTypes(s string) (OperationTypes, bool) { return operationTypesNames.Parse(s) }
