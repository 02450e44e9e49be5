// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package profilesmodels

import "playfab-models-go/pkg/jsonutil"

type EffectType int32

const (
	EffectTypeAllow EffectType = iota + 1
	EffectTypeDeny
)

var effectTypeNames = jsonutil.NewEnumNames[EffectType]("Allow", "Deny")

func (v EffectType) String() string { return effectTypeNames.String(v) }
func (v EffectType) IsValid() bool { return effectTypeNames.IsValid(v) }
func (v EffectType) MarshalJSON() ([]byte, error) { return effectTypeNames.MarshalJSON(v) }

func (v *EffectType) UnmarshalJSON(data []byte) error { return effectTypeNames.UnmarshalJSON(data, v) }

func ParseEffectType(s string) (EffectType, bool) { return effectTypeNames.Parse(s) }

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
