// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package profilesmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "profiles"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[EntityDataObject](idx, "EntityDataObject")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[EntityLineage](idx, "EntityLineage")
	jsonutil.AddType[EntityPermissionStatement](idx, "EntityPermissionStatement")
	jsonutil.AddType[EntityProfileBody](idx, "EntityProfileBody")
	jsonutil.AddType[EntityProfileFileMetadata](idx, "EntityProfileFileMetadata")
	jsonutil.AddType[EntityStatisticChildValue](idx, "EntityStatisticChildValue")
	jsonutil.AddType[EntityStatisticValue](idx, "EntityStatisticValue")
	jsonutil.AddType[GetEntityProfileRequest](idx, "GetEntityProfileRequest")
	jsonutil.AddType[GetEntityProfileResponse](idx, "GetEntityProfileResponse")
	jsonutil.AddType[GetEntityProfilesRequest](idx, "GetEntityProfilesRequest")
	jsonutil.AddType[GetEntityProfilesResponse](idx, "GetEntityProfilesResponse")
	jsonutil.AddType[GetGlobalPolicyRequest](idx, "GetGlobalPolicyRequest")
	jsonutil.AddType[GetGlobalPolicyResponse](idx, "GetGlobalPolicyResponse")
	jsonutil.AddType[GetTitlePlayersFromMasterPlayerAccountIDsRequest](idx, "GetTitlePlayersFromMasterPlayerAccountIdsRequest")
	jsonutil.AddType[GetTitlePlayersFromMasterPlayerAccountIDsResponse](idx, "GetTitlePlayersFromMasterPlayerAccountIdsResponse")
	jsonutil.AddType[SetEntityProfilePolicyRequest](idx, "SetEntityProfilePolicyRequest")
	jsonutil.AddType[SetEntityProfilePolicyResponse](idx, "SetEntityProfilePolicyResponse")
	jsonutil.AddType[SetGlobalPolicyRequest](idx, "SetGlobalPolicyRequest")
	jsonutil.AddType[SetGlobalPolicyResponse](idx, "SetGlobalPolicyResponse")
	jsonutil.AddType[SetProfileLanguageRequest](idx, "SetProfileLanguageRequest")
	jsonutil.AddType[SetProfileLanguageResponse](idx, "SetProfileLanguageResponse")
	idx.AddEnum("EffectType", effectTypeNames)
	idx.AddEnum("OperationTypes", operationTypesNames)

	return idx
}
