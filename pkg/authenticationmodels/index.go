// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package authenticationmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "authentication"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[EntityLineage](idx, "EntityLineage")
	jsonutil.AddType[GetEntityTokenRequest](idx, "GetEntityTokenRequest")
	jsonutil.AddType[GetEntityTokenResponse](idx, "GetEntityTokenResponse")
	jsonutil.AddType[ValidateEntityTokenRequest](idx, "ValidateEntityTokenRequest")
	jsonutil.AddType[ValidateEntityTokenResponse](idx, "ValidateEntityTokenResponse")
	idx.AddEnum("IdentifiedDeviceType", identifiedDeviceTypeNames)
	idx.AddEnum("LoginIdentityProvider", loginIdentityProviderNames)

	return idx
}
