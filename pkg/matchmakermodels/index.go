// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchmakermodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "matchmaker"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[AuthUserRequest](idx, "AuthUserRequest")
	jsonutil.AddType[AuthUserResponse](idx, "AuthUserResponse")
	jsonutil.AddType[ItemInstance](idx, "ItemInstance")
	jsonutil.AddType[PlayerJoinedRequest](idx, "PlayerJoinedRequest")
	jsonutil.AddType[PlayerJoinedResponse](idx, "PlayerJoinedResponse")
	jsonutil.AddType[PlayerLeftRequest](idx, "PlayerLeftRequest")
	jsonutil.AddType[PlayerLeftResponse](idx, "PlayerLeftResponse")
	jsonutil.AddType[StartGameRequest](idx, "StartGameRequest")
	jsonutil.AddType[StartGameResponse](idx, "StartGameResponse")
	jsonutil.AddType[UserInfoRequest](idx, "UserInfoRequest")
	jsonutil.AddType[UserInfoResponse](idx, "UserInfoResponse")
	jsonutil.AddType[VirtualCurrencyRechargeTime](idx, "VirtualCurrencyRechargeTime")
	idx.AddEnum("Region", regionNames)

	return idx
}
