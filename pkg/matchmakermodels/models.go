// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchmakermodels

import "playfab-models-go/pkg/jsonutil"

type AuthUserRequest struct {
	AuthorizationTicket string `json:"AuthorizationTicket,omitempty"`
}

type AuthUserResponse struct {
	Authorized bool   `json:"Authorized"`
	PlayFabID  string `json:"PlayFabId,omitempty"`
}

type ItemInstance struct {
	Annotation        string            `json:"Annotation,omitempty"`
	BundleContents    []string          `json:"BundleContents,omitempty"`
	BundleParent      string            `json:"BundleParent,omitempty"`
	CatalogVersion    string            `json:"CatalogVersion,omitempty"`
	CustomData        map[string]string `json:"CustomData,omitempty"`
	DisplayName       string            `json:"DisplayName,omitempty"`
	Expiration        *jsonutil.Time    `json:"Expiration,omitempty"`
	ItemClass         string            `json:"ItemClass,omitempty"`
	ItemID            string            `json:"ItemId,omitempty"`
	ItemInstanceID    string            `json:"ItemInstanceId,omitempty"`
	PurchaseDate      *jsonutil.Time    `json:"PurchaseDate,omitempty"`
	RemainingUses     *int32            `json:"RemainingUses,omitempty"`
	UnitCurrency      string            `json:"UnitCurrency,omitempty"`
	UnitPrice         uint32            `json:"UnitPrice"`
	UsesIncrementedBy *int32            `json:"UsesIncrementedBy,omitempty"`
}

type PlayerJoinedRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	LobbyID    string            `json:"LobbyId,omitempty"`
	PlayFabID  string            `json:"PlayFabId,omitempty"`
}

type PlayerJoinedResponse struct{}

type PlayerLeftRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	LobbyID    string            `json:"LobbyId,omitempty"`
	PlayFabID  string            `json:"PlayFabId,omitempty"`
}

type PlayerLeftResponse struct{}

// StartGameRequest asks for a new game server instance in Region.
type StartGameRequest struct {
	Build                           string            `json:"Build,omitempty"`
	CustomCommandLineData           string            `json:"CustomCommandLineData,omitempty"`
	CustomTags                      map[string]string `json:"CustomTags,omitempty"`
	ExternalMatchmakerEventEndpoint string            `json:"ExternalMatchmakerEventEndpoint,omitempty"`
	GameMode                        string            `json:"GameMode,omitempty"`
	Region                          Region            `json:"Region,omitempty"`
}

type StartGameResponse struct {
	GameID              string `json:"GameID,omitempty"`
	ServerIPV4Address   string `json:"ServerIPV4Address,omitempty"`
	ServerIPV6Address   string `json:"ServerIPV6Address,omitempty"`
	ServerPort          uint32 `json:"ServerPort"`
	ServerPublicDNSName string `json:"ServerPublicDNSName,omitempty"`
}

type UserInfoRequest struct {
	CustomTags        map[string]string `json:"CustomTags,omitempty"`
	MinCatalogVersion int32             `json:"MinCatalogVersion"`
	PlayFabID         string            `json:"PlayFabId,omitempty"`
}

type UserInfoResponse struct {
	Inventory                    []ItemInstance                         `json:"Inventory,omitempty"`
	IsDeveloper                  bool                                   `json:"IsDeveloper"`
	PlayFabID                    string                                 `json:"PlayFabId,omitempty"`
	SteamID                      string                                 `json:"SteamId,omitempty"`
	TitleDisplayName             string                                 `json:"TitleDisplayName,omitempty"`
	Username                     string                                 `json:"Username,omitempty"`
	VirtualCurrency              map[string]int32                       `json:"VirtualCurrency,omitempty"`
	VirtualCurrencyRechargeTimes map[string]VirtualCurrencyRechargeTime `json:"VirtualCurrencyRechargeTimes,omitempty"`
}

type VirtualCurrencyRechargeTime struct {
	RechargeMax       int32         `json:"RechargeMax"`
	RechargeTime      jsonutil.Time `json:"RechargeTime"`
	SecondsToRecharge int32         `json:"SecondsToRecharge"`
}
