// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package clientmodels

import "playfab-models-go/pkg/jsonutil"

type AcceptTradeRequest struct {
	AcceptedInventoryInstanceIDs []string `json:"AcceptedInventoryInstanceIds,omitempty"`
	OfferingPlayerID             string   `json:"OfferingPlayerId,omitempty"`
	TradeID                      string   `json:"TradeId,omitempty"`
}

type AcceptTradeResponse struct {
	Trade *TradeInfo `json:"Trade,omitempty"`
}

type AdCampaignAttributionModel struct {
	AttributedAt jsonutil.Time `json:"AttributedAt"`
	CampaignID   string        `json:"CampaignId,omitempty"`
	Platform     string        `json:"Platform,omitempty"`
}

type AdPlacementDetails struct {
	PlacementID                string   `json:"PlacementId,omitempty"`
	PlacementName              string   `json:"PlacementName,omitempty"`
	PlacementViewsRemaining    *int32   `json:"PlacementViewsRemaining,omitempty"`
	PlacementViewsResetMinutes *float64 `json:"PlacementViewsResetMinutes,omitempty"`
	RewardAssetURL             string   `json:"RewardAssetUrl,omitempty"`
	RewardDescription          string   `json:"RewardDescription,omitempty"`
	RewardID                   string   `json:"RewardId,omitempty"`
	RewardName                 string   `json:"RewardName,omitempty"`
}

type AdRewardItemGranted struct {
	CatalogID   string `json:"CatalogId,omitempty"`
	DisplayName string `json:"DisplayName,omitempty"`
	InstanceID  string `json:"InstanceId,omitempty"`
	ItemID      string `json:"ItemId,omitempty"`
}

type AdRewardResults struct {
	GrantedItems             []AdRewardItemGranted `json:"GrantedItems,omitempty"`
	GrantedVirtualCurrencies map[string]int32      `json:"GrantedVirtualCurrencies,omitempty"`
	IncrementedStatistics    map[string]int32      `json:"IncrementedStatistics,omitempty"`
}

type AddFriendRequest struct {
	FriendEmail            string `json:"FriendEmail,omitempty"`
	FriendPlayFabID        string `json:"FriendPlayFabId,omitempty"`
	FriendTitleDisplayName string `json:"FriendTitleDisplayName,omitempty"`
	FriendUsername         string `json:"FriendUsername,omitempty"`
}

type AddFriendResult struct {
	Created bool `json:"Created"`
}

type AddGenericIDRequest struct {
	GenericID GenericServiceID `json:"GenericId"`
}

type AddGenericIDResult struct{}

type AddOrUpdateContactEmailRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	EmailAddress string            `json:"EmailAddress,omitempty"`
}

type AddOrUpdateContactEmailResult struct{}

type AddSharedGroupMembersRequest struct {
	PlayFabIDs    []string `json:"PlayFabIds,omitempty"`
	SharedGroupID string   `json:"SharedGroupId,omitempty"`
}

type AddSharedGroupMembersResult struct{}

type AddUserVirtualCurrencyRequest struct {
	Amount          int32             `json:"Amount"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	VirtualCurrency string            `json:"VirtualCurrency,omitempty"`
}

type AddUsernamePasswordRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Email      string            `json:"Email,omitempty"`
	Password   string            `json:"Password,omitempty"`
	Username   string            `json:"Username,omitempty"`
}

type AddUsernamePasswordResult struct {
	Username string `json:"Username,omitempty"`
}

type AndroidDevicePushNotificationRegistrationRequest struct {
	ConfirmationMessage              string `json:"ConfirmationMessage,omitempty"`
	DeviceToken                      string `json:"DeviceToken,omitempty"`
	SendPushNotificationConfirmation *bool  `json:"SendPushNotificationConfirmation,omitempty"`
}

type AndroidDevicePushNotificationRegistrationResult struct{}

type AttributeInstallRequest struct {
	Adid string `json:"Adid,omitempty"`
	Idfa string `json:"Idfa,omitempty"`
}

type AttributeInstallResult struct{}

type CancelTradeRequest struct {
	TradeID string `json:"TradeId,omitempty"`
}

type CancelTradeResponse struct {
	Trade *TradeInfo `json:"Trade,omitempty"`
}

type CartItem struct {
	Description           string            `json:"Description,omitempty"`
	DisplayName           string            `json:"DisplayName,omitempty"`
	ItemClass             string            `json:"ItemClass,omitempty"`
	ItemID                string            `json:"ItemId,omitempty"`
	ItemInstanceID        string            `json:"ItemInstanceId,omitempty"`
	RealCurrencyPrices    map[string]uint32 `json:"RealCurrencyPrices,omitempty"`
	VCAmount              map[string]uint32 `json:"VCAmount,omitempty"`
	VirtualCurrencyPrices map[string]uint32 `json:"VirtualCurrencyPrices,omitempty"`
}

// CatalogItem is an item as defined in a title catalog. Bundle, Consumable and Container are set only for items of that kind.
type CatalogItem struct {
	Bundle                     *CatalogItemBundleInfo     `json:"Bundle,omitempty"`
	CanBecomeCharacter         bool                       `json:"CanBecomeCharacter"`
	CatalogVersion             string                     `json:"CatalogVersion,omitempty"`
	Consumable                 *CatalogItemConsumableInfo `json:"Consumable,omitempty"`
	Container                  *CatalogItemContainerInfo  `json:"Container,omitempty"`
	CustomData                 string                     `json:"CustomData,omitempty"`
	Description                string                     `json:"Description,omitempty"`
	DisplayName                string                     `json:"DisplayName,omitempty"`
	InitialLimitedEditionCount int32                      `json:"InitialLimitedEditionCount"`
	IsLimitedEdition           bool                       `json:"IsLimitedEdition"`
	IsStackable                bool                       `json:"IsStackable"`
	IsTradable                 bool                       `json:"IsTradable"`
	ItemClass                  string                     `json:"ItemClass,omitempty"`
	ItemID                     string                     `json:"ItemId,omitempty"`
	ItemImageURL               string                     `json:"ItemImageUrl,omitempty"`
	RealCurrencyPrices         map[string]uint32          `json:"RealCurrencyPrices,omitempty"`
	Tags                       []string                   `json:"Tags,omitempty"`
	VirtualCurrencyPrices      map[string]uint32          `json:"VirtualCurrencyPrices,omitempty"`
}

type CatalogItemBundleInfo struct {
	BundledItems             []string          `json:"BundledItems,omitempty"`
	BundledResultTables      []string          `json:"BundledResultTables,omitempty"`
	BundledVirtualCurrencies map[string]uint32 `json:"BundledVirtualCurrencies,omitempty"`
}

type CatalogItemConsumableInfo struct {
	UsageCount       *uint32 `json:"UsageCount,omitempty"`
	UsagePeriod      *uint32 `json:"UsagePeriod,omitempty"`
	UsagePeriodGroup string  `json:"UsagePeriodGroup,omitempty"`
}

type CatalogItemContainerInfo struct {
	ItemContents            []string          `json:"ItemContents,omitempty"`
	KeyItemID               string            `json:"KeyItemId,omitempty"`
	ResultTableContents     []string          `json:"ResultTableContents,omitempty"`
	VirtualCurrencyContents map[string]uint32 `json:"VirtualCurrencyContents,omitempty"`
}

type CharacterInventory struct {
	CharacterID string         `json:"CharacterId,omitempty"`
	Inventory   []ItemInstance `json:"Inventory,omitempty"`
}

type CharacterLeaderboardEntry struct {
	CharacterID   string `json:"CharacterId,omitempty"`
	CharacterName string `json:"CharacterName,omitempty"`
	CharacterType string `json:"CharacterType,omitempty"`
	DisplayName   string `json:"DisplayName,omitempty"`
	PlayFabID     string `json:"PlayFabId,omitempty"`
	Position      int32  `json:"Position"`
	StatValue     int32  `json:"StatValue"`
}

type CharacterResult struct {
	CharacterID   string `json:"CharacterId,omitempty"`
	CharacterName string `json:"CharacterName,omitempty"`
	CharacterType string `json:"CharacterType,omitempty"`
}

type CollectionFilter struct {
	Excludes []ContainerDictionaryStringString `json:"Excludes,omitempty"`
	Includes []ContainerDictionaryStringString `json:"Includes,omitempty"`
}

type ConfirmPurchaseRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	OrderID    string            `json:"OrderId,omitempty"`
}

type ConfirmPurchaseResult struct {
	Items        []ItemInstance `json:"Items,omitempty"`
	OrderID      string         `json:"OrderId,omitempty"`
	PurchaseDate jsonutil.Time  `json:"PurchaseDate"`
}

type ConsumeItemRequest struct {
	CharacterID    string            `json:"CharacterId,omitempty"`
	ConsumeCount   int32             `json:"ConsumeCount"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	ItemInstanceID string            `json:"ItemInstanceId,omitempty"`
}

type ConsumeItemResult struct {
	ItemInstanceID string `json:"ItemInstanceId,omitempty"`
	RemainingUses  int32  `json:"RemainingUses"`
}

type ConsumeMicrosoftStoreEntitlementsRequest struct {
	CatalogVersion          string                `json:"CatalogVersion,omitempty"`
	CustomTags              map[string]string     `json:"CustomTags,omitempty"`
	MarketplaceSpecificData MicrosoftStorePayload `json:"MarketplaceSpecificData"`
}

type ConsumeMicrosoftStoreEntitlementsResponse struct {
	Items []ItemInstance `json:"Items,omitempty"`
}

type ConsumePSNEntitlementsRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	ServiceLabel   int32             `json:"ServiceLabel"`
}

type ConsumePSNEntitlementsResult struct {
	ItemsGranted []ItemInstance `json:"ItemsGranted,omitempty"`
}

type ConsumeXboxEntitlementsRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	XboxToken      string            `json:"XboxToken,omitempty"`
}

type ConsumeXboxEntitlementsResult struct {
	Items []ItemInstance `json:"Items,omitempty"`
}

type ContactEmailInfoModel struct {
	EmailAddress       string                   `json:"EmailAddress,omitempty"`
	Name               string                   `json:"Name,omitempty"`
	VerificationStatus *EmailVerificationStatus `json:"VerificationStatus,omitempty"`
}

type ContainerDictionaryStringString struct {
	Data map[string]string `json:"Data,omitempty"`
}

type CreateSharedGroupRequest struct {
	SharedGroupID string `json:"SharedGroupId,omitempty"`
}

type CreateSharedGroupResult struct {
	SharedGroupID string `json:"SharedGroupId,omitempty"`
}

type CurrentGamesRequest struct {
	BuildVersion  string            `json:"BuildVersion,omitempty"`
	GameMode      string            `json:"GameMode,omitempty"`
	Region        *Region           `json:"Region,omitempty"`
	StatisticName string            `json:"StatisticName,omitempty"`
	TagFilter     *CollectionFilter `json:"TagFilter,omitempty"`
}

type CurrentGamesResult struct {
	GameCount   int32      `json:"GameCount"`
	Games       []GameInfo `json:"Games,omitempty"`
	PlayerCount int32      `json:"PlayerCount"`
}

type DeviceInfoRequest struct {
	Info any `json:"Info,omitempty"`
}

type EmptyResponse struct{}

type EmptyResult struct{}

// EntityKey identifies an entity. Type is one of title, master_player_account, title_player_account, character, group or service.
type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

type EntityTokenResponse struct {
	Entity          *EntityKey     `json:"Entity,omitempty"`
	EntityToken     string         `json:"EntityToken,omitempty"`
	TokenExpiration *jsonutil.Time `json:"TokenExpiration,omitempty"`
}

// ExecuteCloudScriptRequest runs a legacy CloudScript handler. FunctionParameter is passed through unchanged.
type ExecuteCloudScriptRequest struct {
	CustomTags              map[string]string          `json:"CustomTags,omitempty"`
	FunctionName            string                     `json:"FunctionName,omitempty"`
	FunctionParameter       any                        `json:"FunctionParameter,omitempty"`
	GeneratePlayStreamEvent *bool                      `json:"GeneratePlayStreamEvent,omitempty"`
	RevisionSelection       *CloudScriptRevisionOption `json:"RevisionSelection,omitempty"`
	SpecificRevision        *int32                     `json:"SpecificRevision,omitempty"`
}

type ExecuteCloudScriptResult struct {
	APIRequestsIssued      int32                 `json:"APIRequestsIssued"`
	Error                  *ScriptExecutionError `json:"Error,omitempty"`
	ExecutionTimeSeconds   float64               `json:"ExecutionTimeSeconds"`
	FunctionName           string                `json:"FunctionName,omitempty"`
	FunctionResult         any                   `json:"FunctionResult,omitempty"`
	FunctionResultTooLarge *bool                 `json:"FunctionResultTooLarge,omitempty"`
	HTTPRequestsIssued     int32                 `json:"HttpRequestsIssued"`
	Logs                   []LogStatement        `json:"Logs,omitempty"`
	LogsTooLarge           *bool                 `json:"LogsTooLarge,omitempty"`
	MemoryConsumedBytes    uint32                `json:"MemoryConsumedBytes"`
	ProcessorTimeSeconds   float64               `json:"ProcessorTimeSeconds"`
	Revision               int32                 `json:"Revision"`
}

type FacebookInstantGamesPlayFabIDPair struct {
	FacebookInstantGamesID string `json:"FacebookInstantGamesId,omitempty"`
	PlayFabID              string `json:"PlayFabId,omitempty"`
}

type FacebookPlayFabIDPair struct {
	FacebookID string `json:"FacebookId,omitempty"`
	PlayFabID  string `json:"PlayFabId,omitempty"`
}

type FriendInfo struct {
	FacebookInfo     *UserFacebookInfo   `json:"FacebookInfo,omitempty"`
	FriendPlayFabID  string              `json:"FriendPlayFabId,omitempty"`
	GameCenterInfo   *UserGameCenterInfo `json:"GameCenterInfo,omitempty"`
	Profile          *PlayerProfileModel `json:"Profile,omitempty"`
	PSNInfo          *UserPsnInfo        `json:"PSNInfo,omitempty"`
	SteamInfo        *UserSteamInfo      `json:"SteamInfo,omitempty"`
	Tags             []string            `json:"Tags,omitempty"`
	TitleDisplayName string              `json:"TitleDisplayName,omitempty"`
	Username         string              `json:"Username,omitempty"`
	XboxInfo         *UserXboxInfo       `json:"XboxInfo,omitempty"`
}

type GameCenterPlayFabIDPair struct {
	GameCenterID string `json:"GameCenterId,omitempty"`
	PlayFabID    string `json:"PlayFabId,omitempty"`
}

// GameInfo describes a running game server instance.
type GameInfo struct {
	BuildVersion        string             `json:"BuildVersion,omitempty"`
	GameMode            string             `json:"GameMode,omitempty"`
	GameServerData      string             `json:"GameServerData,omitempty"`
	GameServerStateEnum *GameInstanceState `json:"GameServerStateEnum,omitempty"`
	LastHeartbeat       *jsonutil.Time     `json:"LastHeartbeat,omitempty"`
	LobbyID             string             `json:"LobbyID,omitempty"`
	MaxPlayers          *int32             `json:"MaxPlayers,omitempty"`
	PlayerUserIDs       []string           `json:"PlayerUserIds,omitempty"`
	Region              *Region            `json:"Region,omitempty"`
	RunTime             uint32             `json:"RunTime"`
	ServerIPV4Address   string             `json:"ServerIPV4Address,omitempty"`
	ServerIPV6Address   string             `json:"ServerIPV6Address,omitempty"`
	ServerPort          *int32             `json:"ServerPort,omitempty"`
	ServerPublicDNSName string             `json:"ServerPublicDNSName,omitempty"`
	StatisticName       string             `json:"StatisticName,omitempty"`
	Tags                map[string]string  `json:"Tags,omitempty"`
}

type GameServerRegionsRequest struct {
	BuildVersion string `json:"BuildVersion,omitempty"`
	TitleID      string `json:"TitleId,omitempty"`
}

type GameServerRegionsResult struct {
	Regions []RegionInfo `json:"Regions,omitempty"`
}

type GenericPlayFabIDPair struct {
	GenericID *GenericServiceID `json:"GenericId,omitempty"`
	PlayFabID string            `json:"PlayFabId,omitempty"`
}

type GenericServiceID struct {
	ServiceName string `json:"ServiceName,omitempty"`
	UserID      string `json:"UserId,omitempty"`
}

type GetAccountInfoRequest struct {
	Email            string `json:"Email,omitempty"`
	PlayFabID        string `json:"PlayFabId,omitempty"`
	TitleDisplayName string `json:"TitleDisplayName,omitempty"`
	Username         string `json:"Username,omitempty"`
}

type GetAccountInfoResult struct {
	AccountInfo *UserAccountInfo `json:"AccountInfo,omitempty"`
}

type GetAdPlacementsRequest struct {
	AppID      string          `json:"AppId,omitempty"`
	Identifier *NameIdentifier `json:"Identifier,omitempty"`
}

type GetAdPlacementsResult struct {
	AdPlacements []AdPlacementDetails `json:"AdPlacements,omitempty"`
}

type GetCatalogItemsRequest struct {
	CatalogVersion string `json:"CatalogVersion,omitempty"`
}

type GetCatalogItemsResult struct {
	Catalog []CatalogItem `json:"Catalog,omitempty"`
}

type GetCharacterDataRequest struct {
	CharacterID              string   `json:"CharacterId,omitempty"`
	IfChangedFromDataVersion *uint32  `json:"IfChangedFromDataVersion,omitempty"`
	Keys                     []string `json:"Keys,omitempty"`
	PlayFabID                string   `json:"PlayFabId,omitempty"`
}

type GetCharacterDataResult struct {
	CharacterID string                    `json:"CharacterId,omitempty"`
	Data        map[string]UserDataRecord `json:"Data,omitempty"`
	DataVersion uint32                    `json:"DataVersion"`
}

type GetCharacterInventoryRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CharacterID    string            `json:"CharacterId,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
}

type GetCharacterInventoryResult struct {
	CharacterID                  string                                 `json:"CharacterId,omitempty"`
	Inventory                    []ItemInstance                         `json:"Inventory,omitempty"`
	VirtualCurrency              map[string]int32                       `json:"VirtualCurrency,omitempty"`
	VirtualCurrencyRechargeTimes map[string]VirtualCurrencyRechargeTime `json:"VirtualCurrencyRechargeTimes,omitempty"`
}

type GetCharacterLeaderboardRequest struct {
	CharacterType   string `json:"CharacterType,omitempty"`
	MaxResultsCount *int32 `json:"MaxResultsCount,omitempty"`
	StartPosition   int32  `json:"StartPosition"`
	StatisticName   string `json:"StatisticName,omitempty"`
}

type GetCharacterLeaderboardResult struct {
	Leaderboard []CharacterLeaderboardEntry `json:"Leaderboard,omitempty"`
}

type GetCharacterStatisticsRequest struct {
	CharacterID string `json:"CharacterId,omitempty"`
}

type GetCharacterStatisticsResult struct {
	CharacterStatistics map[string]int32 `json:"CharacterStatistics,omitempty"`
}

type GetContentDownloadURLRequest struct {
	HTTPMethod string `json:"HttpMethod,omitempty"`
	Key        string `json:"Key,omitempty"`
	ThruCDN    *bool  `json:"ThruCDN,omitempty"`
}

type GetContentDownloadURLResult struct {
	URL string `json:"URL,omitempty"`
}

type GetFriendLeaderboardAroundPlayerRequest struct {
	CustomTags             map[string]string             `json:"CustomTags,omitempty"`
	IncludeFacebookFriends *bool                         `json:"IncludeFacebookFriends,omitempty"`
	IncludeSteamFriends    *bool                         `json:"IncludeSteamFriends,omitempty"`
	MaxResultsCount        *int32                        `json:"MaxResultsCount,omitempty"`
	PlayFabID              string                        `json:"PlayFabId,omitempty"`
	ProfileConstraints     *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	StatisticName          string                        `json:"StatisticName,omitempty"`
	UseSpecificVersion     *bool                         `json:"UseSpecificVersion,omitempty"`
	Version                *int32                        `json:"Version,omitempty"`
	XboxToken              string                        `json:"XboxToken,omitempty"`
}

type GetFriendLeaderboardAroundPlayerResult struct {
	Leaderboard []PlayerLeaderboardEntry `json:"Leaderboard,omitempty"`
	NextReset   *jsonutil.Time           `json:"NextReset,omitempty"`
	Version     int32                    `json:"Version"`
}

type GetFriendLeaderboardRequest struct {
	CustomTags             map[string]string             `json:"CustomTags,omitempty"`
	IncludeFacebookFriends *bool                         `json:"IncludeFacebookFriends,omitempty"`
	IncludeSteamFriends    *bool                         `json:"IncludeSteamFriends,omitempty"`
	MaxResultsCount        *int32                        `json:"MaxResultsCount,omitempty"`
	ProfileConstraints     *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	StartPosition          int32                         `json:"StartPosition"`
	StatisticName          string                        `json:"StatisticName,omitempty"`
	UseSpecificVersion     *bool                         `json:"UseSpecificVersion,omitempty"`
	Version                *int32                        `json:"Version,omitempty"`
	XboxToken              string                        `json:"XboxToken,omitempty"`
}

type GetFriendsListRequest struct {
	CustomTags             map[string]string             `json:"CustomTags,omitempty"`
	IncludeFacebookFriends *bool                         `json:"IncludeFacebookFriends,omitempty"`
	IncludeSteamFriends    *bool                         `json:"IncludeSteamFriends,omitempty"`
	ProfileConstraints     *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	XboxToken              string                        `json:"XboxToken,omitempty"`
}

type GetFriendsListResult struct {
	Friends []FriendInfo `json:"Friends,omitempty"`
}

type GetLeaderboardAroundCharacterRequest struct {
	CharacterID     string `json:"CharacterId,omitempty"`
	CharacterType   string `json:"CharacterType,omitempty"`
	MaxResultsCount *int32 `json:"MaxResultsCount,omitempty"`
	StatisticName   string `json:"StatisticName,omitempty"`
}

type GetLeaderboardAroundCharacterResult struct {
	Leaderboard []CharacterLeaderboardEntry `json:"Leaderboard,omitempty"`
}

type GetLeaderboardAroundPlayerRequest struct {
	CustomTags         map[string]string             `json:"CustomTags,omitempty"`
	MaxResultsCount    *int32                        `json:"MaxResultsCount,omitempty"`
	PlayFabID          string                        `json:"PlayFabId,omitempty"`
	ProfileConstraints *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	StatisticName      string                        `json:"StatisticName,omitempty"`
	UseSpecificVersion *bool                         `json:"UseSpecificVersion,omitempty"`
	Version            *int32                        `json:"Version,omitempty"`
}

type GetLeaderboardAroundPlayerResult struct {
	Leaderboard []PlayerLeaderboardEntry `json:"Leaderboard,omitempty"`
	NextReset   *jsonutil.Time           `json:"NextReset,omitempty"`
	Version     int32                    `json:"Version"`
}

type GetLeaderboardForUsersCharactersRequest struct {
	MaxResultsCount *int32 `json:"MaxResultsCount,omitempty"`
	StatisticName   string `json:"StatisticName,omitempty"`
}

type GetLeaderboardForUsersCharactersResult struct {
	Leaderboard []CharacterLeaderboardEntry `json:"Leaderboard,omitempty"`
}

type GetLeaderboardRequest struct {
	CustomTags         map[string]string             `json:"CustomTags,omitempty"`
	MaxResultsCount    *int32                        `json:"MaxResultsCount,omitempty"`
	ProfileConstraints *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	StartPosition      int32                         `json:"StartPosition"`
	StatisticName      string                        `json:"StatisticName,omitempty"`
	UseSpecificVersion *bool                         `json:"UseSpecificVersion,omitempty"`
	Version            *int32                        `json:"Version,omitempty"`
}

type GetLeaderboardResult struct {
	Leaderboard []PlayerLeaderboardEntry `json:"Leaderboard,omitempty"`
	NextReset   *jsonutil.Time           `json:"NextReset,omitempty"`
	Version     int32                    `json:"Version"`
}

type GetPaymentTokenRequest struct {
	TokenProvider string `json:"TokenProvider,omitempty"`
}

type GetPaymentTokenResult struct {
	OrderID       string `json:"OrderId,omitempty"`
	ProviderToken string `json:"ProviderToken,omitempty"`
}

type GetPhotonAuthenticationTokenRequest struct {
	PhotonApplicationID string `json:"PhotonApplicationId,omitempty"`
}

type GetPhotonAuthenticationTokenResult struct {
	PhotonCustomAuthenticationToken string `json:"PhotonCustomAuthenticationToken,omitempty"`
}

type GetPlayFabIDsFromFacebookIDsRequest struct {
	FacebookIDs []string `json:"FacebookIDs,omitempty"`
}

type GetPlayFabIDsFromFacebookIDsResult struct {
	Data []FacebookPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromFacebookInstantGamesIDsRequest struct {
	FacebookInstantGamesIDs []string `json:"FacebookInstantGamesIds,omitempty"`
}

type GetPlayFabIDsFromFacebookInstantGamesIDsResult struct {
	Data []FacebookInstantGamesPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromGameCenterIDsRequest struct {
	GameCenterIDs []string `json:"GameCenterIDs,omitempty"`
}

type GetPlayFabIDsFromGameCenterIDsResult struct {
	Data []GameCenterPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromGenericIDsRequest struct {
	GenericIDs []GenericServiceID `json:"GenericIDs,omitempty"`
}

type GetPlayFabIDsFromGenericIDsResult struct {
	Data []GenericPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromGoogleIDsRequest struct {
	GoogleIDs []string `json:"GoogleIDs,omitempty"`
}

type GetPlayFabIDsFromGoogleIDsResult struct {
	Data []GooglePlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromKongregateIDsRequest struct {
	KongregateIDs []string `json:"KongregateIDs,omitempty"`
}

type GetPlayFabIDsFromKongregateIDsResult struct {
	Data []KongregatePlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromNintendoSwitchDeviceIDsRequest struct {
	NintendoSwitchDeviceIDs []string `json:"NintendoSwitchDeviceIds,omitempty"`
}

type GetPlayFabIDsFromNintendoSwitchDeviceIDsResult struct {
	Data []NintendoSwitchPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromPSNAccountIDsRequest struct {
	IssuerID      *int32   `json:"IssuerId,omitempty"`
	PSNAccountIDs []string `json:"PSNAccountIDs,omitempty"`
}

type GetPlayFabIDsFromPSNAccountIDsResult struct {
	Data []PSNAccountPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromSteamIDsRequest struct {
	SteamStringIDs []string `json:"SteamStringIDs,omitempty"`
}

type GetPlayFabIDsFromSteamIDsResult struct {
	Data []SteamPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromTwitchIDsRequest struct {
	TwitchIDs []string `json:"TwitchIds,omitempty"`
}

type GetPlayFabIDsFromTwitchIDsResult struct {
	Data []TwitchPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayFabIDsFromXboxLiveIDsRequest struct {
	Sandbox            string   `json:"Sandbox,omitempty"`
	XboxLiveAccountIDs []string `json:"XboxLiveAccountIDs,omitempty"`
}

type GetPlayFabIDsFromXboxLiveIDsResult struct {
	Data []XboxLiveAccountPlayFabIDPair `json:"Data,omitempty"`
}

type GetPlayerCombinedInfoRequest struct {
	CustomTags            map[string]string                  `json:"CustomTags,omitempty"`
	InfoRequestParameters GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters"`
	PlayFabID             string                             `json:"PlayFabId,omitempty"`
}

// GetPlayerCombinedInfoRequestParams selects which parts of the player state are returned with a login or combined info call.
type GetPlayerCombinedInfoRequestParams struct {
	GetCharacterInventories bool                          `json:"GetCharacterInventories"`
	GetCharacterList        bool                          `json:"GetCharacterList"`
	GetPlayerProfile        bool                          `json:"GetPlayerProfile"`
	GetPlayerStatistics     bool                          `json:"GetPlayerStatistics"`
	GetTitleData            bool                          `json:"GetTitleData"`
	GetUserAccountInfo      bool                          `json:"GetUserAccountInfo"`
	GetUserData             bool                          `json:"GetUserData"`
	GetUserInventory        bool                          `json:"GetUserInventory"`
	GetUserReadOnlyData     bool                          `json:"GetUserReadOnlyData"`
	GetUserVirtualCurrency  bool                          `json:"GetUserVirtualCurrency"`
	PlayerStatisticNames    []string                      `json:"PlayerStatisticNames,omitempty"`
	ProfileConstraints      *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	TitleDataKeys           []string                      `json:"TitleDataKeys,omitempty"`
	UserDataKeys            []string                      `json:"UserDataKeys,omitempty"`
	UserReadOnlyDataKeys    []string                      `json:"UserReadOnlyDataKeys,omitempty"`
}

type GetPlayerCombinedInfoResult struct {
	InfoResultPayload *GetPlayerCombinedInfoResultPayload `json:"InfoResultPayload,omitempty"`
	PlayFabID         string                              `json:"PlayFabId,omitempty"`
}

type GetPlayerCombinedInfoResultPayload struct {
	AccountInfo                      *UserAccountInfo                       `json:"AccountInfo,omitempty"`
	CharacterInventories             []CharacterInventory                   `json:"CharacterInventories,omitempty"`
	CharacterList                    []CharacterResult                      `json:"CharacterList,omitempty"`
	PlayerProfile                    *PlayerProfileModel                    `json:"PlayerProfile,omitempty"`
	PlayerStatistics                 []StatisticValue                       `json:"PlayerStatistics,omitempty"`
	TitleData                        map[string]string                      `json:"TitleData,omitempty"`
	UserData                         map[string]UserDataRecord              `json:"UserData,omitempty"`
	UserDataVersion                  uint32                                 `json:"UserDataVersion"`
	UserInventory                    []ItemInstance                         `json:"UserInventory,omitempty"`
	UserReadOnlyData                 map[string]UserDataRecord              `json:"UserReadOnlyData,omitempty"`
	UserReadOnlyDataVersion          uint32                                 `json:"UserReadOnlyDataVersion"`
	UserVirtualCurrency              map[string]int32                       `json:"UserVirtualCurrency,omitempty"`
	UserVirtualCurrencyRechargeTimes map[string]VirtualCurrencyRechargeTime `json:"UserVirtualCurrencyRechargeTimes,omitempty"`
}

type GetPlayerProfileRequest struct {
	CustomTags         map[string]string             `json:"CustomTags,omitempty"`
	PlayFabID          string                        `json:"PlayFabId,omitempty"`
	ProfileConstraints *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
}

type GetPlayerProfileResult struct {
	PlayerProfile *PlayerProfileModel `json:"PlayerProfile,omitempty"`
}

type GetPlayerSegmentsRequest struct{}

type GetPlayerSegmentsResult struct {
	Segments []GetSegmentResult `json:"Segments,omitempty"`
}

type GetPlayerStatisticVersionsRequest struct {
	CustomTags    map[string]string `json:"CustomTags,omitempty"`
	StatisticName string            `json:"StatisticName,omitempty"`
}

type GetPlayerStatisticVersionsResult struct {
	StatisticVersions []PlayerStatisticVersion `json:"StatisticVersions,omitempty"`
}

type GetPlayerStatisticsRequest struct {
	CustomTags            map[string]string      `json:"CustomTags,omitempty"`
	StatisticNames        []string               `json:"StatisticNames,omitempty"`
	StatisticNameVersions []StatisticNameVersion `json:"StatisticNameVersions,omitempty"`
}

type GetPlayerStatisticsResult struct {
	Statistics []StatisticValue `json:"Statistics,omitempty"`
}

type GetPlayerTagsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Namespace  string            `json:"Namespace,omitempty"`
	PlayFabID  string            `json:"PlayFabId,omitempty"`
}

type GetPlayerTagsResult struct {
	PlayFabID string   `json:"PlayFabId,omitempty"`
	Tags      []string `json:"Tags,omitempty"`
}

type GetPlayerTradesRequest struct {
	StatusFilter *TradeStatus `json:"StatusFilter,omitempty"`
}

type GetPlayerTradesResponse struct {
	AcceptedTrades []TradeInfo `json:"AcceptedTrades,omitempty"`
	OpenedTrades   []TradeInfo `json:"OpenedTrades,omitempty"`
}

type GetPublisherDataRequest struct {
	Keys []string `json:"Keys,omitempty"`
}

type GetPublisherDataResult struct {
	Data map[string]string `json:"Data,omitempty"`
}

type GetPurchaseRequest struct {
	OrderID string `json:"OrderId,omitempty"`
}

type GetPurchaseResult struct {
	OrderID           string        `json:"OrderId,omitempty"`
	PaymentProvider   string        `json:"PaymentProvider,omitempty"`
	PurchaseDate      jsonutil.Time `json:"PurchaseDate"`
	TransactionID     string        `json:"TransactionId,omitempty"`
	TransactionStatus string        `json:"TransactionStatus,omitempty"`
}

type GetSegmentResult struct {
	ABTestParent string `json:"ABTestParent,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name,omitempty"`
}

type GetSharedGroupDataRequest struct {
	GetMembers    *bool    `json:"GetMembers,omitempty"`
	Keys          []string `json:"Keys,omitempty"`
	SharedGroupID string   `json:"SharedGroupId,omitempty"`
}

type GetSharedGroupDataResult struct {
	Data    map[string]SharedGroupDataRecord `json:"Data,omitempty"`
	Members []string                         `json:"Members,omitempty"`
}

type GetStoreItemsRequest struct {
	CatalogVersion string `json:"CatalogVersion,omitempty"`
	StoreID        string `json:"StoreId,omitempty"`
}

type GetStoreItemsResult struct {
	CatalogVersion string               `json:"CatalogVersion,omitempty"`
	MarketingData  *StoreMarketingModel `json:"MarketingData,omitempty"`
	Source         *SourceType          `json:"Source,omitempty"`
	Store          []StoreItem          `json:"Store,omitempty"`
	StoreID        string               `json:"StoreId,omitempty"`
}

type GetTimeRequest struct{}

type GetTimeResult struct {
	Time jsonutil.Time `json:"Time"`
}

type GetTitleDataRequest struct {
	Keys          []string `json:"Keys,omitempty"`
	OverrideLabel string   `json:"OverrideLabel,omitempty"`
}

type GetTitleDataResult struct {
	Data map[string]string `json:"Data,omitempty"`
}

type GetTitleNewsRequest struct {
	Count *int32 `json:"Count,omitempty"`
}

type GetTitleNewsResult struct {
	News []TitleNewsItem `json:"News,omitempty"`
}

type GetTitlePublicKeyRequest struct {
	TitleID           string `json:"TitleId,omitempty"`
	TitleSharedSecret string `json:"TitleSharedSecret,omitempty"`
}

type GetTitlePublicKeyResult struct {
	RSAPublicKey string `json:"RSAPublicKey,omitempty"`
}

type GetTradeStatusRequest struct {
	OfferingPlayerID string `json:"OfferingPlayerId,omitempty"`
	TradeID          string `json:"TradeId,omitempty"`
}

type GetTradeStatusResponse struct {
	Trade *TradeInfo `json:"Trade,omitempty"`
}

type GetUserDataRequest struct {
	IfChangedFromDataVersion *uint32  `json:"IfChangedFromDataVersion,omitempty"`
	Keys                     []string `json:"Keys,omitempty"`
	PlayFabID                string   `json:"PlayFabId,omitempty"`
}

type GetUserDataResult struct {
	Data        map[string]UserDataRecord `json:"Data,omitempty"`
	DataVersion uint32                    `json:"DataVersion"`
}

type GetUserInventoryRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetUserInventoryResult struct {
	Inventory                    []ItemInstance                         `json:"Inventory,omitempty"`
	VirtualCurrency              map[string]int32                       `json:"VirtualCurrency,omitempty"`
	VirtualCurrencyRechargeTimes map[string]VirtualCurrencyRechargeTime `json:"VirtualCurrencyRechargeTimes,omitempty"`
}

type GooglePlayFabIDPair struct {
	GoogleID  string `json:"GoogleId,omitempty"`
	PlayFabID string `json:"PlayFabId,omitempty"`
}

type GrantCharacterToUserRequest struct {
	CatalogVersion string `json:"CatalogVersion,omitempty"`
	CharacterName  string `json:"CharacterName,omitempty"`
	ItemID         string `json:"ItemId,omitempty"`
}

type GrantCharacterToUserResult struct {
	CharacterID   string `json:"CharacterId,omitempty"`
	CharacterType string `json:"CharacterType,omitempty"`
	Result        bool   `json:"Result"`
}

// ItemInstance is a single item in a player or character inventory.
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

type ItemPurchaseRequest struct {
	Annotation       string   `json:"Annotation,omitempty"`
	ItemID           string   `json:"ItemId,omitempty"`
	Quantity         uint32   `json:"Quantity"`
	UpgradeFromItems []string `json:"UpgradeFromItems,omitempty"`
}

type KongregatePlayFabIDPair struct {
	KongregateID string `json:"KongregateId,omitempty"`
	PlayFabID    string `json:"PlayFabId,omitempty"`
}

type LinkAndroidDeviceIDRequest struct {
	AndroidDevice   string            `json:"AndroidDevice,omitempty"`
	AndroidDeviceID string            `json:"AndroidDeviceId,omitempty"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	ForceLink       *bool             `json:"ForceLink,omitempty"`
	OS              string            `json:"OS,omitempty"`
}

type LinkAndroidDeviceIDResult struct{}

type LinkAppleRequest struct {
	CustomTags    map[string]string `json:"CustomTags,omitempty"`
	ForceLink     *bool             `json:"ForceLink,omitempty"`
	IdentityToken string            `json:"IdentityToken,omitempty"`
}

type LinkCustomIDRequest struct {
	CustomID   string            `json:"CustomId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	ForceLink  *bool             `json:"ForceLink,omitempty"`
}

type LinkCustomIDResult struct{}

type LinkFacebookAccountRequest struct {
	AccessToken string            `json:"AccessToken,omitempty"`
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	ForceLink   *bool             `json:"ForceLink,omitempty"`
}

type LinkFacebookAccountResult struct{}

type LinkFacebookInstantGamesIDRequest struct {
	CustomTags                    map[string]string `json:"CustomTags,omitempty"`
	FacebookInstantGamesSignature string            `json:"FacebookInstantGamesSignature,omitempty"`
	ForceLink                     *bool             `json:"ForceLink,omitempty"`
}

type LinkFacebookInstantGamesIDResult struct{}

type LinkGameCenterAccountRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ForceLink    *bool             `json:"ForceLink,omitempty"`
	GameCenterID string            `json:"GameCenterId,omitempty"`
	PublicKeyURL string            `json:"PublicKeyUrl,omitempty"`
	Salt         string            `json:"Salt,omitempty"`
	Signature    string            `json:"Signature,omitempty"`
	Timestamp    string            `json:"Timestamp,omitempty"`
}

type LinkGameCenterAccountResult struct{}

type LinkGoogleAccountRequest struct {
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	ForceLink      *bool             `json:"ForceLink,omitempty"`
	ServerAuthCode string            `json:"ServerAuthCode,omitempty"`
}

type LinkGoogleAccountResult struct{}

type LinkIOSDeviceIDRequest struct {
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	DeviceID    string            `json:"DeviceId,omitempty"`
	DeviceModel string            `json:"DeviceModel,omitempty"`
	ForceLink   *bool             `json:"ForceLink,omitempty"`
	OS          string            `json:"OS,omitempty"`
}

type LinkIOSDeviceIDResult struct{}

type LinkKongregateAccountRequest struct {
	AuthTicket   string            `json:"AuthTicket,omitempty"`
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ForceLink    *bool             `json:"ForceLink,omitempty"`
	KongregateID string            `json:"KongregateId,omitempty"`
}

type LinkKongregateAccountResult struct{}

type LinkNintendoServiceAccountRequest struct {
	CustomTags    map[string]string `json:"CustomTags,omitempty"`
	ForceLink     *bool             `json:"ForceLink,omitempty"`
	IdentityToken string            `json:"IdentityToken,omitempty"`
}

type LinkNintendoSwitchDeviceIDRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	ForceLink              *bool             `json:"ForceLink,omitempty"`
	NintendoSwitchDeviceID string            `json:"NintendoSwitchDeviceId,omitempty"`
}

type LinkNintendoSwitchDeviceIDResult struct{}

type LinkOpenIDConnectRequest struct {
	ConnectionID string            `json:"ConnectionId,omitempty"`
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ForceLink    *bool             `json:"ForceLink,omitempty"`
	IDToken      string            `json:"IdToken,omitempty"`
}

type LinkPSNAccountRequest struct {
	AuthCode    string            `json:"AuthCode,omitempty"`
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	ForceLink   *bool             `json:"ForceLink,omitempty"`
	IssuerID    *int32            `json:"IssuerId,omitempty"`
	RedirectURI string            `json:"RedirectUri,omitempty"`
}

type LinkPSNAccountResult struct{}

type LinkSteamAccountRequest struct {
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	ForceLink   *bool             `json:"ForceLink,omitempty"`
	SteamTicket string            `json:"SteamTicket,omitempty"`
}

type LinkSteamAccountResult struct{}

type LinkTwitchAccountRequest struct {
	AccessToken string            `json:"AccessToken,omitempty"`
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	ForceLink   *bool             `json:"ForceLink,omitempty"`
}

type LinkTwitchAccountResult struct{}

type LinkXboxAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	ForceLink  *bool             `json:"ForceLink,omitempty"`
	XboxToken  string            `json:"XboxToken,omitempty"`
}

type LinkXboxAccountResult struct{}

type LinkedPlatformAccountModel struct {
	Email          string                 `json:"Email,omitempty"`
	Platform       *LoginIdentityProvider `json:"Platform,omitempty"`
	PlatformUserID string                 `json:"PlatformUserId,omitempty"`
	Username       string                 `json:"Username,omitempty"`
}

type ListUsersCharactersRequest struct {
	PlayFabID string `json:"PlayFabId,omitempty"`
}

type ListUsersCharactersResult struct {
	Characters []CharacterResult `json:"Characters,omitempty"`
}

type LocationModel struct {
	City          string         `json:"City,omitempty"`
	ContinentCode *ContinentCode `json:"ContinentCode,omitempty"`
	CountryCode   *CountryCode   `json:"CountryCode,omitempty"`
	Latitude      *float64       `json:"Latitude,omitempty"`
	Longitude     *float64       `json:"Longitude,omitempty"`
}

type LogStatement struct {
	Data    any    `json:"Data,omitempty"`
	Level   string `json:"Level,omitempty"`
	Message string `json:"Message,omitempty"`
}

// LoginResult is returned by every LoginWith call.
type LoginResult struct {
	EntityToken         *EntityTokenResponse                `json:"EntityToken,omitempty"`
	InfoResultPayload   *GetPlayerCombinedInfoResultPayload `json:"InfoResultPayload,omitempty"`
	LastLoginTime       *jsonutil.Time                      `json:"LastLoginTime,omitempty"`
	NewlyCreated        bool                                `json:"NewlyCreated"`
	PlayFabID           string                              `json:"PlayFabId,omitempty"`
	SessionTicket       string                              `json:"SessionTicket,omitempty"`
	SettingsForUser     *UserSettings                       `json:"SettingsForUser,omitempty"`
	TreatmentAssignment *TreatmentAssignment                `json:"TreatmentAssignment,omitempty"`
}

type LoginWithAndroidDeviceIDRequest struct {
	AndroidDevice         string                              `json:"AndroidDevice,omitempty"`
	AndroidDeviceID       string                              `json:"AndroidDeviceId,omitempty"`
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	OS                    string                              `json:"OS,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithAppleRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	IdentityToken         string                              `json:"IdentityToken,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithCustomIDRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomID              string                              `json:"CustomId,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithEmailAddressRequest struct {
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	Email                 string                              `json:"Email,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	Password              string                              `json:"Password,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithFacebookInstantGamesIDRequest struct {
	CreateAccount                 *bool                               `json:"CreateAccount,omitempty"`
	CustomTags                    map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest              string                              `json:"EncryptedRequest,omitempty"`
	FacebookInstantGamesSignature string                              `json:"FacebookInstantGamesSignature,omitempty"`
	InfoRequestParameters         *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret                  string                              `json:"PlayerSecret,omitempty"`
	TitleID                       string                              `json:"TitleId,omitempty"`
}

type LoginWithFacebookRequest struct {
	AccessToken           string                              `json:"AccessToken,omitempty"`
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithGameCenterRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerID              string                              `json:"PlayerId,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	PublicKeyURL          string                              `json:"PublicKeyUrl,omitempty"`
	Salt                  string                              `json:"Salt,omitempty"`
	Signature             string                              `json:"Signature,omitempty"`
	Timestamp             string                              `json:"Timestamp,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithGoogleAccountRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	ServerAuthCode        string                              `json:"ServerAuthCode,omitempty"`
	SetEmail              *bool                               `json:"SetEmail,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithIOSDeviceIDRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	DeviceID              string                              `json:"DeviceId,omitempty"`
	DeviceModel           string                              `json:"DeviceModel,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	OS                    string                              `json:"OS,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithKongregateRequest struct {
	AuthTicket            string                              `json:"AuthTicket,omitempty"`
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	KongregateID          string                              `json:"KongregateId,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithNintendoServiceAccountRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	IdentityToken         string                              `json:"IdentityToken,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithNintendoSwitchDeviceIDRequest struct {
	CreateAccount          *bool                               `json:"CreateAccount,omitempty"`
	CustomTags             map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest       string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters  *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	NintendoSwitchDeviceID string                              `json:"NintendoSwitchDeviceId,omitempty"`
	PlayerSecret           string                              `json:"PlayerSecret,omitempty"`
	TitleID                string                              `json:"TitleId,omitempty"`
}

type LoginWithOpenIDConnectRequest struct {
	ConnectionID          string                              `json:"ConnectionId,omitempty"`
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	IDToken               string                              `json:"IdToken,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithPSNRequest struct {
	AuthCode              string                              `json:"AuthCode,omitempty"`
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	IssuerID              *int32                              `json:"IssuerId,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	RedirectURI           string                              `json:"RedirectUri,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithPlayFabRequest struct {
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	Password              string                              `json:"Password,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
	Username              string                              `json:"Username,omitempty"`
}

type LoginWithSteamRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	SteamTicket           string                              `json:"SteamTicket,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithTwitchRequest struct {
	AccessToken           string                              `json:"AccessToken,omitempty"`
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
}

type LoginWithXboxRequest struct {
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	CustomTags            map[string]string                   `json:"CustomTags,omitempty"`
	EncryptedRequest      string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	TitleID               string                              `json:"TitleId,omitempty"`
	XboxToken             string                              `json:"XboxToken,omitempty"`
}

type MatchmakeRequest struct {
	BuildVersion        string            `json:"BuildVersion,omitempty"`
	CharacterID         string            `json:"CharacterId,omitempty"`
	GameMode            string            `json:"GameMode,omitempty"`
	LobbyID             string            `json:"LobbyId,omitempty"`
	Region              *Region           `json:"Region,omitempty"`
	StartNewIfNoneFound *bool             `json:"StartNewIfNoneFound,omitempty"`
	StatisticName       string            `json:"StatisticName,omitempty"`
	TagFilter           *CollectionFilter `json:"TagFilter,omitempty"`
}

type MatchmakeResult struct {
	Expires             string           `json:"Expires,omitempty"`
	LobbyID             string           `json:"LobbyID,omitempty"`
	PollWaitTimeMS      *int32           `json:"PollWaitTimeMS,omitempty"`
	ServerIPV4Address   string           `json:"ServerIPV4Address,omitempty"`
	ServerIPV6Address   string           `json:"ServerIPV6Address,omitempty"`
	ServerPort          *int32           `json:"ServerPort,omitempty"`
	ServerPublicDNSName string           `json:"ServerPublicDNSName,omitempty"`
	Status              *MatchmakeStatus `json:"Status,omitempty"`
	Ticket              string           `json:"Ticket,omitempty"`
}

type MembershipModel struct {
	IsActive             bool                `json:"IsActive"`
	MembershipExpiration jsonutil.Time       `json:"MembershipExpiration"`
	MembershipID         string              `json:"MembershipId,omitempty"`
	OverrideExpiration   *jsonutil.Time      `json:"OverrideExpiration,omitempty"`
	Subscriptions        []SubscriptionModel `json:"Subscriptions,omitempty"`
}

type MicrosoftStorePayload struct {
	CollectionsMsIDKey string `json:"CollectionsMsIdKey,omitempty"`
	UserID             string `json:"UserId,omitempty"`
	XboxToken          string `json:"XboxToken,omitempty"`
}

type ModifyUserVirtualCurrencyResult struct {
	Balance         int32  `json:"Balance"`
	BalanceChange   int32  `json:"BalanceChange"`
	PlayFabID       string `json:"PlayFabId,omitempty"`
	VirtualCurrency string `json:"VirtualCurrency,omitempty"`
}

type NameIdentifier struct {
	ID   string `json:"Id,omitempty"`
	Name string `json:"Name,omitempty"`
}

type NintendoSwitchPlayFabIDPair struct {
	NintendoSwitchDeviceID string `json:"NintendoSwitchDeviceId,omitempty"`
	PlayFabID              string `json:"PlayFabId,omitempty"`
}

type OpenTradeRequest struct {
	AllowedPlayerIDs            []string `json:"AllowedPlayerIds,omitempty"`
	OfferedInventoryInstanceIDs []string `json:"OfferedInventoryInstanceIds,omitempty"`
	RequestedCatalogItemIDs     []string `json:"RequestedCatalogItemIds,omitempty"`
}

type OpenTradeResponse struct {
	Trade *TradeInfo `json:"Trade,omitempty"`
}

type PSNAccountPlayFabIDPair struct {
	PlayFabID    string `json:"PlayFabId,omitempty"`
	PSNAccountID string `json:"PSNAccountId,omitempty"`
}

type PayForPurchaseRequest struct {
	Currency              string            `json:"Currency,omitempty"`
	CustomTags            map[string]string `json:"CustomTags,omitempty"`
	OrderID               string            `json:"OrderId,omitempty"`
	ProviderName          string            `json:"ProviderName,omitempty"`
	ProviderTransactionID string            `json:"ProviderTransactionId,omitempty"`
}

type PayForPurchaseResult struct {
	CreditApplied               uint32             `json:"CreditApplied"`
	OrderID                     string             `json:"OrderId,omitempty"`
	ProviderData                string             `json:"ProviderData,omitempty"`
	ProviderToken               string             `json:"ProviderToken,omitempty"`
	PurchaseConfirmationPageURL string             `json:"PurchaseConfirmationPageURL,omitempty"`
	PurchaseCurrency            string             `json:"PurchaseCurrency,omitempty"`
	PurchasePrice               uint32             `json:"PurchasePrice"`
	Status                      *TransactionStatus `json:"Status,omitempty"`
	VCAmount                    map[string]int32   `json:"VCAmount,omitempty"`
	VirtualCurrency             map[string]int32   `json:"VirtualCurrency,omitempty"`
}

type PaymentOption struct {
	Currency     string `json:"Currency,omitempty"`
	Price        uint32 `json:"Price"`
	ProviderName string `json:"ProviderName,omitempty"`
	StoreCredit  uint32 `json:"StoreCredit"`
}

type PlayerLeaderboardEntry struct {
	DisplayName string              `json:"DisplayName,omitempty"`
	PlayFabID   string              `json:"PlayFabId,omitempty"`
	Position    int32               `json:"Position"`
	Profile     *PlayerProfileModel `json:"Profile,omitempty"`
	StatValue   int32               `json:"StatValue"`
}

type PlayerProfileModel struct {
	AdCampaignAttributions        []AdCampaignAttributionModel        `json:"AdCampaignAttributions,omitempty"`
	AvatarURL                     string                              `json:"AvatarUrl,omitempty"`
	BannedUntil                   *jsonutil.Time                      `json:"BannedUntil,omitempty"`
	ContactEmailAddresses         []ContactEmailInfoModel             `json:"ContactEmailAddresses,omitempty"`
	Created                       *jsonutil.Time                      `json:"Created,omitempty"`
	DisplayName                   string                              `json:"DisplayName,omitempty"`
	ExperimentVariants            []string                            `json:"ExperimentVariants,omitempty"`
	LastLogin                     *jsonutil.Time                      `json:"LastLogin,omitempty"`
	LinkedAccounts                []LinkedPlatformAccountModel        `json:"LinkedAccounts,omitempty"`
	Locations                     []LocationModel                     `json:"Locations,omitempty"`
	Memberships                   []MembershipModel                   `json:"Memberships,omitempty"`
	Origination                   *LoginIdentityProvider              `json:"Origination,omitempty"`
	PlayerID                      string                              `json:"PlayerId,omitempty"`
	PublisherID                   string                              `json:"PublisherId,omitempty"`
	PushNotificationRegistrations []PushNotificationRegistrationModel `json:"PushNotificationRegistrations,omitempty"`
	Statistics                    []StatisticModel                    `json:"Statistics,omitempty"`
	Tags                          []TagModel                          `json:"Tags,omitempty"`
	TitleID                       string                              `json:"TitleId,omitempty"`
	TotalValueToDateInUSD         *uint32                             `json:"TotalValueToDateInUSD,omitempty"`
	ValuesToDate                  []ValueToDateModel                  `json:"ValuesToDate,omitempty"`
}

// PlayerProfileViewConstraints picks the optional parts of a player profile to return.
type PlayerProfileViewConstraints struct {
	ShowAvatarURL                     bool `json:"ShowAvatarUrl"`
	ShowBannedUntil                   bool `json:"ShowBannedUntil"`
	ShowCampaignAttributions          bool `json:"ShowCampaignAttributions"`
	ShowContactEmailAddresses         bool `json:"ShowContactEmailAddresses"`
	ShowCreated                       bool `json:"ShowCreated"`
	ShowDisplayName                   bool `json:"ShowDisplayName"`
	ShowExperimentVariants            bool `json:"ShowExperimentVariants"`
	ShowLastLogin                     bool `json:"ShowLastLogin"`
	ShowLinkedAccounts                bool `json:"ShowLinkedAccounts"`
	ShowLocations                     bool `json:"ShowLocations"`
	ShowMemberships                   bool `json:"ShowMemberships"`
	ShowOrigination                   bool `json:"ShowOrigination"`
	ShowPushNotificationRegistrations bool `json:"ShowPushNotificationRegistrations"`
	ShowStatistics                    bool `json:"ShowStatistics"`
	ShowTags                          bool `json:"ShowTags"`
	ShowTotalValueToDateInUsd         bool `json:"ShowTotalValueToDateInUsd"`
	ShowValuesToDate                  bool `json:"ShowValuesToDate"`
}

type PlayerStatisticVersion struct {
	ActivationTime            jsonutil.Time  `json:"ActivationTime"`
	DeactivationTime          *jsonutil.Time `json:"DeactivationTime,omitempty"`
	ScheduledActivationTime   *jsonutil.Time `json:"ScheduledActivationTime,omitempty"`
	ScheduledDeactivationTime *jsonutil.Time `json:"ScheduledDeactivationTime,omitempty"`
	StatisticName             string         `json:"StatisticName,omitempty"`
	Version                   uint32         `json:"Version"`
}

type PurchaseItemRequest struct {
	CatalogVersion  string            `json:"CatalogVersion,omitempty"`
	CharacterID     string            `json:"CharacterId,omitempty"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	ItemID          string            `json:"ItemId,omitempty"`
	Price           int32             `json:"Price"`
	StoreID         string            `json:"StoreId,omitempty"`
	VirtualCurrency string            `json:"VirtualCurrency,omitempty"`
}

type PurchaseItemResult struct {
	Items []ItemInstance `json:"Items,omitempty"`
}

type PurchaseReceiptFulfillment struct {
	FulfilledItems              []ItemInstance `json:"FulfilledItems,omitempty"`
	RecordedPriceSource         string         `json:"RecordedPriceSource,omitempty"`
	RecordedTransactionCurrency string         `json:"RecordedTransactionCurrency,omitempty"`
	RecordedTransactionTotal    *uint32        `json:"RecordedTransactionTotal,omitempty"`
}

type PushNotificationRegistrationModel struct {
	NotificationEndpointARN string                    `json:"NotificationEndpointARN,omitempty"`
	Platform                *PushNotificationPlatform `json:"Platform,omitempty"`
}

type RedeemCouponRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CharacterID    string            `json:"CharacterId,omitempty"`
	CouponCode     string            `json:"CouponCode,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
}

type RedeemCouponResult struct {
	GrantedItems []ItemInstance `json:"GrantedItems,omitempty"`
}

type RefreshPSNAuthTokenRequest struct {
	AuthCode    string `json:"AuthCode,omitempty"`
	IssuerID    *int32 `json:"IssuerId,omitempty"`
	RedirectURI string `json:"RedirectUri,omitempty"`
}

type RegionInfo struct {
	Available bool    `json:"Available"`
	Name      string  `json:"Name,omitempty"`
	PingURL   string  `json:"PingUrl,omitempty"`
	Region    *Region `json:"Region,omitempty"`
}

type RegisterForIOSPushNotificationRequest struct {
	ConfirmationMessage              string `json:"ConfirmationMessage,omitempty"`
	DeviceToken                      string `json:"DeviceToken,omitempty"`
	SendPushNotificationConfirmation *bool  `json:"SendPushNotificationConfirmation,omitempty"`
}

type RegisterForIOSPushNotificationResult struct{}

type RegisterPlayFabUserRequest struct {
	CustomTags                  map[string]string                   `json:"CustomTags,omitempty"`
	DisplayName                 string                              `json:"DisplayName,omitempty"`
	Email                       string                              `json:"Email,omitempty"`
	EncryptedRequest            string                              `json:"EncryptedRequest,omitempty"`
	InfoRequestParameters       *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	Password                    string                              `json:"Password,omitempty"`
	PlayerSecret                string                              `json:"PlayerSecret,omitempty"`
	RequireBothUsernameAndEmail *bool                               `json:"RequireBothUsernameAndEmail,omitempty"`
	TitleID                     string                              `json:"TitleId,omitempty"`
	Username                    string                              `json:"Username,omitempty"`
}

type RegisterPlayFabUserResult struct {
	EntityToken     *EntityTokenResponse `json:"EntityToken,omitempty"`
	PlayFabID       string               `json:"PlayFabId,omitempty"`
	SessionTicket   string               `json:"SessionTicket,omitempty"`
	SettingsForUser *UserSettings        `json:"SettingsForUser,omitempty"`
	Username        string               `json:"Username,omitempty"`
}

type RemoveContactEmailRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type RemoveContactEmailResult struct{}

type RemoveFriendRequest struct {
	FriendPlayFabID string `json:"FriendPlayFabId,omitempty"`
}

type RemoveFriendResult struct{}

type RemoveGenericIDRequest struct {
	GenericID GenericServiceID `json:"GenericId"`
}

type RemoveGenericIDResult struct{}

type RemoveSharedGroupMembersRequest struct {
	PlayFabIDs    []string `json:"PlayFabIds,omitempty"`
	SharedGroupID string   `json:"SharedGroupId,omitempty"`
}

type RemoveSharedGroupMembersResult struct{}

type ReportAdActivityRequest struct {
	Activity    AdActivity `json:"Activity,omitempty"`
	PlacementID string     `json:"PlacementId,omitempty"`
	RewardID    string     `json:"RewardId,omitempty"`
}

type ReportAdActivityResult struct{}

type ReportPlayerClientRequest struct {
	Comment    string `json:"Comment,omitempty"`
	ReporteeID string `json:"ReporteeId,omitempty"`
}

type ReportPlayerClientResult struct {
	SubmissionsRemaining int32 `json:"SubmissionsRemaining"`
}

type RestoreIOSPurchasesRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	ReceiptData    string            `json:"ReceiptData,omitempty"`
}

type RestoreIOSPurchasesResult struct {
	Fulfillments []PurchaseReceiptFulfillment `json:"Fulfillments,omitempty"`
}

type RewardAdActivityRequest struct {
	PlacementID string `json:"PlacementId,omitempty"`
	RewardID    string `json:"RewardId,omitempty"`
}

type RewardAdActivityResult struct {
	AdActivityEventID          string           `json:"AdActivityEventId,omitempty"`
	DebugResults               []string         `json:"DebugResults,omitempty"`
	PlacementID                string           `json:"PlacementId,omitempty"`
	PlacementName              string           `json:"PlacementName,omitempty"`
	PlacementViewsRemaining    *int32           `json:"PlacementViewsRemaining,omitempty"`
	PlacementViewsResetMinutes *float64         `json:"PlacementViewsResetMinutes,omitempty"`
	RewardResults              *AdRewardResults `json:"RewardResults,omitempty"`
}

type ScriptExecutionError struct {
	Error      string `json:"Error,omitempty"`
	Message    string `json:"Message,omitempty"`
	StackTrace string `json:"StackTrace,omitempty"`
}

type SendAccountRecoveryEmailRequest struct {
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	Email           string            `json:"Email,omitempty"`
	EmailTemplateID string            `json:"EmailTemplateId,omitempty"`
	TitleID         string            `json:"TitleId,omitempty"`
}

type SendAccountRecoveryEmailResult struct{}

type SetFriendTagsRequest struct {
	FriendPlayFabID string   `json:"FriendPlayFabId,omitempty"`
	Tags            []string `json:"Tags,omitempty"`
}

type SetFriendTagsResult struct{}

type SetPlayerSecretRequest struct {
	EncryptedRequest string `json:"EncryptedRequest,omitempty"`
	PlayerSecret     string `json:"PlayerSecret,omitempty"`
}

type SetPlayerSecretResult struct{}

type SharedGroupDataRecord struct {
	LastUpdated   jsonutil.Time       `json:"LastUpdated"`
	LastUpdatedBy string              `json:"LastUpdatedBy,omitempty"`
	Permission    *UserDataPermission `json:"Permission,omitempty"`
	Value         string              `json:"Value,omitempty"`
}

type StartGameRequest struct {
	BuildVersion          string `json:"BuildVersion,omitempty"`
	CharacterID           string `json:"CharacterId,omitempty"`
	CustomCommandLineData string `json:"CustomCommandLineData,omitempty"`
	GameMode              string `json:"GameMode,omitempty"`
	Region                Region `json:"Region,omitempty"`
	StatisticName         string `json:"StatisticName,omitempty"`
}

type StartGameResult struct {
	Expires             string `json:"Expires,omitempty"`
	LobbyID             string `json:"LobbyID,omitempty"`
	Password            string `json:"Password,omitempty"`
	ServerIPV4Address   string `json:"ServerIPV4Address,omitempty"`
	ServerIPV6Address   string `json:"ServerIPV6Address,omitempty"`
	ServerPort          *int32 `json:"ServerPort,omitempty"`
	ServerPublicDNSName string `json:"ServerPublicDNSName,omitempty"`
	Ticket              string `json:"Ticket,omitempty"`
}

type StartPurchaseRequest struct {
	CatalogVersion string                `json:"CatalogVersion,omitempty"`
	CustomTags     map[string]string     `json:"CustomTags,omitempty"`
	Items          []ItemPurchaseRequest `json:"Items,omitempty"`
	StoreID        string                `json:"StoreId,omitempty"`
}

type StartPurchaseResult struct {
	Contents                []CartItem       `json:"Contents,omitempty"`
	OrderID                 string           `json:"OrderId,omitempty"`
	PaymentOptions          []PaymentOption  `json:"PaymentOptions,omitempty"`
	VirtualCurrencyBalances map[string]int32 `json:"VirtualCurrencyBalances,omitempty"`
}

type StatisticModel struct {
	Name    string `json:"Name,omitempty"`
	Value   int32  `json:"Value"`
	Version int32  `json:"Version"`
}

type StatisticNameVersion struct {
	StatisticName string `json:"StatisticName,omitempty"`
	Version       uint32 `json:"Version"`
}

type StatisticUpdate struct {
	StatisticName string  `json:"StatisticName,omitempty"`
	Value         int32   `json:"Value"`
	Version       *uint32 `json:"Version,omitempty"`
}

type StatisticValue struct {
	StatisticName string `json:"StatisticName,omitempty"`
	Value         int32  `json:"Value"`
	Version       uint32 `json:"Version"`
}

type SteamPlayFabIDPair struct {
	PlayFabID     string `json:"PlayFabId,omitempty"`
	SteamStringID string `json:"SteamStringId,omitempty"`
}

type StoreItem struct {
	CustomData            any               `json:"CustomData,omitempty"`
	DisplayPosition       *uint32           `json:"DisplayPosition,omitempty"`
	ItemID                string            `json:"ItemId,omitempty"`
	RealCurrencyPrices    map[string]uint32 `json:"RealCurrencyPrices,omitempty"`
	VirtualCurrencyPrices map[string]uint32 `json:"VirtualCurrencyPrices,omitempty"`
}

type StoreMarketingModel struct {
	Description string `json:"Description,omitempty"`
	DisplayName string `json:"DisplayName,omitempty"`
	Metadata    any    `json:"Metadata,omitempty"`
}

type SubscriptionModel struct {
	Expiration              jsonutil.Time               `json:"Expiration"`
	InitialSubscriptionTime jsonutil.Time               `json:"InitialSubscriptionTime"`
	IsActive                bool                        `json:"IsActive"`
	Status                  *SubscriptionProviderStatus `json:"Status,omitempty"`
	SubscriptionID          string                      `json:"SubscriptionId,omitempty"`
	SubscriptionItemID      string                      `json:"SubscriptionItemId,omitempty"`
	SubscriptionProvider    string                      `json:"SubscriptionProvider,omitempty"`
}

type SubtractUserVirtualCurrencyRequest struct {
	Amount          int32             `json:"Amount"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	VirtualCurrency string            `json:"VirtualCurrency,omitempty"`
}

type TagModel struct {
	TagValue string `json:"TagValue,omitempty"`
}

type TitleNewsItem struct {
	Body      string        `json:"Body,omitempty"`
	NewsID    string        `json:"NewsId,omitempty"`
	Timestamp jsonutil.Time `json:"Timestamp"`
	Title     string        `json:"Title,omitempty"`
}

type TradeInfo struct {
	AcceptedInventoryInstanceIDs []string       `json:"AcceptedInventoryInstanceIds,omitempty"`
	AcceptedPlayerID             string         `json:"AcceptedPlayerId,omitempty"`
	AllowedPlayerIDs             []string       `json:"AllowedPlayerIds,omitempty"`
	CancelledAt                  *jsonutil.Time `json:"CancelledAt,omitempty"`
	FilledAt                     *jsonutil.Time `json:"FilledAt,omitempty"`
	InvalidatedAt                *jsonutil.Time `json:"InvalidatedAt,omitempty"`
	OfferedCatalogItemIDs        []string       `json:"OfferedCatalogItemIds,omitempty"`
	OfferedInventoryInstanceIDs  []string       `json:"OfferedInventoryInstanceIds,omitempty"`
	OfferingPlayerID             string         `json:"OfferingPlayerId,omitempty"`
	OpenedAt                     *jsonutil.Time `json:"OpenedAt,omitempty"`
	RequestedCatalogItemIDs      []string       `json:"RequestedCatalogItemIds,omitempty"`
	Status                       *TradeStatus   `json:"Status,omitempty"`
	TradeID                      string         `json:"TradeId,omitempty"`
}

type TreatmentAssignment struct {
	Variables []Variable `json:"Variables,omitempty"`
	Variants  []string   `json:"Variants,omitempty"`
}

type TwitchPlayFabIDPair struct {
	PlayFabID string `json:"PlayFabId,omitempty"`
	TwitchID  string `json:"TwitchId,omitempty"`
}

type UnlinkAndroidDeviceIDRequest struct {
	AndroidDeviceID string            `json:"AndroidDeviceId,omitempty"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkAndroidDeviceIDResult struct{}

type UnlinkAppleRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkCustomIDRequest struct {
	CustomID   string            `json:"CustomId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkCustomIDResult struct{}

type UnlinkFacebookAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkFacebookAccountResult struct{}

type UnlinkFacebookInstantGamesIDRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	FacebookInstantGamesID string            `json:"FacebookInstantGamesId,omitempty"`
}

type UnlinkFacebookInstantGamesIDResult struct{}

type UnlinkGameCenterAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkGameCenterAccountResult struct{}

type UnlinkGoogleAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkGoogleAccountResult struct{}

type UnlinkIOSDeviceIDRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	DeviceID   string            `json:"DeviceId,omitempty"`
}

type UnlinkIOSDeviceIDResult struct{}

type UnlinkKongregateAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkKongregateAccountResult struct{}

type UnlinkNintendoServiceAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkNintendoSwitchDeviceIDRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	NintendoSwitchDeviceID string            `json:"NintendoSwitchDeviceId,omitempty"`
}

type UnlinkNintendoSwitchDeviceIDResult struct{}

type UnlinkOpenIDConnectRequest struct {
	ConnectionID string            `json:"ConnectionId,omitempty"`
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkPSNAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkPSNAccountResult struct{}

type UnlinkSteamAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkSteamAccountResult struct{}

type UnlinkTwitchAccountRequest struct {
	AccessToken string            `json:"AccessToken,omitempty"`
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkTwitchAccountResult struct{}

type UnlinkXboxAccountRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UnlinkXboxAccountResult struct{}

type UnlockContainerInstanceRequest struct {
	CatalogVersion          string            `json:"CatalogVersion,omitempty"`
	CharacterID             string            `json:"CharacterId,omitempty"`
	ContainerItemInstanceID string            `json:"ContainerItemInstanceId,omitempty"`
	CustomTags              map[string]string `json:"CustomTags,omitempty"`
	KeyItemInstanceID       string            `json:"KeyItemInstanceId,omitempty"`
}

type UnlockContainerItemRequest struct {
	CatalogVersion  string            `json:"CatalogVersion,omitempty"`
	CharacterID     string            `json:"CharacterId,omitempty"`
	ContainerItemID string            `json:"ContainerItemId,omitempty"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
}

type UnlockContainerItemResult struct {
	GrantedItems               []ItemInstance    `json:"GrantedItems,omitempty"`
	UnlockedItemInstanceID     string            `json:"UnlockedItemInstanceId,omitempty"`
	UnlockedWithItemInstanceID string            `json:"UnlockedWithItemInstanceId,omitempty"`
	VirtualCurrency            map[string]uint32 `json:"VirtualCurrency,omitempty"`
}

type UpdateAvatarURLRequest struct {
	ImageURL string `json:"ImageUrl,omitempty"`
}

type UpdateCharacterDataRequest struct {
	CharacterID  string              `json:"CharacterId,omitempty"`
	CustomTags   map[string]string   `json:"CustomTags,omitempty"`
	Data         map[string]string   `json:"Data,omitempty"`
	KeysToRemove []string            `json:"KeysToRemove,omitempty"`
	Permission   *UserDataPermission `json:"Permission,omitempty"`
}

type UpdateCharacterDataResult struct {
	DataVersion uint32 `json:"DataVersion"`
}

type UpdateCharacterStatisticsRequest struct {
	CharacterID         string            `json:"CharacterId,omitempty"`
	CharacterStatistics map[string]int32  `json:"CharacterStatistics,omitempty"`
	CustomTags          map[string]string `json:"CustomTags,omitempty"`
}

type UpdateCharacterStatisticsResult struct{}

type UpdatePlayerStatisticsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Statistics []StatisticUpdate `json:"Statistics,omitempty"`
}

type UpdatePlayerStatisticsResult struct{}

type UpdateSharedGroupDataRequest struct {
	CustomTags    map[string]string   `json:"CustomTags,omitempty"`
	Data          map[string]string   `json:"Data,omitempty"`
	KeysToRemove  []string            `json:"KeysToRemove,omitempty"`
	Permission    *UserDataPermission `json:"Permission,omitempty"`
	SharedGroupID string              `json:"SharedGroupId,omitempty"`
}

type UpdateSharedGroupDataResult struct{}

type UpdateUserDataRequest struct {
	CustomTags   map[string]string   `json:"CustomTags,omitempty"`
	Data         map[string]string   `json:"Data,omitempty"`
	KeysToRemove []string            `json:"KeysToRemove,omitempty"`
	Permission   *UserDataPermission `json:"Permission,omitempty"`
}

type UpdateUserDataResult struct {
	DataVersion uint32 `json:"DataVersion"`
}

type UpdateUserTitleDisplayNameRequest struct {
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	DisplayName string            `json:"DisplayName,omitempty"`
}

type UpdateUserTitleDisplayNameResult struct {
	DisplayName string `json:"DisplayName,omitempty"`
}

type UserAccountInfo struct {
	AndroidDeviceInfo          *UserAndroidDeviceInfo           `json:"AndroidDeviceInfo,omitempty"`
	AppleAccountInfo           *UserAppleIDInfo                 `json:"AppleAccountInfo,omitempty"`
	Created                    jsonutil.Time                    `json:"Created"`
	CustomIDInfo               *UserCustomIDInfo                `json:"CustomIdInfo,omitempty"`
	FacebookInfo               *UserFacebookInfo                `json:"FacebookInfo,omitempty"`
	FacebookInstantGamesIDInfo *UserFacebookInstantGamesIDInfo  `json:"FacebookInstantGamesIdInfo,omitempty"`
	GameCenterInfo             *UserGameCenterInfo              `json:"GameCenterInfo,omitempty"`
	GoogleInfo                 *UserGoogleInfo                  `json:"GoogleInfo,omitempty"`
	IosDeviceInfo              *UserIosDeviceInfo               `json:"IosDeviceInfo,omitempty"`
	KongregateInfo             *UserKongregateInfo              `json:"KongregateInfo,omitempty"`
	NintendoSwitchAccountInfo  *UserNintendoSwitchAccountIDInfo `json:"NintendoSwitchAccountInfo,omitempty"`
	NintendoSwitchDeviceIDInfo *UserNintendoSwitchDeviceIDInfo  `json:"NintendoSwitchDeviceIdInfo,omitempty"`
	OpenIDInfo                 []UserOpenIDInfo                 `json:"OpenIdInfo,omitempty"`
	PlayFabID                  string                           `json:"PlayFabId,omitempty"`
	PrivateInfo                *UserPrivateAccountInfo          `json:"PrivateInfo,omitempty"`
	PsnInfo                    *UserPsnInfo                     `json:"PsnInfo,omitempty"`
	SteamInfo                  *UserSteamInfo                   `json:"SteamInfo,omitempty"`
	TitleInfo                  *UserTitleInfo                   `json:"TitleInfo,omitempty"`
	TwitchInfo                 *UserTwitchInfo                  `json:"TwitchInfo,omitempty"`
	Username                   string                           `json:"Username,omitempty"`
	XboxInfo                   *UserXboxInfo                    `json:"XboxInfo,omitempty"`
}

type UserAndroidDeviceInfo struct {
	AndroidDeviceID string `json:"AndroidDeviceId,omitempty"`
}

type UserAppleIDInfo struct {
	AppleSubjectID string `json:"AppleSubjectId,omitempty"`
}

type UserCustomIDInfo struct {
	CustomID string `json:"CustomId,omitempty"`
}

// UserDataRecord is one key of player or character data.
type UserDataRecord struct {
	LastUpdated jsonutil.Time       `json:"LastUpdated"`
	Permission  *UserDataPermission `json:"Permission,omitempty"`
	Value       string              `json:"Value,omitempty"`
}

type UserFacebookInfo struct {
	FacebookID string `json:"FacebookId,omitempty"`
	FullName   string `json:"FullName,omitempty"`
}

type UserFacebookInstantGamesIDInfo struct {
	FacebookInstantGamesID string `json:"FacebookInstantGamesId,omitempty"`
}

type UserGameCenterInfo struct {
	GameCenterID string `json:"GameCenterId,omitempty"`
}

type UserGoogleInfo struct {
	GoogleEmail  string `json:"GoogleEmail,omitempty"`
	GoogleGender string `json:"GoogleGender,omitempty"`
	GoogleID     string `json:"GoogleId,omitempty"`
	GoogleLocale string `json:"GoogleLocale,omitempty"`
	GoogleName   string `json:"GoogleName,omitempty"`
}

type UserIosDeviceInfo struct {
	IosDeviceID string `json:"IosDeviceId,omitempty"`
}

type UserKongregateInfo struct {
	KongregateID   string `json:"KongregateId,omitempty"`
	KongregateName string `json:"KongregateName,omitempty"`
}

type UserNintendoSwitchAccountIDInfo struct {
	NintendoSwitchAccountSubjectID string `json:"NintendoSwitchAccountSubjectId,omitempty"`
}

type UserNintendoSwitchDeviceIDInfo struct {
	NintendoSwitchDeviceID string `json:"NintendoSwitchDeviceId,omitempty"`
}

type UserOpenIDInfo struct {
	ConnectionID string `json:"ConnectionId,omitempty"`
	Issuer       string `json:"Issuer,omitempty"`
	Subject      string `json:"Subject,omitempty"`
}

type UserPrivateAccountInfo struct {
	Email string `json:"Email,omitempty"`
}

type UserPsnInfo struct {
	PsnAccountID string `json:"PsnAccountId,omitempty"`
	PsnOnlineID  string `json:"PsnOnlineId,omitempty"`
}

type UserSettings struct {
	GatherDeviceInfo bool `json:"GatherDeviceInfo"`
	GatherFocusInfo  bool `json:"GatherFocusInfo"`
	NeedsAttribution bool `json:"NeedsAttribution"`
}

type UserSteamInfo struct {
	SteamActivationStatus *TitleActivationStatus `json:"SteamActivationStatus,omitempty"`
	SteamCountry          string                 `json:"SteamCountry,omitempty"`
	SteamCurrency         *Currency              `json:"SteamCurrency,omitempty"`
	SteamID               string                 `json:"SteamId,omitempty"`
	SteamName             string                 `json:"SteamName,omitempty"`
}

type UserTitleInfo struct {
	AvatarURL          string           `json:"AvatarUrl,omitempty"`
	Created            jsonutil.Time    `json:"Created"`
	DisplayName        string           `json:"DisplayName,omitempty"`
	FirstLogin         *jsonutil.Time   `json:"FirstLogin,omitempty"`
	IsBanned           *bool            `json:"isBanned,omitempty"`
	LastLogin          *jsonutil.Time   `json:"LastLogin,omitempty"`
	Origination        *UserOrigination `json:"Origination,omitempty"`
	TitlePlayerAccount *EntityKey       `json:"TitlePlayerAccount,omitempty"`
}

type UserTwitchInfo struct {
	TwitchID       string `json:"TwitchId,omitempty"`
	TwitchUserName string `json:"TwitchUserName,omitempty"`
}

type UserXboxInfo struct {
	XboxUserID      string `json:"XboxUserId,omitempty"`
	XboxUserSandbox string `json:"XboxUserSandbox,omitempty"`
}

type ValidateAmazonReceiptRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CurrencyCode   string            `json:"CurrencyCode,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	PurchasePrice  int32             `json:"PurchasePrice"`
	ReceiptID      string            `json:"ReceiptId,omitempty"`
	UserID         string            `json:"UserId,omitempty"`
}

type ValidateAmazonReceiptResult struct {
	Fulfillments []PurchaseReceiptFulfillment `json:"Fulfillments,omitempty"`
}

type ValidateGooglePlayPurchaseRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CurrencyCode   string            `json:"CurrencyCode,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	PurchasePrice  *uint32           `json:"PurchasePrice,omitempty"`
	ReceiptJSON    string            `json:"ReceiptJson,omitempty"`
	Signature      string            `json:"Signature,omitempty"`
}

type ValidateGooglePlayPurchaseResult struct {
	Fulfillments []PurchaseReceiptFulfillment `json:"Fulfillments,omitempty"`
}

type ValidateIOSReceiptRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CurrencyCode   string            `json:"CurrencyCode,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	PurchasePrice  int32             `json:"PurchasePrice"`
	ReceiptData    string            `json:"ReceiptData,omitempty"`
}

type ValidateIOSReceiptResult struct {
	Fulfillments []PurchaseReceiptFulfillment `json:"Fulfillments,omitempty"`
}

type ValidateWindowsReceiptRequest struct {
	CatalogVersion string            `json:"CatalogVersion,omitempty"`
	CurrencyCode   string            `json:"CurrencyCode,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	PurchasePrice  uint32            `json:"PurchasePrice"`
	Receipt        string            `json:"Receipt,omitempty"`
}

type ValidateWindowsReceiptResult struct {
	Fulfillments []PurchaseReceiptFulfillment `json:"Fulfillments,omitempty"`
}

type ValueToDateModel struct {
	Currency            string `json:"Currency,omitempty"`
	TotalValue          uint32 `json:"TotalValue"`
	TotalValueAsDecimal string `json:"TotalValueAsDecimal,omitempty"`
}

type Variable struct {
	Name  string `json:"Name,omitempty"`
	Value string `json:"Value,omitempty"`
}

type VirtualCurrencyRechargeTime struct {
	RechargeMax       int32         `json:"RechargeMax"`
	RechargeTime      jsonutil.Time `json:"RechargeTime"`
	SecondsToRecharge int32         `json:"SecondsToRecharge"`
}

type WriteClientCharacterEventRequest struct {
	Body        map[string]any    `json:"Body,omitempty"`
	CharacterID string            `json:"CharacterId,omitempty"`
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	EventName   string            `json:"EventName,omitempty"`
	Timestamp   *jsonutil.Time    `json:"Timestamp,omitempty"`
}

type WriteClientPlayerEventRequest struct {
	Body       map[string]any    `json:"Body,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	EventName  string            `json:"EventName,omitempty"`
	Timestamp  *jsonutil.Time    `json:"Timestamp,omitempty"`
}

type WriteEventResponse struct {
	EventID string `json:"EventId,omitempty"`
}

type WriteTitleEventRequest struct {
	Body       map[string]any    `json:"Body,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	EventName  string            `json:"EventName,omitempty"`
	Timestamp  *jsonutil.Time    `json:"Timestamp,omitempty"`
}

type XboxLiveAccountPlayFabIDPair struct {
	PlayFabID         string `json:"PlayFabId,omitempty"`
	XboxLiveAccountID string `json:"XboxLiveAccountId,omitempty"`
}
