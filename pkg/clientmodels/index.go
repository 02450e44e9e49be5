// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package clientmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "client"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[AcceptTradeRequest](idx, "AcceptTradeRequest")
	jsonutil.AddType[AcceptTradeResponse](idx, "AcceptTradeResponse")
	jsonutil.AddType[AdCampaignAttributionModel](idx, "AdCampaignAttributionModel")
	jsonutil.AddType[AdPlacementDetails](idx, "AdPlacementDetails")
	jsonutil.AddType[AdRewardItemGranted](idx, "AdRewardItemGranted")
	jsonutil.AddType[AdRewardResults](idx, "AdRewardResults")
	jsonutil.AddType[AddFriendRequest](idx, "AddFriendRequest")
	jsonutil.AddType[AddFriendResult](idx, "AddFriendResult")
	jsonutil.AddType[AddGenericIDRequest](idx, "AddGenericIDRequest")
	jsonutil.AddType[AddGenericIDResult](idx, "AddGenericIDResult")
	jsonutil.AddType[AddOrUpdateContactEmailRequest](idx, "AddOrUpdateContactEmailRequest")
	jsonutil.AddType[AddOrUpdateContactEmailResult](idx, "AddOrUpdateContactEmailResult")
	jsonutil.AddType[AddSharedGroupMembersRequest](idx, "AddSharedGroupMembersRequest")
	jsonutil.AddType[AddSharedGroupMembersResult](idx, "AddSharedGroupMembersResult")
	jsonutil.AddType[AddUserVirtualCurrencyRequest](idx, "AddUserVirtualCurrencyRequest")
	jsonutil.AddType[AddUsernamePasswordRequest](idx, "AddUsernamePasswordRequest")
	jsonutil.AddType[AddUsernamePasswordResult](idx, "AddUsernamePasswordResult")
	jsonutil.AddType[AndroidDevicePushNotificationRegistrationRequest](idx, "AndroidDevicePushNotificationRegistrationRequest")
	jsonutil.AddType[AndroidDevicePushNotificationRegistrationResult](idx, "AndroidDevicePushNotificationRegistrationResult")
	jsonutil.AddType[AttributeInstallRequest](idx, "AttributeInstallRequest")
	jsonutil.AddType[AttributeInstallResult](idx, "AttributeInstallResult")
	jsonutil.AddType[CancelTradeRequest](idx, "CancelTradeRequest")
	jsonutil.AddType[CancelTradeResponse](idx, "CancelTradeResponse")
	jsonutil.AddType[CartItem](idx, "CartItem")
	jsonutil.AddType[CatalogItem](idx, "CatalogItem")
	jsonutil.AddType[CatalogItemBundleInfo](idx, "CatalogItemBundleInfo")
	jsonutil.AddType[CatalogItemConsumableInfo](idx, "CatalogItemConsumableInfo")
	jsonutil.AddType[CatalogItemContainerInfo](idx, "CatalogItemContainerInfo")
	jsonutil.AddType[CharacterInventory](idx, "CharacterInventory")
	jsonutil.AddType[CharacterLeaderboardEntry](idx, "CharacterLeaderboardEntry")
	jsonutil.AddType[CharacterResult](idx, "CharacterResult")
	jsonutil.AddType[CollectionFilter](idx, "CollectionFilter")
	jsonutil.AddType[ConfirmPurchaseRequest](idx, "ConfirmPurchaseRequest")
	jsonutil.AddType[ConfirmPurchaseResult](idx, "ConfirmPurchaseResult")
	jsonutil.AddType[ConsumeItemRequest](idx, "ConsumeItemRequest")
	jsonutil.AddType[ConsumeItemResult](idx, "ConsumeItemResult")
	jsonutil.AddType[ConsumeMicrosoftStoreEntitlementsRequest](idx, "ConsumeMicrosoftStoreEntitlementsRequest")
	jsonutil.AddType[ConsumeMicrosoftStoreEntitlementsResponse](idx, "ConsumeMicrosoftStoreEntitlementsResponse")
	jsonutil.AddType[ConsumePSNEntitlementsRequest](idx, "ConsumePSNEntitlementsRequest")
	jsonutil.AddType[ConsumePSNEntitlementsResult](idx, "ConsumePSNEntitlementsResult")
	jsonutil.AddType[ConsumeXboxEntitlementsRequest](idx, "ConsumeXboxEntitlementsRequest")
	jsonutil.AddType[ConsumeXboxEntitlementsResult](idx, "ConsumeXboxEntitlementsResult")
	jsonutil.AddType[ContactEmailInfoModel](idx, "ContactEmailInfoModel")
	jsonutil.AddType[ContainerDictionaryStringString](idx, "Container_Dictionary_String_String")
	jsonutil.AddType[CreateSharedGroupRequest](idx, "CreateSharedGroupRequest")
	jsonutil.AddType[CreateSharedGroupResult](idx, "CreateSharedGroupResult")
	jsonutil.AddType[CurrentGamesRequest](idx, "CurrentGamesRequest")
	jsonutil.AddType[CurrentGamesResult](idx, "CurrentGamesResult")
	jsonutil.AddType[DeviceInfoRequest](idx, "DeviceInfoRequest")
	jsonutil.AddType[EmptyResponse](idx, "EmptyResponse")
	jsonutil.AddType[EmptyResult](idx, "EmptyResult")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[EntityTokenResponse](idx, "EntityTokenResponse")
	jsonutil.AddType[ExecuteCloudScriptRequest](idx, "ExecuteCloudScriptRequest")
	jsonutil.AddType[ExecuteCloudScriptResult](idx, "ExecuteCloudScriptResult")
	jsonutil.AddType[FacebookInstantGamesPlayFabIDPair](idx, "FacebookInstantGamesPlayFabIdPair")
	jsonutil.AddType[FacebookPlayFabIDPair](idx, "FacebookPlayFabIdPair")
	jsonutil.AddType[FriendInfo](idx, "FriendInfo")
	jsonutil.AddType[GameCenterPlayFabIDPair](idx, "GameCenterPlayFabIdPair")
	jsonutil.AddType[GameInfo](idx, "GameInfo")
	jsonutil.AddType[GameServerRegionsRequest](idx, "GameServerRegionsRequest")
	jsonutil.AddType[GameServerRegionsResult](idx, "GameServerRegionsResult")
	jsonutil.AddType[GenericPlayFabIDPair](idx, "GenericPlayFabIdPair")
	jsonutil.AddType[GenericServiceID](idx, "GenericServiceId")
	jsonutil.AddType[GetAccountInfoRequest](idx, "GetAccountInfoRequest")
	jsonutil.AddType[GetAccountInfoResult](idx, "GetAccountInfoResult")
	jsonutil.AddType[GetAdPlacementsRequest](idx, "GetAdPlacementsRequest")
	jsonutil.AddType[GetAdPlacementsResult](idx, "GetAdPlacementsResult")
	jsonutil.AddType[GetCatalogItemsRequest](idx, "GetCatalogItemsRequest")
	jsonutil.AddType[GetCatalogItemsResult](idx, "GetCatalogItemsResult")
	jsonutil.AddType[GetCharacterDataRequest](idx, "GetCharacterDataRequest")
	jsonutil.AddType[GetCharacterDataResult](idx, "GetCharacterDataResult")
	jsonutil.AddType[GetCharacterInventoryRequest](idx, "GetCharacterInventoryRequest")
	jsonutil.AddType[GetCharacterInventoryResult](idx, "GetCharacterInventoryResult")
	jsonutil.AddType[GetCharacterLeaderboardRequest](idx, "GetCharacterLeaderboardRequest")
	jsonutil.AddType[GetCharacterLeaderboardResult](idx, "GetCharacterLeaderboardResult")
	jsonutil.AddType[GetCharacterStatisticsRequest](idx, "GetCharacterStatisticsRequest")
	jsonutil.AddType[GetCharacterStatisticsResult](idx, "GetCharacterStatisticsResult")
	jsonutil.AddType[GetContentDownloadURLRequest](idx, "GetContentDownloadUrlRequest")
	jsonutil.AddType[GetContentDownloadURLResult](idx, "GetContentDownloadUrlResult")
	jsonutil.AddType[GetFriendLeaderboardAroundPlayerRequest](idx, "GetFriendLeaderboardAroundPlayerRequest")
	jsonutil.AddType[GetFriendLeaderboardAroundPlayerResult](idx, "GetFriendLeaderboardAroundPlayerResult")
	jsonutil.AddType[GetFriendLeaderboardRequest](idx, "GetFriendLeaderboardRequest")
	jsonutil.AddType[GetFriendsListRequest](idx, "GetFriendsListRequest")
	jsonutil.AddType[GetFriendsListResult](idx, "GetFriendsListResult")
	jsonutil.AddType[GetLeaderboardAroundCharacterRequest](idx, "GetLeaderboardAroundCharacterRequest")
	jsonutil.AddType[GetLeaderboardAroundCharacterResult](idx, "GetLeaderboardAroundCharacterResult")
	jsonutil.AddType[GetLeaderboardAroundPlayerRequest](idx, "GetLeaderboardAroundPlayerRequest")
	jsonutil.AddType[GetLeaderboardAroundPlayerResult](idx, "GetLeaderboardAroundPlayerResult")
	jsonutil.AddType[GetLeaderboardForUsersCharactersRequest](idx, "GetLeaderboardForUsersCharactersRequest")
	jsonutil.AddType[GetLeaderboardForUsersCharactersResult](idx, "GetLeaderboardForUsersCharactersResult")
	jsonutil.AddType[GetLeaderboardRequest](idx, "GetLeaderboardRequest")
	jsonutil.AddType[GetLeaderboardResult](idx, "GetLeaderboardResult")
	jsonutil.AddType[GetPaymentTokenRequest](idx, "GetPaymentTokenRequest")
	jsonutil.AddType[GetPaymentTokenResult](idx, "GetPaymentTokenResult")
	jsonutil.AddType[GetPhotonAuthenticationTokenRequest](idx, "GetPhotonAuthenticationTokenRequest")
	jsonutil.AddType[GetPhotonAuthenticationTokenResult](idx, "GetPhotonAuthenticationTokenResult")
	jsonutil.AddType[GetPlayFabIDsFromFacebookIDsRequest](idx, "GetPlayFabIDsFromFacebookIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromFacebookIDsResult](idx, "GetPlayFabIDsFromFacebookIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromFacebookInstantGamesIDsRequest](idx, "GetPlayFabIDsFromFacebookInstantGamesIdsRequest")
	jsonutil.AddType[GetPlayFabIDsFromFacebookInstantGamesIDsResult](idx, "GetPlayFabIDsFromFacebookInstantGamesIdsResult")
	jsonutil.AddType[GetPlayFabIDsFromGameCenterIDsRequest](idx, "GetPlayFabIDsFromGameCenterIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromGameCenterIDsResult](idx, "GetPlayFabIDsFromGameCenterIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromGenericIDsRequest](idx, "GetPlayFabIDsFromGenericIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromGenericIDsResult](idx, "GetPlayFabIDsFromGenericIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromGoogleIDsRequest](idx, "GetPlayFabIDsFromGoogleIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromGoogleIDsResult](idx, "GetPlayFabIDsFromGoogleIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromKongregateIDsRequest](idx, "GetPlayFabIDsFromKongregateIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromKongregateIDsResult](idx, "GetPlayFabIDsFromKongregateIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromNintendoSwitchDeviceIDsRequest](idx, "GetPlayFabIDsFromNintendoSwitchDeviceIdsRequest")
	jsonutil.AddType[GetPlayFabIDsFromNintendoSwitchDeviceIDsResult](idx, "GetPlayFabIDsFromNintendoSwitchDeviceIdsResult")
	jsonutil.AddType[GetPlayFabIDsFromPSNAccountIDsRequest](idx, "GetPlayFabIDsFromPSNAccountIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromPSNAccountIDsResult](idx, "GetPlayFabIDsFromPSNAccountIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromSteamIDsRequest](idx, "GetPlayFabIDsFromSteamIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromSteamIDsResult](idx, "GetPlayFabIDsFromSteamIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromTwitchIDsRequest](idx, "GetPlayFabIDsFromTwitchIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromTwitchIDsResult](idx, "GetPlayFabIDsFromTwitchIDsResult")
	jsonutil.AddType[GetPlayFabIDsFromXboxLiveIDsRequest](idx, "GetPlayFabIDsFromXboxLiveIDsRequest")
	jsonutil.AddType[GetPlayFabIDsFromXboxLiveIDsResult](idx, "GetPlayFabIDsFromXboxLiveIDsResult")
	jsonutil.AddType[GetPlayerCombinedInfoRequest](idx, "GetPlayerCombinedInfoRequest")
	jsonutil.AddType[GetPlayerCombinedInfoRequestParams](idx, "GetPlayerCombinedInfoRequestParams")
	jsonutil.AddType[GetPlayerCombinedInfoResult](idx, "GetPlayerCombinedInfoResult")
	jsonutil.AddType[GetPlayerCombinedInfoResultPayload](idx, "GetPlayerCombinedInfoResultPayload")
	jsonutil.AddType[GetPlayerProfileRequest](idx, "GetPlayerProfileRequest")
	jsonutil.AddType[GetPlayerProfileResult](idx, "GetPlayerProfileResult")
	jsonutil.AddType[GetPlayerSegmentsRequest](idx, "GetPlayerSegmentsRequest")
	jsonutil.AddType[GetPlayerSegmentsResult](idx, "GetPlayerSegmentsResult")
	jsonutil.AddType[GetPlayerStatisticVersionsRequest](idx, "GetPlayerStatisticVersionsRequest")
	jsonutil.AddType[GetPlayerStatisticVersionsResult](idx, "GetPlayerStatisticVersionsResult")
	jsonutil.AddType[GetPlayerStatisticsRequest](idx, "GetPlayerStatisticsRequest")
	jsonutil.AddType[GetPlayerStatisticsResult](idx, "GetPlayerStatisticsResult")
	jsonutil.AddType[GetPlayerTagsRequest](idx, "GetPlayerTagsRequest")
	jsonutil.AddType[GetPlayerTagsResult](idx, "GetPlayerTagsResult")
	jsonutil.AddType[GetPlayerTradesRequest](idx, "GetPlayerTradesRequest")
	jsonutil.AddType[GetPlayerTradesResponse](idx, "GetPlayerTradesResponse")
	jsonutil.AddType[GetPublisherDataRequest](idx, "GetPublisherDataRequest")
	jsonutil.AddType[GetPublisherDataResult](idx, "GetPublisherDataResult")
	jsonutil.AddType[GetPurchaseRequest](idx, "GetPurchaseRequest")
	jsonutil.AddType[GetPurchaseResult](idx, "GetPurchaseResult")
	jsonutil.AddType[GetSegmentResult](idx, "GetSegmentResult")
	jsonutil.AddType[GetSharedGroupDataRequest](idx, "GetSharedGroupDataRequest")
	jsonutil.AddType[GetSharedGroupDataResult](idx, "GetSharedGroupDataResult")
	jsonutil.AddType[GetStoreItemsRequest](idx, "GetStoreItemsRequest")
	jsonutil.AddType[GetStoreItemsResult](idx, "GetStoreItemsResult")
	jsonutil.AddType[GetTimeRequest](idx, "GetTimeRequest")
	jsonutil.AddType[GetTimeResult](idx, "GetTimeResult")
	jsonutil.AddType[GetTitleDataRequest](idx, "GetTitleDataRequest")
	jsonutil.AddType[GetTitleDataResult](idx, "GetTitleDataResult")
	jsonutil.AddType[GetTitleNewsRequest](idx, "GetTitleNewsRequest")
	jsonutil.AddType[GetTitleNewsResult](idx, "GetTitleNewsResult")
	jsonutil.AddType[GetTitlePublicKeyRequest](idx, "GetTitlePublicKeyRequest")
	jsonutil.AddType[GetTitlePublicKeyResult](idx, "GetTitlePublicKeyResult")
	jsonutil.AddType[GetTradeStatusRequest](idx, "GetTradeStatusRequest")
	jsonutil.AddType[GetTradeStatusResponse](idx, "GetTradeStatusResponse")
	jsonutil.AddType[GetUserDataRequest](idx, "GetUserDataRequest")
	jsonutil.AddType[GetUserDataResult](idx, "GetUserDataResult")
	jsonutil.AddType[GetUserInventoryRequest](idx, "GetUserInventoryRequest")
	jsonutil.AddType[GetUserInventoryResult](idx, "GetUserInventoryResult")
	jsonutil.AddType[GooglePlayFabIDPair](idx, "GooglePlayFabIdPair")
	jsonutil.AddType[GrantCharacterToUserRequest](idx, "GrantCharacterToUserRequest")
	jsonutil.AddType[GrantCharacterToUserResult](idx, "GrantCharacterToUserResult")
	jsonutil.AddType[ItemInstance](idx, "ItemInstance")
	jsonutil.AddType[ItemPurchaseRequest](idx, "ItemPurchaseRequest")
	jsonutil.AddType[KongregatePlayFabIDPair](idx, "KongregatePlayFabIdPair")
	jsonutil.AddType[LinkAndroidDeviceIDRequest](idx, "LinkAndroidDeviceIDRequest")
	jsonutil.AddType[LinkAndroidDeviceIDResult](idx, "LinkAndroidDeviceIDResult")
	jsonutil.AddType[LinkAppleRequest](idx, "LinkAppleRequest")
	jsonutil.AddType[LinkCustomIDRequest](idx, "LinkCustomIDRequest")
	jsonutil.AddType[LinkCustomIDResult](idx, "LinkCustomIDResult")
	jsonutil.AddType[LinkFacebookAccountRequest](idx, "LinkFacebookAccountRequest")
	jsonutil.AddType[LinkFacebookAccountResult](idx, "LinkFacebookAccountResult")
	jsonutil.AddType[LinkFacebookInstantGamesIDRequest](idx, "LinkFacebookInstantGamesIdRequest")
	jsonutil.AddType[LinkFacebookInstantGamesIDResult](idx, "LinkFacebookInstantGamesIdResult")
	jsonutil.AddType[LinkGameCenterAccountRequest](idx, "LinkGameCenterAccountRequest")
	jsonutil.AddType[LinkGameCenterAccountResult](idx, "LinkGameCenterAccountResult")
	jsonutil.AddType[LinkGoogleAccountRequest](idx, "LinkGoogleAccountRequest")
	jsonutil.AddType[LinkGoogleAccountResult](idx, "LinkGoogleAccountResult")
	jsonutil.AddType[LinkIOSDeviceIDRequest](idx, "LinkIOSDeviceIDRequest")
	jsonutil.AddType[LinkIOSDeviceIDResult](idx, "LinkIOSDeviceIDResult")
	jsonutil.AddType[LinkKongregateAccountRequest](idx, "LinkKongregateAccountRequest")
	jsonutil.AddType[LinkKongregateAccountResult](idx, "LinkKongregateAccountResult")
	jsonutil.AddType[LinkNintendoServiceAccountRequest](idx, "LinkNintendoServiceAccountRequest")
	jsonutil.AddType[LinkNintendoSwitchDeviceIDRequest](idx, "LinkNintendoSwitchDeviceIdRequest")
	jsonutil.AddType[LinkNintendoSwitchDeviceIDResult](idx, "LinkNintendoSwitchDeviceIdResult")
	jsonutil.AddType[LinkOpenIDConnectRequest](idx, "LinkOpenIdConnectRequest")
	jsonutil.AddType[LinkPSNAccountRequest](idx, "LinkPSNAccountRequest")
	jsonutil.AddType[LinkPSNAccountResult](idx, "LinkPSNAccountResult")
	jsonutil.AddType[LinkSteamAccountRequest](idx, "LinkSteamAccountRequest")
	jsonutil.AddType[LinkSteamAccountResult](idx, "LinkSteamAccountResult")
	jsonutil.AddType[LinkTwitchAccountRequest](idx, "LinkTwitchAccountRequest")
	jsonutil.AddType[LinkTwitchAccountResult](idx, "LinkTwitchAccountResult")
	jsonutil.AddType[LinkXboxAccountRequest](idx, "LinkXboxAccountRequest")
	jsonutil.AddType[LinkXboxAccountResult](idx, "LinkXboxAccountResult")
	jsonutil.AddType[LinkedPlatformAccountModel](idx, "LinkedPlatformAccountModel")
	jsonutil.AddType[ListUsersCharactersRequest](idx, "ListUsersCharactersRequest")
	jsonutil.AddType[ListUsersCharactersResult](idx, "ListUsersCharactersResult")
	jsonutil.AddType[LocationModel](idx, "LocationModel")
	jsonutil.AddType[LogStatement](idx, "LogStatement")
	jsonutil.AddType[LoginResult](idx, "LoginResult")
	jsonutil.AddType[LoginWithAndroidDeviceIDRequest](idx, "LoginWithAndroidDeviceIDRequest")
	jsonutil.AddType[LoginWithAppleRequest](idx, "LoginWithAppleRequest")
	jsonutil.AddType[LoginWithCustomIDRequest](idx, "LoginWithCustomIDRequest")
	jsonutil.AddType[LoginWithEmailAddressRequest](idx, "LoginWithEmailAddressRequest")
	jsonutil.AddType[LoginWithFacebookInstantGamesIDRequest](idx, "LoginWithFacebookInstantGamesIdRequest")
	jsonutil.AddType[LoginWithFacebookRequest](idx, "LoginWithFacebookRequest")
	jsonutil.AddType[LoginWithGameCenterRequest](idx, "LoginWithGameCenterRequest")
	jsonutil.AddType[LoginWithGoogleAccountRequest](idx, "LoginWithGoogleAccountRequest")
	jsonutil.AddType[LoginWithIOSDeviceIDRequest](idx, "LoginWithIOSDeviceIDRequest")
	jsonutil.AddType[LoginWithKongregateRequest](idx, "LoginWithKongregateRequest")
	jsonutil.AddType[LoginWithNintendoServiceAccountRequest](idx, "LoginWithNintendoServiceAccountRequest")
	jsonutil.AddType[LoginWithNintendoSwitchDeviceIDRequest](idx, "LoginWithNintendoSwitchDeviceIdRequest")
	jsonutil.AddType[LoginWithOpenIDConnectRequest](idx, "LoginWithOpenIdConnectRequest")
	jsonutil.AddType[LoginWithPSNRequest](idx, "LoginWithPSNRequest")
	jsonutil.AddType[LoginWithPlayFabRequest](idx, "LoginWithPlayFabRequest")
	jsonutil.AddType[LoginWithSteamRequest](idx, "LoginWithSteamRequest")
	jsonutil.AddType[LoginWithTwitchRequest](idx, "LoginWithTwitchRequest")
	jsonutil.AddType[LoginWithXboxRequest](idx, "LoginWithXboxRequest")
	jsonutil.AddType[MatchmakeRequest](idx, "MatchmakeRequest")
	jsonutil.AddType[MatchmakeResult](idx, "MatchmakeResult")
	jsonutil.AddType[MembershipModel](idx, "MembershipModel")
	jsonutil.AddType[MicrosoftStorePayload](idx, "MicrosoftStorePayload")
	jsonutil.AddType[ModifyUserVirtualCurrencyResult](idx, "ModifyUserVirtualCurrencyResult")
	jsonutil.AddType[NameIdentifier](idx, "NameIdentifier")
	jsonutil.AddType[NintendoSwitchPlayFabIDPair](idx, "NintendoSwitchPlayFabIdPair")
	jsonutil.AddType[OpenTradeRequest](idx, "OpenTradeRequest")
	jsonutil.AddType[OpenTradeResponse](idx, "OpenTradeResponse")
	jsonutil.AddType[PSNAccountPlayFabIDPair](idx, "PSNAccountPlayFabIdPair")
	jsonutil.AddType[PayForPurchaseRequest](idx, "PayForPurchaseRequest")
	jsonutil.AddType[PayForPurchaseResult](idx, "PayForPurchaseResult")
	jsonutil.AddType[PaymentOption](idx, "PaymentOption")
	jsonutil.AddType[PlayerLeaderboardEntry](idx, "PlayerLeaderboardEntry")
	jsonutil.AddType[PlayerProfileModel](idx, "PlayerProfileModel")
	jsonutil.AddType[PlayerProfileViewConstraints](idx, "PlayerProfileViewConstraints")
	jsonutil.AddType[PlayerStatisticVersion](idx, "PlayerStatisticVersion")
	jsonutil.AddType[PurchaseItemRequest](idx, "PurchaseItemRequest")
	jsonutil.AddType[PurchaseItemResult](idx, "PurchaseItemResult")
	jsonutil.AddType[PurchaseReceiptFulfillment](idx, "PurchaseReceiptFulfillment")
	jsonutil.AddType[PushNotificationRegistrationModel](idx, "PushNotificationRegistrationModel")
	jsonutil.AddType[RedeemCouponRequest](idx, "RedeemCouponRequest")
	jsonutil.AddType[RedeemCouponResult](idx, "RedeemCouponResult")
	jsonutil.AddType[RefreshPSNAuthTokenRequest](idx, "RefreshPSNAuthTokenRequest")
	jsonutil.AddType[RegionInfo](idx, "RegionInfo")
	jsonutil.AddType[RegisterForIOSPushNotificationRequest](idx, "RegisterForIOSPushNotificationRequest")
	jsonutil.AddType[RegisterForIOSPushNotificationResult](idx, "RegisterForIOSPushNotificationResult")
	jsonutil.AddType[RegisterPlayFabUserRequest](idx, "RegisterPlayFabUserRequest")
	jsonutil.AddType[RegisterPlayFabUserResult](idx, "RegisterPlayFabUserResult")
	jsonutil.AddType[RemoveContactEmailRequest](idx, "RemoveContactEmailRequest")
	jsonutil.AddType[RemoveContactEmailResult](idx, "RemoveContactEmailResult")
	jsonutil.AddType[RemoveFriendRequest](idx, "RemoveFriendRequest")
	jsonutil.AddType[RemoveFriendResult](idx, "RemoveFriendResult")
	jsonutil.AddType[RemoveGenericIDRequest](idx, "RemoveGenericIDRequest")
	jsonutil.AddType[RemoveGenericIDResult](idx, "RemoveGenericIDResult")
	jsonutil.AddType[RemoveSharedGroupMembersRequest](idx, "RemoveSharedGroupMembersRequest")
	jsonutil.AddType[RemoveSharedGroupMembersResult](idx, "RemoveSharedGroupMembersResult")
	jsonutil.AddType[ReportAdActivityRequest](idx, "ReportAdActivityRequest")
	jsonutil.AddType[ReportAdActivityResult](idx, "ReportAdActivityResult")
	jsonutil.AddType[ReportPlayerClientRequest](idx, "ReportPlayerClientRequest")
	jsonutil.AddType[ReportPlayerClientResult](idx, "ReportPlayerClientResult")
	jsonutil.AddType[RestoreIOSPurchasesRequest](idx, "RestoreIOSPurchasesRequest")
	jsonutil.AddType[RestoreIOSPurchasesResult](idx, "RestoreIOSPurchasesResult")
	jsonutil.AddType[RewardAdActivityRequest](idx, "RewardAdActivityRequest")
	jsonutil.AddType[RewardAdActivityResult](idx, "RewardAdActivityResult")
	jsonutil.AddType[ScriptExecutionError](idx, "ScriptExecutionError")
	jsonutil.AddType[SendAccountRecoveryEmailRequest](idx, "SendAccountRecoveryEmailRequest")
	jsonutil.AddType[SendAccountRecoveryEmailResult](idx, "SendAccountRecoveryEmailResult")
	jsonutil.AddType[SetFriendTagsRequest](idx, "SetFriendTagsRequest")
	jsonutil.AddType[SetFriendTagsResult](idx, "SetFriendTagsResult")
	jsonutil.AddType[SetPlayerSecretRequest](idx, "SetPlayerSecretRequest")
	jsonutil.AddType[SetPlayerSecretResult](idx, "SetPlayerSecretResult")
	jsonutil.AddType[SharedGroupDataRecord](idx, "SharedGroupDataRecord")
	jsonutil.AddType[StartGameRequest](idx, "StartGameRequest")
	jsonutil.AddType[StartGameResult](idx, "StartGameResult")
	jsonutil.AddType[StartPurchaseRequest](idx, "StartPurchaseRequest")
	jsonutil.AddType[StartPurchaseResult](idx, "StartPurchaseResult")
	jsonutil.AddType[StatisticModel](idx, "StatisticModel")
	jsonutil.AddType[StatisticNameVersion](idx, "StatisticNameVersion")
	jsonutil.AddType[StatisticUpdate](idx, "StatisticUpdate")
	jsonutil.AddType[StatisticValue](idx, "StatisticValue")
	jsonutil.AddType[SteamPlayFabIDPair](idx, "SteamPlayFabIdPair")
	jsonutil.AddType[StoreItem](idx, "StoreItem")
	jsonutil.AddType[StoreMarketingModel](idx, "StoreMarketingModel")
	jsonutil.AddType[SubscriptionModel](idx, "SubscriptionModel")
	jsonutil.AddType[SubtractUserVirtualCurrencyRequest](idx, "SubtractUserVirtualCurrencyRequest")
	jsonutil.AddType[TagModel](idx, "TagModel")
	jsonutil.AddType[TitleNewsItem](idx, "TitleNewsItem")
	jsonutil.AddType[TradeInfo](idx, "TradeInfo")
	jsonutil.AddType[TreatmentAssignment](idx, "TreatmentAssignment")
	jsonutil.AddType[TwitchPlayFabIDPair](idx, "TwitchPlayFabIdPair")
	jsonutil.AddType[UnlinkAndroidDeviceIDRequest](idx, "UnlinkAndroidDeviceIDRequest")
	jsonutil.AddType[UnlinkAndroidDeviceIDResult](idx, "UnlinkAndroidDeviceIDResult")
	jsonutil.AddType[UnlinkAppleRequest](idx, "UnlinkAppleRequest")
	jsonutil.AddType[UnlinkCustomIDRequest](idx, "UnlinkCustomIDRequest")
	jsonutil.AddType[UnlinkCustomIDResult](idx, "UnlinkCustomIDResult")
	jsonutil.AddType[UnlinkFacebookAccountRequest](idx, "UnlinkFacebookAccountRequest")
	jsonutil.AddType[UnlinkFacebookAccountResult](idx, "UnlinkFacebookAccountResult")
	jsonutil.AddType[UnlinkFacebookInstantGamesIDRequest](idx, "UnlinkFacebookInstantGamesIdRequest")
	jsonutil.AddType[UnlinkFacebookInstantGamesIDResult](idx, "UnlinkFacebookInstantGamesIdResult")
	jsonutil.AddType[UnlinkGameCenterAccountRequest](idx, "UnlinkGameCenterAccountRequest")
	jsonutil.AddType[UnlinkGameCenterAccountResult](idx, "UnlinkGameCenterAccountResult")
	jsonutil.AddType[UnlinkGoogleAccountRequest](idx, "UnlinkGoogleAccountRequest")
	jsonutil.AddType[UnlinkGoogleAccountResult](idx, "UnlinkGoogleAccountResult")
	jsonutil.AddType[UnlinkIOSDeviceIDRequest](idx, "UnlinkIOSDeviceIDRequest")
	jsonutil.AddType[UnlinkIOSDeviceIDResult](idx, "UnlinkIOSDeviceIDResult")
	jsonutil.AddType[UnlinkKongregateAccountRequest](idx, "UnlinkKongregateAccountRequest")
	jsonutil.AddType[UnlinkKongregateAccountResult](idx, "UnlinkKongregateAccountResult")
	jsonutil.AddType[UnlinkNintendoServiceAccountRequest](idx, "UnlinkNintendoServiceAccountRequest")
	jsonutil.AddType[UnlinkNintendoSwitchDeviceIDRequest](idx, "UnlinkNintendoSwitchDeviceIdRequest")
	jsonutil.AddType[UnlinkNintendoSwitchDeviceIDResult](idx, "UnlinkNintendoSwitchDeviceIdResult")
	jsonutil.AddType[UnlinkOpenIDConnectRequest](idx, "UnlinkOpenIdConnectRequest")
	jsonutil.AddType[UnlinkPSNAccountRequest](idx, "UnlinkPSNAccountRequest")
	jsonutil.AddType[UnlinkPSNAccountResult](idx, "UnlinkPSNAccountResult")
	jsonutil.AddType[UnlinkSteamAccountRequest](idx, "UnlinkSteamAccountRequest")
	jsonutil.AddType[UnlinkSteamAccountResult](idx, "UnlinkSteamAccountResult")
	jsonutil.AddType[UnlinkTwitchAccountRequest](idx, "UnlinkTwitchAccountRequest")
	jsonutil.AddType[UnlinkTwitchAccountResult](idx, "UnlinkTwitchAccountResult")
	jsonutil.AddType[UnlinkXboxAccountRequest](idx, "UnlinkXboxAccountRequest")
	jsonutil.AddType[UnlinkXboxAccountResult](idx, "UnlinkXboxAccountResult")
	jsonutil.AddType[UnlockContainerInstanceRequest](idx, "UnlockContainerInstanceRequest")
	jsonutil.AddType[UnlockContainerItemRequest](idx, "UnlockContainerItemRequest")
	jsonutil.AddType[UnlockContainerItemResult](idx, "UnlockContainerItemResult")
	jsonutil.AddType[UpdateAvatarURLRequest](idx, "UpdateAvatarUrlRequest")
	jsonutil.AddType[UpdateCharacterDataRequest](idx, "UpdateCharacterDataRequest")
	jsonutil.AddType[UpdateCharacterDataResult](idx, "UpdateCharacterDataResult")
	jsonutil.AddType[UpdateCharacterStatisticsRequest](idx, "UpdateCharacterStatisticsRequest")
	jsonutil.AddType[UpdateCharacterStatisticsResult](idx, "UpdateCharacterStatisticsResult")
	jsonutil.AddType[UpdatePlayerStatisticsRequest](idx, "UpdatePlayerStatisticsRequest")
	jsonutil.AddType[UpdatePlayerStatisticsResult](idx, "UpdatePlayerStatisticsResult")
	jsonutil.AddType[UpdateSharedGroupDataRequest](idx, "UpdateSharedGroupDataRequest")
	jsonutil.AddType[UpdateSharedGroupDataResult](idx, "UpdateSharedGroupDataResult")
	jsonutil.AddType[UpdateUserDataRequest](idx, "UpdateUserDataRequest")
	jsonutil.AddType[UpdateUserDataResult](idx, "UpdateUserDataResult")
	jsonutil.AddType[UpdateUserTitleDisplayNameRequest](idx, "UpdateUserTitleDisplayNameRequest")
	jsonutil.AddType[UpdateUserTitleDisplayNameResult](idx, "UpdateUserTitleDisplayNameResult")
	jsonutil.AddType[UserAccountInfo](idx, "UserAccountInfo")
	jsonutil.AddType[UserAndroidDeviceInfo](idx, "UserAndroidDeviceInfo")
	jsonutil.AddType[UserAppleIDInfo](idx, "UserAppleIdInfo")
	jsonutil.AddType[UserCustomIDInfo](idx, "UserCustomIdInfo")
	jsonutil.AddType[UserDataRecord](idx, "UserDataRecord")
	jsonutil.AddType[UserFacebookInfo](idx, "UserFacebookInfo")
	jsonutil.AddType[UserFacebookInstantGamesIDInfo](idx, "UserFacebookInstantGamesIdInfo")
	jsonutil.AddType[UserGameCenterInfo](idx, "UserGameCenterInfo")
	jsonutil.AddType[UserGoogleInfo](idx, "UserGoogleInfo")
	jsonutil.AddType[UserIosDeviceInfo](idx, "UserIosDeviceInfo")
	jsonutil.AddType[UserKongregateInfo](idx, "UserKongregateInfo")
	jsonutil.AddType[UserNintendoSwitchAccountIDInfo](idx, "UserNintendoSwitchAccountIdInfo")
	jsonutil.AddType[UserNintendoSwitchDeviceIDInfo](idx, "UserNintendoSwitchDeviceIdInfo")
	jsonutil.AddType[UserOpenIDInfo](idx, "UserOpenIdInfo")
	jsonutil.AddType[UserPrivateAccountInfo](idx, "UserPrivateAccountInfo")
	jsonutil.AddType[UserPsnInfo](idx, "UserPsnInfo")
	jsonutil.AddType[UserSettings](idx, "UserSettings")
	jsonutil.AddType[UserSteamInfo](idx, "UserSteamInfo")
	jsonutil.AddType[UserTitleInfo](idx, "UserTitleInfo")
	jsonutil.AddType[UserTwitchInfo](idx, "UserTwitchInfo")
	jsonutil.AddType[UserXboxInfo](idx, "UserXboxInfo")
	jsonutil.AddType[ValidateAmazonReceiptRequest](idx, "ValidateAmazonReceiptRequest")
	jsonutil.AddType[ValidateAmazonReceiptResult](idx, "ValidateAmazonReceiptResult")
	jsonutil.AddType[ValidateGooglePlayPurchaseRequest](idx, "ValidateGooglePlayPurchaseRequest")
	jsonutil.AddType[ValidateGooglePlayPurchaseResult](idx, "ValidateGooglePlayPurchaseResult")
	jsonutil.AddType[ValidateIOSReceiptRequest](idx, "ValidateIOSReceiptRequest")
	jsonutil.AddType[ValidateIOSReceiptResult](idx, "ValidateIOSReceiptResult")
	jsonutil.AddType[ValidateWindowsReceiptRequest](idx, "ValidateWindowsReceiptRequest")
	jsonutil.AddType[ValidateWindowsReceiptResult](idx, "ValidateWindowsReceiptResult")
	jsonutil.AddType[ValueToDateModel](idx, "ValueToDateModel")
	jsonutil.AddType[Variable](idx, "Variable")
	jsonutil.AddType[VirtualCurrencyRechargeTime](idx, "VirtualCurrencyRechargeTime")
	jsonutil.AddType[WriteClientCharacterEventRequest](idx, "WriteClientCharacterEventRequest")
	jsonutil.AddType[WriteClientPlayerEventRequest](idx, "WriteClientPlayerEventRequest")
	jsonutil.AddType[WriteEventResponse](idx, "WriteEventResponse")
	jsonutil.AddType[WriteTitleEventRequest](idx, "WriteTitleEventRequest")
	jsonutil.AddType[XboxLiveAccountPlayFabIDPair](idx, "XboxLiveAccountPlayFabIdPair")
	idx.AddEnum("AdActivity", adActivityNames)
	idx.AddEnum("CloudScriptRevisionOption", cloudScriptRevisionOptionNames)
	idx.AddEnum("ContinentCode", continentCodeNames)
	idx.AddEnum("CountryCode", countryCodeNames)
	idx.AddEnum("Currency", currencyNames)
	idx.AddEnum("EmailVerificationStatus", emailVerificationStatusNames)
	idx.AddEnum("GameInstanceState", gameInstanceStateNames)
	idx.AddEnum("LoginIdentityProvider", loginIdentityProviderNames)
	idx.AddEnum("MatchmakeStatus", matchmakeStatusNames)
	idx.AddEnum("PushNotificationPlatform", pushNotificationPlatformNames)
	idx.AddEnum("Region", regionNames)
	idx.AddEnum("SourceType", sourceTypeNames)
	idx.AddEnum("SubscriptionProviderStatus", subscriptionProviderStatusNames)
	idx.AddEnum("TitleActivationStatus", titleActivationStatusNames)
	idx.AddEnum("TradeStatus", tradeStatusNames)
	idx.AddEnum("TransactionStatus", transactionStatusNames)
	idx.AddEnum("UserDataPermission", userDataPermissionNames)
	idx.AddEnum("UserOrigination", userOriginationNames)

	return idx
}
