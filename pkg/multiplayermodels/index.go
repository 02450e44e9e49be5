// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package multiplayermodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "multiplayer"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[AssetReference](idx, "AssetReference")
	jsonutil.AddType[AssetReferenceParams](idx, "AssetReferenceParams")
	jsonutil.AddType[AssetSummary](idx, "AssetSummary")
	jsonutil.AddType[BuildAliasDetailsResponse](idx, "BuildAliasDetailsResponse")
	jsonutil.AddType[BuildAliasParams](idx, "BuildAliasParams")
	jsonutil.AddType[BuildRegion](idx, "BuildRegion")
	jsonutil.AddType[BuildRegionParams](idx, "BuildRegionParams")
	jsonutil.AddType[BuildSelectionCriterion](idx, "BuildSelectionCriterion")
	jsonutil.AddType[BuildSummary](idx, "BuildSummary")
	jsonutil.AddType[CancelAllMatchmakingTicketsForPlayerRequest](idx, "CancelAllMatchmakingTicketsForPlayerRequest")
	jsonutil.AddType[CancelAllMatchmakingTicketsForPlayerResult](idx, "CancelAllMatchmakingTicketsForPlayerResult")
	jsonutil.AddType[CancelAllServerBackfillTicketsForPlayerRequest](idx, "CancelAllServerBackfillTicketsForPlayerRequest")
	jsonutil.AddType[CancelAllServerBackfillTicketsForPlayerResult](idx, "CancelAllServerBackfillTicketsForPlayerResult")
	jsonutil.AddType[CancelMatchmakingTicketRequest](idx, "CancelMatchmakingTicketRequest")
	jsonutil.AddType[CancelMatchmakingTicketResult](idx, "CancelMatchmakingTicketResult")
	jsonutil.AddType[CancelServerBackfillTicketRequest](idx, "CancelServerBackfillTicketRequest")
	jsonutil.AddType[CancelServerBackfillTicketResult](idx, "CancelServerBackfillTicketResult")
	jsonutil.AddType[Certificate](idx, "Certificate")
	jsonutil.AddType[CertificateSummary](idx, "CertificateSummary")
	jsonutil.AddType[ConnectedPlayer](idx, "ConnectedPlayer")
	jsonutil.AddType[ContainerImageReference](idx, "ContainerImageReference")
	jsonutil.AddType[CoreCapacity](idx, "CoreCapacity")
	jsonutil.AddType[CoreCapacityChange](idx, "CoreCapacityChange")
	jsonutil.AddType[CreateBuildAliasRequest](idx, "CreateBuildAliasRequest")
	jsonutil.AddType[CreateBuildWithCustomContainerRequest](idx, "CreateBuildWithCustomContainerRequest")
	jsonutil.AddType[CreateBuildWithCustomContainerResponse](idx, "CreateBuildWithCustomContainerResponse")
	jsonutil.AddType[CreateBuildWithManagedContainerRequest](idx, "CreateBuildWithManagedContainerRequest")
	jsonutil.AddType[CreateBuildWithManagedContainerResponse](idx, "CreateBuildWithManagedContainerResponse")
	jsonutil.AddType[CreateBuildWithProcessBasedServerRequest](idx, "CreateBuildWithProcessBasedServerRequest")
	jsonutil.AddType[CreateBuildWithProcessBasedServerResponse](idx, "CreateBuildWithProcessBasedServerResponse")
	jsonutil.AddType[CreateMatchmakingTicketRequest](idx, "CreateMatchmakingTicketRequest")
	jsonutil.AddType[CreateMatchmakingTicketResult](idx, "CreateMatchmakingTicketResult")
	jsonutil.AddType[CreateRemoteUserRequest](idx, "CreateRemoteUserRequest")
	jsonutil.AddType[CreateRemoteUserResponse](idx, "CreateRemoteUserResponse")
	jsonutil.AddType[CreateServerBackfillTicketRequest](idx, "CreateServerBackfillTicketRequest")
	jsonutil.AddType[CreateServerBackfillTicketResult](idx, "CreateServerBackfillTicketResult")
	jsonutil.AddType[CreateServerMatchmakingTicketRequest](idx, "CreateServerMatchmakingTicketRequest")
	jsonutil.AddType[CreateTitleMultiplayerServersQuotaChangeRequest](idx, "CreateTitleMultiplayerServersQuotaChangeRequest")
	jsonutil.AddType[CreateTitleMultiplayerServersQuotaChangeResponse](idx, "CreateTitleMultiplayerServersQuotaChangeResponse")
	jsonutil.AddType[CurrentServerStats](idx, "CurrentServerStats")
	jsonutil.AddType[DeleteAssetRequest](idx, "DeleteAssetRequest")
	jsonutil.AddType[DeleteBuildAliasRequest](idx, "DeleteBuildAliasRequest")
	jsonutil.AddType[DeleteBuildRegionRequest](idx, "DeleteBuildRegionRequest")
	jsonutil.AddType[DeleteBuildRequest](idx, "DeleteBuildRequest")
	jsonutil.AddType[DeleteCertificateRequest](idx, "DeleteCertificateRequest")
	jsonutil.AddType[DeleteContainerImageRequest](idx, "DeleteContainerImageRequest")
	jsonutil.AddType[DeleteRemoteUserRequest](idx, "DeleteRemoteUserRequest")
	jsonutil.AddType[DynamicStandbySettings](idx, "DynamicStandbySettings")
	jsonutil.AddType[DynamicStandbyThreshold](idx, "DynamicStandbyThreshold")
	jsonutil.AddType[EmptyResponse](idx, "EmptyResponse")
	jsonutil.AddType[EnableMultiplayerServersForTitleRequest](idx, "EnableMultiplayerServersForTitleRequest")
	jsonutil.AddType[EnableMultiplayerServersForTitleResponse](idx, "EnableMultiplayerServersForTitleResponse")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[GameCertificateReference](idx, "GameCertificateReference")
	jsonutil.AddType[GameCertificateReferenceParams](idx, "GameCertificateReferenceParams")
	jsonutil.AddType[GetAssetDownloadURLRequest](idx, "GetAssetDownloadUrlRequest")
	jsonutil.AddType[GetAssetDownloadURLResponse](idx, "GetAssetDownloadUrlResponse")
	jsonutil.AddType[GetAssetUploadURLRequest](idx, "GetAssetUploadUrlRequest")
	jsonutil.AddType[GetAssetUploadURLResponse](idx, "GetAssetUploadUrlResponse")
	jsonutil.AddType[GetBuildAliasRequest](idx, "GetBuildAliasRequest")
	jsonutil.AddType[GetBuildRequest](idx, "GetBuildRequest")
	jsonutil.AddType[GetBuildResponse](idx, "GetBuildResponse")
	jsonutil.AddType[GetContainerRegistryCredentialsRequest](idx, "GetContainerRegistryCredentialsRequest")
	jsonutil.AddType[GetContainerRegistryCredentialsResponse](idx, "GetContainerRegistryCredentialsResponse")
	jsonutil.AddType[GetMatchRequest](idx, "GetMatchRequest")
	jsonutil.AddType[GetMatchResult](idx, "GetMatchResult")
	jsonutil.AddType[GetMatchmakingTicketRequest](idx, "GetMatchmakingTicketRequest")
	jsonutil.AddType[GetMatchmakingTicketResult](idx, "GetMatchmakingTicketResult")
	jsonutil.AddType[GetMultiplayerServerDetailsRequest](idx, "GetMultiplayerServerDetailsRequest")
	jsonutil.AddType[GetMultiplayerServerDetailsResponse](idx, "GetMultiplayerServerDetailsResponse")
	jsonutil.AddType[GetMultiplayerServerLogsRequest](idx, "GetMultiplayerServerLogsRequest")
	jsonutil.AddType[GetMultiplayerServerLogsResponse](idx, "GetMultiplayerServerLogsResponse")
	jsonutil.AddType[GetMultiplayerSessionLogsBySessionIDRequest](idx, "GetMultiplayerSessionLogsBySessionIdRequest")
	jsonutil.AddType[GetQueueStatisticsRequest](idx, "GetQueueStatisticsRequest")
	jsonutil.AddType[GetQueueStatisticsResult](idx, "GetQueueStatisticsResult")
	jsonutil.AddType[GetRemoteLoginEndpointRequest](idx, "GetRemoteLoginEndpointRequest")
	jsonutil.AddType[GetRemoteLoginEndpointResponse](idx, "GetRemoteLoginEndpointResponse")
	jsonutil.AddType[GetServerBackfillTicketRequest](idx, "GetServerBackfillTicketRequest")
	jsonutil.AddType[GetServerBackfillTicketResult](idx, "GetServerBackfillTicketResult")
	jsonutil.AddType[GetTitleEnabledForMultiplayerServersStatusRequest](idx, "GetTitleEnabledForMultiplayerServersStatusRequest")
	jsonutil.AddType[GetTitleEnabledForMultiplayerServersStatusResponse](idx, "GetTitleEnabledForMultiplayerServersStatusResponse")
	jsonutil.AddType[GetTitleMultiplayerServersQuotaChangeRequest](idx, "GetTitleMultiplayerServersQuotaChangeRequest")
	jsonutil.AddType[GetTitleMultiplayerServersQuotaChangeResponse](idx, "GetTitleMultiplayerServersQuotaChangeResponse")
	jsonutil.AddType[GetTitleMultiplayerServersQuotasRequest](idx, "GetTitleMultiplayerServersQuotasRequest")
	jsonutil.AddType[GetTitleMultiplayerServersQuotasResponse](idx, "GetTitleMultiplayerServersQuotasResponse")
	jsonutil.AddType[InstrumentationConfiguration](idx, "InstrumentationConfiguration")
	jsonutil.AddType[JoinMatchmakingTicketRequest](idx, "JoinMatchmakingTicketRequest")
	jsonutil.AddType[JoinMatchmakingTicketResult](idx, "JoinMatchmakingTicketResult")
	jsonutil.AddType[LinuxInstrumentationConfiguration](idx, "LinuxInstrumentationConfiguration")
	jsonutil.AddType[ListAssetSummariesRequest](idx, "ListAssetSummariesRequest")
	jsonutil.AddType[ListAssetSummariesResponse](idx, "ListAssetSummariesResponse")
	jsonutil.AddType[ListBuildAliasesRequest](idx, "ListBuildAliasesRequest")
	jsonutil.AddType[ListBuildAliasesResponse](idx, "ListBuildAliasesResponse")
	jsonutil.AddType[ListBuildSummariesRequest](idx, "ListBuildSummariesRequest")
	jsonutil.AddType[ListBuildSummariesResponse](idx, "ListBuildSummariesResponse")
	jsonutil.AddType[ListCertificateSummariesRequest](idx, "ListCertificateSummariesRequest")
	jsonutil.AddType[ListCertificateSummariesResponse](idx, "ListCertificateSummariesResponse")
	jsonutil.AddType[ListContainerImageTagsRequest](idx, "ListContainerImageTagsRequest")
	jsonutil.AddType[ListContainerImageTagsResponse](idx, "ListContainerImageTagsResponse")
	jsonutil.AddType[ListContainerImagesRequest](idx, "ListContainerImagesRequest")
	jsonutil.AddType[ListContainerImagesResponse](idx, "ListContainerImagesResponse")
	jsonutil.AddType[ListMatchmakingTicketsForPlayerRequest](idx, "ListMatchmakingTicketsForPlayerRequest")
	jsonutil.AddType[ListMatchmakingTicketsForPlayerResult](idx, "ListMatchmakingTicketsForPlayerResult")
	jsonutil.AddType[ListMultiplayerServersRequest](idx, "ListMultiplayerServersRequest")
	jsonutil.AddType[ListMultiplayerServersResponse](idx, "ListMultiplayerServersResponse")
	jsonutil.AddType[ListPartyQosServersRequest](idx, "ListPartyQosServersRequest")
	jsonutil.AddType[ListPartyQosServersResponse](idx, "ListPartyQosServersResponse")
	jsonutil.AddType[ListQosServersForTitleRequest](idx, "ListQosServersForTitleRequest")
	jsonutil.AddType[ListQosServersForTitleResponse](idx, "ListQosServersForTitleResponse")
	jsonutil.AddType[ListServerBackfillTicketsForPlayerRequest](idx, "ListServerBackfillTicketsForPlayerRequest")
	jsonutil.AddType[ListServerBackfillTicketsForPlayerResult](idx, "ListServerBackfillTicketsForPlayerResult")
	jsonutil.AddType[ListTitleMultiplayerServersQuotaChangesRequest](idx, "ListTitleMultiplayerServersQuotaChangesRequest")
	jsonutil.AddType[ListTitleMultiplayerServersQuotaChangesResponse](idx, "ListTitleMultiplayerServersQuotaChangesResponse")
	jsonutil.AddType[ListVirtualMachineSummariesRequest](idx, "ListVirtualMachineSummariesRequest")
	jsonutil.AddType[ListVirtualMachineSummariesResponse](idx, "ListVirtualMachineSummariesResponse")
	jsonutil.AddType[MatchmakingPlayer](idx, "MatchmakingPlayer")
	jsonutil.AddType[MatchmakingPlayerAttributes](idx, "MatchmakingPlayerAttributes")
	jsonutil.AddType[MatchmakingPlayerWithTeamAssignment](idx, "MatchmakingPlayerWithTeamAssignment")
	jsonutil.AddType[MultiplayerServerSummary](idx, "MultiplayerServerSummary")
	jsonutil.AddType[Port](idx, "Port")
	jsonutil.AddType[QosServer](idx, "QosServer")
	jsonutil.AddType[QuotaChange](idx, "QuotaChange")
	jsonutil.AddType[RequestMultiplayerServerRequest](idx, "RequestMultiplayerServerRequest")
	jsonutil.AddType[RequestMultiplayerServerResponse](idx, "RequestMultiplayerServerResponse")
	jsonutil.AddType[RolloverContainerRegistryCredentialsRequest](idx, "RolloverContainerRegistryCredentialsRequest")
	jsonutil.AddType[RolloverContainerRegistryCredentialsResponse](idx, "RolloverContainerRegistryCredentialsResponse")
	jsonutil.AddType[Schedule](idx, "Schedule")
	jsonutil.AddType[ScheduledStandbySettings](idx, "ScheduledStandbySettings")
	jsonutil.AddType[ServerDetails](idx, "ServerDetails")
	jsonutil.AddType[ShutdownMultiplayerServerRequest](idx, "ShutdownMultiplayerServerRequest")
	jsonutil.AddType[Statistics](idx, "Statistics")
	jsonutil.AddType[TitleMultiplayerServersQuotas](idx, "TitleMultiplayerServersQuotas")
	jsonutil.AddType[UntagContainerImageRequest](idx, "UntagContainerImageRequest")
	jsonutil.AddType[UpdateBuildAliasRequest](idx, "UpdateBuildAliasRequest")
	jsonutil.AddType[UpdateBuildNameRequest](idx, "UpdateBuildNameRequest")
	jsonutil.AddType[UpdateBuildRegionRequest](idx, "UpdateBuildRegionRequest")
	jsonutil.AddType[UpdateBuildRegionsRequest](idx, "UpdateBuildRegionsRequest")
	jsonutil.AddType[UploadCertificateRequest](idx, "UploadCertificateRequest")
	jsonutil.AddType[VirtualMachineSummary](idx, "VirtualMachineSummary")
	idx.AddEnum("AzureRegion", azureRegionNames)
	idx.AddEnum("AzureVmFamily", azureVMFamilyNames)
	idx.AddEnum("AzureVmSize", azureVMSizeNames)
	idx.AddEnum("CancellationReason", cancellationReasonNames)
	idx.AddEnum("ContainerFlavor", containerFlavorNames)
	idx.AddEnum("OsPlatform", osPlatformNames)
	idx.AddEnum("ProtocolType", protocolTypeNames)
	idx.AddEnum("ServerType", serverTypeNames)
	idx.AddEnum("TitleMultiplayerServerEnabledStatus", titleMultiplayerServerEnabledStatusNames)

	return idx
}
