// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package multiplayermodels

import "playfab-models-go/pkg/jsonutil"

type AssetReference struct {
	FileName  string `json:"FileName,omitempty"`
	MountPath string `json:"MountPath,omitempty"`
}

type AssetReferenceParams struct {
	FileName  string `json:"FileName,omitempty"`
	MountPath string `json:"MountPath,omitempty"`
}

type AssetSummary struct {
	FileName string            `json:"FileName,omitempty"`
	Metadata map[string]string `json:"Metadata,omitempty"`
}

type BuildAliasDetailsResponse struct {
	AliasID                string                    `json:"AliasId,omitempty"`
	AliasName              string                    `json:"AliasName,omitempty"`
	BuildSelectionCriteria []BuildSelectionCriterion `json:"BuildSelectionCriteria,omitempty"`
}

type BuildAliasParams struct {
	AliasID string `json:"AliasId,omitempty"`
}

type BuildRegion struct {
	CurrentServerStats          *CurrentServerStats       `json:"CurrentServerStats,omitempty"`
	DynamicStandbySettings      *DynamicStandbySettings   `json:"DynamicStandbySettings,omitempty"`
	MaxServers                  int32                     `json:"MaxServers"`
	MultiplayerServerCountPerVM *int32                    `json:"MultiplayerServerCountPerVm,omitempty"`
	Region                      string                    `json:"Region,omitempty"`
	ScheduledStandbySettings    *ScheduledStandbySettings `json:"ScheduledStandbySettings,omitempty"`
	StandbyServers              int32                     `json:"StandbyServers"`
	Status                      string                    `json:"Status,omitempty"`
	VMSize                      *AzureVMSize              `json:"VmSize,omitempty"`
}

// BuildRegionParams configures the servers of a build in one region.
type BuildRegionParams struct {
	DynamicStandbySettings      *DynamicStandbySettings   `json:"DynamicStandbySettings,omitempty"`
	MaxServers                  int32                     `json:"MaxServers"`
	MultiplayerServerCountPerVM *int32                    `json:"MultiplayerServerCountPerVm,omitempty"`
	Region                      string                    `json:"Region,omitempty"`
	ScheduledStandbySettings    *ScheduledStandbySettings `json:"ScheduledStandbySettings,omitempty"`
	StandbyServers              int32                     `json:"StandbyServers"`
	VMSize                      *AzureVMSize              `json:"VmSize,omitempty"`
}

type BuildSelectionCriterion struct {
	BuildWeightDistribution map[string]uint32 `json:"BuildWeightDistribution,omitempty"`
}

type BuildSummary struct {
	BuildID              string            `json:"BuildId,omitempty"`
	BuildName            string            `json:"BuildName,omitempty"`
	CreationTime         *jsonutil.Time    `json:"CreationTime,omitempty"`
	Metadata             map[string]string `json:"Metadata,omitempty"`
	RegionConfigurations []BuildRegion     `json:"RegionConfigurations,omitempty"`
}

type CancelAllMatchmakingTicketsForPlayerRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
	QueueName  string            `json:"QueueName,omitempty"`
}

type CancelAllMatchmakingTicketsForPlayerResult struct{}

type CancelAllServerBackfillTicketsForPlayerRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	QueueName  string            `json:"QueueName,omitempty"`
}

type CancelAllServerBackfillTicketsForPlayerResult struct{}

type CancelMatchmakingTicketRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	QueueName  string            `json:"QueueName,omitempty"`
	TicketID   string            `json:"TicketId,omitempty"`
}

type CancelMatchmakingTicketResult struct{}

type CancelServerBackfillTicketRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	QueueName  string            `json:"QueueName,omitempty"`
	TicketID   string            `json:"TicketId,omitempty"`
}

type CancelServerBackfillTicketResult struct{}

type Certificate struct {
	Base64EncodedValue string `json:"Base64EncodedValue,omitempty"`
	Name               string `json:"Name,omitempty"`
	Password           string `json:"Password,omitempty"`
}

type CertificateSummary struct {
	Name       string `json:"Name,omitempty"`
	Thumbprint string `json:"Thumbprint,omitempty"`
}

type ConnectedPlayer struct {
	PlayerID string `json:"PlayerId,omitempty"`
}

type ContainerImageReference struct {
	ImageName string `json:"ImageName,omitempty"`
	Tag       string `json:"Tag,omitempty"`
}

type CoreCapacity struct {
	Available int32          `json:"Available"`
	Region    string         `json:"Region,omitempty"`
	Total     int32          `json:"Total"`
	VMFamily  *AzureVMFamily `json:"VmFamily,omitempty"`
}

type CoreCapacityChange struct {
	NewCoreLimit int32         `json:"NewCoreLimit"`
	Region       string        `json:"Region,omitempty"`
	VMFamily     AzureVMFamily `json:"VmFamily,omitempty"`
}

type CreateBuildAliasRequest struct {
	AliasName              string                    `json:"AliasName,omitempty"`
	BuildSelectionCriteria []BuildSelectionCriterion `json:"BuildSelectionCriteria,omitempty"`
	CustomTags             map[string]string         `json:"CustomTags,omitempty"`
}

type CreateBuildWithCustomContainerRequest struct {
	AreAssetsReadonly                 *bool                              `json:"AreAssetsReadonly,omitempty"`
	BuildName                         string                             `json:"BuildName,omitempty"`
	ContainerFlavor                   *ContainerFlavor                   `json:"ContainerFlavor,omitempty"`
	ContainerImageReference           *ContainerImageReference           `json:"ContainerImageReference,omitempty"`
	ContainerRunCommand               string                             `json:"ContainerRunCommand,omitempty"`
	CustomTags                        map[string]string                  `json:"CustomTags,omitempty"`
	GameAssetReferences               []AssetReferenceParams             `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences         []GameCertificateReferenceParams   `json:"GameCertificateReferences,omitempty"`
	LinuxInstrumentationConfiguration *LinuxInstrumentationConfiguration `json:"LinuxInstrumentationConfiguration,omitempty"`
	Metadata                          map[string]string                  `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM       int32                              `json:"MultiplayerServerCountPerVm"`
	Ports                             []Port                             `json:"Ports,omitempty"`
	RegionConfigurations              []BuildRegionParams                `json:"RegionConfigurations,omitempty"`
	UseStreamingForAssetDownloads     *bool                              `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                            *AzureVMSize                       `json:"VmSize,omitempty"`
}

type CreateBuildWithCustomContainerResponse struct {
	AreAssetsReadonly                 *bool                              `json:"AreAssetsReadonly,omitempty"`
	BuildID                           string                             `json:"BuildId,omitempty"`
	BuildName                         string                             `json:"BuildName,omitempty"`
	ContainerFlavor                   *ContainerFlavor                   `json:"ContainerFlavor,omitempty"`
	ContainerRunCommand               string                             `json:"ContainerRunCommand,omitempty"`
	CreationTime                      *jsonutil.Time                     `json:"CreationTime,omitempty"`
	CustomGameContainerImage          *ContainerImageReference           `json:"CustomGameContainerImage,omitempty"`
	GameAssetReferences               []AssetReference                   `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences         []GameCertificateReference         `json:"GameCertificateReferences,omitempty"`
	LinuxInstrumentationConfiguration *LinuxInstrumentationConfiguration `json:"LinuxInstrumentationConfiguration,omitempty"`
	Metadata                          map[string]string                  `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM       int32                              `json:"MultiplayerServerCountPerVm"`
	OsPlatform                        string                             `json:"OsPlatform,omitempty"`
	Ports                             []Port                             `json:"Ports,omitempty"`
	RegionConfigurations              []BuildRegion                      `json:"RegionConfigurations,omitempty"`
	ServerType                        string                             `json:"ServerType,omitempty"`
	UseStreamingForAssetDownloads     *bool                              `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                            *AzureVMSize                       `json:"VmSize,omitempty"`
}

type CreateBuildWithManagedContainerRequest struct {
	AreAssetsReadonly             *bool                            `json:"AreAssetsReadonly,omitempty"`
	BuildName                     string                           `json:"BuildName,omitempty"`
	ContainerFlavor               *ContainerFlavor                 `json:"ContainerFlavor,omitempty"`
	CustomTags                    map[string]string                `json:"CustomTags,omitempty"`
	GameAssetReferences           []AssetReferenceParams           `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences     []GameCertificateReferenceParams `json:"GameCertificateReferences,omitempty"`
	GameWorkingDirectory          string                           `json:"GameWorkingDirectory,omitempty"`
	InstrumentationConfiguration  *InstrumentationConfiguration    `json:"InstrumentationConfiguration,omitempty"`
	Metadata                      map[string]string                `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM   int32                            `json:"MultiplayerServerCountPerVm"`
	Ports                         []Port                           `json:"Ports,omitempty"`
	RegionConfigurations          []BuildRegionParams              `json:"RegionConfigurations,omitempty"`
	StartMultiplayerServerCommand string                           `json:"StartMultiplayerServerCommand,omitempty"`
	UseStreamingForAssetDownloads *bool                            `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                        *AzureVMSize                     `json:"VmSize,omitempty"`
}

type CreateBuildWithManagedContainerResponse struct {
	AreAssetsReadonly             *bool                         `json:"AreAssetsReadonly,omitempty"`
	BuildID                       string                        `json:"BuildId,omitempty"`
	BuildName                     string                        `json:"BuildName,omitempty"`
	ContainerFlavor               *ContainerFlavor              `json:"ContainerFlavor,omitempty"`
	CreationTime                  *jsonutil.Time                `json:"CreationTime,omitempty"`
	GameAssetReferences           []AssetReference              `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences     []GameCertificateReference    `json:"GameCertificateReferences,omitempty"`
	GameWorkingDirectory          string                        `json:"GameWorkingDirectory,omitempty"`
	InstrumentationConfiguration  *InstrumentationConfiguration `json:"InstrumentationConfiguration,omitempty"`
	Metadata                      map[string]string             `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM   int32                         `json:"MultiplayerServerCountPerVm"`
	OsPlatform                    string                        `json:"OsPlatform,omitempty"`
	Ports                         []Port                        `json:"Ports,omitempty"`
	RegionConfigurations          []BuildRegion                 `json:"RegionConfigurations,omitempty"`
	ServerType                    string                        `json:"ServerType,omitempty"`
	StartMultiplayerServerCommand string                        `json:"StartMultiplayerServerCommand,omitempty"`
	UseStreamingForAssetDownloads *bool                         `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                        *AzureVMSize                  `json:"VmSize,omitempty"`
}

type CreateBuildWithProcessBasedServerRequest struct {
	AreAssetsReadonly             *bool                            `json:"AreAssetsReadonly,omitempty"`
	BuildName                     string                           `json:"BuildName,omitempty"`
	CustomTags                    map[string]string                `json:"CustomTags,omitempty"`
	GameAssetReferences           []AssetReferenceParams           `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences     []GameCertificateReferenceParams `json:"GameCertificateReferences,omitempty"`
	GameWorkingDirectory          string                           `json:"GameWorkingDirectory,omitempty"`
	InstrumentationConfiguration  *InstrumentationConfiguration    `json:"InstrumentationConfiguration,omitempty"`
	IsOSPreview                   *bool                            `json:"IsOSPreview,omitempty"`
	Metadata                      map[string]string                `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM   int32                            `json:"MultiplayerServerCountPerVm"`
	OsPlatform                    string                           `json:"OsPlatform,omitempty"`
	Ports                         []Port                           `json:"Ports,omitempty"`
	RegionConfigurations          []BuildRegionParams              `json:"RegionConfigurations,omitempty"`
	StartMultiplayerServerCommand string                           `json:"StartMultiplayerServerCommand,omitempty"`
	UseStreamingForAssetDownloads *bool                            `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                        *AzureVMSize                     `json:"VmSize,omitempty"`
}

type CreateBuildWithProcessBasedServerResponse struct {
	AreAssetsReadonly             *bool                         `json:"AreAssetsReadonly,omitempty"`
	BuildID                       string                        `json:"BuildId,omitempty"`
	BuildName                     string                        `json:"BuildName,omitempty"`
	ContainerFlavor               *ContainerFlavor              `json:"ContainerFlavor,omitempty"`
	CreationTime                  *jsonutil.Time                `json:"CreationTime,omitempty"`
	GameAssetReferences           []AssetReference              `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences     []GameCertificateReference    `json:"GameCertificateReferences,omitempty"`
	GameWorkingDirectory          string                        `json:"GameWorkingDirectory,omitempty"`
	InstrumentationConfiguration  *InstrumentationConfiguration `json:"InstrumentationConfiguration,omitempty"`
	IsOSPreview                   *bool                         `json:"IsOSPreview,omitempty"`
	Metadata                      map[string]string             `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM   int32                         `json:"MultiplayerServerCountPerVm"`
	OsPlatform                    string                        `json:"OsPlatform,omitempty"`
	Ports                         []Port                        `json:"Ports,omitempty"`
	RegionConfigurations          []BuildRegion                 `json:"RegionConfigurations,omitempty"`
	ServerType                    string                        `json:"ServerType,omitempty"`
	StartMultiplayerServerCommand string                        `json:"StartMultiplayerServerCommand,omitempty"`
	UseStreamingForAssetDownloads *bool                         `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                        *AzureVMSize                  `json:"VmSize,omitempty"`
}

type CreateMatchmakingTicketRequest struct {
	Creator            MatchmakingPlayer `json:"Creator"`
	CustomTags         map[string]string `json:"CustomTags,omitempty"`
	GiveUpAfterSeconds int32             `json:"GiveUpAfterSeconds"`
	MembersToMatchWith []EntityKey       `json:"MembersToMatchWith,omitempty"`
	QueueName          string            `json:"QueueName,omitempty"`
}

type CreateMatchmakingTicketResult struct {
	TicketID string `json:"TicketId,omitempty"`
}

type CreateRemoteUserRequest struct {
	BuildID        string            `json:"BuildId,omitempty"`
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	ExpirationTime *jsonutil.Time    `json:"ExpirationTime,omitempty"`
	Region         string            `json:"Region,omitempty"`
	Username       string            `json:"Username,omitempty"`
	VMID           string            `json:"VmId,omitempty"`
}

type CreateRemoteUserResponse struct {
	ExpirationTime *jsonutil.Time `json:"ExpirationTime,omitempty"`
	Password       string         `json:"Password,omitempty"`
	Username       string         `json:"Username,omitempty"`
}

type CreateServerBackfillTicketRequest struct {
	CustomTags         map[string]string                     `json:"CustomTags,omitempty"`
	GiveUpAfterSeconds int32                                 `json:"GiveUpAfterSeconds"`
	Members            []MatchmakingPlayerWithTeamAssignment `json:"Members,omitempty"`
	QueueName          string                                `json:"QueueName,omitempty"`
	ServerDetails      *ServerDetails                        `json:"ServerDetails,omitempty"`
}

type CreateServerBackfillTicketResult struct {
	TicketID string `json:"TicketId,omitempty"`
}

type CreateServerMatchmakingTicketRequest struct {
	CustomTags         map[string]string   `json:"CustomTags,omitempty"`
	GiveUpAfterSeconds int32               `json:"GiveUpAfterSeconds"`
	Members            []MatchmakingPlayer `json:"Members,omitempty"`
	QueueName          string              `json:"QueueName,omitempty"`
}

type CreateTitleMultiplayerServersQuotaChangeRequest struct {
	ChangeDescription string               `json:"ChangeDescription,omitempty"`
	Changes           []CoreCapacityChange `json:"Changes,omitempty"`
	ContactEmail      string               `json:"ContactEmail,omitempty"`
	CustomTags        map[string]string    `json:"CustomTags,omitempty"`
	Notes             string               `json:"Notes,omitempty"`
	StartDate         *jsonutil.Time       `json:"StartDate,omitempty"`
}

type CreateTitleMultiplayerServersQuotaChangeResponse struct {
	RequestID   string `json:"RequestId,omitempty"`
	WasApproved bool   `json:"WasApproved"`
}

type CurrentServerStats struct {
	Active     int32 `json:"Active"`
	Propping   int32 `json:"Propping"`
	StandingBy int32 `json:"StandingBy"`
	Total      int32 `json:"Total"`
}

type DeleteAssetRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	FileName   string            `json:"FileName,omitempty"`
}

type DeleteBuildAliasRequest struct {
	AliasID    string            `json:"AliasId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type DeleteBuildRegionRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Region     string            `json:"Region,omitempty"`
}

type DeleteBuildRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type DeleteCertificateRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Name       string            `json:"Name,omitempty"`
}

type DeleteContainerImageRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	ImageName  string            `json:"ImageName,omitempty"`
}

type DeleteRemoteUserRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Region     string            `json:"Region,omitempty"`
	Username   string            `json:"Username,omitempty"`
	VMID       string            `json:"VmId,omitempty"`
}

type DynamicStandbySettings struct {
	DynamicFloorMultiplierThresholds []DynamicStandbyThreshold `json:"DynamicFloorMultiplierThresholds,omitempty"`
	IsEnabled                        bool                      `json:"IsEnabled"`
	RampDownSeconds                  *int32                    `json:"RampDownSeconds,omitempty"`
}

type DynamicStandbyThreshold struct {
	Multiplier                 float64 `json:"Multiplier"`
	TriggerThresholdPercentage float64 `json:"TriggerThresholdPercentage"`
}

type EmptyResponse struct{}

type EnableMultiplayerServersForTitleRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type EnableMultiplayerServersForTitleResponse struct {
	Status *TitleMultiplayerServerEnabledStatus `json:"Status,omitempty"`
}

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

type GameCertificateReference struct {
	GsdkAlias string `json:"GsdkAlias,omitempty"`
	Name      string `json:"Name,omitempty"`
}

type GameCertificateReferenceParams struct {
	GsdkAlias string `json:"GsdkAlias,omitempty"`
	Name      string `json:"Name,omitempty"`
}

type GetAssetDownloadURLRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	FileName   string            `json:"FileName,omitempty"`
}

type GetAssetDownloadURLResponse struct {
	AssetDownloadURL string `json:"AssetDownloadUrl,omitempty"`
	FileName         string `json:"FileName,omitempty"`
}

type GetAssetUploadURLRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	FileName   string            `json:"FileName,omitempty"`
}

type GetAssetUploadURLResponse struct {
	AssetUploadURL string `json:"AssetUploadUrl,omitempty"`
	FileName       string `json:"FileName,omitempty"`
}

type GetBuildAliasRequest struct {
	AliasID    string            `json:"AliasId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetBuildRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetBuildResponse struct {
	AreAssetsReadonly             *bool                         `json:"AreAssetsReadonly,omitempty"`
	BuildID                       string                        `json:"BuildId,omitempty"`
	BuildName                     string                        `json:"BuildName,omitempty"`
	BuildStatus                   string                        `json:"BuildStatus,omitempty"`
	ContainerFlavor               *ContainerFlavor              `json:"ContainerFlavor,omitempty"`
	ContainerRunCommand           string                        `json:"ContainerRunCommand,omitempty"`
	CreationTime                  *jsonutil.Time                `json:"CreationTime,omitempty"`
	CustomGameContainerImage      *ContainerImageReference      `json:"CustomGameContainerImage,omitempty"`
	GameAssetReferences           []AssetReference              `json:"GameAssetReferences,omitempty"`
	GameCertificateReferences     []GameCertificateReference    `json:"GameCertificateReferences,omitempty"`
	InstrumentationConfiguration  *InstrumentationConfiguration `json:"InstrumentationConfiguration,omitempty"`
	Metadata                      map[string]string             `json:"Metadata,omitempty"`
	MultiplayerServerCountPerVM   int32                         `json:"MultiplayerServerCountPerVm"`
	OsPlatform                    string                        `json:"OsPlatform,omitempty"`
	Ports                         []Port                        `json:"Ports,omitempty"`
	RegionConfigurations          []BuildRegion                 `json:"RegionConfigurations,omitempty"`
	ServerType                    string                        `json:"ServerType,omitempty"`
	StartMultiplayerServerCommand string                        `json:"StartMultiplayerServerCommand,omitempty"`
	UseStreamingForAssetDownloads *bool                         `json:"UseStreamingForAssetDownloads,omitempty"`
	VMSize                        *AzureVMSize                  `json:"VmSize,omitempty"`
}

type GetContainerRegistryCredentialsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetContainerRegistryCredentialsResponse struct {
	DnsName  string `json:"DnsName,omitempty"`
	Password string `json:"Password,omitempty"`
	Username string `json:"Username,omitempty"`
}

type GetMatchRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	EscapeObject           bool              `json:"EscapeObject"`
	MatchID                string            `json:"MatchId,omitempty"`
	QueueName              string            `json:"QueueName,omitempty"`
	ReturnMemberAttributes bool              `json:"ReturnMemberAttributes"`
}

type GetMatchResult struct {
	MatchID           string                                `json:"MatchId,omitempty"`
	Members           []MatchmakingPlayerWithTeamAssignment `json:"Members,omitempty"`
	RegionPreferences []string                              `json:"RegionPreferences,omitempty"`
	ServerDetails     *ServerDetails                        `json:"ServerDetails,omitempty"`
}

type GetMatchmakingTicketRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	EscapeObject bool              `json:"EscapeObject"`
	QueueName    string            `json:"QueueName,omitempty"`
	TicketID     string            `json:"TicketId,omitempty"`
}

type GetMatchmakingTicketResult struct {
	CancellationReasonString string              `json:"CancellationReasonString,omitempty"`
	Created                  jsonutil.Time       `json:"Created"`
	Creator                  EntityKey           `json:"Creator"`
	GiveUpAfterSeconds       int32               `json:"GiveUpAfterSeconds"`
	MatchID                  string              `json:"MatchId,omitempty"`
	Members                  []MatchmakingPlayer `json:"Members,omitempty"`
	MembersToMatchWith       []EntityKey         `json:"MembersToMatchWith,omitempty"`
	QueueName                string              `json:"QueueName,omitempty"`
	Status                   string              `json:"Status,omitempty"`
	TicketID                 string              `json:"TicketId,omitempty"`
}

type GetMultiplayerServerDetailsRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Region     string            `json:"Region,omitempty"`
	SessionID  string            `json:"SessionId,omitempty"`
}

type GetMultiplayerServerDetailsResponse struct {
	BuildID                 string            `json:"BuildId,omitempty"`
	ConnectedPlayers        []ConnectedPlayer `json:"ConnectedPlayers,omitempty"`
	FQDN                    string            `json:"FQDN,omitempty"`
	IPV4Address             string            `json:"IPV4Address,omitempty"`
	LastStateTransitionTime *jsonutil.Time    `json:"LastStateTransitionTime,omitempty"`
	Ports                   []Port            `json:"Ports,omitempty"`
	Region                  string            `json:"Region,omitempty"`
	ServerID                string            `json:"ServerId,omitempty"`
	SessionID               string            `json:"SessionId,omitempty"`
	State                   string            `json:"State,omitempty"`
	VMID                    string            `json:"VmId,omitempty"`
}

type GetMultiplayerServerLogsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	ServerID   string            `json:"ServerId,omitempty"`
}

type GetMultiplayerServerLogsResponse struct {
	LogDownloadURL string `json:"LogDownloadUrl,omitempty"`
}

type GetMultiplayerSessionLogsBySessionIDRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	SessionID  string            `json:"SessionId,omitempty"`
}

type GetQueueStatisticsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	QueueName  string            `json:"QueueName,omitempty"`
}

type GetQueueStatisticsResult struct {
	NumberOfPlayersMatching        *uint32     `json:"NumberOfPlayersMatching,omitempty"`
	TimeToMatchStatisticsInSeconds *Statistics `json:"TimeToMatchStatisticsInSeconds,omitempty"`
}

type GetRemoteLoginEndpointRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Region     string            `json:"Region,omitempty"`
	VMID       string            `json:"VmId,omitempty"`
}

type GetRemoteLoginEndpointResponse struct {
	IPV4Address string `json:"IPV4Address,omitempty"`
	Port        int32  `json:"Port"`
}

type GetServerBackfillTicketRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	EscapeObject bool              `json:"EscapeObject"`
	QueueName    string            `json:"QueueName,omitempty"`
	TicketID     string            `json:"TicketId,omitempty"`
}

type GetServerBackfillTicketResult struct {
	CancellationReasonString string                                `json:"CancellationReasonString,omitempty"`
	Created                  jsonutil.Time                         `json:"Created"`
	GiveUpAfterSeconds       int32                                 `json:"GiveUpAfterSeconds"`
	MatchID                  string                                `json:"MatchId,omitempty"`
	Members                  []MatchmakingPlayerWithTeamAssignment `json:"Members,omitempty"`
	QueueName                string                                `json:"QueueName,omitempty"`
	ServerDetails            ServerDetails                         `json:"ServerDetails"`
	Status                   string                                `json:"Status,omitempty"`
	TicketID                 string                                `json:"TicketId,omitempty"`
}

type GetTitleEnabledForMultiplayerServersStatusRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetTitleEnabledForMultiplayerServersStatusResponse struct {
	Status *TitleMultiplayerServerEnabledStatus `json:"Status,omitempty"`
}

type GetTitleMultiplayerServersQuotaChangeRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	RequestID  string            `json:"RequestId,omitempty"`
}

type GetTitleMultiplayerServersQuotaChangeResponse struct {
	Change *QuotaChange `json:"Change,omitempty"`
}

type GetTitleMultiplayerServersQuotasRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetTitleMultiplayerServersQuotasResponse struct {
	Quotas *TitleMultiplayerServersQuotas `json:"Quotas,omitempty"`
}

type InstrumentationConfiguration struct {
	IsEnabled          *bool    `json:"IsEnabled,omitempty"`
	ProcessesToMonitor []string `json:"ProcessesToMonitor,omitempty"`
}

type JoinMatchmakingTicketRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Member     MatchmakingPlayer `json:"Member"`
	QueueName  string            `json:"QueueName,omitempty"`
	TicketID   string            `json:"TicketId,omitempty"`
}

type JoinMatchmakingTicketResult struct{}

type LinuxInstrumentationConfiguration struct {
	IsEnabled bool `json:"IsEnabled"`
}

type ListAssetSummariesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListAssetSummariesResponse struct {
	AssetSummaries []AssetSummary `json:"AssetSummaries,omitempty"`
	PageSize       int32          `json:"PageSize"`
	SkipToken      string         `json:"SkipToken,omitempty"`
}

type ListBuildAliasesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListBuildAliasesResponse struct {
	BuildAliases []BuildAliasDetailsResponse `json:"BuildAliases,omitempty"`
	PageSize     int32                       `json:"PageSize"`
	SkipToken    string                      `json:"SkipToken,omitempty"`
}

type ListBuildSummariesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListBuildSummariesResponse struct {
	BuildSummaries []BuildSummary `json:"BuildSummaries,omitempty"`
	PageSize       int32          `json:"PageSize"`
	SkipToken      string         `json:"SkipToken,omitempty"`
}

type ListCertificateSummariesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListCertificateSummariesResponse struct {
	CertificateSummaries []CertificateSummary `json:"CertificateSummaries,omitempty"`
	PageSize             int32                `json:"PageSize"`
	SkipToken            string               `json:"SkipToken,omitempty"`
}

type ListContainerImageTagsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	ImageName  string            `json:"ImageName,omitempty"`
}

type ListContainerImageTagsResponse struct {
	Tags []string `json:"Tags,omitempty"`
}

type ListContainerImagesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListContainerImagesResponse struct {
	Images    []string `json:"Images,omitempty"`
	PageSize  int32    `json:"PageSize"`
	SkipToken string   `json:"SkipToken,omitempty"`
}

type ListMatchmakingTicketsForPlayerRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
	QueueName  string            `json:"QueueName,omitempty"`
}

type ListMatchmakingTicketsForPlayerResult struct {
	TicketIDs []string `json:"TicketIds,omitempty"`
}

type ListMultiplayerServersRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	Region     string            `json:"Region,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListMultiplayerServersResponse struct {
	MultiplayerServerSummaries []MultiplayerServerSummary `json:"MultiplayerServerSummaries,omitempty"`
	PageSize                   int32                      `json:"PageSize"`
	SkipToken                  string                     `json:"SkipToken,omitempty"`
}

type ListPartyQosServersRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type ListPartyQosServersResponse struct {
	PageSize   int32       `json:"PageSize"`
	QosServers []QosServer `json:"QosServers,omitempty"`
	SkipToken  string      `json:"SkipToken,omitempty"`
}

type ListQosServersForTitleRequest struct {
	CustomTags        map[string]string `json:"CustomTags,omitempty"`
	IncludeAllRegions *bool             `json:"IncludeAllRegions,omitempty"`
}

type ListQosServersForTitleResponse struct {
	PageSize   int32       `json:"PageSize"`
	QosServers []QosServer `json:"QosServers,omitempty"`
	SkipToken  string      `json:"SkipToken,omitempty"`
}

type ListServerBackfillTicketsForPlayerRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	QueueName  string            `json:"QueueName,omitempty"`
}

type ListServerBackfillTicketsForPlayerResult struct {
	TicketIDs []string `json:"TicketIds,omitempty"`
}

type ListTitleMultiplayerServersQuotaChangesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type ListTitleMultiplayerServersQuotaChangesResponse struct {
	Changes []QuotaChange `json:"Changes,omitempty"`
}

type ListVirtualMachineSummariesRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	PageSize   *int32            `json:"PageSize,omitempty"`
	Region     string            `json:"Region,omitempty"`
	SkipToken  string            `json:"SkipToken,omitempty"`
}

type ListVirtualMachineSummariesResponse struct {
	PageSize        int32                   `json:"PageSize"`
	SkipToken       string                  `json:"SkipToken,omitempty"`
	VirtualMachines []VirtualMachineSummary `json:"VirtualMachines,omitempty"`
}

type MatchmakingPlayer struct {
	Attributes *MatchmakingPlayerAttributes `json:"Attributes,omitempty"`
	Entity     EntityKey                    `json:"Entity"`
}

type MatchmakingPlayerAttributes struct {
	DataObject        any    `json:"DataObject,omitempty"`
	EscapedDataObject string `json:"EscapedDataObject,omitempty"`
}

type MatchmakingPlayerWithTeamAssignment struct {
	Attributes *MatchmakingPlayerAttributes `json:"Attributes,omitempty"`
	Entity     EntityKey                    `json:"Entity"`
	TeamID     string                       `json:"TeamId,omitempty"`
}

type MultiplayerServerSummary struct {
	ConnectedPlayers        []ConnectedPlayer `json:"ConnectedPlayers,omitempty"`
	LastStateTransitionTime *jsonutil.Time    `json:"LastStateTransitionTime,omitempty"`
	Region                  string            `json:"Region,omitempty"`
	ServerID                string            `json:"ServerId,omitempty"`
	SessionID               string            `json:"SessionId,omitempty"`
	State                   string            `json:"State,omitempty"`
	VMID                    string            `json:"VmId,omitempty"`
}

type Port struct {
	Name     string       `json:"Name,omitempty"`
	Num      int32        `json:"Num"`
	Protocol ProtocolType `json:"Protocol,omitempty"`
}

type QosServer struct {
	Region    string `json:"Region,omitempty"`
	ServerURL string `json:"ServerUrl,omitempty"`
}

type QuotaChange struct {
	ChangeDescription string               `json:"ChangeDescription,omitempty"`
	Changes           []CoreCapacityChange `json:"Changes,omitempty"`
	IsPendingReview   bool                 `json:"IsPendingReview"`
	Notes             string               `json:"Notes,omitempty"`
	RequestID         string               `json:"RequestId,omitempty"`
	ReviewComments    string               `json:"ReviewComments,omitempty"`
	WasApproved       bool                 `json:"WasApproved"`
}

type RequestMultiplayerServerRequest struct {
	BuildAliasParams *BuildAliasParams `json:"BuildAliasParams,omitempty"`
	BuildID          string            `json:"BuildId,omitempty"`
	CustomTags       map[string]string `json:"CustomTags,omitempty"`
	InitialPlayers   []string          `json:"InitialPlayers,omitempty"`
	PreferredRegions []string          `json:"PreferredRegions,omitempty"`
	SessionCookie    string            `json:"SessionCookie,omitempty"`
	SessionID        string            `json:"SessionId,omitempty"`
}

type RequestMultiplayerServerResponse struct {
	BuildID                 string            `json:"BuildId,omitempty"`
	ConnectedPlayers        []ConnectedPlayer `json:"ConnectedPlayers,omitempty"`
	FQDN                    string            `json:"FQDN,omitempty"`
	IPV4Address             string            `json:"IPV4Address,omitempty"`
	LastStateTransitionTime *jsonutil.Time    `json:"LastStateTransitionTime,omitempty"`
	Ports                   []Port            `json:"Ports,omitempty"`
	Region                  string            `json:"Region,omitempty"`
	ServerID                string            `json:"ServerId,omitempty"`
	SessionID               string            `json:"SessionId,omitempty"`
	State                   string            `json:"State,omitempty"`
	VMID                    string            `json:"VmId,omitempty"`
}

type RolloverContainerRegistryCredentialsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type RolloverContainerRegistryCredentialsResponse struct {
	DnsName  string `json:"DnsName,omitempty"`
	Password string `json:"Password,omitempty"`
	Username string `json:"Username,omitempty"`
}

type Schedule struct {
	Description       string        `json:"Description,omitempty"`
	EndTime           jsonutil.Time `json:"EndTime"`
	IsDisabled        bool          `json:"IsDisabled"`
	IsRecurringWeekly bool          `json:"IsRecurringWeekly"`
	StartTime         jsonutil.Time `json:"StartTime"`
	TargetStandby     int32         `json:"TargetStandby"`
}

type ScheduledStandbySettings struct {
	IsEnabled    bool       `json:"IsEnabled"`
	ScheduleList []Schedule `json:"ScheduleList,omitempty"`
}

type ServerDetails struct {
	Fqdn        string `json:"Fqdn,omitempty"`
	IPV4Address string `json:"IPV4Address,omitempty"`
	Ports       []Port `json:"Ports,omitempty"`
	Region      string `json:"Region,omitempty"`
}

type ShutdownMultiplayerServerRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	SessionID  string            `json:"SessionId,omitempty"`
}

type Statistics struct {
	Average      float64 `json:"Average"`
	Percentile50 float64 `json:"Percentile50"`
	Percentile90 float64 `json:"Percentile90"`
	Percentile99 float64 `json:"Percentile99"`
}

type TitleMultiplayerServersQuotas struct {
	CoreCapacities []CoreCapacity `json:"CoreCapacities,omitempty"`
}

type UntagContainerImageRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	ImageName  string            `json:"ImageName,omitempty"`
	Tag        string            `json:"Tag,omitempty"`
}

type UpdateBuildAliasRequest struct {
	AliasID                string                    `json:"AliasId,omitempty"`
	AliasName              string                    `json:"AliasName,omitempty"`
	BuildSelectionCriteria []BuildSelectionCriterion `json:"BuildSelectionCriteria,omitempty"`
	CustomTags             map[string]string         `json:"CustomTags,omitempty"`
}

type UpdateBuildNameRequest struct {
	BuildID    string            `json:"BuildId,omitempty"`
	BuildName  string            `json:"BuildName,omitempty"`
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type UpdateBuildRegionRequest struct {
	BuildID     string            `json:"BuildId,omitempty"`
	BuildRegion BuildRegionParams `json:"BuildRegion"`
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
}

type UpdateBuildRegionsRequest struct {
	BuildID      string              `json:"BuildId,omitempty"`
	BuildRegions []BuildRegionParams `json:"BuildRegions,omitempty"`
	CustomTags   map[string]string   `json:"CustomTags,omitempty"`
}

type UploadCertificateRequest struct {
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	GameCertificate Certificate       `json:"GameCertificate"`
}

type VirtualMachineSummary struct {
	HealthStatus string `json:"HealthStatus,omitempty"`
	State        string `json:"State,omitempty"`
	VMID         string `json:"VmId,omitempty"`
}
