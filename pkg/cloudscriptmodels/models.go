// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cloudscriptmodels

import "playfab-models-go/pkg/jsonutil"

type AdCampaignAttributionModel struct {
	AttributedAt jsonutil.Time `json:"AttributedAt"`
	CampaignID   string        `json:"CampaignId,omitempty"`
	Platform     string        `json:"Platform,omitempty"`
}

type ContactEmailInfoModel struct {
	EmailAddress       string                   `json:"EmailAddress,omitempty"`
	Name               string                   `json:"Name,omitempty"`
	VerificationStatus *EmailVerificationStatus `json:"VerificationStatus,omitempty"`
}

type EmptyResult struct{}

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
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

type ExecuteEntityCloudScriptRequest struct {
	CustomTags              map[string]string          `json:"CustomTags,omitempty"`
	Entity                  *EntityKey                 `json:"Entity,omitempty"`
	FunctionName            string                     `json:"FunctionName,omitempty"`
	FunctionParameter       any                        `json:"FunctionParameter,omitempty"`
	GeneratePlayStreamEvent *bool                      `json:"GeneratePlayStreamEvent,omitempty"`
	RevisionSelection       *CloudScriptRevisionOption `json:"RevisionSelection,omitempty"`
	SpecificRevision        *int32                     `json:"SpecificRevision,omitempty"`
}

type ExecuteFunctionRequest struct {
	CustomTags              map[string]string `json:"CustomTags,omitempty"`
	Entity                  *EntityKey        `json:"Entity,omitempty"`
	FunctionName            string            `json:"FunctionName,omitempty"`
	FunctionParameter       any               `json:"FunctionParameter,omitempty"`
	GeneratePlayStreamEvent *bool             `json:"GeneratePlayStreamEvent,omitempty"`
}

// ExecuteFunctionResult carries the outcome of an Azure Function call.
type ExecuteFunctionResult struct {
	Error                     *FunctionExecutionError `json:"Error,omitempty"`
	ExecutionTimeMilliseconds int32                   `json:"ExecutionTimeMilliseconds"`
	FunctionName              string                  `json:"FunctionName,omitempty"`
	FunctionResult            any                     `json:"FunctionResult,omitempty"`
	FunctionResultTooLarge    *bool                   `json:"FunctionResultTooLarge,omitempty"`
}

type FunctionExecutionError struct {
	Error      string `json:"Error,omitempty"`
	Message    string `json:"Message,omitempty"`
	StackTrace string `json:"StackTrace,omitempty"`
}

type FunctionModel struct {
	FunctionAddress string `json:"FunctionAddress,omitempty"`
	FunctionName    string `json:"FunctionName,omitempty"`
	TriggerType     string `json:"TriggerType,omitempty"`
}

type GetFunctionRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	FunctionName string            `json:"FunctionName,omitempty"`
	TitleID      string            `json:"TitleId,omitempty"`
}

type GetFunctionResult struct {
	ConnectionString string `json:"ConnectionString,omitempty"`
	FunctionURL      string `json:"FunctionUrl,omitempty"`
	QueueName        string `json:"QueueName,omitempty"`
	TriggerType      string `json:"TriggerType,omitempty"`
}

type HTTPFunctionModel struct {
	FunctionName string `json:"FunctionName,omitempty"`
	FunctionURL  string `json:"FunctionUrl,omitempty"`
}

type LinkedPlatformAccountModel struct {
	Email          string                 `json:"Email,omitempty"`
	Platform       *LoginIdentityProvider `json:"Platform,omitempty"`
	PlatformUserID string                 `json:"PlatformUserId,omitempty"`
	Username       string                 `json:"Username,omitempty"`
}

type ListFunctionsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type ListFunctionsResult struct {
	Functions []FunctionModel `json:"Functions,omitempty"`
}

type ListHTTPFunctionsResult struct {
	Functions []HTTPFunctionModel `json:"Functions,omitempty"`
}

type ListQueuedFunctionsResult struct {
	Functions []QueuedFunctionModel `json:"Functions,omitempty"`
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

type MembershipModel struct {
	IsActive             bool                `json:"IsActive"`
	MembershipExpiration jsonutil.Time       `json:"MembershipExpiration"`
	MembershipID         string              `json:"MembershipId,omitempty"`
	OverrideExpiration   *jsonutil.Time      `json:"OverrideExpiration,omitempty"`
	Subscriptions        []SubscriptionModel `json:"Subscriptions,omitempty"`
}

type NameIdentifier struct {
	ID   string `json:"Id,omitempty"`
	Name string `json:"Name,omitempty"`
}

type PlayStreamEventEnvelopeModel struct {
	EntityID       string `json:"EntityId,omitempty"`
	EntityType     string `json:"EntityType,omitempty"`
	EventData      string `json:"EventData,omitempty"`
	EventName      string `json:"EventName,omitempty"`
	EventNamespace string `json:"EventNamespace,omitempty"`
	EventSettings  string `json:"EventSettings,omitempty"`
}

// PlayerProfileModel is the public profile of a player. Which parts are set depends on the title profile constraints.
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

type PostFunctionResultForEntityTriggeredActionRequest struct {
	CustomTags     map[string]string     `json:"CustomTags,omitempty"`
	Entity         EntityKey             `json:"Entity"`
	FunctionResult ExecuteFunctionResult `json:"FunctionResult"`
}

type PostFunctionResultForFunctionExecutionRequest struct {
	CustomTags     map[string]string     `json:"CustomTags,omitempty"`
	Entity         EntityKey             `json:"Entity"`
	FunctionResult ExecuteFunctionResult `json:"FunctionResult"`
}

type PostFunctionResultForPlayerTriggeredActionRequest struct {
	CustomTags              map[string]string             `json:"CustomTags,omitempty"`
	Entity                  *EntityKey                    `json:"Entity,omitempty"`
	FunctionResult          ExecuteFunctionResult         `json:"FunctionResult"`
	PlayerProfile           PlayerProfileModel            `json:"PlayerProfile"`
	PlayStreamEventEnvelope *PlayStreamEventEnvelopeModel `json:"PlayStreamEventEnvelope,omitempty"`
}

type PostFunctionResultForScheduledTaskRequest struct {
	CustomTags      map[string]string     `json:"CustomTags,omitempty"`
	Entity          EntityKey             `json:"Entity"`
	FunctionResult  ExecuteFunctionResult `json:"FunctionResult"`
	ScheduledTaskID NameIdentifier        `json:"ScheduledTaskId"`
}

type PushNotificationRegistrationModel struct {
	NotificationEndpointARN string                    `json:"NotificationEndpointARN,omitempty"`
	Platform                *PushNotificationPlatform `json:"Platform,omitempty"`
}

type QueuedFunctionModel struct {
	ConnectionString string `json:"ConnectionString,omitempty"`
	FunctionName     string `json:"FunctionName,omitempty"`
	QueueName        string `json:"QueueName,omitempty"`
}

type RegisterHTTPFunctionRequest struct {
	AzureResourceID string            `json:"AzureResourceId,omitempty"`
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	FunctionName    string            `json:"FunctionName,omitempty"`
	FunctionURL     string            `json:"FunctionUrl,omitempty"`
	TitleID         string            `json:"TitleId,omitempty"`
}

type RegisterQueuedFunctionRequest struct {
	AzureResourceID  string            `json:"AzureResourceId,omitempty"`
	ConnectionString string            `json:"ConnectionString,omitempty"`
	CustomTags       map[string]string `json:"CustomTags,omitempty"`
	FunctionName     string            `json:"FunctionName,omitempty"`
	QueueName        string            `json:"QueueName,omitempty"`
	TitleID          string            `json:"TitleId,omitempty"`
}

type ScriptExecutionError struct {
	Error      string `json:"Error,omitempty"`
	Message    string `json:"Message,omitempty"`
	StackTrace string `json:"StackTrace,omitempty"`
}

type StatisticModel struct {
	Name    string `json:"Name,omitempty"`
	Value   int32  `json:"Value"`
	Version int32  `json:"Version"`
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

type TagModel struct {
	TagValue string `json:"TagValue,omitempty"`
}

type UnregisterFunctionRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	FunctionName string            `json:"FunctionName,omitempty"`
	TitleID      string            `json:"TitleId,omitempty"`
}

type ValueToDateModel struct {
	Currency            string `json:"Currency,omitempty"`
	TotalValue          uint32 `json:"TotalValue"`
	TotalValueAsDecimal string `json:"TotalValueAsDecimal,omitempty"`
}
