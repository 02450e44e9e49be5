// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package profilesmodels

import "playfab-models-go/pkg/jsonutil"

type EntityDataObject struct {
	DataObject        any    `json:"DataObject,omitempty"`
	EscapedDataObject string `json:"EscapedDataObject,omitempty"`
	ObjectName        string `json:"ObjectName,omitempty"`
}

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

type EntityLineage struct {
	CharacterID           string `json:"CharacterId,omitempty"`
	GroupID               string `json:"GroupId,omitempty"`
	MasterPlayerAccountID string `json:"MasterPlayerAccountId,omitempty"`
	NamespaceID           string `json:"NamespaceId,omitempty"`
	TitleID               string `json:"TitleId,omitempty"`
	TitlePlayerAccountID  string `json:"TitlePlayerAccountId,omitempty"`
}

type EntityPermissionStatement struct {
	Action    string     `json:"Action,omitempty"`
	Comment   string     `json:"Comment,omitempty"`
	Condition any        `json:"Condition,omitempty"`
	Effect    EffectType `json:"Effect,omitempty"`
	Principal any        `json:"Principal,omitempty"`
	Resource  string     `json:"Resource,omitempty"`
}

// EntityProfileBody is the full profile of an entity.
type EntityProfileBody struct {
	AvatarURL           string                               `json:"AvatarUrl,omitempty"`
	Created             jsonutil.Time                        `json:"Created"`
	DisplayName         string                               `json:"DisplayName,omitempty"`
	Entity              *EntityKey                           `json:"Entity,omitempty"`
	EntityChain         string                               `json:"EntityChain,omitempty"`
	ExperimentVariants  []string                             `json:"ExperimentVariants,omitempty"`
	Files               map[string]EntityProfileFileMetadata `json:"Files,omitempty"`
	Language            string                               `json:"Language,omitempty"`
	LeaderboardMetadata string                               `json:"LeaderboardMetadata,omitempty"`
	Lineage             *EntityLineage                       `json:"Lineage,omitempty"`
	Objects             map[string]EntityDataObject          `json:"Objects,omitempty"`
	Permissions         []EntityPermissionStatement          `json:"Permissions,omitempty"`
	Statistics          map[string]EntityStatisticValue      `json:"Statistics,omitempty"`
	VersionNumber       int32                                `json:"VersionNumber"`
}

type EntityProfileFileMetadata struct {
	Checksum     string        `json:"Checksum,omitempty"`
	FileName     string        `json:"FileName,omitempty"`
	LastModified jsonutil.Time `json:"LastModified"`
	Size         int32         `json:"Size"`
}

type EntityStatisticChildValue struct {
	ChildName string `json:"ChildName,omitempty"`
	Metadata  string `json:"Metadata,omitempty"`
	Value     int32  `json:"Value"`
}

type EntityStatisticValue struct {
	ChildStatistics map[string]EntityStatisticChildValue `json:"ChildStatistics,omitempty"`
	Metadata        string                               `json:"Metadata,omitempty"`
	Name            string                               `json:"Name,omitempty"`
	Value           *int32                               `json:"Value,omitempty"`
	Version         int32                                `json:"Version"`
}

type GetEntityProfileRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	DataAsObject *bool             `json:"DataAsObject,omitempty"`
	Entity       *EntityKey        `json:"Entity,omitempty"`
}

type GetEntityProfileResponse struct {
	Profile *EntityProfileBody `json:"Profile,omitempty"`
}

type GetEntityProfilesRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	DataAsObject *bool             `json:"DataAsObject,omitempty"`
	Entities     []EntityKey       `json:"Entities,omitempty"`
}

type GetEntityProfilesResponse struct {
	Profiles []EntityProfileBody `json:"Profiles,omitempty"`
}

type GetGlobalPolicyRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetGlobalPolicyResponse struct {
	Permissions []EntityPermissionStatement `json:"Permissions,omitempty"`
}

type GetTitlePlayersFromMasterPlayerAccountIDsRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	MasterPlayerAccountIDs []string          `json:"MasterPlayerAccountIds,omitempty"`
	TitleID                string            `json:"TitleId,omitempty"`
}

type GetTitlePlayersFromMasterPlayerAccountIDsResponse struct {
	TitleID             string               `json:"TitleId,omitempty"`
	TitlePlayerAccounts map[string]EntityKey `json:"TitlePlayerAccounts,omitempty"`
}

type SetEntityProfilePolicyRequest struct {
	CustomTags map[string]string           `json:"CustomTags,omitempty"`
	Entity     EntityKey                   `json:"Entity"`
	Statements []EntityPermissionStatement `json:"Statements,omitempty"`
}

type SetEntityProfilePolicyResponse struct {
	Permissions []EntityPermissionStatement `json:"Permissions,omitempty"`
}

type SetGlobalPolicyRequest struct {
	CustomTags  map[string]string           `json:"CustomTags,omitempty"`
	Permissions []EntityPermissionStatement `json:"Permissions,omitempty"`
}

type SetGlobalPolicyResponse struct{}

type SetProfileLanguageRequest struct {
	CustomTags      map[string]string `json:"CustomTags,omitempty"`
	Entity          *EntityKey        `json:"Entity,omitempty"`
	ExpectedVersion *int32            `json:"ExpectedVersion,omitempty"`
	Language        string            `json:"Language,omitempty"`
}

type SetProfileLanguageResponse struct {
	OperationResult *OperationTypes `json:"OperationResult,omitempty"`
	VersionNumber   *int32          `json:"VersionNumber,omitempty"`
}
