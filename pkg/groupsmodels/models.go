// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package groupsmodels

import "playfab-models-go/pkg/jsonutil"

type AcceptGroupApplicationRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	Group      EntityKey         `json:"Group"`
}

type AcceptGroupInvitationRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
	Group      EntityKey         `json:"Group"`
}

type AddMembersRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
	Members    []EntityKey       `json:"Members,omitempty"`
	RoleID     string            `json:"RoleId,omitempty"`
}

type ApplyToGroupRequest struct {
	AutoAcceptOutstandingInvite *bool             `json:"AutoAcceptOutstandingInvite,omitempty"`
	CustomTags                  map[string]string `json:"CustomTags,omitempty"`
	Entity                      *EntityKey        `json:"Entity,omitempty"`
	Group                       EntityKey         `json:"Group"`
}

type ApplyToGroupResponse struct {
	Entity  *EntityWithLineage `json:"Entity,omitempty"`
	Expires jsonutil.Time      `json:"Expires"`
	Group   *EntityKey         `json:"Group,omitempty"`
}

type BlockEntityRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	Group      EntityKey         `json:"Group"`
}

type ChangeMemberRoleRequest struct {
	CustomTags        map[string]string `json:"CustomTags,omitempty"`
	DestinationRoleID string            `json:"DestinationRoleId,omitempty"`
	Group             EntityKey         `json:"Group"`
	Members           []EntityKey       `json:"Members,omitempty"`
	OriginRoleID      string            `json:"OriginRoleId,omitempty"`
}

type CreateGroupRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
	GroupName  string            `json:"GroupName,omitempty"`
}

type CreateGroupResponse struct {
	AdminRoleID    string            `json:"AdminRoleId,omitempty"`
	Created        jsonutil.Time     `json:"Created"`
	Group          EntityKey         `json:"Group"`
	GroupName      string            `json:"GroupName,omitempty"`
	MemberRoleID   string            `json:"MemberRoleId,omitempty"`
	ProfileVersion int32             `json:"ProfileVersion"`
	Roles          map[string]string `json:"Roles,omitempty"`
}

type CreateGroupRoleRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
	RoleID     string            `json:"RoleId,omitempty"`
	RoleName   string            `json:"RoleName,omitempty"`
}

type CreateGroupRoleResponse struct {
	ProfileVersion int32  `json:"ProfileVersion"`
	RoleID         string `json:"RoleId,omitempty"`
	RoleName       string `json:"RoleName,omitempty"`
}

type DeleteGroupRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
}

type DeleteRoleRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
	RoleID     string            `json:"RoleId,omitempty"`
}

type EmptyResponse struct{}

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

type EntityMemberRole struct {
	Members  []EntityWithLineage `json:"Members,omitempty"`
	RoleID   string              `json:"RoleId,omitempty"`
	RoleName string              `json:"RoleName,omitempty"`
}

type EntityWithLineage struct {
	Key     *EntityKey           `json:"Key,omitempty"`
	Lineage map[string]EntityKey `json:"Lineage,omitempty"`
}

type GetGroupRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      *EntityKey        `json:"Group,omitempty"`
	GroupName  string            `json:"GroupName,omitempty"`
}

type GetGroupResponse struct {
	AdminRoleID    string            `json:"AdminRoleId,omitempty"`
	Created        jsonutil.Time     `json:"Created"`
	Group          EntityKey         `json:"Group"`
	GroupName      string            `json:"GroupName,omitempty"`
	MemberRoleID   string            `json:"MemberRoleId,omitempty"`
	ProfileVersion int32             `json:"ProfileVersion"`
	Roles          map[string]string `json:"Roles,omitempty"`
}

type GroupApplication struct {
	Entity  *EntityWithLineage `json:"Entity,omitempty"`
	Expires jsonutil.Time      `json:"Expires"`
	Group   *EntityKey         `json:"Group,omitempty"`
}

type GroupBlock struct {
	Entity *EntityWithLineage `json:"Entity,omitempty"`
	Group  EntityKey          `json:"Group"`
}

type GroupInvitation struct {
	Expires         jsonutil.Time      `json:"Expires"`
	Group           *EntityKey         `json:"Group,omitempty"`
	InvitedByEntity *EntityWithLineage `json:"InvitedByEntity,omitempty"`
	InvitedEntity   *EntityWithLineage `json:"InvitedEntity,omitempty"`
	RoleID          string             `json:"RoleId,omitempty"`
}

type GroupRole struct {
	RoleID   string `json:"RoleId,omitempty"`
	RoleName string `json:"RoleName,omitempty"`
}

type GroupWithRoles struct {
	Group          *EntityKey  `json:"Group,omitempty"`
	GroupName      string      `json:"GroupName,omitempty"`
	ProfileVersion int32       `json:"ProfileVersion"`
	Roles          []GroupRole `json:"Roles,omitempty"`
}

type InviteToGroupRequest struct {
	AutoAcceptOutstandingApplication *bool             `json:"AutoAcceptOutstandingApplication,omitempty"`
	CustomTags                       map[string]string `json:"CustomTags,omitempty"`
	Entity                           EntityKey         `json:"Entity"`
	Group                            EntityKey         `json:"Group"`
	RoleID                           string            `json:"RoleId,omitempty"`
}

type InviteToGroupResponse struct {
	Expires         jsonutil.Time      `json:"Expires"`
	Group           *EntityKey         `json:"Group,omitempty"`
	InvitedByEntity *EntityWithLineage `json:"InvitedByEntity,omitempty"`
	InvitedEntity   *EntityWithLineage `json:"InvitedEntity,omitempty"`
	RoleID          string             `json:"RoleId,omitempty"`
}

type IsMemberRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	Group      EntityKey         `json:"Group"`
	RoleID     string            `json:"RoleId,omitempty"`
}

type IsMemberResponse struct {
	IsMember bool `json:"IsMember"`
}

type ListGroupApplicationsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
}

type ListGroupApplicationsResponse struct {
	Applications []GroupApplication `json:"Applications,omitempty"`
}

type ListGroupBlocksRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
}

type ListGroupBlocksResponse struct {
	BlockedEntities []GroupBlock `json:"BlockedEntities,omitempty"`
}

type ListGroupInvitationsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
}

type ListGroupInvitationsResponse struct {
	Invitations []GroupInvitation `json:"Invitations,omitempty"`
}

type ListGroupMembersRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
}

type ListGroupMembersResponse struct {
	Members []EntityMemberRole `json:"Members,omitempty"`
}

type ListMembershipOpportunitiesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
}

type ListMembershipOpportunitiesResponse struct {
	Applications []GroupApplication `json:"Applications,omitempty"`
	Invitations  []GroupInvitation  `json:"Invitations,omitempty"`
}

type ListMembershipRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
}

type ListMembershipResponse struct {
	Groups []GroupWithRoles `json:"Groups,omitempty"`
}

type RemoveGroupApplicationRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	Group      EntityKey         `json:"Group"`
}

type RemoveGroupInvitationRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	Group      EntityKey         `json:"Group"`
}

type RemoveMembersRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Group      EntityKey         `json:"Group"`
	Members    []EntityKey       `json:"Members,omitempty"`
	RoleID     string            `json:"RoleId,omitempty"`
}

type UnblockEntityRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
	Group      EntityKey         `json:"Group"`
}

type UpdateGroupRequest struct {
	AdminRoleID            string            `json:"AdminRoleId,omitempty"`
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	ExpectedProfileVersion *int32            `json:"ExpectedProfileVersion,omitempty"`
	Group                  EntityKey         `json:"Group"`
	GroupName              string            `json:"GroupName,omitempty"`
	MemberRoleID           string            `json:"MemberRoleId,omitempty"`
}

type UpdateGroupResponse struct {
	OperationReason string          `json:"OperationReason,omitempty"`
	ProfileVersion  int32           `json:"ProfileVersion"`
	SetResult       *OperationTypes `json:"SetResult,omitempty"`
}

type UpdateGroupRoleRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	ExpectedProfileVersion *int32            `json:"ExpectedProfileVersion,omitempty"`
	Group                  EntityKey         `json:"Group"`
	RoleID                 string            `json:"RoleId,omitempty"`
	RoleName               string            `json:"RoleName,omitempty"`
}

type UpdateGroupRoleResponse struct {
	OperationReason string          `json:"OperationReason,omitempty"`
	ProfileVersion  int32           `json:"ProfileVersion"`
	SetResult       *OperationTypes `json:"SetResult,omitempty"`
}
