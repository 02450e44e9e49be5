// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package groupsmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "groups"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[AcceptGroupApplicationRequest](idx, "AcceptGroupApplicationRequest")
	jsonutil.AddType[AcceptGroupInvitationRequest](idx, "AcceptGroupInvitationRequest")
	jsonutil.AddType[AddMembersRequest](idx, "AddMembersRequest")
	jsonutil.AddType[ApplyToGroupRequest](idx, "ApplyToGroupRequest")
	jsonutil.AddType[ApplyToGroupResponse](idx, "ApplyToGroupResponse")
	jsonutil.AddType[BlockEntityRequest](idx, "BlockEntityRequest")
	jsonutil.AddType[ChangeMemberRoleRequest](idx, "ChangeMemberRoleRequest")
	jsonutil.AddType[CreateGroupRequest](idx, "CreateGroupRequest")
	jsonutil.AddType[CreateGroupResponse](idx, "CreateGroupResponse")
	jsonutil.AddType[CreateGroupRoleRequest](idx, "CreateGroupRoleRequest")
	jsonutil.AddType[CreateGroupRoleResponse](idx, "CreateGroupRoleResponse")
	jsonutil.AddType[DeleteGroupRequest](idx, "DeleteGroupRequest")
	jsonutil.AddType[DeleteRoleRequest](idx, "DeleteRoleRequest")
	jsonutil.AddType[EmptyResponse](idx, "EmptyResponse")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[EntityMemberRole](idx, "EntityMemberRole")
	jsonutil.AddType[EntityWithLineage](idx, "EntityWithLineage")
	jsonutil.AddType[GetGroupRequest](idx, "GetGroupRequest")
	jsonutil.AddType[GetGroupResponse](idx, "GetGroupResponse")
	jsonutil.AddType[GroupApplication](idx, "GroupApplication")
	jsonutil.AddType[GroupBlock](idx, "GroupBlock")
	jsonutil.AddType[GroupInvitation](idx, "GroupInvitation")
	jsonutil.AddType[GroupRole](idx, "GroupRole")
	jsonutil.AddType[GroupWithRoles](idx, "GroupWithRoles")
	jsonutil.AddType[InviteToGroupRequest](idx, "InviteToGroupRequest")
	jsonutil.AddType[InviteToGroupResponse](idx, "InviteToGroupResponse")
	jsonutil.AddType[IsMemberRequest](idx, "IsMemberRequest")
	jsonutil.AddType[IsMemberResponse](idx, "IsMemberResponse")
	jsonutil.AddType[ListGroupApplicationsRequest](idx, "ListGroupApplicationsRequest")
	jsonutil.AddType[ListGroupApplicationsResponse](idx, "ListGroupApplicationsResponse")
	jsonutil.AddType[ListGroupBlocksRequest](idx, "ListGroupBlocksRequest")
	jsonutil.AddType[ListGroupBlocksResponse](idx, "ListGroupBlocksResponse")
	jsonutil.AddType[ListGroupInvitationsRequest](idx, "ListGroupInvitationsRequest")
	jsonutil.AddType[ListGroupInvitationsResponse](idx, "ListGroupInvitationsResponse")
	jsonutil.AddType[ListGroupMembersRequest](idx, "ListGroupMembersRequest")
	jsonutil.AddType[ListGroupMembersResponse](idx, "ListGroupMembersResponse")
	jsonutil.AddType[ListMembershipOpportunitiesRequest](idx, "ListMembershipOpportunitiesRequest")
	jsonutil.AddType[ListMembershipOpportunitiesResponse](idx, "ListMembershipOpportunitiesResponse")
	jsonutil.AddType[ListMembershipRequest](idx, "ListMembershipRequest")
	jsonutil.AddType[ListMembershipResponse](idx, "ListMembershipResponse")
	jsonutil.AddType[RemoveGroupApplicationRequest](idx, "RemoveGroupApplicationRequest")
	jsonutil.AddType[RemoveGroupInvitationRequest](idx, "RemoveGroupInvitationRequest")
	jsonutil.AddType[RemoveMembersRequest](idx, "RemoveMembersRequest")
	jsonutil.AddType[UnblockEntityRequest](idx, "UnblockEntityRequest")
	jsonutil.AddType[UpdateGroupRequest](idx, "UpdateGroupRequest")
	jsonutil.AddType[UpdateGroupResponse](idx, "UpdateGroupResponse")
	jsonutil.AddType[UpdateGroupRoleRequest](idx, "UpdateGroupRoleRequest")
	jsonutil.AddType[UpdateGroupRoleResponse](idx, "UpdateGroupRoleResponse")
	idx.AddEnum("OperationTypes", operationTypesNames)

	return idx
}
