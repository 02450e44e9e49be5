// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package authenticationmodels

import "playfab-models-go/pkg/jsonutil"

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

// EntityLineage lists the parent entities of a validated entity.
type EntityLineage struct {
	CharacterID           string `json:"CharacterId,omitempty"`
	GroupID               string `json:"GroupId,omitempty"`
	MasterPlayerAccountID string `json:"MasterPlayerAccountId,omitempty"`
	NamespaceID           string `json:"NamespaceId,omitempty"`
	TitleID               string `json:"TitleId,omitempty"`
	TitlePlayerAccountID  string `json:"TitlePlayerAccountId,omitempty"`
}

type GetEntityTokenRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
}

type GetEntityTokenResponse struct {
	Entity          *EntityKey     `json:"Entity,omitempty"`
	EntityToken     string         `json:"EntityToken,omitempty"`
	TokenExpiration *jsonutil.Time `json:"TokenExpiration,omitempty"`
}

type ValidateEntityTokenRequest struct {
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	EntityToken string            `json:"EntityToken,omitempty"`
}

type ValidateEntityTokenResponse struct {
	Entity                   *EntityKey             `json:"Entity,omitempty"`
	IdentifiedDeviceType     *IdentifiedDeviceType  `json:"IdentifiedDeviceType,omitempty"`
	IdentityProvider         *LoginIdentityProvider `json:"IdentityProvider,omitempty"`
	IdentityProviderIssuedID string                 `json:"IdentityProviderIssuedId,omitempty"`
	Lineage                  *EntityLineage         `json:"Lineage,omitempty"`
}
