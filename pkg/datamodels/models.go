// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package datamodels

import "playfab-models-go/pkg/jsonutil"

type AbortFileUploadsRequest struct {
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	Entity         EntityKey         `json:"Entity"`
	FileNames      []string          `json:"FileNames,omitempty"`
	ProfileVersion *int32            `json:"ProfileVersion,omitempty"`
}

type AbortFileUploadsResponse struct {
	Entity         *EntityKey `json:"Entity,omitempty"`
	ProfileVersion int32      `json:"ProfileVersion"`
}

type DeleteFilesRequest struct {
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	Entity         EntityKey         `json:"Entity"`
	FileNames      []string          `json:"FileNames,omitempty"`
	ProfileVersion *int32            `json:"ProfileVersion,omitempty"`
}

type DeleteFilesResponse struct {
	Entity         *EntityKey `json:"Entity,omitempty"`
	ProfileVersion int32      `json:"ProfileVersion"`
}

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

type FinalizeFileUploadsRequest struct {
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	Entity         EntityKey         `json:"Entity"`
	FileNames      []string          `json:"FileNames,omitempty"`
	ProfileVersion int32             `json:"ProfileVersion"`
}

type FinalizeFileUploadsResponse struct {
	Entity         *EntityKey                 `json:"Entity,omitempty"`
	Metadata       map[string]GetFileMetadata `json:"Metadata,omitempty"`
	ProfileVersion int32                      `json:"ProfileVersion"`
}

// GetFileMetadata describes one uploaded entity file.
type GetFileMetadata struct {
	Checksum     string        `json:"Checksum,omitempty"`
	DownloadURL  string        `json:"DownloadUrl,omitempty"`
	FileName     string        `json:"FileName,omitempty"`
	LastModified jsonutil.Time `json:"LastModified"`
	Size         int32         `json:"Size"`
}

type GetFilesRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     EntityKey         `json:"Entity"`
}

type GetFilesResponse struct {
	Entity         *EntityKey                 `json:"Entity,omitempty"`
	Metadata       map[string]GetFileMetadata `json:"Metadata,omitempty"`
	ProfileVersion int32                      `json:"ProfileVersion"`
}

type GetObjectsRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	Entity       EntityKey         `json:"Entity"`
	EscapeObject *bool             `json:"EscapeObject,omitempty"`
}

type GetObjectsResponse struct {
	Entity         *EntityKey              `json:"Entity,omitempty"`
	Objects        map[string]ObjectResult `json:"Objects,omitempty"`
	ProfileVersion int32                   `json:"ProfileVersion"`
}

type InitiateFileUploadMetadata struct {
	FileName  string `json:"FileName,omitempty"`
	UploadURL string `json:"UploadUrl,omitempty"`
}

type InitiateFileUploadsRequest struct {
	CustomTags     map[string]string `json:"CustomTags,omitempty"`
	Entity         EntityKey         `json:"Entity"`
	FileNames      []string          `json:"FileNames,omitempty"`
	ProfileVersion *int32            `json:"ProfileVersion,omitempty"`
}

type InitiateFileUploadsResponse struct {
	Entity         *EntityKey                   `json:"Entity,omitempty"`
	ProfileVersion int32                        `json:"ProfileVersion"`
	UploadDetails  []InitiateFileUploadMetadata `json:"UploadDetails,omitempty"`
}

// ObjectResult is the outcome of one object in SetObjects.
type ObjectResult struct {
	DataObject        any    `json:"DataObject,omitempty"`
	EscapedDataObject string `json:"EscapedDataObject,omitempty"`
	ObjectName        string `json:"ObjectName,omitempty"`
}

type SetObject struct {
	DataObject        any    `json:"DataObject,omitempty"`
	DeleteObject      *bool  `json:"DeleteObject,omitempty"`
	EscapedDataObject string `json:"EscapedDataObject,omitempty"`
	ObjectName        string `json:"ObjectName,omitempty"`
}

type SetObjectInfo struct {
	ObjectName      string          `json:"ObjectName,omitempty"`
	OperationReason string          `json:"OperationReason,omitempty"`
	SetResult       *OperationTypes `json:"SetResult,omitempty"`
}

type SetObjectsRequest struct {
	CustomTags             map[string]string `json:"CustomTags,omitempty"`
	Entity                 EntityKey         `json:"Entity"`
	ExpectedProfileVersion *int32            `json:"ExpectedProfileVersion,omitempty"`
	Objects                []SetObject       `json:"Objects,omitempty"`
}

type SetObjectsResponse struct {
	ProfileVersion int32           `json:"ProfileVersion"`
	SetResults     []SetObjectInfo `json:"SetResults,omitempty"`
}
