// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package datamodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "data"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[AbortFileUploadsRequest](idx, "AbortFileUploadsRequest")
	jsonutil.AddType[AbortFileUploadsResponse](idx, "AbortFileUploadsResponse")
	jsonutil.AddType[DeleteFilesRequest](idx, "DeleteFilesRequest")
	jsonutil.AddType[DeleteFilesResponse](idx, "DeleteFilesResponse")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[FinalizeFileUploadsRequest](idx, "FinalizeFileUploadsRequest")
	jsonutil.AddType[FinalizeFileUploadsResponse](idx, "FinalizeFileUploadsResponse")
	jsonutil.AddType[GetFileMetadata](idx, "GetFileMetadata")
	jsonutil.AddType[GetFilesRequest](idx, "GetFilesRequest")
	jsonutil.AddType[GetFilesResponse](idx, "GetFilesResponse")
	jsonutil.AddType[GetObjectsRequest](idx, "GetObjectsRequest")
	jsonutil.AddType[GetObjectsResponse](idx, "GetObjectsResponse")
	jsonutil.AddType[InitiateFileUploadMetadata](idx, "InitiateFileUploadMetadata")
	jsonutil.AddType[InitiateFileUploadsRequest](idx, "InitiateFileUploadsRequest")
	jsonutil.AddType[InitiateFileUploadsResponse](idx, "InitiateFileUploadsResponse")
	jsonutil.AddType[ObjectResult](idx, "ObjectResult")
	jsonutil.AddType[SetObject](idx, "SetObject")
	jsonutil.AddType[SetObjectInfo](idx, "SetObjectInfo")
	jsonutil.AddType[SetObjectsRequest](idx, "SetObjectsRequest")
	jsonutil.AddType[SetObjectsResponse](idx, "SetObjectsResponse")
	idx.AddEnum("OperationTypes", operationTypesNames)

	return idx
}
