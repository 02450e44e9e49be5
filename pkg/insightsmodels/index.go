// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package insightsmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "insights"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[InsightsEmptyRequest](idx, "InsightsEmptyRequest")
	jsonutil.AddType[InsightsGetDetailsResponse](idx, "InsightsGetDetailsResponse")
	jsonutil.AddType[InsightsGetLimitsResponse](idx, "InsightsGetLimitsResponse")
	jsonutil.AddType[InsightsGetOperationStatusRequest](idx, "InsightsGetOperationStatusRequest")
	jsonutil.AddType[InsightsGetOperationStatusResponse](idx, "InsightsGetOperationStatusResponse")
	jsonutil.AddType[InsightsGetPendingOperationsRequest](idx, "InsightsGetPendingOperationsRequest")
	jsonutil.AddType[InsightsGetPendingOperationsResponse](idx, "InsightsGetPendingOperationsResponse")
	jsonutil.AddType[InsightsOperationResponse](idx, "InsightsOperationResponse")
	jsonutil.AddType[InsightsPerformanceLevel](idx, "InsightsPerformanceLevel")
	jsonutil.AddType[InsightsSetPerformanceRequest](idx, "InsightsSetPerformanceRequest")
	jsonutil.AddType[InsightsSetStorageRetentionRequest](idx, "InsightsSetStorageRetentionRequest")

	return idx
}
