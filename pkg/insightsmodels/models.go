// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package insightsmodels

import "playfab-models-go/pkg/jsonutil"

type InsightsEmptyRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type InsightsGetDetailsResponse struct {
	DataUsageMb       uint32                               `json:"DataUsageMb"`
	ErrorMessage      string                               `json:"ErrorMessage,omitempty"`
	Limits            *InsightsGetLimitsResponse           `json:"Limits,omitempty"`
	PendingOperations []InsightsGetOperationStatusResponse `json:"PendingOperations,omitempty"`
	PerformanceLevel  int32                                `json:"PerformanceLevel"`
	RetentionDays     int32                                `json:"RetentionDays"`
}

type InsightsGetLimitsResponse struct {
	DefaultPerformanceLevel     int32                      `json:"DefaultPerformanceLevel"`
	DefaultStorageRetentionDays int32                      `json:"DefaultStorageRetentionDays"`
	StorageMaxRetentionDays     int32                      `json:"StorageMaxRetentionDays"`
	StorageMinRetentionDays     int32                      `json:"StorageMinRetentionDays"`
	SubMeters                   []InsightsPerformanceLevel `json:"SubMeters,omitempty"`
}

type InsightsGetOperationStatusRequest struct {
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	OperationID string            `json:"OperationId,omitempty"`
}

type InsightsGetOperationStatusResponse struct {
	Message                string        `json:"Message,omitempty"`
	OperationCompletedTime jsonutil.Time `json:"OperationCompletedTime"`
	OperationID            string        `json:"OperationId,omitempty"`
	OperationLastUpdated   jsonutil.Time `json:"OperationLastUpdated"`
	OperationStartedTime   jsonutil.Time `json:"OperationStartedTime"`
	OperationType          string        `json:"OperationType,omitempty"`
	OperationValue         int32         `json:"OperationValue"`
	Status                 string        `json:"Status,omitempty"`
}

type InsightsGetPendingOperationsRequest struct {
	CustomTags    map[string]string `json:"CustomTags,omitempty"`
	OperationType string            `json:"OperationType,omitempty"`
}

type InsightsGetPendingOperationsResponse struct {
	PendingOperations []InsightsGetOperationStatusResponse `json:"PendingOperations,omitempty"`
}

type InsightsOperationResponse struct {
	Message       string `json:"Message,omitempty"`
	OperationID   string `json:"OperationId,omitempty"`
	OperationType string `json:"OperationType,omitempty"`
}

type InsightsPerformanceLevel struct {
	ActiveEventExports  int32   `json:"ActiveEventExports"`
	CacheSizeMB         int32   `json:"CacheSizeMB"`
	Concurrency         int32   `json:"Concurrency"`
	CreditsPerMinute    float64 `json:"CreditsPerMinute"`
	EventsPerSecond     int32   `json:"EventsPerSecond"`
	Level               int32   `json:"Level"`
	MaxMemoryPerQueryMB int32   `json:"MaxMemoryPerQueryMB"`
	VirtualCpuCores     int32   `json:"VirtualCpuCores"`
}

type InsightsSetPerformanceRequest struct {
	CustomTags       map[string]string `json:"CustomTags,omitempty"`
	PerformanceLevel int32             `json:"PerformanceLevel"`
}

type InsightsSetStorageRetentionRequest struct {
	CustomTags    map[string]string `json:"CustomTags,omitempty"`
	RetentionDays int32             `json:"RetentionDays"`
}
