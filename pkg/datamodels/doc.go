// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package datamodels holds the PlayFab Data API (entity files and objects) records.
package datamodels
