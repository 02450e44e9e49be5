// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package cloudscriptmodels holds the PlayFab CloudScript API records, including
// the player profile model delivered to Azure Functions.
package cloudscriptmodels
