// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package experimentationmodels holds the PlayFab Experimentation API records.
package experimentationmodels
