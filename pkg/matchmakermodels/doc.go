// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package matchmakermodels holds the records exchanged with a custom matchmaker
// through the PlayFab Matchmaker API.
package matchmakermodels
