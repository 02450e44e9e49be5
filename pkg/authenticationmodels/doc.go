// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package authenticationmodels holds the PlayFab Authentication API records.
package authenticationmodels
