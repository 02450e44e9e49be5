// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package clientmodels holds the request and result records of the PlayFab
// Client API together with the enumerations they reference.
//
// Records are plain structs. Decode them with jsonutil.Decode to get the
// permissive behaviour the service relies on: unknown keys are ignored, values of
// the wrong shape leave the field as it was and unknown enum strings leave the
// enum unset.
package clientmodels
