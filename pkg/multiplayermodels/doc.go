// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package multiplayermodels holds the PlayFab Multiplayer API records: server
// builds, matchmaking queues and tickets, lobbies and party networks.
package multiplayermodels
