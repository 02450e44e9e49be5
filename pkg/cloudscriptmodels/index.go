// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cloudscriptmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "cloudscript"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[AdCampaignAttributionModel](idx, "AdCampaignAttributionModel")
	jsonutil.AddType[ContactEmailInfoModel](idx, "ContactEmailInfoModel")
	jsonutil.AddType[EmptyResult](idx, "EmptyResult")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[ExecuteCloudScriptResult](idx, "ExecuteCloudScriptResult")
	jsonutil.AddType[ExecuteEntityCloudScriptRequest](idx, "ExecuteEntityCloudScriptRequest")
	jsonutil.AddType[ExecuteFunctionRequest](idx, "ExecuteFunctionRequest")
	jsonutil.AddType[ExecuteFunctionResult](idx, "ExecuteFunctionResult")
	jsonutil.AddType[FunctionExecutionError](idx, "FunctionExecutionError")
	jsonutil.AddType[FunctionModel](idx, "FunctionModel")
	jsonutil.AddType[GetFunctionRequest](idx, "GetFunctionRequest")
	jsonutil.AddType[GetFunctionResult](idx, "GetFunctionResult")
	jsonutil.AddType[HTTPFunctionModel](idx, "HttpFunctionModel")
	jsonutil.AddType[LinkedPlatformAccountModel](idx, "LinkedPlatformAccountModel")
	jsonutil.AddType[ListFunctionsRequest](idx, "ListFunctionsRequest")
	jsonutil.AddType[ListFunctionsResult](idx, "ListFunctionsResult")
	jsonutil.AddType[ListHTTPFunctionsResult](idx, "ListHttpFunctionsResult")
	jsonutil.AddType[ListQueuedFunctionsResult](idx, "ListQueuedFunctionsResult")
	jsonutil.AddType[LocationModel](idx, "LocationModel")
	jsonutil.AddType[LogStatement](idx, "LogStatement")
	jsonutil.AddType[MembershipModel](idx, "MembershipModel")
	jsonutil.AddType[NameIdentifier](idx, "NameIdentifier")
	jsonutil.AddType[PlayStreamEventEnvelopeModel](idx, "PlayStreamEventEnvelopeModel")
	jsonutil.AddType[PlayerProfileModel](idx, "PlayerProfileModel")
	jsonutil.AddType[PostFunctionResultForEntityTriggeredActionRequest](idx, "PostFunctionResultForEntityTriggeredActionRequest")
	jsonutil.AddType[PostFunctionResultForFunctionExecutionRequest](idx, "PostFunctionResultForFunctionExecutionRequest")
	jsonutil.AddType[PostFunctionResultForPlayerTriggeredActionRequest](idx, "PostFunctionResultForPlayerTriggeredActionRequest")
	jsonutil.AddType[PostFunctionResultForScheduledTaskRequest](idx, "PostFunctionResultForScheduledTaskRequest")
	jsonutil.AddType[PushNotificationRegistrationModel](idx, "PushNotificationRegistrationModel")
	jsonutil.AddType[QueuedFunctionModel](idx, "QueuedFunctionModel")
	jsonutil.AddType[RegisterHTTPFunctionRequest](idx, "RegisterHttpFunctionRequest")
	jsonutil.AddType[RegisterQueuedFunctionRequest](idx, "RegisterQueuedFunctionRequest")
	jsonutil.AddType[ScriptExecutionError](idx, "ScriptExecutionError")
	jsonutil.AddType[StatisticModel](idx, "StatisticModel")
	jsonutil.AddType[SubscriptionModel](idx, "SubscriptionModel")
	jsonutil.AddType[TagModel](idx, "TagModel")
	jsonutil.AddType[UnregisterFunctionRequest](idx, "UnregisterFunctionRequest")
	jsonutil.AddType[ValueToDateModel](idx, "ValueToDateModel")
	idx.AddEnum("CloudScriptRevisionOption", cloudScriptRevisionOptionNames)
	idx.AddEnum("ContinentCode", continentCodeNames)
	idx.AddEnum("CountryCode", countryCodeNames)
	idx.AddEnum("EmailVerificationStatus", emailVerificationStatusNames)
	idx.AddEnum("LoginIdentityProvider", loginIdentityProviderNames)
	idx.AddEnum("PushNotificationPlatform", pushNotificationPlatformNames)
	idx.AddEnum("SubscriptionProviderStatus", subscriptionProviderStatusNames)
	idx.AddEnum("TriggerType", triggerTypeNames)

	return idx
}
