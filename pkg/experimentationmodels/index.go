// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package experimentationmodels

import "playfab-models-go/pkg/jsonutil"

// Service is the PlayFab API this package models.
const Service = "experimentation"

// Index lists the records and enumerations of the package by their PlayFab names.
func Index() *jsonutil.Index {
	idx := jsonutil.NewIndex(Service)
	jsonutil.AddType[CreateExclusionGroupRequest](idx, "CreateExclusionGroupRequest")
	jsonutil.AddType[CreateExclusionGroupResult](idx, "CreateExclusionGroupResult")
	jsonutil.AddType[CreateExperimentRequest](idx, "CreateExperimentRequest")
	jsonutil.AddType[CreateExperimentResult](idx, "CreateExperimentResult")
	jsonutil.AddType[DeleteExclusionGroupRequest](idx, "DeleteExclusionGroupRequest")
	jsonutil.AddType[DeleteExperimentRequest](idx, "DeleteExperimentRequest")
	jsonutil.AddType[EmptyResponse](idx, "EmptyResponse")
	jsonutil.AddType[EntityKey](idx, "EntityKey")
	jsonutil.AddType[ExclusionGroupTrafficAllocation](idx, "ExclusionGroupTrafficAllocation")
	jsonutil.AddType[Experiment](idx, "Experiment")
	jsonutil.AddType[ExperimentExclusionGroup](idx, "ExperimentExclusionGroup")
	jsonutil.AddType[GetExclusionGroupTrafficRequest](idx, "GetExclusionGroupTrafficRequest")
	jsonutil.AddType[GetExclusionGroupTrafficResult](idx, "GetExclusionGroupTrafficResult")
	jsonutil.AddType[GetExclusionGroupsRequest](idx, "GetExclusionGroupsRequest")
	jsonutil.AddType[GetExclusionGroupsResult](idx, "GetExclusionGroupsResult")
	jsonutil.AddType[GetExperimentsRequest](idx, "GetExperimentsRequest")
	jsonutil.AddType[GetExperimentsResult](idx, "GetExperimentsResult")
	jsonutil.AddType[GetLatestScorecardRequest](idx, "GetLatestScorecardRequest")
	jsonutil.AddType[GetLatestScorecardResult](idx, "GetLatestScorecardResult")
	jsonutil.AddType[GetTreatmentAssignmentRequest](idx, "GetTreatmentAssignmentRequest")
	jsonutil.AddType[GetTreatmentAssignmentResult](idx, "GetTreatmentAssignmentResult")
	jsonutil.AddType[MetricData](idx, "MetricData")
	jsonutil.AddType[Scorecard](idx, "Scorecard")
	jsonutil.AddType[ScorecardDataRow](idx, "ScorecardDataRow")
	jsonutil.AddType[StartExperimentRequest](idx, "StartExperimentRequest")
	jsonutil.AddType[StopExperimentRequest](idx, "StopExperimentRequest")
	jsonutil.AddType[TreatmentAssignment](idx, "TreatmentAssignment")
	jsonutil.AddType[UpdateExclusionGroupRequest](idx, "UpdateExclusionGroupRequest")
	jsonutil.AddType[UpdateExperimentRequest](idx, "UpdateExperimentRequest")
	jsonutil.AddType[Variable](idx, "Variable")
	jsonutil.AddType[Variant](idx, "Variant")
	idx.AddEnum("AnalysisTaskState", analysisTaskStateNames)
	idx.AddEnum("ExperimentState", experimentStateNames)
	idx.AddEnum("ExperimentType", experimentTypeNames)

	return idx
}
