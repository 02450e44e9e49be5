// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package experimentationmodels

import "playfab-models-go/pkg/jsonutil"

type CreateExclusionGroupRequest struct {
	CustomTags  map[string]string `json:"CustomTags,omitempty"`
	Description string            `json:"Description,omitempty"`
	Name        string            `json:"Name,omitempty"`
}

type CreateExclusionGroupResult struct {
	ExclusionGroupID string `json:"ExclusionGroupId,omitempty"`
}

type CreateExperimentRequest struct {
	CustomTags                      map[string]string `json:"CustomTags,omitempty"`
	Description                     string            `json:"Description,omitempty"`
	EndDate                         *jsonutil.Time    `json:"EndDate,omitempty"`
	ExclusionGroupID                string            `json:"ExclusionGroupId,omitempty"`
	ExclusionGroupTrafficAllocation *uint32           `json:"ExclusionGroupTrafficAllocation,omitempty"`
	ExperimentType                  *ExperimentType   `json:"ExperimentType,omitempty"`
	Name                            string            `json:"Name,omitempty"`
	SegmentID                       string            `json:"SegmentId,omitempty"`
	StartDate                       jsonutil.Time     `json:"StartDate"`
	TitlePlayerAccountTestIDs       []string          `json:"TitlePlayerAccountTestIds,omitempty"`
	Variants                        []Variant         `json:"Variants,omitempty"`
}

type CreateExperimentResult struct {
	ExperimentID string `json:"ExperimentId,omitempty"`
}

type DeleteExclusionGroupRequest struct {
	CustomTags       map[string]string `json:"CustomTags,omitempty"`
	ExclusionGroupID string            `json:"ExclusionGroupId,omitempty"`
}

type DeleteExperimentRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ExperimentID string            `json:"ExperimentId,omitempty"`
}

type EmptyResponse struct{}

type EntityKey struct {
	ID   string `json:"Id,omitempty"`
	Type string `json:"Type,omitempty"`
}

type ExclusionGroupTrafficAllocation struct {
	ExperimentID      string `json:"ExperimentId,omitempty"`
	TrafficAllocation uint32 `json:"TrafficAllocation"`
}

type Experiment struct {
	Description                     string           `json:"Description,omitempty"`
	EndDate                         *jsonutil.Time   `json:"EndDate,omitempty"`
	ExclusionGroupID                string           `json:"ExclusionGroupId,omitempty"`
	ExclusionGroupTrafficAllocation *uint32          `json:"ExclusionGroupTrafficAllocation,omitempty"`
	ExperimentType                  *ExperimentType  `json:"ExperimentType,omitempty"`
	ID                              string           `json:"Id,omitempty"`
	Name                            string           `json:"Name,omitempty"`
	SegmentID                       string           `json:"SegmentId,omitempty"`
	StartDate                       jsonutil.Time    `json:"StartDate"`
	State                           *ExperimentState `json:"State,omitempty"`
	TitlePlayerAccountTestIDs       []string         `json:"TitlePlayerAccountTestIds,omitempty"`
	Variants                        []Variant        `json:"Variants,omitempty"`
}

type ExperimentExclusionGroup struct {
	Description      string `json:"Description,omitempty"`
	ExclusionGroupID string `json:"ExclusionGroupId,omitempty"`
	Name             string `json:"Name,omitempty"`
}

type GetExclusionGroupTrafficRequest struct {
	CustomTags       map[string]string `json:"CustomTags,omitempty"`
	ExclusionGroupID string            `json:"ExclusionGroupId,omitempty"`
}

type GetExclusionGroupTrafficResult struct {
	TrafficAllocations []ExclusionGroupTrafficAllocation `json:"TrafficAllocations,omitempty"`
}

type GetExclusionGroupsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetExclusionGroupsResult struct {
	ExclusionGroups []ExperimentExclusionGroup `json:"ExclusionGroups,omitempty"`
}

type GetExperimentsRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

type GetExperimentsResult struct {
	Experiments []Experiment `json:"Experiments,omitempty"`
}

type GetLatestScorecardRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ExperimentID string            `json:"ExperimentId,omitempty"`
}

type GetLatestScorecardResult struct {
	Scorecard *Scorecard `json:"Scorecard,omitempty"`
}

type GetTreatmentAssignmentRequest struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	Entity     *EntityKey        `json:"Entity,omitempty"`
}

type GetTreatmentAssignmentResult struct {
	TreatmentAssignment *TreatmentAssignment `json:"TreatmentAssignment,omitempty"`
}

type MetricData struct {
	ConfidenceIntervalEnd   float64 `json:"ConfidenceIntervalEnd"`
	ConfidenceIntervalStart float64 `json:"ConfidenceIntervalStart"`
	DeltaAbsoluteChange     float32 `json:"DeltaAbsoluteChange"`
	DeltaRelativeChange     float32 `json:"DeltaRelativeChange"`
	InternalName            string  `json:"InternalName,omitempty"`
	Movement                string  `json:"Movement,omitempty"`
	Name                    string  `json:"Name,omitempty"`
	PMove                   float32 `json:"PMove"`
	PValue                  float32 `json:"PValue"`
	PValueThreshold         float32 `json:"PValueThreshold"`
	StatSigLevel            string  `json:"StatSigLevel,omitempty"`
	StdDev                  float32 `json:"StdDev"`
	Value                   float32 `json:"Value"`
}

type Scorecard struct {
	DateGenerated       string             `json:"DateGenerated,omitempty"`
	Duration            string             `json:"Duration,omitempty"`
	EventsProcessed     float64            `json:"EventsProcessed"`
	ExperimentID        string             `json:"ExperimentId,omitempty"`
	ExperimentName      string             `json:"ExperimentName,omitempty"`
	LatestJobStatus     *AnalysisTaskState `json:"LatestJobStatus,omitempty"`
	SampleRatioMismatch bool               `json:"SampleRatioMismatch"`
	ScorecardDataRows   []ScorecardDataRow `json:"ScorecardDataRows,omitempty"`
}

type ScorecardDataRow struct {
	IsControl      bool                  `json:"IsControl"`
	MetricDataRows map[string]MetricData `json:"MetricDataRows,omitempty"`
	PlayerCount    uint32                `json:"PlayerCount"`
	VariantName    string                `json:"VariantName,omitempty"`
}

type StartExperimentRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ExperimentID string            `json:"ExperimentId,omitempty"`
}

type StopExperimentRequest struct {
	CustomTags   map[string]string `json:"CustomTags,omitempty"`
	ExperimentID string            `json:"ExperimentId,omitempty"`
}

type TreatmentAssignment struct {
	Variables []Variable `json:"Variables,omitempty"`
	Variants  []string   `json:"Variants,omitempty"`
}

type UpdateExclusionGroupRequest struct {
	CustomTags       map[string]string `json:"CustomTags,omitempty"`
	Description      string            `json:"Description,omitempty"`
	ExclusionGroupID string            `json:"ExclusionGroupId,omitempty"`
	Name             string            `json:"Name,omitempty"`
}

type UpdateExperimentRequest struct {
	CustomTags                      map[string]string `json:"CustomTags,omitempty"`
	Description                     string            `json:"Description,omitempty"`
	EndDate                         *jsonutil.Time    `json:"EndDate,omitempty"`
	ExclusionGroupID                string            `json:"ExclusionGroupId,omitempty"`
	ExclusionGroupTrafficAllocation *uint32           `json:"ExclusionGroupTrafficAllocation,omitempty"`
	ExperimentType                  *ExperimentType   `json:"ExperimentType,omitempty"`
	ID                              string            `json:"Id,omitempty"`
	Name                            string            `json:"Name,omitempty"`
	SegmentID                       string            `json:"SegmentId,omitempty"`
	StartDate                       jsonutil.Time     `json:"StartDate"`
	TitlePlayerAccountTestIDs       []string          `json:"TitlePlayerAccountTestIds,omitempty"`
	Variants                        []Variant         `json:"Variants,omitempty"`
}

type Variable struct {
	Name  string `json:"Name,omitempty"`
	Value string `json:"Value,omitempty"`
}

// Variant is one arm of an experiment.
type Variant struct {
	Description            string     `json:"Description,omitempty"`
	ID                     string     `json:"Id,omitempty"`
	IsControl              bool       `json:"IsControl"`
	Name                   string     `json:"Name,omitempty"`
	TitleDataOverrideLabel string     `json:"TitleDataOverrideLabel,omitempty"`
	TrafficPercentage      uint32     `json:"TrafficPercentage"`
	Variables              []Variable `json:"Variables,omitempty"`
}
