// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package experimentationmodels

import "playfab-models-go/pkg/jsonutil"

type AnalysisTaskState int32

const (
	AnalysisTaskStateWaiting AnalysisTaskState = iota + 1
	AnalysisTaskStateReadyForSubmission
	AnalysisTaskStateSubmittingToPipeline
	AnalysisTaskStateRunning
	AnalysisTaskStateCompleted
	AnalysisTaskStateFailed
	AnalysisTaskStateCanceled
)

var analysisTaskStateNames = jsonutil.NewEnumNames[AnalysisTaskState](
	"Waiting", "ReadyForSubmission", "SubmittingToPipeline", "Running", "Completed", "Failed",
	"Canceled",
)

func (v AnalysisTaskState) String() string { return analysisTaskStateNames.String(v) }
func (v AnalysisTaskState) IsValid() bool { return analysisTaskStateNames.IsValid(v) }
func (v AnalysisTaskState) MarshalJSON() ([]byte, error) { return analysisTaskStateNames.MarshalJSON(v) }

func (v *AnalysisTaskState) UnmarshalJSON(data []byte) error { return analysisTaskStateNames.UnmarshalJSON(data, v) }

func ParseAnalysisTaskState(s string) (AnalysisTaskState, bool) { return analysisTaskStateNames.Parse(s) }

type ExperimentState int32

const (
	ExperimentStateNew ExperimentState = iota + 1
	ExperimentStateStarted
	ExperimentStateStopped
	ExperimentStateDeleted
)

var experimentStateNames = jsonutil.NewEnumNames[ExperimentState]("New", "Started", "Stopped", "Deleted")

func (v ExperimentState) String() string { return experimentStateNames.String(v) }
func (v ExperimentState) IsValid() bool { return experimentStateNames.IsValid(v) }
func (v ExperimentState) MarshalJSON() ([]byte, error) { return experimentStateNames.MarshalJSON(v) }

func (v *ExperimentState) UnmarshalJSON(data []byte) error { return experimentStateNames.UnmarshalJSON(data, v) }

func ParseExperimentState(s string) (ExperimentState, bool) { return experimentStateNames.Parse(s) }

type ExperimentType int32

const (
	ExperimentTypeActive ExperimentType = iota + 1
	ExperimentTypeSnapshot
)

var experimentTypeNames = jsonutil.NewEnumNames[ExperimentType]("Active", "Snapshot")

func (v ExperimentType) String() string { return experimentTypeNames.String(v) }
func (v ExperimentType) IsValid() bool { return experimentTypeNames.IsValid(v) }
func (v ExperimentType) MarshalJSON() ([]byte, error) { return experimentTypeNames.MarshalJSON(v) }

func (v *ExperimentType) UnmarshalJSON(data []byte) error { return experimentTypeNames.UnmarshalJSON(data, v) }

func ParseExperimentType(s string) (ExperimentType, bool) { return experimentTypeNames.Parse(s) }
