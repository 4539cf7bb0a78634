// Package console models each admin screen as an explicit state struct with
// a pure reducer. Controllers perform the IO and feed the resulting events
// in; every transition is testable without a UI harness.
package console

import (
	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/pkg/models"
)

// Event is a state-machine input for a screen reducer. Reducers ignore
// events they do not handle, so shared events (status loads, training
// lifecycle) apply to every screen that cares.
type Event interface {
	event()
}

// StatusLoaded carries a fresh model status snapshot. The snapshot
// supersedes the previous one wholesale.
type StatusLoaded struct {
	Status *models.ModelStatus
}

// StatusLoadFailed reports a failed status fetch.
type StatusLoadFailed struct {
	Err error
}

// TrainRequested marks a training request in flight.
type TrainRequested struct{}

// TrainFailed reports that the backend did not accept the training request.
type TrainFailed struct {
	Err error
}

// UpdateRequested marks a model-update request in flight.
type UpdateRequested struct{}

// UpdateFailed reports that the backend did not accept the update request.
type UpdateFailed struct {
	Err error
}

// TrainingHistoryLoaded replaces the training-run history.
type TrainingHistoryLoaded struct {
	Entries []models.TrainingHistoryEntry
}

// GenerateRequested marks a prediction generation in flight. Generation is
// the request tag; responses carrying an older tag are discarded.
type GenerateRequested struct {
	Generation uint64
	Params     GenerationParams
}

// GenerateSucceeded delivers a freshly generated batch.
type GenerateSucceeded struct {
	Generation uint64
	Result     api.GeneratePredictionsResult
}

// GenerateFailed reports a failed generation request.
type GenerateFailed struct {
	Generation uint64
	Err        error
}

// PredictionsLoaded delivers the persisted prediction list; the reducer
// merges it with the recent batch.
type PredictionsLoaded struct {
	Predictions []models.Prediction
}

// HistoryLoaded replaces the aggregated sales history series.
type HistoryLoaded struct {
	Points []models.AggregatePoint
}

// CategoriesLoaded replaces the category filter options.
type CategoriesLoaded struct {
	Categories []models.Category
}

// ExportStarted and ExportFinished bracket a report export.
type ExportStarted struct{}

type ExportFinished struct {
	Err error
}

// ErrorDismissed clears the screen's error message.
type ErrorDismissed struct{}

func (StatusLoaded) event()          {}
func (StatusLoadFailed) event()      {}
func (TrainRequested) event()        {}
func (TrainFailed) event()           {}
func (UpdateRequested) event()       {}
func (UpdateFailed) event()          {}
func (TrainingHistoryLoaded) event() {}
func (GenerateRequested) event()     {}
func (GenerateSucceeded) event()     {}
func (GenerateFailed) event()        {}
func (PredictionsLoaded) event()     {}
func (HistoryLoaded) event()         {}
func (CategoriesLoaded) event()      {}
func (ExportStarted) event()         {}
func (ExportFinished) event()        {}
func (ErrorDismissed) event()        {}
