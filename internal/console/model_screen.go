package console

import "github.com/smartsales365/console/pkg/models"

// ModelAdminState is the view state of the model-management screen.
type ModelAdminState struct {
	Status  *models.ModelStatus
	History []models.TrainingHistoryEntry

	Loading  bool
	Training bool
	Updating bool

	ErrorMessage string
}

// NewModelAdminState returns the screen's initial state: loading until the
// first status arrives.
func NewModelAdminState() ModelAdminState {
	return ModelAdminState{Loading: true}
}

// ReduceModelAdmin applies one event to the model-management screen state.
func ReduceModelAdmin(s ModelAdminState, e Event) ModelAdminState {
	switch ev := e.(type) {
	case StatusLoaded:
		s.Status = ev.Status
		s.Loading = false
		if !ev.Status.TrainingInProgress() {
			s.Training = false
			s.Updating = false
		}

	case StatusLoadFailed:
		s.Loading = false
		s.ErrorMessage = ev.Err.Error()

	case TrainRequested:
		s.Training = true
		s.ErrorMessage = ""

	case TrainFailed:
		s.Training = false
		s.ErrorMessage = ev.Err.Error()

	case UpdateRequested:
		s.Updating = true
		s.ErrorMessage = ""

	case UpdateFailed:
		s.Updating = false
		s.ErrorMessage = ev.Err.Error()

	case TrainingHistoryLoaded:
		s.History = ev.Entries

	case ErrorDismissed:
		s.ErrorMessage = ""
	}
	return s
}

// CanTrain reports whether the train action is available: not while a job or
// another request is already running.
func (s ModelAdminState) CanTrain() bool {
	return !s.Training && !s.Updating && !s.Status.TrainingInProgress()
}

// CanUpdate reports whether the update action is available. A retired model
// cannot be updated, only retrained.
func (s ModelAdminState) CanUpdate() bool {
	if s.Training || s.Updating || s.Status.TrainingInProgress() {
		return false
	}
	if s.Status != nil && s.Status.Model != nil && s.Status.Model.State == models.ModelStateRetired {
		return false
	}
	return true
}
