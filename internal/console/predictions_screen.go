package console

import (
	"github.com/smartsales365/console/internal/predictions"
	"github.com/smartsales365/console/pkg/models"
)

// GenerationParams are the user-selected prediction parameters.
type GenerationParams struct {
	Periodo     string
	MonthsAhead int
	CategoryID  *int64
}

// DefaultGenerationParams mirror the screen's initial selection.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{Periodo: "mes", MonthsAhead: 3}
}

// PredictionsState is the full view state of the sales-predictions screen.
type PredictionsState struct {
	Status      *models.ModelStatus
	Predictions []models.Prediction // merged working set, recent first
	Recent      []models.Prediction // batch generated this session
	History     []models.AggregatePoint
	Categories  []models.Category
	Summary     *models.PredictionSummary
	Trends      *models.TrendInfo
	Params      GenerationParams

	Generation uint64 // tag of the latest issued generation request
	Generating bool
	Training   bool
	Exporting  bool

	ErrorMessage string
}

// NewPredictionsState returns the screen's initial state.
func NewPredictionsState() PredictionsState {
	return PredictionsState{Params: DefaultGenerationParams()}
}

// ChartSeries is the combined, date-ordered series for rendering.
func (s PredictionsState) ChartSeries() []predictions.ChartPoint {
	return predictions.BuildSeries(s.History, s.Predictions)
}

// ReducePredictions applies one event to the predictions screen state.
// It is pure: no IO, no mutation of the input.
func ReducePredictions(s PredictionsState, e Event) PredictionsState {
	switch ev := e.(type) {
	case StatusLoaded:
		s.Status = ev.Status
		// Training ends when the model comes back activo with no job.
		if s.Training && ev.Status.Active() && !ev.Status.TrainingInProgress() {
			s.Training = false
		}

	case TrainRequested:
		s.Training = true
		s.ErrorMessage = ""

	case TrainFailed:
		s.Training = false
		s.ErrorMessage = ev.Err.Error()

	case GenerateRequested:
		s.Generating = true
		s.Generation = ev.Generation
		s.Params = ev.Params
		s.ErrorMessage = ""

	case GenerateSucceeded:
		if ev.Generation != s.Generation {
			return s // superseded by a newer request
		}
		s.Generating = false
		s.Recent = ev.Result.Predictions
		s.Predictions = ev.Result.Predictions
		s.Summary = ev.Result.Summary
		s.Trends = ev.Result.Trends

	case GenerateFailed:
		if ev.Generation != s.Generation {
			return s
		}
		s.Generating = false
		s.ErrorMessage = ev.Err.Error()

	case PredictionsLoaded:
		s.Predictions = predictions.Merge(s.Recent, ev.Predictions)

	case HistoryLoaded:
		s.History = ev.Points

	case CategoriesLoaded:
		s.Categories = ev.Categories

	case ExportStarted:
		s.Exporting = true
		s.ErrorMessage = ""

	case ExportFinished:
		s.Exporting = false
		if ev.Err != nil {
			s.ErrorMessage = ev.Err.Error()
		}

	case ErrorDismissed:
		s.ErrorMessage = ""
	}
	return s
}
