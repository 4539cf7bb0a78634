package models

import "time"

// Model lifecycle states reported by the backend.
const (
	ModelStateActive   = "activo"
	ModelStateTraining = "entrenando"
	ModelStateError    = "error"
	ModelStateRetired  = "retirado"
)

// Training run states in the history feed.
const (
	TrainingStateStarted   = "iniciado"
	TrainingStateCompleted = "completado"
	TrainingStateFailed    = "error"
)

// ModelStatus is the full status snapshot of the prediction model. Each
// refresh supersedes the previous snapshot wholesale; there is no partial
// merge.
type ModelStatus struct {
	Model          *ModelInfo        `json:"modelo"`
	ActiveTraining *ActiveTraining   `json:"entrenamiento_activo"`
	Availability   *DataAvailability `json:"datos_disponibles"`
}

// TrainingInProgress reports whether a training or update job is running.
func (s *ModelStatus) TrainingInProgress() bool {
	return s != nil && s.ActiveTraining != nil && s.ActiveTraining.InProgress
}

// Active reports whether the model is in the activo lifecycle state.
func (s *ModelStatus) Active() bool {
	return s != nil && s.Model != nil && s.Model.State == ModelStateActive
}

// ModelInfo describes the current trained model.
type ModelInfo struct {
	Name            string        `json:"nombre"`
	Version         string        `json:"version"`
	Algorithm       string        `json:"algoritmo"`
	State           string        `json:"estado"`
	Metrics         *ModelMetrics `json:"metricas,omitempty"`
	TrainingRecords int           `json:"registros_entrenamiento"`
	TrainedAt       *time.Time    `json:"fecha_entrenamiento,omitempty"`
	LastUpdatedAt   *time.Time    `json:"fecha_ultima_actualizacion,omitempty"`
	NextUpdateAt    *time.Time    `json:"proxima_actualizacion,omitempty"`
}

// ModelMetrics holds regression quality metrics. Pointers distinguish a
// missing metric from a zero value.
type ModelMetrics struct {
	R2Score *float64 `json:"r2_score,omitempty"`
	RMSE    *float64 `json:"rmse,omitempty"`
	MAE     *float64 `json:"mae,omitempty"`
}

// ActiveTraining describes an in-flight training or update job.
type ActiveTraining struct {
	InProgress       bool       `json:"en_curso"`
	RecordsProcessed int        `json:"registros_procesados"`
	StartedAt        *time.Time `json:"fecha_inicio,omitempty"`
}

// DataAvailability summarizes the sales data available for training.
type DataAvailability struct {
	TotalSales int  `json:"ventas_totales"`
	Sufficient bool `json:"suficientes_datos"`
}

// TrainingHistoryEntry is an immutable record of a past training run.
type TrainingHistoryEntry struct {
	ID               int64         `json:"id"`
	State            string        `json:"estado"`
	StartedAt        *time.Time    `json:"fecha_inicio,omitempty"`
	Metrics          *ModelMetrics `json:"metricas,omitempty"`
	RecordsProcessed int           `json:"registros_procesados"`
	DurationSeconds  *float64      `json:"duracion_segundos,omitempty"`
	ErrorMessage     *string       `json:"mensaje_error,omitempty"`
}
