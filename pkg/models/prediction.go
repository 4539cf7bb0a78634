package models

// Prediction is one forecasted sales value for a future period, optionally
// scoped to a product category. ID is zero until the backend persists the
// entry; a freshly generated batch may contain unsaved predictions.
// Predictions are immutable once created and are held in memory only.
type Prediction struct {
	ID         int64   `json:"id,omitempty"`
	Date       string  `json:"fecha_prediccion"`
	Value      float64 `json:"valor_predicho"`
	Confidence float64 `json:"confianza"`
	CategoryID *int64  `json:"categoria_id,omitempty"`
}

// Saved reports whether the prediction has been persisted by the backend.
func (p Prediction) Saved() bool {
	return p.ID != 0
}

// PredictionSummary aggregates a freshly generated batch.
type PredictionSummary struct {
	TotalProjected float64 `json:"total_proyectado"`
	MonthlyAverage float64 `json:"promedio_mensual"`
	Count          int     `json:"cantidad"`
}

// TrendInfo describes the direction of the projected series relative to
// recent history.
type TrendInfo struct {
	Direction     string  `json:"direccion"`
	ChangePercent float64 `json:"variacion_porcentual"`
}

// AggregatePoint is one point of the aggregated sales history used to
// contrast predictions against actuals.
type AggregatePoint struct {
	Date  string  `json:"fecha"`
	Total float64 `json:"total_ventas"`
}

// Category is a product category usable as a prediction filter.
type Category struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
