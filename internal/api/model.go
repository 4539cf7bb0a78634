package api

import (
	"context"
	"net/http"

	"github.com/smartsales365/console/pkg/models"
)

type modelStatusResponse struct {
	envelope
	Modelo         *models.ModelInfo        `json:"modelo"`
	ActiveTraining *models.ActiveTraining   `json:"entrenamiento_activo"`
	Availability   *models.DataAvailability `json:"datos_disponibles"`
}

type trainingHistoryResponse struct {
	envelope
	Historiales []models.TrainingHistoryEntry `json:"historiales"`
}

func (c *HTTPClient) ModelStatus(ctx context.Context) (*models.ModelStatus, error) {
	var out modelStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/modelo/estado/", nil, nil, &out,
		"Error al obtener el estado del modelo"); err != nil {
		return nil, err
	}
	return &models.ModelStatus{
		Model:          out.Modelo,
		ActiveTraining: out.ActiveTraining,
		Availability:   out.Availability,
	}, nil
}

// TrainModel asks the backend to start a full training run. The call returns
// as soon as the job is accepted; progress is observed by polling ModelStatus.
func (c *HTTPClient) TrainModel(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/dashboard/modelo/entrenar/", nil, nil, nil,
		"Error al entrenar el modelo")
}

// UpdateModel asks the backend to refit the model with recent data only.
func (c *HTTPClient) UpdateModel(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/dashboard/modelo/actualizar/", nil, nil, nil,
		"Error al actualizar el modelo")
}

func (c *HTTPClient) TrainingHistory(ctx context.Context) ([]models.TrainingHistoryEntry, error) {
	var out trainingHistoryResponse
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/modelo/historial/", nil, nil, &out,
		"Error al obtener el historial de entrenamientos"); err != nil {
		return nil, err
	}
	return out.Historiales, nil
}
