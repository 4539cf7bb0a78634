package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/smartsales365/console/pkg/models"
)

// Export formats accepted by the backend.
const (
	ExportPDF   = "pdf"
	ExportExcel = "excel"
)

// GeneratePredictionsRequest drives a prediction generation run.
// CategoryID nil means all categories.
type GeneratePredictionsRequest struct {
	Periodo     string `json:"periodo"`
	MonthsAhead int    `json:"meses_futuros"`
	CategoryID  *int64 `json:"categoria_id"`
	Save        bool   `json:"guardar"`
}

// GeneratePredictionsResult is the freshly generated batch plus the
// server-computed summary and trend information.
type GeneratePredictionsResult struct {
	Predictions []models.Prediction       `json:"predicciones"`
	Summary     *models.PredictionSummary `json:"resumen"`
	Trends      *models.TrendInfo         `json:"tendencias"`
}

type generatePredictionsResponse struct {
	envelope
	GeneratePredictionsResult
}

type listPredictionsResponse struct {
	envelope
	Predicciones []models.Prediction `json:"predicciones"`
}

type categoriesResponse struct {
	envelope
	Categorias []models.Category `json:"categorias"`
}

func (c *HTTPClient) GeneratePredictions(ctx context.Context, req GeneratePredictionsRequest) (*GeneratePredictionsResult, error) {
	var out generatePredictionsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/dashboard/predicciones/generar/", nil, req, &out,
		"Error al generar predicciones"); err != nil {
		return nil, err
	}
	return &out.GeneratePredictionsResult, nil
}

func (c *HTTPClient) ListPredictions(ctx context.Context, limit int) ([]models.Prediction, error) {
	q := Query{}
	if limit > 0 {
		q["limite"] = limit
	}
	var out listPredictionsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/predicciones/", q, nil, &out,
		"Error al obtener predicciones"); err != nil {
		return nil, err
	}
	return out.Predicciones, nil
}

// ExportPredictions downloads a prediction report. An empty ids slice means
// the backend exports every persisted prediction.
func (c *HTTPClient) ExportPredictions(ctx context.Context, format string, ids []int64) ([]byte, error) {
	q := Query{"formato": format}
	if len(ids) > 0 {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.FormatInt(id, 10)
		}
		q["ids"] = strings.Join(parts, ",")
	}
	return c.doBinary(ctx, "/dashboard/predicciones/exportar/", q, "Error al generar el reporte")
}

// historyPoint tolerates the field-name drift of the aggregated-history
// endpoint: the date may arrive as fecha, mes or periodo, and the value as
// total_ventas, ventas or total, numeric or quoted.
type historyPoint struct {
	Fecha       string `json:"fecha"`
	Mes         string `json:"mes"`
	Periodo     string `json:"periodo"`
	TotalVentas any    `json:"total_ventas"`
	Ventas      any    `json:"ventas"`
	Total       any    `json:"total"`
}

func (p historyPoint) date() string {
	switch {
	case p.Fecha != "":
		return p.Fecha
	case p.Mes != "":
		return p.Mes
	default:
		return p.Periodo
	}
}

func (p historyPoint) value() float64 {
	for _, v := range []any{p.TotalVentas, p.Ventas, p.Total} {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type salesHistoryResponse struct {
	envelope
	Historial []historyPoint `json:"historial"`
}

// SalesHistory returns the aggregated sales series, normalized to one date
// and one value per point.
func (c *HTTPClient) SalesHistory(ctx context.Context, groupBy string, periods int) ([]models.AggregatePoint, error) {
	q := Query{"agrupar_por": groupBy, "periodo": periods}
	var out salesHistoryResponse
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/historial-ventas/", q, nil, &out,
		"Error al obtener el historial de ventas"); err != nil {
		return nil, err
	}

	points := make([]models.AggregatePoint, 0, len(out.Historial))
	for _, h := range out.Historial {
		points = append(points, models.AggregatePoint{Date: h.date(), Total: h.value()})
	}
	return points, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out categoriesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/productos/categorias/", nil, nil, &out,
		"Error al obtener categorías"); err != nil {
		return nil, err
	}
	return out.Categorias, nil
}
