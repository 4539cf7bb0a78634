package api

import (
	"context"
	"net/http"

	"github.com/smartsales365/console/pkg/models"
)

type dashboardStatsResponse struct {
	envelope
	Stats *models.DashboardStats `json:"stats"`
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out dashboardStatsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/ventas/dashboard/stats/", nil, nil, &out,
		"Error al obtener estadísticas"); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

// DemoDataRequest tells the seeder how many records to create and whether to
// wipe existing data first.
type DemoDataRequest struct {
	Ventas    int  `json:"ventas"`
	Productos int  `json:"productos"`
	Clientes  int  `json:"clientes"`
	Limpiar   bool `json:"limpiar"`
}

type demoDataResponse struct {
	envelope
	Summary *models.DemoDataSummary `json:"summary"`
}

// GenerateDemoData seeds demo data. When the client was built with a data
// token it is sent in the X-Data-Token header; otherwise the session cookie
// must authorize the call.
func (c *HTTPClient) GenerateDemoData(ctx context.Context, req DemoDataRequest) (*models.DemoDataSummary, error) {
	var headers map[string]string
	if c.dataToken != "" {
		headers = map[string]string{"X-Data-Token": c.dataToken}
	}

	var out demoDataResponse
	if err := c.do(ctx, http.MethodPost, "/ventas/admin/generar-datos-prueba/", nil, req, &out,
		"No se pudieron generar los datos", headers); err != nil {
		return nil, err
	}
	return out.Summary, nil
}
