package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartsales365/console/pkg/models"
)

type listCustomersResponse struct {
	envelope
	Clientes []models.Customer `json:"clientes"`
}

type customerResponse struct {
	envelope
	Cliente *models.Customer `json:"cliente"`
}

type customerSalesResponse struct {
	envelope
	Ventas []models.Sale `json:"ventas"`
}

func (c *HTTPClient) ListCustomers(ctx context.Context, filters Query) ([]models.Customer, error) {
	var out listCustomersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/clientes/", filters, nil, &out,
		"No se pudieron obtener los clientes"); err != nil {
		return nil, err
	}
	return out.Clientes, nil
}

func (c *HTTPClient) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var out customerResponse
	path := fmt.Sprintf("/clientes/%d/", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out,
		"No se pudo obtener el cliente"); err != nil {
		return nil, err
	}
	return out.Cliente, nil
}

func (c *HTTPClient) CustomerSales(ctx context.Context, id int64, filters Query) ([]models.Sale, error) {
	var out customerSalesResponse
	path := fmt.Sprintf("/clientes/%d/ventas/", id)
	if err := c.doJSON(ctx, http.MethodGet, path, filters, nil, &out,
		"No se pudo obtener el historial de compras"); err != nil {
		return nil, err
	}
	return out.Ventas, nil
}

func (c *HTTPClient) UpdateCustomer(ctx context.Context, cust models.Customer) (*models.Customer, error) {
	var out customerResponse
	path := fmt.Sprintf("/clientes/%d/", cust.ID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, cust, &out,
		"No se pudo actualizar el cliente"); err != nil {
		return nil, err
	}
	return out.Cliente, nil
}

// DeactivateCustomer performs a soft delete; the backend deactivates the
// record rather than removing it.
func (c *HTTPClient) DeactivateCustomer(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/clientes/%d/", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil,
		"No se pudo desactivar el cliente")
}
