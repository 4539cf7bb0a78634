package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartsales365/console/pkg/models"
)

type receiptResponse struct {
	envelope
	Comprobante *models.Receipt `json:"comprobante"`
}

type generateReceiptRequest struct {
	VentaID int64  `json:"venta_id"`
	Tipo    string `json:"tipo"`
}

func (c *HTTPClient) GenerateReceipt(ctx context.Context, saleID int64, kind string) (*models.Receipt, error) {
	if kind == "" {
		kind = models.ReceiptInvoice
	}
	var out receiptResponse
	body := generateReceiptRequest{VentaID: saleID, Tipo: kind}
	if err := c.doJSON(ctx, http.MethodPost, "/ventas/comprobantes/generar/", nil, body, &out,
		"Error al generar comprobante"); err != nil {
		return nil, err
	}
	return out.Comprobante, nil
}

func (c *HTTPClient) GetReceipt(ctx context.Context, saleID int64) (*models.Receipt, error) {
	var out receiptResponse
	path := fmt.Sprintf("/ventas/comprobantes/%d/", saleID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out,
		"Error al obtener comprobante"); err != nil {
		return nil, err
	}
	return out.Comprobante, nil
}

// DownloadReceiptPDF returns the raw PDF bytes for a sale's receipt.
func (c *HTTPClient) DownloadReceiptPDF(ctx context.Context, saleID int64) ([]byte, error) {
	path := fmt.Sprintf("/ventas/comprobantes/%d/pdf/", saleID)
	return c.doBinary(ctx, path, nil, "Error al descargar PDF")
}
