package models

import "time"

// Receipt kinds accepted by the generation endpoint.
const (
	ReceiptInvoice = "factura"
	ReceiptTicket  = "recibo"
)

// Receipt is a sale receipt (factura or recibo) generated by the backend.
type Receipt struct {
	ID       int64      `json:"id"`
	SaleID   int64      `json:"venta_id"`
	Kind     string     `json:"tipo"`
	Number   string     `json:"numero"`
	IssuedAt *time.Time `json:"fecha_emision,omitempty"`
	Total    float64    `json:"total"`
}
