package models

import "time"

// Customer is a retail client record.
type Customer struct {
	ID           int64      `json:"id"`
	Nombre       string     `json:"nombre"`
	Email        string     `json:"email,omitempty"`
	Telefono     string     `json:"telefono,omitempty"`
	Ciudad       string     `json:"ciudad,omitempty"`
	Activo       bool       `json:"activo"`
	RegisteredAt *time.Time `json:"fecha_registro,omitempty"`
}

// Sale is one sale belonging to a customer's purchase history.
type Sale struct {
	ID    int64      `json:"id"`
	Date  *time.Time `json:"fecha,omitempty"`
	Total float64    `json:"total"`
	State string     `json:"estado,omitempty"`
}
