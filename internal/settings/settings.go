// Package settings persists the store configuration blob. Storage is
// best-effort: an absent or corrupt blob loads as defaults, and keys missing
// from a saved blob are filled in individually.
package settings

import (
	"context"
	"encoding/json"

	"github.com/smartsales365/console/pkg/models"
)

// StorageKey is the key the configuration blob lives under, in both the file
// and Redis backends.
const StorageKey = "configuracion_tienda"

// Store reads and writes the store configuration. Implementations must be
// safe for concurrent use.
type Store interface {
	Load(ctx context.Context) (models.StoreSettings, error)
	Save(ctx context.Context, s models.StoreSettings) error
}

// storedSettings shadows models.StoreSettings with pointer fields so a
// missing key can be told apart from a zero value.
type storedSettings struct {
	StoreName       *string `json:"nombre_tienda"`
	Description     *string `json:"descripcion"`
	ContactEmail    *string `json:"email_contacto"`
	Phone           *string `json:"telefono"`
	City            *string `json:"ciudad"`
	Country         *string `json:"pais"`
	Currency        *string `json:"moneda"`
	Timezone        *string `json:"zona_horaria"`
	Notifications   *bool   `json:"notificaciones_sistema"`
	AutoModelUpdate *bool   `json:"actualizacion_automatica"`
}

// decode parses a stored blob, applying defaults for any missing key.
// A corrupt blob decodes to the full defaults.
func decode(data []byte) models.StoreSettings {
	out := models.DefaultStoreSettings()

	var stored storedSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		return out
	}

	if stored.StoreName != nil {
		out.StoreName = *stored.StoreName
	}
	if stored.Description != nil {
		out.Description = *stored.Description
	}
	if stored.ContactEmail != nil {
		out.ContactEmail = *stored.ContactEmail
	}
	if stored.Phone != nil {
		out.Phone = *stored.Phone
	}
	if stored.City != nil {
		out.City = *stored.City
	}
	if stored.Country != nil {
		out.Country = *stored.Country
	}
	if stored.Currency != nil {
		out.Currency = *stored.Currency
	}
	if stored.Timezone != nil {
		out.Timezone = *stored.Timezone
	}
	if stored.Notifications != nil {
		out.Notifications = *stored.Notifications
	}
	if stored.AutoModelUpdate != nil {
		out.AutoModelUpdate = *stored.AutoModelUpdate
	}
	return out
}

func encode(s models.StoreSettings) ([]byte, error) {
	return json.Marshal(s)
}
