package models

// StoreSettings is the store configuration blob cached locally under the
// configuracion_tienda key. It is read with defaulting on load and written
// wholesale on save; there is no schema versioning.
type StoreSettings struct {
	StoreName       string `json:"nombre_tienda"`
	Description     string `json:"descripcion"`
	ContactEmail    string `json:"email_contacto"`
	Phone           string `json:"telefono"`
	City            string `json:"ciudad"`
	Country         string `json:"pais"`
	Currency        string `json:"moneda"`
	Timezone        string `json:"zona_horaria"`
	Notifications   bool   `json:"notificaciones_sistema"`
	AutoModelUpdate bool   `json:"actualizacion_automatica"`
}

// DefaultStoreSettings returns the settings applied when no value has been
// saved yet, or for keys missing from a saved blob.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		StoreName:       "SmartSales365",
		Description:     "Sistema de gestión de ventas inteligente",
		ContactEmail:    "",
		Phone:           "",
		City:            "La Paz",
		Country:         "Bolivia",
		Currency:        "BOB",
		Timezone:        "America/La_Paz",
		Notifications:   true,
		AutoModelUpdate: true,
	}
}
