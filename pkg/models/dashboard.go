package models

// DashboardStats is the aggregate snapshot behind the admin dashboard cards.
type DashboardStats struct {
	TotalSales     float64 `json:"ventas_totales"`
	MonthSales     float64 `json:"ventas_mes"`
	SaleCount      int     `json:"cantidad_ventas"`
	CustomerCount  int     `json:"total_clientes"`
	ProductCount   int     `json:"total_productos"`
	AverageTicket  float64 `json:"ticket_promedio"`
}

// DemoDataSummary reports what the demo-data seeder created.
type DemoDataSummary struct {
	Ventas     int `json:"ventas"`
	Productos  int `json:"productos"`
	Clientes   int `json:"clientes"`
	Categorias int `json:"categorias"`
	Marcas     int `json:"marcas"`
}
