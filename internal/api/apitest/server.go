// Package apitest provides an in-process SmartSales365 backend double for
// exercising the gateway client and the screen controllers against real
// HTTP round trips.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/smartsales365/console/pkg/models"
)

// Server is a fake SmartSales365 API. Populate the exported fields before
// (or between) requests; counters record how often each endpoint was hit.
// All fields are guarded by the embedded mutex via the accessor methods, but
// simple test flows that set fields up front and read counters after the
// calls need no extra locking discipline.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	Status *models.ModelStatus
	// StatusScript, when non-empty, is served first: each status request
	// pops one entry. Lets a test walk a job from running to finished.
	StatusScript []*models.ModelStatus

	History      []models.TrainingHistoryEntry
	SalesSeries  []models.AggregatePoint
	Categories   []models.Category
	Persisted    []models.Prediction
	Batch        []models.Prediction
	Summary      *models.PredictionSummary
	Customers    []models.Customer
	ExportBody   []byte
	ReceiptPDF   []byte

	// RejectMessage, when set, makes every JSON endpoint answer
	// {success:false, message:RejectMessage}.
	RejectMessage string

	StatusCalls   int
	TrainCalls    int
	UpdateCalls   int
	GenerateCalls int
	ListCalls     int
	ExportCalls   int

	LastExportQuery url.Values
	LastDataToken   string
}

// New starts the fake backend. Callers own shutdown via Close.
func New() *Server {
	s := &Server{
		ExportBody: []byte("%PDF-1.4 fake"),
		ReceiptPDF: []byte("%PDF-1.4 receipt"),
	}

	r := chi.NewRouter()

	r.Get("/dashboard/modelo/estado/", s.handleStatus)
	r.Post("/dashboard/modelo/entrenar/", s.handleTrain)
	r.Post("/dashboard/modelo/actualizar/", s.handleUpdate)
	r.Get("/dashboard/modelo/historial/", s.handleHistory)
	r.Post("/dashboard/predicciones/generar/", s.handleGenerate)
	r.Get("/dashboard/predicciones/", s.handleList)
	r.Get("/dashboard/predicciones/exportar/", s.handleExport)
	r.Get("/dashboard/historial-ventas/", s.handleSalesHistory)
	r.Get("/productos/categorias/", s.handleCategories)
	r.Get("/clientes/", s.handleCustomers)
	r.Get("/ventas/comprobantes/{saleID}/pdf/", s.handleReceiptPDF)
	r.Post("/ventas/admin/generar-datos-prueba/", s.handleDemoData)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) writeJSON(w http.ResponseWriter, payload map[string]any) {
	if s.RejectMessage != "" {
		payload = map[string]any{"success": false, "message": s.RejectMessage}
	} else {
		payload["success"] = true
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.StatusCalls++
	status := s.Status
	if len(s.StatusScript) > 0 {
		status = s.StatusScript[0]
		s.StatusScript = s.StatusScript[1:]
	}
	s.mu.Unlock()

	payload := map[string]any{}
	if status != nil {
		payload["modelo"] = status.Model
		payload["entrenamiento_activo"] = status.ActiveTraining
		payload["datos_disponibles"] = status.Availability
	}
	s.writeJSON(w, payload)
}

func (s *Server) handleTrain(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.TrainCalls++
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{})
}

func (s *Server) handleUpdate(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.UpdateCalls++
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	hist := s.History
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"historiales": hist})
}

func (s *Server) handleGenerate(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.GenerateCalls++
	batch, summary := s.Batch, s.Summary
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{
		"predicciones": batch,
		"resumen":      summary,
	})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.ListCalls++
	persisted := s.Persisted
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"predicciones": persisted})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.ExportCalls++
	s.LastExportQuery = r.URL.Query()
	body := s.ExportBody
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(body)
}

func (s *Server) handleSalesHistory(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	series := s.SalesSeries
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"historial": series})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	cats := s.Categories
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"categorias": cats})
}

func (s *Server) handleCustomers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	customers := s.Customers
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"clientes": customers})
}

func (s *Server) handleReceiptPDF(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	pdf := s.ReceiptPDF
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdf)
}

func (s *Server) handleDemoData(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.LastDataToken = r.Header.Get("X-Data-Token")
	s.mu.Unlock()

	var req struct {
		Ventas    int `json:"ventas"`
		Productos int `json:"productos"`
		Clientes  int `json:"clientes"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.writeJSON(w, map[string]any{
		"summary": models.DemoDataSummary{
			Ventas:    req.Ventas,
			Productos: req.Productos,
			Clientes:  req.Clientes,
		},
	})
}

// StatusCallCount reports how many times the status endpoint was hit.
func (s *Server) StatusCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.StatusCalls
}

// ExportCallCount reports how many times the export endpoint was hit.
func (s *Server) ExportCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ExportCalls
}

// LastExport returns the query of the most recent export request.
func (s *Server) LastExport() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastExportQuery
}
