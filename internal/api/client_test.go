package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// --- helpers ---

func apiServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

func newTestClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	return NewHTTPClient(baseURL, "", 5*time.Second)
}

// --- envelope handling ---

func TestDoJSON_Success(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/modelo/estado/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"modelo": map[string]any{
				"nombre":    "predictor-ventas",
				"version":   "2.1",
				"algoritmo": "gradient_boosting",
				"estado":    "activo",
			},
			"entrenamiento_activo": map[string]any{"en_curso": false},
			"datos_disponibles":    map[string]any{"ventas_totales": 340, "suficientes_datos": true},
		})
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	status, err := c.ModelStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status.Model.Name != "predictor-ventas" {
		t.Errorf("unexpected model name: %s", status.Model.Name)
	}
	if status.Model.State != "activo" {
		t.Errorf("unexpected state: %s", status.Model.State)
	}
	if status.TrainingInProgress() {
		t.Error("expected no training in progress")
	}
	if status.Availability.TotalSales != 340 {
		t.Errorf("unexpected total sales: %d", status.Availability.TotalSales)
	}
}

func TestDoJSON_SuccessFalseUsesServerMessage(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Modelo en entrenamiento, intente más tarde",
		})
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	err := c.TrainModel(context.Background())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if want := "Modelo en entrenamiento, intente más tarde"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q missing server message %q", err.Error(), want)
	}
}

func TestDoJSON_NonOKStatus(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.ModelStatus(context.Background())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestDoJSON_UnparseableBodyFallsBackToDefaultMessage(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.ListCategories(context.Background())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if want := "Error al obtener categorías"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q missing fallback message %q", err.Error(), want)
	}
}

func TestDoJSON_TransportFailure(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	_, err := c.ModelStatus(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

// --- request shapes ---

func TestGeneratePredictions_Body(t *testing.T) {
	var got GeneratePredictionsRequest
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"predicciones": []map[string]any{
				{"id": 7, "fecha_prediccion": "2025-09-01", "valor_predicho": 1500.5, "confianza": 0.82},
			},
		})
	})
	defer ts.Close()

	catID := int64(4)
	c := newTestClient(t, ts.URL)
	result, err := c.GeneratePredictions(context.Background(), GeneratePredictionsRequest{
		Periodo:     "mes",
		MonthsAhead: 3,
		CategoryID:  &catID,
		Save:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Periodo != "mes" || got.MonthsAhead != 3 || !got.Save {
		t.Errorf("unexpected request body: %+v", got)
	}
	if got.CategoryID == nil || *got.CategoryID != 4 {
		t.Errorf("unexpected category id: %v", got.CategoryID)
	}

	if len(result.Predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(result.Predictions))
	}
	p := result.Predictions[0]
	if p.ID != 7 || p.Date != "2025-09-01" || p.Value != 1500.5 || p.Confidence != 0.82 {
		t.Errorf("unexpected prediction: %+v", p)
	}
}

func TestExportPredictions_IDsJoined(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("formato") != "pdf" {
			t.Errorf("unexpected formato: %s", q.Get("formato"))
		}
		if q.Get("ids") != "1,2,3" {
			t.Errorf("unexpected ids: %s", q.Get("ids"))
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	data, err := c.ExportPredictions(context.Background(), ExportPDF, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "%PDF" {
		t.Errorf("unexpected payload: %q", data)
	}
}

func TestExportPredictions_NoIDsOmitsFilter(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["ids"]; ok {
			t.Error("ids parameter should be omitted")
		}
		w.Write([]byte("x"))
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if _, err := c.ExportPredictions(context.Background(), ExportExcel, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExportPredictions_FailureDecodesMessage(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Formato inválido"})
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.ExportPredictions(context.Background(), "csv", nil)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "Formato inválido") {
		t.Errorf("error %q missing server message", err.Error())
	}
}

func TestGenerateDemoData_TokenHeader(t *testing.T) {
	var gotToken string
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Data-Token")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"summary": map[string]any{"ventas": 120, "productos": 25, "clientes": 12},
		})
	})
	defer ts.Close()

	c := NewHTTPClient(ts.URL, "secreto", 5*time.Second)
	summary, err := c.GenerateDemoData(context.Background(), DemoDataRequest{Ventas: 120, Productos: 25, Clientes: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "secreto" {
		t.Errorf("expected token header, got %q", gotToken)
	}
	if summary.Ventas != 120 || summary.Productos != 25 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestSalesHistory_NormalizesFieldDrift(t *testing.T) {
	ts := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("agrupar_por") != "mes" || q.Get("periodo") != "12" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Write([]byte(`{
			"success": true,
			"historial": [
				{"fecha": "2025-01-01", "total_ventas": 100.5},
				{"mes": "2025-02", "ventas": "220.75"},
				{"periodo": "2025-03", "total": 330}
			]
		}`))
	})
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	points, err := c.SalesHistory(context.Background(), "mes", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Date != "2025-01-01" || points[0].Total != 100.5 {
		t.Errorf("unexpected point: %+v", points[0])
	}
	if points[1].Date != "2025-02" || points[1].Total != 220.75 {
		t.Errorf("unexpected point: %+v", points[1])
	}
	if points[2].Date != "2025-03" || points[2].Total != 330 {
		t.Errorf("unexpected point: %+v", points[2])
	}
}
