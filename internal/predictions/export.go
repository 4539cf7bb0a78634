package predictions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartsales365/console/pkg/models"
)

// Report formats.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// Export scopes: the batch generated this session, or everything persisted.
const (
	ScopeRecent = "recientes"
	ScopeAll    = "todas"
)

// ErrNothingToExport is returned when the resolved prediction set is empty.
// No network call is made in that case.
var ErrNothingToExport = errors.New("no hay predicciones para exportar; genera predicciones primero")

// Downloader fetches the rendered report from the backend.
type Downloader interface {
	ExportPredictions(ctx context.Context, format string, ids []int64) ([]byte, error)
}

// Saver persists a downloaded report. The OS implementation writes into the
// configured download directory.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// Exporter resolves the prediction set for a report, downloads it and hands
// it to the saver.
type Exporter struct {
	api   Downloader
	saver Saver
	now   func() time.Time
}

// NewExporter creates an Exporter. now may be nil, defaulting to time.Now.
func NewExporter(api Downloader, saver Saver, now func() time.Time) *Exporter {
	if now == nil {
		now = time.Now
	}
	return &Exporter{api: api, saver: saver, now: now}
}

// ExportRequest describes one export.
// Recent is the batch generated this session, All the merged working set.
// CategoryID, when set, only affects the file name; the backend already
// scoped the predictions themselves.
type ExportRequest struct {
	Format     string
	Scope      string
	Recent     []models.Prediction
	All        []models.Prediction
	CategoryID *int64
}

// Export downloads the report and saves it. Recent scope uses the recent
// batch when non-empty and falls back to the full set otherwise; only a
// non-empty recent batch narrows the export to its persisted identifiers.
// Returns the path the saver wrote.
func (e *Exporter) Export(ctx context.Context, req ExportRequest) (string, error) {
	candidates := req.All
	if req.Scope == ScopeRecent && len(req.Recent) > 0 {
		candidates = req.Recent
	}
	if len(candidates) == 0 {
		return "", ErrNothingToExport
	}

	var ids []int64
	if req.Scope == ScopeRecent && len(req.Recent) > 0 {
		for _, p := range req.Recent {
			if p.Saved() {
				ids = append(ids, p.ID)
			}
		}
	}

	data, err := e.api.ExportPredictions(ctx, req.Format, ids)
	if err != nil {
		return "", err
	}

	return e.saver.Save(e.fileName(req.Format, req.CategoryID), data)
}

func (e *Exporter) fileName(format string, categoryID *int64) string {
	ext := "xlsx"
	if format == FormatPDF {
		ext = "pdf"
	}
	cat := ""
	if categoryID != nil {
		cat = fmt.Sprintf("_cat_%d", *categoryID)
	}
	return fmt.Sprintf("predicciones_ia%s_%s.%s", cat, e.now().Format("2006-01-02"), ext)
}
