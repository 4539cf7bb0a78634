package predictions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartsales365/console/internal/predictions"
	"github.com/smartsales365/console/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDownloader struct {
	calls      int
	lastFormat string
	lastIDs    []int64
	data       []byte
	err        error
}

func (d *fakeDownloader) ExportPredictions(_ context.Context, format string, ids []int64) ([]byte, error) {
	d.calls++
	d.lastFormat = format
	d.lastIDs = ids
	if d.err != nil {
		return nil, d.err
	}
	return d.data, nil
}

type memSaver struct {
	name string
	data []byte
}

func (s *memSaver) Save(name string, data []byte) (string, error) {
	s.name = name
	s.data = data
	return "/downloads/" + name, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
}

func newExporter(d *fakeDownloader, s *memSaver) *predictions.Exporter {
	return predictions.NewExporter(d, s, fixedNow)
}

func TestExport_EmptySetFailsWithoutNetworkCall(t *testing.T) {
	d := &fakeDownloader{data: []byte("x")}
	e := newExporter(d, &memSaver{})

	_, err := e.Export(context.Background(), predictions.ExportRequest{
		Format: predictions.FormatPDF,
		Scope:  predictions.ScopeRecent,
	})

	require.ErrorIs(t, err, predictions.ErrNothingToExport)
	assert.Zero(t, d.calls)
}

func TestExport_RecentScopeSendsIdentifiers(t *testing.T) {
	d := &fakeDownloader{data: []byte("reporte")}
	s := &memSaver{}
	e := newExporter(d, s)

	recent := []models.Prediction{
		{ID: 10, Date: "2025-09-01"},
		{Date: "2025-10-01"}, // unsaved, no identifier to send
		{ID: 12, Date: "2025-11-01"},
	}

	path, err := e.Export(context.Background(), predictions.ExportRequest{
		Format: predictions.FormatPDF,
		Scope:  predictions.ScopeRecent,
		Recent: recent,
		All:    recent,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, d.calls)
	assert.Equal(t, predictions.FormatPDF, d.lastFormat)
	assert.Equal(t, []int64{10, 12}, d.lastIDs)
	assert.Equal(t, "predicciones_ia_2025-08-15.pdf", s.name)
	assert.Equal(t, []byte("reporte"), s.data)
	assert.Equal(t, "/downloads/predicciones_ia_2025-08-15.pdf", path)
}

func TestExport_RecentScopeFallsBackToAll(t *testing.T) {
	d := &fakeDownloader{data: []byte("x")}
	e := newExporter(d, &memSaver{})

	all := []models.Prediction{{ID: 1}, {ID: 2}}

	_, err := e.Export(context.Background(), predictions.ExportRequest{
		Format: predictions.FormatExcel,
		Scope:  predictions.ScopeRecent,
		All:    all,
	})

	require.NoError(t, err)
	// Fallback means "all": no identifier filter.
	assert.Nil(t, d.lastIDs)
}

func TestExport_AllScopeNeverFilters(t *testing.T) {
	d := &fakeDownloader{data: []byte("x")}
	s := &memSaver{}
	e := newExporter(d, s)

	_, err := e.Export(context.Background(), predictions.ExportRequest{
		Format: predictions.FormatExcel,
		Scope:  predictions.ScopeAll,
		Recent: []models.Prediction{{ID: 5}},
		All:    []models.Prediction{{ID: 5}, {ID: 6}},
	})

	require.NoError(t, err)
	assert.Nil(t, d.lastIDs)
	assert.Equal(t, "predicciones_ia_2025-08-15.xlsx", s.name)
}

func TestExport_CategorySuffixInFileName(t *testing.T) {
	d := &fakeDownloader{data: []byte("x")}
	s := &memSaver{}
	e := newExporter(d, s)

	cat := int64(7)
	_, err := e.Export(context.Background(), predictions.ExportRequest{
		Format:     predictions.FormatPDF,
		Scope:      predictions.ScopeAll,
		All:        []models.Prediction{{ID: 1}},
		CategoryID: &cat,
	})

	require.NoError(t, err)
	assert.Equal(t, "predicciones_ia_cat_7_2025-08-15.pdf", s.name)
}

func TestExport_DownloadFailurePropagates(t *testing.T) {
	d := &fakeDownloader{err: errors.New("backend caído")}
	e := newExporter(d, &memSaver{})

	_, err := e.Export(context.Background(), predictions.ExportRequest{
		Format: predictions.FormatPDF,
		Scope:  predictions.ScopeAll,
		All:    []models.Prediction{{ID: 1}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend caído")
}

func TestDirSaver_WritesFile(t *testing.T) {
	dir := t.TempDir()
	saver := predictions.DirSaver{Dir: dir}

	path, err := saver.Save("reporte.pdf", []byte("contenido"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}
