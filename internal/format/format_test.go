package format_test

import (
	"testing"
	"time"

	"github.com/smartsales365/console/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestMonth(t *testing.T) {
	assert.Equal(t, "ene 2025", format.Month("2025-01-15"))
	assert.Equal(t, "ago 2025", format.Month("2025-08"))
	assert.Equal(t, "dic 2024", format.Month("2024-12-01T00:00:00Z"))
}

func TestMonth_UnparseableReturnedUnchanged(t *testing.T) {
	assert.Equal(t, "proximamente", format.Month("proximamente"))
	assert.Equal(t, "", format.Month(""))
}

func TestDate(t *testing.T) {
	ts := time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "15/08/2025 14:30", format.Date(&ts))
}

func TestDate_NilIsNA(t *testing.T) {
	assert.Equal(t, "N/A", format.Date(nil))
}

func TestMetric(t *testing.T) {
	v := 0.8734
	assert.Equal(t, "0.87", format.Metric(&v, 2))
	assert.Equal(t, "0.873", format.Metric(&v, 3))
}

func TestMetric_NilIsNA(t *testing.T) {
	assert.Equal(t, "N/A", format.Metric(nil, 2))
}

func TestCurrency_UnknownCodeFallsBack(t *testing.T) {
	got := format.Currency(1234.5, "???")
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "???")
}

func TestCurrency_KnownCode(t *testing.T) {
	got := format.Currency(10, "BOB")
	assert.Contains(t, got, "10")
}
