package predictions_test

import (
	"testing"

	"github.com/smartsales365/console/internal/predictions"
	"github.com/smartsales365/console/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeries_InterleavesByDate(t *testing.T) {
	history := []models.AggregatePoint{{Date: "2025-01-01", Total: 100}}
	preds := []models.Prediction{{Date: "2025-02-01", Value: 150, Confidence: 0.8}}

	got := predictions.BuildSeries(history, preds)

	require.Len(t, got, 2)
	assert.Equal(t, predictions.ChartPoint{
		Date: "2025-01-01", Value: 100, Kind: predictions.KindHistorical,
	}, got[0])
	assert.Equal(t, predictions.ChartPoint{
		Date: "2025-02-01", Value: 150, Kind: predictions.KindPredicted, Confidence: 0.8,
	}, got[1])
}

func TestBuildSeries_DropsEmptyDates(t *testing.T) {
	history := []models.AggregatePoint{{Date: "", Total: 10}, {Date: "2025-01-01", Total: 20}}
	preds := []models.Prediction{{Date: "", Value: 30}}

	got := predictions.BuildSeries(history, preds)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-01", got[0].Date)
}

func TestBuildSeries_SortsAscending(t *testing.T) {
	history := []models.AggregatePoint{
		{Date: "2025-03-01", Total: 3},
		{Date: "2025-01-01", Total: 1},
	}
	preds := []models.Prediction{{Date: "2025-02-01", Value: 2}}

	got := predictions.BuildSeries(history, preds)

	require.Len(t, got, 3)
	assert.Equal(t, "2025-01-01", got[0].Date)
	assert.Equal(t, "2025-02-01", got[1].Date)
	assert.Equal(t, "2025-03-01", got[2].Date)
}

func TestBuildSeries_StableOnEqualDates(t *testing.T) {
	// A historical point and a prediction on the same date keep input order:
	// historical entries are appended first.
	history := []models.AggregatePoint{{Date: "2025-01-01", Total: 100}}
	preds := []models.Prediction{{Date: "2025-01-01", Value: 120, Confidence: 0.5}}

	got := predictions.BuildSeries(history, preds)

	require.Len(t, got, 2)
	assert.Equal(t, predictions.KindHistorical, got[0].Kind)
	assert.Equal(t, predictions.KindPredicted, got[1].Kind)
}

func TestBuildSeries_UnparseableDatesKeepInputOrder(t *testing.T) {
	history := []models.AggregatePoint{
		{Date: "sin-fecha", Total: 1},
		{Date: "tampoco", Total: 2},
	}

	got := predictions.BuildSeries(history, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "sin-fecha", got[0].Date)
	assert.Equal(t, "tampoco", got[1].Date)
}

func TestBuildSeries_ParsesMonthGranularity(t *testing.T) {
	history := []models.AggregatePoint{{Date: "2025-02", Total: 2}, {Date: "2025-01", Total: 1}}

	got := predictions.BuildSeries(history, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "2025-01", got[0].Date)
	assert.Equal(t, "2025-02", got[1].Date)
}
