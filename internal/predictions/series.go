package predictions

import (
	"sort"
	"time"

	"github.com/smartsales365/console/pkg/models"
)

// Series point kinds.
const (
	KindHistorical = "historico"
	KindPredicted  = "prediccion"
)

// ChartPoint is one element of the combined historical/predicted series the
// chart renders. Confidence is only meaningful for predicted points.
type ChartPoint struct {
	Date       string  `json:"fecha"`
	Value      float64 `json:"valor"`
	Kind       string  `json:"tipo"`
	Confidence float64 `json:"confianza,omitempty"`
}

// dateLayouts covers the formats the backend emits for series dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"2006-01-02 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildSeries merges the aggregated sales history with the prediction set
// into one sequence ordered ascending by date. Points with an empty date are
// dropped; points whose dates cannot be parsed keep their input order.
func BuildSeries(history []models.AggregatePoint, preds []models.Prediction) []ChartPoint {
	series := make([]ChartPoint, 0, len(history)+len(preds))

	for _, h := range history {
		if h.Date == "" {
			continue
		}
		series = append(series, ChartPoint{
			Date:  h.Date,
			Value: h.Total,
			Kind:  KindHistorical,
		})
	}
	for _, p := range preds {
		if p.Date == "" {
			continue
		}
		series = append(series, ChartPoint{
			Date:       p.Date,
			Value:      p.Value,
			Kind:       KindPredicted,
			Confidence: p.Confidence,
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		ti, oki := parseDate(series[i].Date)
		tj, okj := parseDate(series[j].Date)
		if !oki || !okj {
			return false
		}
		return ti.Before(tj)
	})
	return series
}
