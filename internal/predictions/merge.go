// Package predictions holds the in-memory working set logic for forecast
// data: merging a freshly generated batch with the persisted history,
// shaping the combined series for charting, and exporting reports.
package predictions

import "github.com/smartsales365/console/pkg/models"

// Merge combines a freshly generated batch with the server-side history.
// The result is recent first, then the fetched remainder in server order,
// with no identifier appearing twice. Entries in recent that lack an
// identifier (not yet persisted) are always kept. Recent entries are kept
// ahead of history on purpose: the just-generated batch is what the user is
// acting on.
func Merge(recent, fetched []models.Prediction) []models.Prediction {
	if len(recent) == 0 {
		return fetched
	}

	seen := make(map[int64]struct{}, len(recent))
	for _, p := range recent {
		if p.Saved() {
			seen[p.ID] = struct{}{}
		}
	}

	merged := make([]models.Prediction, 0, len(recent)+len(fetched))
	merged = append(merged, recent...)
	for _, p := range fetched {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
