// internal/analytics/projection.go
package analytics

import (
	"math"
	"sort"
	"time"
)

// Projection-extension tuning. The series shown on the dashboard always
// has at least minProjectionPoints entries and at most the most recent
// maxProjectionPoints.
const (
	minProjectionPoints = 6
	maxProjectionPoints = 12
	revenueGrowthStep   = 0.08
	valueGrowthStep     = 0.04
	fallbackRevenueBase = 1000
	fallbackValueBase   = 600
)

// ExtendProjection pads the historical monthly series with synthetic
// forward-looking points for display and export. It never feeds back into
// the aggregated report data.
//
// The extrapolation base is the first positive value of: the last
// historical point, the summary totals (revenue then value for the
// revenue base, value then revenue for the value base), and finally a
// fixed constant. Each synthetic point k (1-based) grows the base by 8%
// (revenue) and 4% (value) per step.
func ExtendProjection(history []MonthlyPoint, summary Summary, now time.Time) []MonthlyPoint {
	items := make([]MonthlyPoint, len(history))
	copy(items, history)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Year != items[j].Year {
			return items[i].Year < items[j].Year
		}
		return items[i].Month < items[j].Month
	})

	var last *MonthlyPoint
	if len(items) > 0 {
		last = &items[len(items)-1]
	}

	var lastRevenue, lastValue float64
	if last != nil {
		lastRevenue = last.PotentialRevenue
		lastValue = last.TotalValue
	}
	baseRevenue := firstPositive(lastRevenue, summary.PotentialRevenue, summary.TotalValue, fallbackRevenueBase)
	baseValue := firstPositive(lastValue, summary.TotalValue, summary.PotentialRevenue, fallbackValueBase)

	cursor := now.UTC()
	if last != nil {
		cursor = time.Date(last.Year, time.Month(last.Month), 1, 0, 0, 0, 0, time.UTC)
	}
	cursor = time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)

	historyLen := len(items)
	for len(items) < minProjectionPoints {
		cursor = cursor.AddDate(0, 1, 0)
		k := float64(len(items) - historyLen + 1)
		items = append(items, MonthlyPoint{
			Year:             cursor.Year(),
			Month:            int(cursor.Month()),
			PotentialRevenue: math.Round(baseRevenue * (1 + revenueGrowthStep*k)),
			TotalValue:       math.Round(baseValue * (1 + valueGrowthStep*k)),
		})
	}

	if len(items) > maxProjectionPoints {
		items = items[len(items)-maxProjectionPoints:]
	}
	return items
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
