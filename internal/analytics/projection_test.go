// internal/analytics/projection_test.go
package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendProjectionFallbackBases(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	points := ExtendProjection(nil, Summary{}, now)

	require.Len(t, points, minProjectionPoints)
	assert.Equal(t, 2025, points[0].Year)
	assert.Equal(t, 4, points[0].Month)
	assert.InDelta(t, 1080, points[0].PotentialRevenue, 1e-9) // 1000 * 1.08
	assert.InDelta(t, 624, points[0].TotalValue, 1e-9)        // 600 * 1.04
	assert.Equal(t, 9, points[5].Month)
	assert.InDelta(t, 1480, points[5].PotentialRevenue, 1e-9) // 1000 * 1.48
	assert.InDelta(t, 744, points[5].TotalValue, 1e-9)        // 600 * 1.24
}

func TestExtendProjectionUsesSummaryWhenHistoryEmpty(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	summary := Summary{TotalValue: 900, PotentialRevenue: 2000}

	points := ExtendProjection(nil, summary, now)

	require.Len(t, points, minProjectionPoints)
	assert.InDelta(t, 2160, points[0].PotentialRevenue, 1e-9) // 2000 * 1.08
	assert.InDelta(t, 936, points[0].TotalValue, 1e-9)        // 900 * 1.04
}

func TestExtendProjectionCrossesSummaryFields(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	revOnly := ExtendProjection(nil, Summary{PotentialRevenue: 500}, now)
	require.NotEmpty(t, revOnly)
	assert.InDelta(t, 540, revOnly[0].PotentialRevenue, 1e-9) // 500 * 1.08
	assert.InDelta(t, 520, revOnly[0].TotalValue, 1e-9)       // falls through to revenue: 500 * 1.04

	valueOnly := ExtendProjection(nil, Summary{TotalValue: 500}, now)
	require.NotEmpty(t, valueOnly)
	assert.InDelta(t, 540, valueOnly[0].PotentialRevenue, 1e-9)
	assert.InDelta(t, 520, valueOnly[0].TotalValue, 1e-9)
}

func TestExtendProjectionContinuesFromLastHistoricalPoint(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	history := []MonthlyPoint{
		{Year: 2025, Month: 1, PotentialRevenue: 400, TotalValue: 250},
		{Year: 2025, Month: 2, PotentialRevenue: 500, TotalValue: 300},
	}

	points := ExtendProjection(history, Summary{}, now)

	require.Len(t, points, minProjectionPoints)
	assert.Equal(t, history[0], points[0])
	assert.Equal(t, history[1], points[1])

	assert.Equal(t, 3, points[2].Month)
	assert.InDelta(t, 540, points[2].PotentialRevenue, 1e-9) // 500 * 1.08
	assert.InDelta(t, 312, points[2].TotalValue, 1e-9)       // 300 * 1.04
	assert.Equal(t, 6, points[5].Month)
	assert.InDelta(t, 660, points[5].PotentialRevenue, 1e-9) // 500 * 1.32
	assert.InDelta(t, 348, points[5].TotalValue, 1e-9)       // 300 * 1.16
}

func TestExtendProjectionSortsUnorderedHistory(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	history := []MonthlyPoint{
		{Year: 2025, Month: 2, PotentialRevenue: 500, TotalValue: 300},
		{Year: 2024, Month: 12, PotentialRevenue: 300, TotalValue: 200},
	}

	points := ExtendProjection(history, Summary{}, now)

	require.Len(t, points, minProjectionPoints)
	assert.Equal(t, 2024, points[0].Year)
	assert.Equal(t, 12, points[0].Month)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Year*12 + points[i-1].Month
		cur := points[i].Year*12 + points[i].Month
		assert.Greater(t, cur, prev)
	}
}

func TestExtendProjectionKeepsLastTwelvePoints(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	history := make([]MonthlyPoint, 0, 14)
	for i := 0; i < 14; i++ {
		at := time.Date(2024, time.Month(1+i), 1, 0, 0, 0, 0, time.UTC)
		history = append(history, MonthlyPoint{
			Year:             at.Year(),
			Month:            int(at.Month()),
			PotentialRevenue: float64(100 + i),
			TotalValue:       float64(50 + i),
		})
	}

	points := ExtendProjection(history, Summary{}, now)

	require.Len(t, points, maxProjectionPoints)
	assert.Equal(t, history[2], points[0])
	assert.Equal(t, history[13], points[11])
}

func TestExtendProjectionRollsOverYearBoundary(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	history := []MonthlyPoint{
		{Year: 2025, Month: 11, PotentialRevenue: 100, TotalValue: 60},
	}

	points := ExtendProjection(history, Summary{}, now)

	require.Len(t, points, minProjectionPoints)
	assert.Equal(t, 12, points[1].Month)
	assert.Equal(t, 2025, points[1].Year)
	assert.Equal(t, 1, points[2].Month)
	assert.Equal(t, 2026, points[2].Year)
}

func TestExtendProjectionDoesNotMutateHistory(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	history := []MonthlyPoint{
		{Year: 2025, Month: 2, PotentialRevenue: 500, TotalValue: 300},
		{Year: 2025, Month: 1, PotentialRevenue: 400, TotalValue: 250},
	}

	ExtendProjection(history, Summary{}, now)

	assert.Equal(t, 2, history[0].Month)
	assert.Equal(t, 1, history[1].Month)
}
