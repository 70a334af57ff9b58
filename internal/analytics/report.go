// internal/analytics/report.go
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stockpilot/stockpilot-backend/internal/models"
)

// Summary restates the stock totals used across the basic and advanced
// reports. PotentialProfit is summed per product rather than derived from
// the other two totals.
type Summary struct {
	TotalValue       float64 `json:"totalValue"`
	PotentialRevenue float64 `json:"potentialRevenue"`
	PotentialProfit  float64 `json:"potentialProfit"`
}

// Report is the basic stock report payload.
type Report struct {
	TotalValue       float64          `json:"totalValue"`
	PotentialRevenue float64          `json:"potentialRevenue"`
	PotentialProfit  float64          `json:"potentialProfit"`
	LowStock         []models.Product `json:"lowStock"`
}

// CategoryMargin aggregates stock value, projected revenue and margin for
// one category.
type CategoryMargin struct {
	Category     string  `json:"category"`
	TotalValue   float64 `json:"totalValue"`
	TotalRevenue float64 `json:"totalRevenue"`
	Margin       float64 `json:"margin"`
}

// TurnoverEntry ranks a product by its sell-through velocity in units per
// day of shelf age.
type TurnoverEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	SKU      string    `json:"sku"`
	Category string    `json:"category"`
	Velocity float64   `json:"velocity"`
	AgeDays  int       `json:"ageDays"`
}

// MonthlyPoint is one (year, month) bucket of the projection series.
type MonthlyPoint struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	PotentialRevenue float64 `json:"potentialRevenue"`
	TotalValue       float64 `json:"totalValue"`
}

// AdvancedReport is the analytics dashboard payload.
type AdvancedReport struct {
	Summary           Summary          `json:"summary"`
	MarginByCategory  []CategoryMargin `json:"marginByCategory"`
	Turnover          []TurnoverEntry  `json:"turnover"`
	MonthlyProjection []MonthlyPoint   `json:"monthlyProjection"`
}

const turnoverLimit = 10

// BuildReport computes the basic report over the full product set. An
// empty set yields zero totals and an empty low-stock list.
func BuildReport(products []models.Product, lowStockThreshold int) Report {
	report := Report{LowStock: []models.Product{}}
	for _, p := range products {
		report.TotalValue += p.PurchasePrice * float64(p.Quantity)
		report.PotentialRevenue += p.SalePrice * float64(p.Quantity)
		if p.Quantity <= lowStockThreshold {
			report.LowStock = append(report.LowStock, p)
		}
	}
	report.PotentialProfit = report.PotentialRevenue - report.TotalValue

	sort.SliceStable(report.LowStock, func(i, j int) bool {
		return report.LowStock[i].Quantity < report.LowStock[j].Quantity
	})
	return report
}

// BuildAdvancedReport computes the four dashboard aggregations from one
// snapshot of the product set. Monthly buckets use the UTC calendar.
func BuildAdvancedReport(products []models.Product, now time.Time) AdvancedReport {
	return AdvancedReport{
		Summary:           buildSummary(products),
		MarginByCategory:  buildMarginByCategory(products),
		Turnover:          buildTurnover(products, now),
		MonthlyProjection: buildMonthlyProjection(products),
	}
}

func buildSummary(products []models.Product) Summary {
	var summary Summary
	for _, p := range products {
		value := p.PurchasePrice * float64(p.Quantity)
		revenue := p.SalePrice * float64(p.Quantity)
		summary.TotalValue += value
		summary.PotentialRevenue += revenue
		summary.PotentialProfit += revenue - value
	}
	return summary
}

func buildMarginByCategory(products []models.Product) []CategoryMargin {
	groups := []CategoryMargin{}
	index := map[string]int{}
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = models.DefaultCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryMargin{Category: category})
		}
		value := p.PurchasePrice * float64(p.Quantity)
		revenue := p.SalePrice * float64(p.Quantity)
		groups[i].TotalValue += value
		groups[i].TotalRevenue += revenue
		groups[i].Margin += revenue - value
	}

	// Stable sort keeps first-encountered order on equal margins.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Margin > groups[j].Margin
	})
	return groups
}

func buildTurnover(products []models.Product, now time.Time) []TurnoverEntry {
	entries := make([]TurnoverEntry, 0, len(products))
	for _, p := range products {
		ageDays := int(math.Round(now.Sub(p.CreatedAt).Hours() / 24))
		if ageDays < 1 {
			ageDays = 1
		}
		category := p.Category
		if category == "" {
			category = models.DefaultCategory
		}
		entries = append(entries, TurnoverEntry{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Category: category,
			Velocity: round2(float64(p.Quantity) / float64(ageDays)),
			AgeDays:  ageDays,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Velocity > entries[j].Velocity
	})
	if len(entries) > turnoverLimit {
		entries = entries[:turnoverLimit]
	}
	return entries
}

func buildMonthlyProjection(products []models.Product) []MonthlyPoint {
	type bucketKey struct {
		year  int
		month int
	}

	points := []MonthlyPoint{}
	index := map[bucketKey]int{}
	for _, p := range products {
		at := p.UpdatedAt.UTC()
		key := bucketKey{year: at.Year(), month: int(at.Month())}
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, MonthlyPoint{Year: key.year, Month: key.month})
		}
		points[i].PotentialRevenue += p.SalePrice * float64(p.Quantity)
		points[i].TotalValue += p.PurchasePrice * float64(p.Quantity)
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
