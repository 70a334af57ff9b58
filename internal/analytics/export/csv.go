// internal/analytics/export/csv.go
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/stockpilot/stockpilot-backend/internal/analytics"
)

// WriteAdvancedReportCSV serialises the advanced report to a sectioned CSV
// document: summary, margin by category, turnover and the extended
// projection series.
func WriteAdvancedReportCSV(w io.Writer, report analytics.AdvancedReport, projection []analytics.MonthlyPoint) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	records := [][]string{
		{"Financial summary"},
		{"Metric", "Value"},
		{"Stock value", formatFloat(report.Summary.TotalValue)},
		{"Potential revenue", formatFloat(report.Summary.PotentialRevenue)},
		{"Potential profit", formatFloat(report.Summary.PotentialProfit)},
		{},
		{"Margin by category"},
		{"Category", "Stock value", "Potential revenue", "Margin"},
	}
	for _, item := range report.MarginByCategory {
		records = append(records, []string{
			item.Category,
			formatFloat(item.TotalValue),
			formatFloat(item.TotalRevenue),
			formatFloat(item.Margin),
		})
	}

	records = append(records,
		[]string{},
		[]string{"Stock turnover"},
		[]string{"Product", "SKU", "Category", "Velocity (units/day)", "Age (days)"},
	)
	for _, item := range report.Turnover {
		records = append(records, []string{
			item.Name,
			item.SKU,
			item.Category,
			formatFloat(item.Velocity),
			strconv.Itoa(item.AgeDays),
		})
	}

	records = append(records,
		[]string{},
		[]string{"Monthly projection"},
		[]string{"Month", "Potential revenue", "Stock value"},
	)
	for _, point := range projection {
		records = append(records, []string{
			MonthLabel(point),
			formatFloat(point.PotentialRevenue),
			formatFloat(point.TotalValue),
		})
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// MonthLabel renders a projection bucket as YYYY-MM.
func MonthLabel(point analytics.MonthlyPoint) string {
	year := strconv.Itoa(point.Year)
	month := strconv.Itoa(point.Month)
	if len(month) == 1 {
		month = "0" + month
	}
	return year + "-" + month
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
