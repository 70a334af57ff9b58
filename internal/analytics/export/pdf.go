// internal/analytics/export/pdf.go
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/stockpilot/stockpilot-backend/internal/analytics"
	"github.com/stockpilot/stockpilot-backend/internal/analytics/svg"
)

// PDFExporter converts the advanced report to PDF through a Gotenberg
// instance.
type PDFExporter struct {
	Endpoint string
	Client   *http.Client
}

// Enabled reports whether a Gotenberg endpoint has been configured.
func (p *PDFExporter) Enabled() bool {
	return p != nil && strings.TrimSpace(p.Endpoint) != ""
}

// RenderReport sends the report HTML to Gotenberg and returns the PDF
// bytes.
func (p *PDFExporter) RenderReport(ctx context.Context, report analytics.AdvancedReport, projection []analytics.MonthlyPoint) ([]byte, error) {
	if !p.Enabled() {
		return nil, fmt.Errorf("pdf exporter not configured")
	}
	endpoint := strings.TrimRight(p.Endpoint, "/")
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	html := buildReportHTML(report, projection)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "report.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("gotenberg response %d: %s", resp.StatusCode, string(data))
	}

	return io.ReadAll(resp.Body)
}

func buildReportHTML(report analytics.AdvancedReport, projection []analytics.MonthlyPoint) string {
	var b strings.Builder
	b.WriteString("<html><head><meta charset=\"utf-8\"><style>")
	b.WriteString("body{font-family:sans-serif;margin:24px;}h1{font-size:20px;}h2{font-size:14px;}table{width:100%;border-collapse:collapse;margin-bottom:16px;}th,td{border:1px solid #ddd;padding:6px;text-align:right;}th{text-align:left;background:#f5f5f5;}section{margin-bottom:24px;} .label{text-align:left;}")
	b.WriteString("</style></head><body>")
	b.WriteString("<h1>Inventory Analytics</h1>")

	b.WriteString("<section><h2>Financial summary</h2><table><tbody>")
	writeMetricRow(&b, "Stock value", report.Summary.TotalValue)
	writeMetricRow(&b, "Potential revenue", report.Summary.PotentialRevenue)
	writeMetricRow(&b, "Potential profit", report.Summary.PotentialProfit)
	b.WriteString("</tbody></table></section>")

	if len(report.MarginByCategory) > 0 {
		b.WriteString("<section><h2>Margin by category</h2><table><thead><tr><th>Category</th><th>Stock value</th><th>Potential revenue</th><th>Margin</th></tr></thead><tbody>")
		for _, item := range report.MarginByCategory {
			b.WriteString("<tr><td class=\"label\">")
			b.WriteString(escape(item.Category))
			b.WriteString("</td><td>")
			b.WriteString(formatFloat(item.TotalValue))
			b.WriteString("</td><td>")
			b.WriteString(formatFloat(item.TotalRevenue))
			b.WriteString("</td><td>")
			b.WriteString(formatFloat(item.Margin))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table></section>")
	}

	if len(report.Turnover) > 0 {
		b.WriteString("<section><h2>Stock turnover</h2><table><thead><tr><th>Product</th><th>SKU</th><th>Category</th><th>Velocity</th><th>Age (days)</th></tr></thead><tbody>")
		for _, item := range report.Turnover {
			b.WriteString("<tr><td class=\"label\">")
			b.WriteString(escape(item.Name))
			b.WriteString("</td><td class=\"label\">")
			b.WriteString(escape(item.SKU))
			b.WriteString("</td><td class=\"label\">")
			b.WriteString(escape(item.Category))
			b.WriteString("</td><td>")
			b.WriteString(formatFloat(item.Velocity))
			b.WriteString("</td><td>")
			b.WriteString(strconv.Itoa(item.AgeDays))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table></section>")
	}

	if len(projection) > 0 {
		b.WriteString("<section><h2>Monthly revenue projection</h2>")
		series := make([]float64, len(projection))
		labels := make([]string, len(projection))
		for i, point := range projection {
			series[i] = point.PotentialRevenue
			labels[i] = MonthLabel(point)
		}
		if chart, err := svg.Line(svg.DefaultWidth, svg.DefaultHeight, series, labels, "Monthly revenue projection"); err == nil {
			b.WriteString(string(chart))
		}
		b.WriteString("<table><thead><tr><th>Month</th><th>Potential revenue</th><th>Stock value</th></tr></thead><tbody>")
		for _, point := range projection {
			b.WriteString("<tr><td class=\"label\">")
			b.WriteString(MonthLabel(point))
			b.WriteString("</td><td>")
			b.WriteString(formatFloat(point.PotentialRevenue))
			b.WriteString("</td><td>")
			b.WriteString(formatFloat(point.TotalValue))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table></section>")
	}

	b.WriteString("</body></html>")
	return b.String()
}

func writeMetricRow(b *strings.Builder, label string, value float64) {
	b.WriteString("<tr><td class=\"label\">")
	b.WriteString(escape(label))
	b.WriteString("</td><td>")
	b.WriteString(formatFloat(value))
	b.WriteString("</td></tr>")
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")
	return replacer.Replace(s)
}
