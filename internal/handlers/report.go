// internal/handlers/report.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stockpilot/stockpilot-backend/internal/analytics"
	"github.com/stockpilot/stockpilot-backend/internal/analytics/export"
	"github.com/stockpilot/stockpilot-backend/internal/utils"
)

// ReportSource produces the report payloads from the current product
// snapshot.
type ReportSource interface {
	Report() (*analytics.Report, error)
	AdvancedReport() (*analytics.AdvancedReport, error)
}

type ReportHandler struct {
	reports ReportSource
	pdf     *export.PDFExporter
}

func NewReportHandler(reports ReportSource, pdf *export.PDFExporter) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		pdf:     pdf,
	}
}

// GET /reports
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reports.Report()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /reports/advanced
func (h *ReportHandler) GetAdvancedReport(c *gin.Context) {
	report, err := h.reports.AdvancedReport()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /reports/advanced/export/csv
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	report, err := h.reports.AdvancedReport()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	projection := analytics.ExtendProjection(report.MonthlyProjection, report.Summary, time.Now())

	filename := fmt.Sprintf("inventory-report-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := export.WriteAdvancedReportCSV(c.Writer, *report, projection); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		_ = c.Error(err)
	}
}

// GET /reports/advanced/export/pdf
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	if !h.pdf.Enabled() {
		utils.ServiceUnavailableResponse(c, "PDF export is not configured")
		return
	}

	report, err := h.reports.AdvancedReport()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	projection := analytics.ExtendProjection(report.MonthlyProjection, report.Summary, time.Now())

	pdf, err := h.pdf.RenderReport(c.Request.Context(), *report, projection)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	filename := fmt.Sprintf("inventory-report-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
