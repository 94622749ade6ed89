package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dataquality/internal/domain"
	"dataquality/internal/middleware"
	"dataquality/internal/service"
)

// ReportHandler handles the anomaly report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DownloadAnomalies handles GET /api/v1/reports/anomalies
// @Summary Download an anomaly report
// @Description Renders the anomalies of one page of stored clients as CSV (UTF-8 with BOM) or as an Excel workbook with a summary sheet.
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(xlsx)
// @Param clientType query string false "Client type (1, 2 or 3)"
// @Param agency query string false "Agency code"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Invalid format or client type"
// @Security BearerAuth
// @Router /reports/anomalies [get]
func (h *ReportHandler) DownloadAnomalies(c *gin.Context) {
	format := domain.ReportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ReportFormatXLSX))))

	report, err := h.reportService.BuildAnomalyReport(c.Request.Context(), parseClientFilter(c), format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
	c.Data(http.StatusOK, report.Format.ContentType(), report.Data)
}

// ArchiveAnomalies handles POST /api/v1/reports/anomalies/archive
// @Summary Archive an anomaly report
// @Description Renders the Excel anomaly report, uploads it to the report bucket and returns a presigned download URL.
// @Tags reports
// @Produce json
// @Param clientType query string false "Client type (1, 2 or 3)"
// @Param agency query string false "Agency code"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 201 {object} Response{data=domain.ArchivedReport}
// @Failure 503 {object} ErrorResponseBody "Storage not configured"
// @Security BearerAuth
// @Router /reports/anomalies/archive [post]
func (h *ReportHandler) ArchiveAnomalies(c *gin.Context) {
	archived, err := h.reportService.ArchiveAnomalyReport(c.Request.Context(), parseClientFilter(c), middleware.GetSubject(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, archived)
}
