package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dataquality/internal/domain"
	"dataquality/internal/service"
)

// AnomalyHandler handles the endpoints validating clients stored in the replica.
type AnomalyHandler struct {
	anomalyService service.AnomalyService
}

// NewAnomalyHandler creates a new AnomalyHandler.
func NewAnomalyHandler(anomalyService service.AnomalyService) *AnomalyHandler {
	return &AnomalyHandler{anomalyService: anomalyService}
}

// AnomalyListData is the data of GET /anomalies.
type AnomalyListData struct {
	Anomalies []domain.Anomaly    `json:"anomalies"`
	Summary   domain.BatchSummary `json:"summary"`
}

// parseClientFilter reads clientType, agency, offset and limit from the query string.
// Malformed numbers fall back to the defaults.
func parseClientFilter(c *gin.Context) domain.ClientFilter {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultAnomalyLimit)))
	return domain.ClientFilter{
		ClientType: domain.ClientType(strings.TrimSpace(c.Query("clientType"))),
		Agency:     strings.TrimSpace(c.Query("agency")),
		Offset:     offset,
		Limit:      limit,
	}
}

// ListAnomalies handles GET /api/v1/anomalies
// @Summary List anomalous clients
// @Description Validates one page of stored clients (ordered by cli) and returns those with blocking errors or that could not be evaluated. The summary covers the whole page.
// @Tags anomalies
// @Produce json
// @Param clientType query string false "Client type (1, 2 or 3)"
// @Param agency query string false "Agency code"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {object} PagedResponse{data=AnomalyListData}
// @Failure 400 {object} ErrorResponseBody "Invalid client type"
// @Router /anomalies [get]
func (h *AnomalyHandler) ListAnomalies(c *gin.Context) {
	page, err := h.anomalyService.ListAnomalies(c.Request.Context(), parseClientFilter(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, AnomalyListData{Anomalies: page.Anomalies, Summary: page.Summary}, PagMeta{
		Total:  page.Total,
		Offset: page.Offset,
		Limit:  page.Limit,
	})
}

// QualityMetrics handles GET /api/v1/anomalies/metrics
// @Summary Get data quality metrics
// @Description Validates every stored client of one type and returns the share of valid records, as a percentage with two decimals.
// @Tags anomalies
// @Produce json
// @Param clientType query string true "Client type (1, 2 or 3)"
// @Success 200 {object} Response{data=domain.QualityMetrics}
// @Failure 400 {object} ErrorResponseBody "Invalid client type"
// @Router /anomalies/metrics [get]
func (h *AnomalyHandler) QualityMetrics(c *gin.Context) {
	clientType := domain.ClientType(strings.TrimSpace(c.Query("clientType")))
	if clientType == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_CLIENT_TYPE", "clientType query parameter is required")
		return
	}

	metrics, err := h.anomalyService.QualityMetrics(c.Request.Context(), clientType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, metrics)
}

// ValidateStoredClient handles GET /api/v1/clients/:cli/validation
// @Summary Validate a stored client
// @Description Reads one client from the replica and validates it, with the per-field status of every failing field.
// @Tags anomalies
// @Produce json
// @Param cli path string true "Client code"
// @Success 200 {object} Response{data=domain.StoredValidation}
// @Failure 404 {object} ErrorResponseBody "Client not found"
// @Router /clients/{cli}/validation [get]
func (h *AnomalyHandler) ValidateStoredClient(c *gin.Context) {
	result, err := h.anomalyService.ValidateStored(c.Request.Context(), c.Param("cli"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
