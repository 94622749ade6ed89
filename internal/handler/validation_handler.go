package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dataquality/internal/domain"
	"dataquality/internal/service"
)

// ValidationHandler handles the record validation endpoints.
type ValidationHandler struct {
	validationService service.ValidationService
	exposeDetail      bool
	now               func() time.Time
}

// NewValidationHandler creates a new ValidationHandler. exposeDetail attaches the raw
// message of internal errors to the response and is off in production.
func NewValidationHandler(validationService service.ValidationService, exposeDetail bool) *ValidationHandler {
	return &ValidationHandler{validationService: validationService, exposeDetail: exposeDetail, now: time.Now}
}

// ValidateRecordRequest is the body of POST /validation/record.
type ValidateRecordRequest struct {
	Record json.RawMessage `json:"record" swaggertype:"object"`
}

// ValidateBatchRequest is the body of POST /validation/batch.
type ValidateBatchRequest struct {
	Records json.RawMessage `json:"records" swaggertype:"array,object"`
}

// ValidateRecordResponse is the response of POST /validation/record.
type ValidateRecordResponse struct {
	Success   bool                     `json:"success"`
	Result    *domain.ValidationResult `json:"result"`
	Timestamp string                   `json:"timestamp"`
}

// ValidateBatchResponse is the response of POST /validation/batch.
type ValidateBatchResponse struct {
	Success   bool                `json:"success"`
	Results   []domain.BatchEntry `json:"results"`
	Summary   domain.BatchSummary `json:"summary"`
	Timestamp string              `json:"timestamp"`
}

// ValidateRecord handles POST /api/v1/validation/record
// @Summary Validate one client record
// @Description Validates a bkcli record against the enabled rules of its client type. Errors make the record invalid, warnings do not.
// @Tags validation
// @Accept json
// @Produce json
// @Param body body ValidateRecordRequest true "Record to validate"
// @Success 200 {object} ValidateRecordResponse
// @Failure 400 {object} ValidationErrorBody "Missing record, cli or tcli"
// @Failure 500 {object} ValidationErrorBody
// @Router /validation/record [post]
func (h *ValidationHandler) ValidateRecord(c *gin.Context) {
	var req ValidateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "INVALID_REQUEST", "request body must be a JSON object")
		return
	}

	record, err := decodeRecord(req.Record)
	if err != nil {
		if errors.Is(err, domain.ErrMissingRecord) {
			HandleValidationError(c, err, h.exposeDetail)
			return
		}
		h.badRequest(c, "INVALID_RECORD", "record must be a JSON object")
		return
	}

	result, err := h.validationService.ValidateRecord(record)
	if err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}

	c.JSON(http.StatusOK, ValidateRecordResponse{
		Success:   true,
		Result:    result,
		Timestamp: Timestamp(h.now()),
	})
}

// ValidateBatch handles POST /api/v1/validation/batch
// @Summary Validate a batch of client records
// @Description Validates every record in order and returns per-record results with an aggregate summary. A record that cannot be evaluated is reported as failed without stopping the batch.
// @Tags validation
// @Accept json
// @Produce json
// @Param body body ValidateBatchRequest true "Records to validate"
// @Success 200 {object} ValidateBatchResponse
// @Failure 400 {object} ValidationErrorBody "records is not a non-empty array"
// @Failure 500 {object} ValidationErrorBody
// @Router /validation/batch [post]
func (h *ValidationHandler) ValidateBatch(c *gin.Context) {
	var req ValidateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleValidationError(c, domain.ErrEmptyBatch, h.exposeDetail)
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(req.Records, &raw); err != nil || len(raw) == 0 {
		HandleValidationError(c, domain.ErrEmptyBatch, h.exposeDetail)
		return
	}

	records := make([]domain.ClientRecord, len(raw))
	for i, r := range raw {
		// Undecodable entries stay nil and are reported as failed by the batch.
		records[i], _ = decodeRecord(r)
	}

	report, err := h.validationService.ValidateBatch(records)
	if err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}

	c.JSON(http.StatusOK, ValidateBatchResponse{
		Success:   true,
		Results:   report.Results,
		Summary:   report.Summary,
		Timestamp: Timestamp(h.now()),
	})
}

func (h *ValidationHandler) badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, ValidationErrorBody{Success: false, Error: msg, Code: code})
}

// decodeRecord decodes a JSON object into a record. A missing or null record yields
// ErrMissingRecord.
func decodeRecord(raw json.RawMessage) (domain.ClientRecord, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, domain.ErrMissingRecord
	}
	return domain.DecodeClientRecord(raw)
}
