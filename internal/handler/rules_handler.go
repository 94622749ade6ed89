package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dataquality/internal/domain"
	"dataquality/internal/middleware"
	"dataquality/internal/service"
)

// anonymousActor is recorded on rule changes made without an access token.
const anonymousActor = "anonymous"

// RulesHandler handles the rule table endpoints.
type RulesHandler struct {
	ruleService  service.RuleService
	exposeDetail bool
}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler(ruleService service.RuleService, exposeDetail bool) *RulesHandler {
	return &RulesHandler{ruleService: ruleService, exposeDetail: exposeDetail}
}

// RuleListResponse is the response of GET /validation/rules.
type RuleListResponse struct {
	Success bool                    `json:"success"`
	Rules   []domain.ValidationRule `json:"rules"`
	Count   int                     `json:"count"`
	Version uint64                  `json:"version"`
}

// RuleMessageResponse is returned by the rule mutation endpoints.
type RuleMessageResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Rule    *domain.ValidationRule `json:"rule,omitempty"`
}

// RuleResponse wraps a single rule.
type RuleResponse struct {
	Success bool                   `json:"success"`
	Rule    *domain.ValidationRule `json:"rule"`
}

// CreateRuleRequest is the body of POST /validation/rules. isActive defaults to true.
type CreateRuleRequest struct {
	domain.ValidationRule
	IsActive *bool `json:"isActive"`
}

func actor(c *gin.Context) string {
	if s := middleware.GetSubject(c); s != "" {
		return s
	}
	return anonymousActor
}

// ListRules handles GET /api/v1/validation/rules
// @Summary List validation rules
// @Description Lists the rule table in evaluation order, disabled rules included. With clientType 1, 2 or 3 only the rules applying to that type are returned; any other value lists all rules.
// @Tags rules
// @Produce json
// @Param clientType query string false "Client type (1, 2 or 3)"
// @Success 200 {object} RuleListResponse
// @Router /validation/rules [get]
func (h *RulesHandler) ListRules(c *gin.Context) {
	var rules []domain.ValidationRule
	if ct := domain.ClientType(c.Query("clientType")); ct.Valid() {
		rules = h.ruleService.ListByClientType(ct)
	} else {
		rules = h.ruleService.List()
	}

	c.JSON(http.StatusOK, RuleListResponse{
		Success: true,
		Rules:   rules,
		Count:   len(rules),
		Version: h.ruleService.Version(),
	})
}

// GetRule handles GET /api/v1/validation/rules/:ruleId
// @Summary Get a validation rule
// @Tags rules
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} RuleResponse
// @Failure 404 {object} ValidationErrorBody
// @Router /validation/rules/{ruleId} [get]
func (h *RulesHandler) GetRule(c *gin.Context) {
	rule, err := h.ruleService.Get(c.Param("ruleId"))
	if err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}
	c.JSON(http.StatusOK, RuleResponse{Success: true, Rule: rule})
}

// UpdateRule handles PUT and PATCH /api/v1/validation/rules/:ruleId
// @Summary Update a validation rule
// @Description Applies a partial update (isActive, severity, params, errorMessage) to one rule. The change is visible to the next validation.
// @Tags rules
// @Accept json
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Param body body domain.RuleUpdate true "Fields to change"
// @Success 200 {object} RuleMessageResponse
// @Failure 400 {object} ValidationErrorBody
// @Failure 404 {object} ValidationErrorBody
// @Router /validation/rules/{ruleId} [put]
func (h *RulesHandler) UpdateRule(c *gin.Context) {
	var upd domain.RuleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorBody{
			Success: false, Error: "invalid rule update: " + err.Error(), Code: "INVALID_RULE_UPDATE",
		})
		return
	}

	rule, err := h.ruleService.Update(c.Request.Context(), c.Param("ruleId"), upd, actor(c))
	if err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}

	c.JSON(http.StatusOK, RuleMessageResponse{Success: true, Message: "rule updated", Rule: rule})
}

// CreateRule handles POST /api/v1/validation/rules
// @Summary Add a validation rule
// @Description Appends a rule to the end of the table.
// @Tags rules
// @Accept json
// @Produce json
// @Param body body CreateRuleRequest true "Rule definition"
// @Success 201 {object} RuleResponse
// @Failure 400 {object} ValidationErrorBody
// @Failure 409 {object} ValidationErrorBody
// @Security BearerAuth
// @Router /validation/rules [post]
func (h *RulesHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorBody{
			Success: false, Error: "invalid rule: " + err.Error(), Code: "INVALID_RULE",
		})
		return
	}

	rule := req.ValidationRule
	rule.Enabled = req.IsActive == nil || *req.IsActive

	created, err := h.ruleService.Add(c.Request.Context(), rule, actor(c))
	if err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}

	c.JSON(http.StatusCreated, RuleResponse{Success: true, Rule: created})
}

// DeleteRule handles DELETE /api/v1/validation/rules/:ruleId
// @Summary Delete a validation rule
// @Tags rules
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} RuleMessageResponse
// @Failure 404 {object} ValidationErrorBody
// @Security BearerAuth
// @Router /validation/rules/{ruleId} [delete]
func (h *RulesHandler) DeleteRule(c *gin.Context) {
	if err := h.ruleService.Delete(c.Request.Context(), c.Param("ruleId"), actor(c)); err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}
	c.JSON(http.StatusOK, RuleMessageResponse{Success: true, Message: "rule deleted"})
}

// ToggleRule handles POST /api/v1/validation/rules/:ruleId/toggle
// @Summary Enable or disable a validation rule
// @Tags rules
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} RuleMessageResponse
// @Failure 404 {object} ValidationErrorBody
// @Security BearerAuth
// @Router /validation/rules/{ruleId}/toggle [post]
func (h *RulesHandler) ToggleRule(c *gin.Context) {
	rule, err := h.ruleService.Toggle(c.Request.Context(), c.Param("ruleId"), actor(c))
	if err != nil {
		HandleValidationError(c, err, h.exposeDetail)
		return
	}

	msg := "rule disabled"
	if rule.Enabled {
		msg = "rule enabled"
	}
	c.JSON(http.StatusOK, RuleMessageResponse{Success: true, Message: msg, Rule: rule})
}
