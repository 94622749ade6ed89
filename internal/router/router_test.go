package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dataquality/internal/cache"
	"dataquality/internal/config"
	"dataquality/internal/domain"
	"dataquality/internal/handler"
	"dataquality/internal/router"
	"dataquality/internal/service"
	"dataquality/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type testServer struct {
	engine  *gin.Engine
	auth    service.AuthService
	rules   *mocks.MockRuleService
	stats   *mocks.MockStatsService
	reports *mocks.MockReportService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	auth := service.NewAuthService(config.JWTConfig{
		Secret:            "router-test-secret",
		Issuer:            "dataquality",
		AccessTokenExpiry: time.Hour,
	})
	store := cache.NewStore(nil, cache.NewMemoryStore(100), time.Minute)

	ts := &testServer{
		auth:    auth,
		rules:   new(mocks.MockRuleService),
		stats:   new(mocks.MockStatsService),
		reports: new(mocks.MockReportService),
	}
	ts.engine = router.Setup(
		router.Options{
			LogLevel:       "error",
			AllowedOrigins: []string{"http://localhost:3000"},
			Cache:          store,
			CachePrefix:    "api:",
			CacheTTL:       time.Minute,
		},
		auth,
		handler.NewValidationHandler(new(mocks.MockValidationService), true),
		handler.NewRulesHandler(ts.rules, true),
		handler.NewAnomalyHandler(new(mocks.MockAnomalyService)),
		handler.NewStatsHandler(ts.stats),
		handler.NewReportHandler(ts.reports),
		handler.NewCacheHandler(store, "api:"),
		handler.NewHealthHandler(okPinger{}, nil),
	)
	return ts
}

func (ts *testServer) token(t *testing.T, subject string, role domain.UserRole) string {
	t.Helper()
	tok, _, err := ts.auth.IssueToken(service.IssueTokenInput{Subject: subject, Role: role})
	require.NoError(t, err)
	return tok
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func TestSetup_HealthAndDocs(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = ts.do(http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cache":"disabled"`)

	w = ts.do(http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/validation/record")
}

func TestSetup_AdminRuleRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create", http.MethodPost, "/api/v1/validation/rules", `{"id":"X"}`},
		{"delete", http.MethodDelete, "/api/v1/validation/rules/PP_NID_REQUIRED", ""},
		{"toggle", http.MethodPost, "/api/v1/validation/rules/PP_NID_REQUIRED/toggle", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name+" without token", func(t *testing.T) {
			ts := newTestServer(t)
			w := ts.do(tt.method, tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
		t.Run(tt.name+" as user", func(t *testing.T) {
			ts := newTestServer(t)
			w := ts.do(tt.method, tt.path, ts.token(t, "clerk", domain.RoleUser), tt.body)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestSetup_DeleteRuleAsAdmin(t *testing.T) {
	ts := newTestServer(t)
	ts.rules.On("Delete", mock.Anything, "PP_NID_REQUIRED", "ops-admin").Return(nil)

	w := ts.do(http.MethodDelete, "/api/v1/validation/rules/PP_NID_REQUIRED", ts.token(t, "ops-admin", domain.RoleAdmin), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rule deleted")
	ts.rules.AssertExpectations(t)
}

func TestSetup_UpdateRuleIsPublic(t *testing.T) {
	rule := &domain.ValidationRule{ID: "PP_NID_REQUIRED", Enabled: false}

	t.Run("anonymous", func(t *testing.T) {
		ts := newTestServer(t)
		ts.rules.On("Update", mock.Anything, "PP_NID_REQUIRED", mock.Anything, "anonymous").Return(rule, nil)

		w := ts.do(http.MethodPut, "/api/v1/validation/rules/PP_NID_REQUIRED", "", `{"isActive":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		ts.rules.AssertExpectations(t)
	})

	t.Run("identified operator", func(t *testing.T) {
		ts := newTestServer(t)
		ts.rules.On("Update", mock.Anything, "PP_NID_REQUIRED", mock.Anything, "clerk").Return(rule, nil)

		w := ts.do(http.MethodPatch, "/api/v1/validation/rules/PP_NID_REQUIRED", ts.token(t, "clerk", domain.RoleUser), `{"isActive":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		ts.rules.AssertExpectations(t)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		ts := newTestServer(t)
		w := ts.do(http.MethodPut, "/api/v1/validation/rules/PP_NID_REQUIRED", "garbage", `{"isActive":false}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		ts.rules.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSetup_ReportsRequireAdminOrAuditor(t *testing.T) {
	ts := newTestServer(t)
	ts.reports.On("BuildAnomalyReport", mock.Anything, mock.Anything, domain.ReportFormatCSV).
		Return(&domain.Report{Filename: "anomalies.csv", Format: domain.ReportFormatCSV, Data: []byte("cli\n")}, nil)

	w := ts.do(http.MethodGet, "/api/v1/reports/anomalies?format=csv", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/reports/anomalies?format=csv", ts.token(t, "clerk", domain.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/reports/anomalies?format=csv", ts.token(t, "auditor-1", domain.RoleAuditor), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "anomalies.csv")
	ts.reports.AssertNumberOfCalls(t, "BuildAnomalyReport", 1)
}

func TestSetup_DataEndpointsAreCached(t *testing.T) {
	ts := newTestServer(t)
	ts.stats.On("ClientStats", mock.Anything).Return(&domain.ClientStats{Total: 3, Individual: 2, Corporate: 1}, nil).Once()

	first := ts.do(http.MethodGet, "/api/v1/stats/clients", "", "")
	second := ts.do(http.MethodGet, "/api/v1/stats/clients", "", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	ts.stats.AssertExpectations(t)
}

func TestSetup_CacheClearIsAdminOnly(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/v1/cache/stats", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/cache/clear", ts.token(t, "auditor-1", domain.RoleAuditor), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/cache/clear", ts.token(t, "ops-admin", domain.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, w.Code)
}
