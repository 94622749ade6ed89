package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquality/internal/config"
	"dataquality/internal/domain"
	"dataquality/internal/service"
)

var testJWT = config.JWTConfig{Secret: "test-secret", Issuer: "dataquality", AccessTokenExpiry: time.Hour}

func TestAuthService_IssueAndValidate(t *testing.T) {
	svc := service.NewAuthService(testJWT)

	token, expires, err := svc.IssueToken(service.IssueTokenInput{
		Subject: "ops-admin", Email: "ops@bank.example", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops-admin", claims.Subject)
	assert.Equal(t, "ops@bank.example", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_IssueToken_CustomTTL(t *testing.T) {
	svc := service.NewAuthService(testJWT)

	_, expires, err := svc.IssueToken(service.IssueTokenInput{Subject: "auditor-1", Role: domain.RoleAuditor, TTL: 10 * time.Minute})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expires, time.Minute)
}

func TestAuthService_IssueToken_Invalid(t *testing.T) {
	svc := service.NewAuthService(testJWT)

	_, _, err := svc.IssueToken(service.IssueTokenInput{Subject: " ", Role: domain.RoleAdmin})
	assert.Error(t, err)

	_, _, err = svc.IssueToken(service.IssueTokenInput{Subject: "ops-admin", Role: "root"})
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	svc := service.NewAuthService(testJWT)
	token, _, err := svc.IssueToken(service.IssueTokenInput{Subject: "ops-admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   service.AuthService
		token string
	}{
		{"garbage", svc, "not-a-jwt"},
		{"other secret", service.NewAuthService(config.JWTConfig{Secret: "other", Issuer: "dataquality"}), token},
		{"other issuer", service.NewAuthService(config.JWTConfig{Secret: "test-secret", Issuer: "someone-else"}), token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
