package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dataquality/internal/config"
	"dataquality/internal/domain"
)

const accessAudience = "access"

// Claims represents the JWT claims carried by operator access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// IssueTokenInput is the DTO for minting an operator token.
type IssueTokenInput struct {
	Subject string
	Email   string
	Role    domain.UserRole
	TTL     time.Duration
}

// AuthService verifies access tokens for the administrative endpoints and mints them for
// operators through dqctl.
type AuthService interface {
	IssueToken(input IssueTokenInput) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	cfg config.JWTConfig
	now func() time.Time
}

// NewAuthService creates a new AuthService signing with HS256.
func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

func (s *authService) IssueToken(input IssueTokenInput) (string, time.Time, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return "", time.Time{}, fmt.Errorf("issuing token: subject is required")
	}
	switch input.Role {
	case domain.RoleAdmin, domain.RoleAuditor, domain.RoleUser:
	default:
		return "", time.Time{}, fmt.Errorf("issuing token: unknown role %q", input.Role)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = s.cfg.AccessTokenExpiry
	}
	now := s.now().UTC()
	expires := now.Add(ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   input.Subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{accessAudience},
		},
		Email: input.Email,
		Role:  input.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing access token: %w", err)
	}
	return signed, expires, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	aud, _ := claims.GetAudience()
	if !slices.Contains(aud, accessAudience) {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
