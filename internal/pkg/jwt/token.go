package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
)

// GuestClaims identify an admitted guest session. The raw MAC is never
// placed in the token.
type GuestClaims struct {
	SessionID string `json:"session_id"`
	TenantID  int64  `json:"tenant_id"`
	SiteID    int64  `json:"site_id"`
	Method    string `json:"method"`
	jwt.RegisteredClaims
}

// GenerateGuestToken signs a token that expires with the session
func GenerateGuestToken(seed *models.SessionSeed, cfg models.JWTConfig) (string, int64, error) {
	if cfg.Secret == "" {
		return "", 0, errors.New("jwt secret is not configured")
	}

	expiresAt := seed.StartAt.Add(seed.Duration())
	claims := GuestClaims{
		SessionID: seed.SessionID,
		TenantID:  seed.TenantID,
		SiteID:    seed.SiteID,
		Method:    string(seed.Method),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   seed.GuestUserID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(seed.StartAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// ValidateGuestToken parses and verifies a token issued by GenerateGuestToken
func ValidateGuestToken(tokenString string, cfg models.JWTConfig) (*GuestClaims, error) {
	claims := &GuestClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, errors.New("invalid token issuer")
	}
	if claims.SessionID == "" {
		return nil, errors.New("token has no session")
	}
	return claims, nil
}
