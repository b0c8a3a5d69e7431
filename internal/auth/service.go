package auth

import (
	"fmt"
	"time"

	apperrors "squad-stats-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "squad-stats-backend"

// Role names carried in tokens
const (
	RoleCoach  = "coach"
	RoleViewer = "viewer"
)

// AuthClaims represents the claims of an API token
type AuthClaims struct {
	Role                 string `json:"role" example:"coach"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService issues and validates HS256 bearer tokens
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service signing with secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// GenerateJWT creates a token for subject valid for ttl
func (s *TokenService) GenerateJWT(subject, role string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", apperrors.NewValidationError("subject", "is required")
	}
	if ttl <= 0 {
		return "", apperrors.NewValidationError("ttl", "must be positive")
	}

	now := s.now()
	claims := &AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}
