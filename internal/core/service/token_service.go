package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// ErrMissingSigningKey is returned by NewTokenService for an empty secret.
var ErrMissingSigningKey = errors.New("token signing key is empty")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens. Tokens carry no expiry.
type TokenService struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

var _ ports.TokenService = (*TokenService)(nil)

func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}
	return &TokenService{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		now:    time.Now,
	}, nil
}

// Issue signs {sub, role}. The role is a snapshot; the gate re-reads it.
func (s *TokenService) Issue(subjectID string, role domain.Role) (string, error) {
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subjectID,
			IssuedAt: jwt.NewNumericDate(s.now().UTC()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the embedded claims. It never
// consults the credential store.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	var claims tokenClaims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	role := domain.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return nil, fmt.Errorf("%w: incomplete token claims", domain.ErrUnauthorized)
	}
	return &ports.TokenClaims{SubjectID: claims.Subject, Role: role}, nil
}
