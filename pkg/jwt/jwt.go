package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skillax-backend/internal/shared/errs"
)

// TokenTTL is the fixed validity window for admin session tokens. There is
// no refresh flow; after expiry the admin logs in again.
const TokenTTL = 24 * time.Hour

// Claims carried by an admin session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a single shared secret.
// Rotating the secret invalidates every outstanding token.
type Manager struct {
	secret string
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{secret: secret, now: time.Now}
}

// WithClock overrides the time source. Used by tests to exercise expiry.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Issue produces a signed token for the given identity, valid for TokenTTL.
func (m *Manager) Issue(userID, email, role string) (string, error) {
	issuedAt := m.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Verify decodes and validates a token. Lapsed expiry reports
// errs.ErrExpiredCredential; any other tampering, malformed encoding, or
// signing-method mismatch reports errs.ErrInvalidCredential.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", errs.ErrExpiredCredential)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCredential, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: token not valid", errs.ErrInvalidCredential)
	}
	return claims, nil
}
