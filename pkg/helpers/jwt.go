package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CategoryAccess  = "access"
	CategoryRefresh = "refresh"
)

var errMissingExpiry = errors.New("token has no exp claim")

// JWTManager issues and inspects HS256 tokens. Access and refresh tokens
// share one secret and differ by the category claim and TTL.
type JWTManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewJWTManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

func (m *JWTManager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *JWTManager) RefreshTTL() time.Duration { return m.refreshTTL }

type Claims struct {
	Role     string `json:"role"`
	Category string `json:"category"`
	jwt.RegisteredClaims
}

func (m *JWTManager) GenerateAccessToken(subjectID, role string) (string, time.Time, error) {
	return m.generate(subjectID, role, CategoryAccess, m.accessTTL)
}

func (m *JWTManager) GenerateRefreshToken(subjectID, role string) (string, time.Time, error) {
	return m.generate(subjectID, role, CategoryRefresh, m.refreshTTL)
}

func (m *JWTManager) generate(subjectID, role, category string, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(ttl)
	claims := &Claims{
		Role:     role,
		Category: category,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// Validate reports whether the token is well formed and signed with our
// secret. Expiry is deliberately not checked here; see IsExpired.
func (m *JWTManager) Validate(token string) bool {
	_, err := m.parse(token)
	return err == nil
}

// IsExpired reports whether now is at or past the exp claim. Tokens that
// cannot be parsed, or carry no exp, count as expired.
func (m *JWTManager) IsExpired(token string) bool {
	claims, err := m.parse(token)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}
	return !m.now().Before(claims.ExpiresAt.Time)
}

// ExpiresAt returns the exp claim of a verified token.
func (m *JWTManager) ExpiresAt(token string) (time.Time, error) {
	claims, err := m.parse(token)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errMissingExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// ExtractSubjectID reads sub. Call Validate first.
func (m *JWTManager) ExtractSubjectID(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractRole reads the role claim. Call Validate first.
func (m *JWTManager) ExtractRole(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

func (m *JWTManager) IsAccessToken(token string) bool {
	return m.hasCategory(token, CategoryAccess)
}

func (m *JWTManager) IsRefreshToken(token string) bool {
	return m.hasCategory(token, CategoryRefresh)
}

func (m *JWTManager) hasCategory(token, category string) bool {
	claims, err := m.parse(token)
	if err != nil {
		return false
	}
	return claims.Category == category
}

// parse verifies the signature and algorithm only. Time-based claims are
// left to IsExpired so that callers can tell "forged" from "stale".
func (m *JWTManager) parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, errors.New("unexpected issuer")
	}
	return claims, nil
}
