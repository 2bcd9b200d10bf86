package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/rizqunbw/rizqu-moneytracker/internal/auth/service TokenGenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
)

const (
	sharingTokenLength  = 6
	sharingTokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type TokenGenerator interface {
	SessionToken(email, password, pin string) string
	VerifySessionToken(claimed, email, password, pin string) bool
	SharingToken() (string, error)
	GenerateAdminToken() (string, time.Time, error)
	VerifyAdminToken(tokenString string) (*AdminClaims, error)
}

type TokenService struct {
	AdminTokenSecret string
	AdminTokenExpiry time.Duration
}

type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func NewTokenService(adminSecret string, adminMinutes int) *TokenService {
	return &TokenService{
		AdminTokenSecret: adminSecret,
		AdminTokenExpiry: time.Duration(adminMinutes) * time.Minute,
	}
}

// SessionToken derives the session credential from the stored record. The
// three fields are joined with unescaped colons; a colon inside email or
// password shifts the field boundaries, but derivation and verification stay
// consistent with the tokens clients already hold, so the format is kept.
func (ts *TokenService) SessionToken(email, password, pin string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + password + ":" + pin))
}

// VerifySessionToken recomputes the credential and compares byte-for-byte.
// Any mismatch forces re-authentication; there is no fuzzy matching.
func (ts *TokenService) VerifySessionToken(claimed, email, password, pin string) bool {
	return claimed == ts.SessionToken(email, password, pin)
}

// SharingToken returns a fresh 6-character alphanumeric bearer token for one
// database registration.
func (ts *TokenService) SharingToken() (string, error) {
	out := make([]byte, sharingTokenLength)
	max := big.NewInt(int64(len(sharingTokenCharset)))

	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate sharing token: %w", err)
		}
		out[i] = sharingTokenCharset[n.Int64()]
	}

	return string(out), nil
}

func (ts *TokenService) GenerateAdminToken() (string, time.Time, error) {
	if ts.AdminTokenSecret == "" {
		return "", time.Time{}, apperrors.ErrAdminNotConfigured
	}

	now := time.Now()
	expiresAt := now.Add(ts.AdminTokenExpiry)

	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AdminTokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// VerifyAdminToken parses and validates the given admin token string.
func (ts *TokenService) VerifyAdminToken(tokenString string) (*AdminClaims, error) {
	if ts.AdminTokenSecret == "" {
		return nil, apperrors.ErrAdminNotConfigured
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AdminTokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Role != "admin" {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
