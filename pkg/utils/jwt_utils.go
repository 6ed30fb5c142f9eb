package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies session tokens. Overridable at startup via
// SetJWTSecret so the secret can come from the environment.
var jwtSecretKey = []byte("shiftpro-local-session-secret")

// SessionTokenTTL bounds how long a remembered session stays valid.
const SessionTokenTTL = 7 * 24 * time.Hour

// SetJWTSecret replaces the signing secret. Call once during startup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecretKey = []byte(secret)
	}
}

// Claims defines the session token claims.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token for a user.
func GenerateSessionToken(userID, email, role string) (string, error) {
	expirationTime := time.Now().Add(SessionTokenTTL)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "shiftpro-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
