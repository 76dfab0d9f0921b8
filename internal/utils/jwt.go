package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/homestays/reservations-api/models"
)

// GenerateCallerToken creates a signed HMAC-SHA256 JWT token carrying a user
// identity and role.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role:            the caller's role string
//
// All parameters are required. Returns an error if any of them are empty or
// zero. The service itself never issues tokens in production, the user
// directory does; this helper exists for wiring integration tests and local
// tooling.
func GenerateCallerToken(issuer, userID string, role models.Role, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseCallerToken validates the given JWT token string and extracts the
// authenticated caller from its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//   - Role claim presence and membership in the known role set
//
// The returned Caller carries the raw token string so that outbound calls
// made on behalf of this caller can forward the same credentials.
func ParseCallerToken(tokenString, tokenSignKey, tokenIssuer string) (models.Caller, error) {
	claims := &models.AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Caller{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Caller{}, errors.New("empty subject error")
	}

	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return models.Caller{}, fmt.Errorf("error parsing role claim: %w", err)
	}

	return models.Caller{
		ID:    claims.Subject,
		Role:  role,
		Token: tokenString,
	}, nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer ..."
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
