package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jmvaldez/portero/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for the given
// account. The token carries the standard claims:
//   - Issuer    (iss): the service issuing the token
//   - Subject   (sub): the account IDUS
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any are empty or
// zero, or if signing fails.
func GenerateSessionToken(issuer, idus string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || idus == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   idus,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ValidateSessionToken verifies the token signature and issuer and
// returns the account IDUS from the subject claim.
func ValidateSessionToken(tokenString, signKey, issuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return "", fmt.Errorf("error validating session token: %w", err)
	}

	idus, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error reading subject from token: %w", err)
	}
	if idus == "" {
		return "", errors.New("empty subject in session token")
	}

	return idus, nil
}

// TokenExpiry extracts the "exp" claim from a signed token without
// verifying the signature. The client uses it as a fallback for the
// session expiry instant when the backend omits expiraEn; trust in the
// token contents is the backend's concern, not the client's.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}

	return exp.Time, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer
// <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
