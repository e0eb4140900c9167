package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-event-planner/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerScheme = "Bearer"

// ErrMalformedAuthHeader is returned by ParseBearerToken when the header is
// not of the form "Bearer <token>".
var ErrMalformedAuthHeader = errors.New("invalid authorization header")

// GenerateJWTToken signs an HS256 token carrying iss, sub (the user id),
// iat and exp = now+tokenDuration. Every argument is required.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	issuedAt := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return newToken(claims, signed)
}

// ValidateAndParseJWTToken accepts only HS256 tokens signed with
// tokenSignKey, issued by tokenIssuer and carrying an exp claim.
//
// jwt errors stay wrapped: errors.Is(err, jwt.ErrTokenExpired) works.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	keyFunc := func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil }

	_, err := jwt.ParseWithClaims(tokenString, &claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating JWT token: %w", err)
	}

	return newToken(claims, tokenString)
}

func newToken(claims jwt.RegisteredClaims, signed string) (models.Token, error) {
	if claims.Subject == "" {
		return models.Token{}, errors.New("token has an empty subject")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing token subject %q: %w", claims.Subject, err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrMalformedAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrMalformedAuthHeader
	}
	return token, nil
}
