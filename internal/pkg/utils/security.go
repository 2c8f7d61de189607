package utils

import (
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT signs the claimed email with the server secret. The expiry
// window comes from configuration, not a hardcoded constant.
func GenerateJWT(email, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParseJWT verifies signature and expiry and returns the email claim.
func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if email, ok := claims["email"].(string); ok && email != "" {
			return email, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(nil)
}
