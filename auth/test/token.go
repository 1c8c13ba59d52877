package test

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/tidepool-org/dieticians/auth"
)

const TokenSecret = "dieticians-test-secret"

func NewToken(subjectId string, roles ...string) string {
	return NewTokenWithSecret(TokenSecret, subjectId, roles...)
}

func NewTokenWithSecret(secret string, subjectId string, roles ...string) string {
	claims := auth.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectId,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return token
}

func NewExpiredToken(subjectId string, roles ...string) string {
	claims := auth.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectId,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TokenSecret))
	if err != nil {
		panic(err)
	}
	return token
}

func BearerHeader(token string) string {
	return "Bearer " + token
}
