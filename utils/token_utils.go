package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SignedDetails struct {
	Email  string
	Name   string
	UserID string
	jwt.RegisteredClaims
}

// GenerateAllToken signs an access token and a refresh token for the user.
// Secrets come from SECRET_KEY and SECRET_REFRESH_KEY.
func GenerateAllToken(email, name, userID string) (string, string, error) {
	secretKey := os.Getenv("SECRET_KEY")
	refreshSecretKey := os.Getenv("SECRET_REFRESH_KEY")

	claims := &SignedDetails{
		Email:  email,
		Name:   name,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "movie-watchlist",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", "", err
	}

	refreshClaims := &SignedDetails{
		Email:  email,
		Name:   name,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "movie-watchlist",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	signedRefreshToken, err := refreshToken.SignedString([]byte(refreshSecretKey))
	if err != nil {
		return "", "", err
	}

	return signedToken, signedRefreshToken, nil
}
