package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "moneypath-backend"

// GenerateJWT mints the session token carried by every protected request.
// The auth middleware resolves the user from the email claim.
func GenerateJWT(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   tokenIssuer,
		"sub":   email,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(72 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
