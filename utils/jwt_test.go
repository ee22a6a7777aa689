package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr, err := GenerateJWT("saver@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token should parse and validate, err = %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["email"] != "saver@example.com" {
		t.Errorf("email claim = %v, want saver@example.com", claims["email"])
	}
	if claims["iss"] != tokenIssuer {
		t.Errorf("iss claim = %v, want %s", claims["iss"], tokenIssuer)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("expected numeric exp claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now().Add(71 * time.Hour)) {
		t.Error("token should be valid for about 72 hours")
	}
}

func TestGenerateJWTWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr, err := GenerateJWT("saver@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	_, err = jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("token signed with a different secret should not verify")
	}
}
