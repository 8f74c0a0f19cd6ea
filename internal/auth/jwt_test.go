package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "agent@example.com", "agent", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "agent@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "agent@example.com")
	}
	if claims.Role != "agent" {
		t.Errorf("Role = %q, want %q", claims.Role, "agent")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "a@b.c", "buyer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error parsing token with wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	claims := Claims{
		UserID: uuid.New(),
		Email:  "a@b.c",
		Role:   "buyer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "nyumbasure",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT("secret", token); err == nil {
		t.Error("expected error parsing expired token")
	}
}

func TestGenerateJWTDefaultExpiration(t *testing.T) {
	// expiration <= 0 falls back to 24h, so the token must still parse
	token, err := GenerateJWT("secret", uuid.New(), "a@b.c", "admin", 0)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT("secret", token); err != nil {
		t.Errorf("ParseJWT: %v", err)
	}
}
