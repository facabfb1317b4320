package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	tok, err := SignJWT("secret", "a-1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("SignJWT failed: %v", err)
	}
	claims, err := ParseJWT("secret", tok)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.AdminID != "a-1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	tok, err := SignJWT("secret", "a-1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("SignJWT failed: %v", err)
	}
	if _, err := ParseJWT("other", tok); err == nil {
		t.Fatal("expected parse failure with the wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	tok, err := SignJWT("secret", "a-1", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("SignJWT failed: %v", err)
	}
	if _, err := ParseJWT("secret", tok); err == nil {
		t.Fatal("expected parse failure for an expired token")
	}
}
