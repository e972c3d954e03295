package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", "student", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, role, err := ExtractIdentityFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIdentityFromToken: %v", err)
	}
	if id != "user-42" || role != "student" {
		t.Errorf("identity = (%s, %s), want (user-42, student)", id, role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", "student", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractIdentityFromToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", "student", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("x", len(parts[2]))
	if _, _, err := ExtractIdentityFromToken(tampered); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("abc")
	if a != HashToken("abc") {
		t.Error("HashToken not deterministic")
	}
	if a == HashToken("abd") {
		t.Error("distinct tokens hash identically")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
