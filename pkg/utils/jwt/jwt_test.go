package jwt

import "testing"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(42, "agent@luxrealty.co.il", "Dana Levi", "collaborator")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "agent@luxrealty.co.il" || claims.Role != "collaborator" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("expected a token ID")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestTokenIDsUnique(t *testing.T) {
	a, _ := GenerateToken(1, "a@b.c", "A", "admin")
	b, _ := GenerateToken(1, "a@b.c", "A", "admin")

	ca, _ := ValidateToken(a)
	cb, _ := ValidateToken(b)
	if ca.ID == cb.ID {
		t.Fatal("expected unique token IDs")
	}
}
