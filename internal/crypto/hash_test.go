package crypto

import "testing"

func TestVerifyPasswordCorrect(t *testing.T) {
	hash, err := HashPassword("opensesame")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if !VerifyPassword("opensesame", hash) {
		t.Error("VerifyPassword() returned false for the correct password")
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	hash, err := HashPassword("opensesame")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if VerifyPassword("closesesame", hash) {
		t.Error("VerifyPassword() returned true for a wrong password")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
	if !VerifyPassword("same-password", h1) || !VerifyPassword("same-password", h2) {
		t.Error("salted hashes do not both verify against the plaintext")
	}
}
