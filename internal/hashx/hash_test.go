package hashx

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_SelfDescribing(t *testing.T) {
	h, err := HashPassword("test_password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(h, "$argon2id$v=19$") {
		t.Fatalf("hash is not a PHC argon2id string: %q", h)
	}
	if parts := strings.Split(h, "$"); len(parts) != 6 {
		t.Fatalf("expected 6 PHC segments, got %d: %q", len(parts), h)
	}
}

func TestHashPassword_SaltDiffersPerCall(t *testing.T) {
	h1, err := HashPassword("same_plaintext")
	if err != nil {
		t.Fatalf("first hash error: %v", err)
	}
	h2, err := HashPassword("same_plaintext")
	if err != nil {
		t.Fatalf("second hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext must differ (fresh salt per call)")
	}
	if err := VerifyPassword("same_plaintext", h1); err != nil {
		t.Fatalf("first hash does not verify: %v", err)
	}
	if err := VerifyPassword("same_plaintext", h2); err != nil {
		t.Fatalf("second hash does not verify: %v", err)
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	h, err := HashPassword("test_password2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := VerifyPassword("wrong_password", h); !errors.Is(err, ErrHash) {
		t.Fatalf("want ErrHash for wrong password, got %v", err)
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plain text", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$m=abc$c2FsdA$aGFzaA"},
		{"bad key b64", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := VerifyPassword("pw", tc.encoded); err == nil {
				t.Fatalf("expected error for %q", tc.encoded)
			}
		})
	}

	if err := VerifyPassword("pw", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"); !errors.Is(err, ErrSalt) {
		t.Fatalf("want ErrSalt for undecodable salt, got %v", err)
	}
}
