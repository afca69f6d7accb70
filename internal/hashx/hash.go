// Package hashx implements salted password hashing for user credentials.
//
// Hashes are produced with argon2id and encoded as a single self-describing
// PHC string:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so verification later needs nothing beyond the stored value. A fresh
// random salt is generated on every call; hashing the same plaintext twice
// yields two different strings that both verify.
package hashx

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrSalt means the random salt could not be materialized.
	ErrSalt = errors.New("failed to create salt")
	// ErrHash means key derivation or verification failed. Both are fatal
	// for the calling operation; there is no retry.
	ErrHash = errors.New("failed to hash password")
)

// HashFunc is the hashing capability injected into user construction.
// Implementations must salt freshly on every call. Tests substitute a fast
// deterministic stub.
type HashFunc func(password string) (string, error)

const (
	timeCost   = 1
	memoryCost = 64 * 1024
	threads    = 4
	saltLen    = 16
	keyLen     = 32
)

var _ HashFunc = HashPassword

// HashPassword derives an argon2id hash of password under a fresh random
// salt and returns it in PHC string form.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", ErrSalt
	}
	key := argon2.IDKey([]byte(password), salt, timeCost, memoryCost, threads, keyLen)
	return encode(salt, key), nil
}

func encode(salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryCost, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

// VerifyPassword re-derives the key from password using the parameters and
// salt embedded in encoded and compares it to the stored key in constant
// time. A malformed hash, an unsupported variant, and a mismatch all report
// ErrHash.
func VerifyPassword(password, encoded string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return ErrHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return ErrHash
	}

	var (
		m, t uint32
		p    uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return ErrHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrSalt
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrHash
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrHash
	}
	return nil
}
