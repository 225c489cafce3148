// Package hash provides password hashing with argon2id.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Hasher defines the interface for one-way password hashing.
type Hasher interface {
	// Hash derives an encoded argon2id hash from a plaintext password.
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the encoded hash.
	Verify(encoded, plain string) bool
}

// argon2Hasher implements the Hasher interface.
// The parameters are embedded in the encoded output, so they can be
// changed later without invalidating stored hashes.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// NewArgon2Hasher creates a Hasher with the default argon2id parameters
// (64 MiB memory, 1 pass, 4 lanes).
func NewArgon2Hasher() Hasher {
	return &argon2Hasher{
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		saltLen: 16,
		keyLen:  32,
	}
}

// Hash derives an argon2id key from the password with a random salt and
// returns it in the standard encoded form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
func (h *argon2Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))

	return encoded, nil
}

// Verify re-derives the key with the parameters stored in the encoded hash
// and compares in constant time. A malformed hash verifies to false; it is
// never an error visible to the caller.
func (h *argon2Hasher) Verify(encoded, plain string) bool {
	memory, time, threads, salt, key, err := decode(encoded)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(plain), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1
}

// decode parses an encoded argon2id hash into its parameters, salt and key.
func decode(encoded string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed version: %w", err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("unsupported argon2 version")
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed key: %w", err)
	}

	return memory, time, threads, salt, key, nil
}
