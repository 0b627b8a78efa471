package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"
)

type AuthConfig struct {
	SessionTTL time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Argon2PasswordHasher derives argon2id hashes in the standard encoded form
// ($argon2id$v=19$m=...,t=...,p=...$salt$key). The zero value uses the
// application defaults: 19 MiB memory, 2 passes, 1 lane, 32 byte key.
type Argon2PasswordHasher struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
	SaltLen     uint32
}

func (h Argon2PasswordHasher) withDefaults() Argon2PasswordHasher {
	if h.Memory == 0 {
		h.Memory = 19456
	}
	if h.Time == 0 {
		h.Time = 2
	}
	if h.Parallelism == 0 {
		h.Parallelism = 1
	}
	if h.KeyLen == 0 {
		h.KeyLen = 32
	}
	if h.SaltLen == 0 {
		h.SaltLen = 16
	}
	return h
}

func (h Argon2PasswordHasher) Hash(password string) (string, error) {
	p := h.withDefaults()
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
	return encoded, nil
}

func (h Argon2PasswordHasher) Verify(hash string, password string) bool {
	memory, passes, lanes, salt, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}
	derived := argon2.IDKey([]byte(password), salt, passes, memory, lanes, uint32(len(key)))
	return subtle.ConstantTimeCompare(derived, key) == 1
}

func decodeArgon2Hash(encoded string) (memory uint32, passes uint32, lanes uint8, salt []byte, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("malformed argon2id hash")
	}
	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, err
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("unsupported argon2 version")
	}
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &passes, &lanes); err != nil {
		return 0, 0, 0, nil, nil, err
	}
	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return 0, 0, 0, nil, nil, err
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return 0, 0, 0, nil, nil, err
	}
	return memory, passes, lanes, salt, key, nil
}
