// Package password hashes and verifies account passwords with Argon2id.
//
// Hashes are stored in the PHC string format used by libsodium
// ($argon2id$v=19$m=65536,t=2,p=1$salt$hash). Blobs written by libsodium are
// NUL padded to a fixed length, so trailing NULs are ignored when parsing.
package password

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrMalformedHash = errors.New("malformed argon2id hash")

type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// Interactive matches libsodium's OPSLIMIT_INTERACTIVE / MEMLIMIT_INTERACTIVE.
var Interactive = Params{
	Time:    2,
	Memory:  64 * 1024,
	Threads: 1,
	SaltLen: 16,
	KeyLen:  32,
}

type Hash struct {
	Params Params
	Salt   []byte
	Key    []byte
}

func Generate(password string, p Params) ([]byte, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	h := Hash{
		Params: p,
		Salt:   salt,
		Key:    argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen),
	}
	return []byte(h.String()), nil
}

func (h *Hash) String() string {
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.Params.Memory, h.Params.Time, h.Params.Threads,
		b64.EncodeToString(h.Salt), b64.EncodeToString(h.Key))
}

// Parse recovers a Hash from its stored form.
func Parse(blob []byte) (*Hash, error) {
	blob = bytes.TrimRight(blob, "\x00")
	parts := strings.Split(string(blob), "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedHash, parts[2])
	}

	var h Hash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.Params.Memory, &h.Params.Time, &h.Params.Threads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	var err error
	if h.Salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	if h.Key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}
	if len(h.Key) == 0 {
		return nil, ErrMalformedHash
	}
	h.Params.SaltLen = uint32(len(h.Salt))
	h.Params.KeyLen = uint32(len(h.Key))

	return &h, nil
}

func (h *Hash) Verify(password string) bool {
	key := argon2.IDKey([]byte(password), h.Salt, h.Params.Time, h.Params.Memory, h.Params.Threads, h.Params.KeyLen)
	return subtle.ConstantTimeCompare(key, h.Key) == 1
}
