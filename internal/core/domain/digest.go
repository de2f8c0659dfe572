package domain

import (
	"encoding/hex"
	"sort"

	"github.com/zeebo/blake3"
	"go.trai.ch/zerr"
)

// DigestSize is the size in bytes of every digest in the action cache.
const DigestSize = 32

// Digest is a fixed-length BLAKE3 fingerprint. It is a value type and
// compares with ==.
type Digest [DigestSize]byte

// NewDigest computes the BLAKE3 digest of the given bytes.
func NewDigest(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// Hex returns the lowercase hexadecimal rendering of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest is the all-zero value.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// ParseDigest parses a 64-character lowercase hex string into a Digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return d, zerr.Wrap(err, "failed to parse digest")
	}
	if len(decoded) != DigestSize {
		return d, zerr.With(zerr.New("digest has wrong length"), "length", len(decoded))
	}
	copy(d[:], decoded)
	return d, nil
}

// DigestOfEnv computes a deterministic digest over an environment variable
// map. Keys are sorted before hashing so that map iteration order never
// affects the result. Only the variables the action actually reads should
// be passed in, not the full process environment.
func DigestOfEnv(env map[string]string) Digest {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := blake3.New()
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{'='})
		_, _ = h.WriteString(env[k])
		_, _ = h.Write([]byte{0})
	}

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
