package domain

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// OrderIndependentHasher folds a set of (path, fingerprint) pairs plus an
// environment digest into one combined digest whose value does not depend
// on the order in which artifacts were added.
//
// Each artifact is hashed to a 32-byte BLAKE3 digest, and digests are
// combined by bytewise addition modulo 2^256. Addition is commutative and
// associative, so any permutation of Add calls yields the same accumulator.
// Collision resistance rests on the per-artifact digests being full-width
// BLAKE3 values; the accumulator exposes neither the count nor the order
// of its inputs.
type OrderIndependentHasher struct {
	acc Digest
}

// NewOrderIndependentHasher returns a hasher with the identity accumulator.
func NewOrderIndependentHasher() *OrderIndependentHasher {
	return &OrderIndependentHasher{}
}

// AddArtifact folds one (path, fingerprint) pair into the accumulator.
func (h *OrderIndependentHasher) AddArtifact(path string, fp Fingerprint) {
	h.fold(artifactDigest(path, fp))
}

// Finish folds in the environment digest and returns the combined digest.
func (h *OrderIndependentHasher) Finish(envDigest Digest) Digest {
	h.fold(envDigest)
	return h.acc
}

// fold adds d into the accumulator, little-endian bytewise with carry.
func (h *OrderIndependentHasher) fold(d Digest) {
	var carry uint16
	for i := 0; i < DigestSize; i++ {
		carry += uint16(h.acc[i]) + uint16(d[i])
		h.acc[i] = byte(carry)
		carry >>= 8
	}
}

// artifactDigest hashes one artifact as path, content digest, and size,
// with separators so no two distinct pairs share an encoding.
func artifactDigest(path string, fp Fingerprint) Digest {
	hasher := blake3.New()
	_, _ = hasher.WriteString(path)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write(fp.ContentDigest[:])

	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(fp.Size))
	_, _ = hasher.Write(size[:])

	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d
}
