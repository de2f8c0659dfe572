package cache

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Persisted record frame:
//
//	magic (4) | uvarint key length | key | checksum (8, LE) | zstd(cbor payload)
//
// The key travels outside the checksummed payload so that a record whose
// payload rots on disk can still be surfaced as the corrupted marker under
// its own key instead of silently disappearing.
var frameMagic = [4]byte{'V', 'C', 'H', '1'}

// record is the CBOR payload of one cache entry.
type record struct {
	ActionKey string   `cbor:"1,keyasint"`
	EnvDigest []byte   `cbor:"2,keyasint"`
	Discovers bool     `cbor:"3,keyasint"`
	Paths     []string `cbor:"4,keyasint,omitempty"`
	Digest    []byte   `cbor:"5,keyasint"`
}

// encMode uses Core Deterministic Encoding so identical cache contents
// always serialize to identical bytes.
var encMode cbor.EncMode

// decMode accepts standard CBOR and ignores unknown fields for forward
// compatibility.
var decMode cbor.DecMode

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cache: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cache: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic("cache: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("cache: zstd decoder initialization failed: " + err.Error())
	}
}

// encodeRecord serializes a valid entry into a record frame. Paths are
// sorted before encoding so the frame bytes are independent of the order
// in which inputs were discovered.
func encodeRecord(key string, entry *domain.Entry) ([]byte, error) {
	var paths []string
	if entry.DiscoversInputs() {
		paths = entry.Paths()
		sort.Strings(paths)
	}

	envDigest := entry.UsedClientEnvDigest()
	digest := entry.CombinedDigest()
	payload, err := encMode.Marshal(record{
		ActionKey: entry.ActionKey(),
		EnvDigest: envDigest[:],
		Discovers: entry.DiscoversInputs(),
		Paths:     paths,
		Digest:    digest[:],
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal cache record")
	}

	compressed := zstdEncoder.EncodeAll(payload, nil)

	frame := make([]byte, 0, len(frameMagic)+binary.MaxVarintLen64+len(key)+8+len(compressed))
	frame = append(frame, frameMagic[:]...)
	frame = binary.AppendUvarint(frame, uint64(len(key)))
	frame = append(frame, key...)
	frame = binary.LittleEndian.AppendUint64(frame, xxhash.Sum64(compressed))
	frame = append(frame, compressed...)
	return frame, nil
}

// decodeRecord parses a record frame. A frame whose key region is intact
// but whose payload fails the checksum, decompression, decoding, or shape
// validation yields (key, CorruptedEntry, nil): corruption is a value, not
// an error. Only a frame too mangled to recover the key returns an error.
func decodeRecord(data []byte) (string, *domain.Entry, error) {
	if len(data) < len(frameMagic) || [4]byte(data[:4]) != frameMagic {
		return "", nil, zerr.New("cache record has no valid frame header")
	}
	rest := data[len(frameMagic):]

	keyLen, n := binary.Uvarint(rest)
	if n <= 0 || keyLen > uint64(len(rest)-n) {
		return "", nil, zerr.New("cache record has unreadable key")
	}
	rest = rest[n:]
	key := string(rest[:keyLen])
	rest = rest[keyLen:]

	if len(rest) < 8 {
		return key, domain.CorruptedEntry, nil
	}
	wantSum := binary.LittleEndian.Uint64(rest[:8])
	compressed := rest[8:]
	if xxhash.Sum64(compressed) != wantSum {
		return key, domain.CorruptedEntry, nil
	}

	payload, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return key, domain.CorruptedEntry, nil
	}

	var rec record
	if err := decMode.Unmarshal(payload, &rec); err != nil {
		return key, domain.CorruptedEntry, nil
	}
	if len(rec.EnvDigest) != domain.DigestSize || len(rec.Digest) != domain.DigestSize {
		return key, domain.CorruptedEntry, nil
	}

	var envDigest, digest domain.Digest
	copy(envDigest[:], rec.EnvDigest)
	copy(digest[:], rec.Digest)
	return key, domain.NewEntry(rec.ActionKey, envDigest, rec.Discovers, rec.Paths, digest), nil
}
