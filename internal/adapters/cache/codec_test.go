package cache

import (
	"testing"

	"go.trai.ch/vouch/internal/core/domain"
)

func buildEntry(t *testing.T, actionKey string, env map[string]string, discovers bool, files map[string]string) *domain.Entry {
	t.Helper()
	b := domain.NewEntryBuilder(actionKey, env, discovers)
	for path, content := range files {
		if err := b.AddFile(path, domain.Fingerprint{
			ContentDigest: domain.NewDigest([]byte(content)),
			Size:          int64(len(content)),
		}); err != nil {
			t.Fatalf("AddFile(%q) failed: %v", path, err)
		}
	}
	entry, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return entry
}

func TestCodec_RoundTrip(t *testing.T) {
	entry := buildEntry(t, "Compile#1", map[string]string{"PATH": "/usr/bin"}, true,
		map[string]string{"src/a.h": "alpha", "src/b.h": "beta"})

	frame, err := encodeRecord("bin/out", entry)
	if err != nil {
		t.Fatalf("encodeRecord failed: %v", err)
	}

	key, decoded, err := decodeRecord(frame)
	if err != nil {
		t.Fatalf("decodeRecord failed: %v", err)
	}
	if key != "bin/out" {
		t.Errorf("expected key bin/out, got %q", key)
	}
	if !decoded.Equal(entry) {
		t.Errorf("decoded entry differs:\n%s\n---\n%s", decoded, entry)
	}
}

func TestCodec_DeterministicFrames(t *testing.T) {
	files := map[string]string{"src/a.h": "alpha", "src/b.h": "beta", "src/c.h": "gamma"}
	env := map[string]string{"PATH": "/usr/bin"}

	e1 := buildEntry(t, "Compile#1", env, true, files)

	b2 := domain.NewEntryBuilder("Compile#1", env, true)
	for _, path := range []string{"src/c.h", "src/a.h", "src/b.h"} {
		content := files[path]
		if err := b2.AddFile(path, domain.Fingerprint{
			ContentDigest: domain.NewDigest([]byte(content)),
			Size:          int64(len(content)),
		}); err != nil {
			t.Fatal(err)
		}
	}
	e2, err := b2.Build()
	if err != nil {
		t.Fatal(err)
	}

	f1, err := encodeRecord("bin/out", e1)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := encodeRecord("bin/out", e2)
	if err != nil {
		t.Fatal(err)
	}
	if string(f1) != string(f2) {
		t.Error("frames for equal entries must be byte-identical")
	}
}

func TestCodec_PayloadCorruptionYieldsMarker(t *testing.T) {
	entry := buildEntry(t, "Compile#1", nil, false, nil)
	frame, err := encodeRecord("bin/out", entry)
	if err != nil {
		t.Fatal(err)
	}

	// Flip a byte in the compressed payload, past the key and checksum.
	mangled := append([]byte(nil), frame...)
	mangled[len(mangled)-1] ^= 0xff

	key, decoded, err := decodeRecord(mangled)
	if err != nil {
		t.Fatalf("expected corruption as a value, got error: %v", err)
	}
	if key != "bin/out" {
		t.Errorf("expected key bin/out, got %q", key)
	}
	if !decoded.IsCorrupted() {
		t.Error("expected the corrupted marker")
	}
}

func TestCodec_TruncatedPayloadYieldsMarker(t *testing.T) {
	entry := buildEntry(t, "Compile#1", nil, false, nil)
	frame, err := encodeRecord("bin/out", entry)
	if err != nil {
		t.Fatal(err)
	}

	// Keep magic, key length, and key; drop the checksum and payload.
	keyEnd := len(frameMagic) + 1 + len("bin/out")
	key, decoded, err := decodeRecord(frame[:keyEnd+3])
	if err != nil {
		t.Fatalf("expected corruption as a value, got error: %v", err)
	}
	if key != "bin/out" {
		t.Errorf("expected key bin/out, got %q", key)
	}
	if !decoded.IsCorrupted() {
		t.Error("expected the corrupted marker")
	}
}

func TestCodec_UnreadableFrames(t *testing.T) {
	cases := map[string][]byte{
		"empty":       nil,
		"wrong magic": []byte("NOPE0123456789"),
		"short":       frameMagic[:3],
		"key overrun": append(append([]byte(nil), frameMagic[:]...), 0xff),
	}
	for name, data := range cases {
		if _, _, err := decodeRecord(data); err == nil {
			t.Errorf("%s: expected error for unreadable frame", name)
		}
	}
}
