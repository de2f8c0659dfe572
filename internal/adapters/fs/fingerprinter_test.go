package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFingerprint_Content(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.h", "alpha")

	f := NewFingerprinter()
	fp, err := f.Fingerprint(root, "src/a.h")
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if fp.Size != int64(len("alpha")) {
		t.Errorf("expected size %d, got %d", len("alpha"), fp.Size)
	}
	if fp.ContentDigest.IsZero() {
		t.Error("expected non-zero content digest")
	}
	if fp.MTimeNS == 0 {
		t.Error("expected non-zero mtime")
	}
}

func TestFingerprint_SameContentSameDigest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a", "identical")
	writeFile(t, root, "b", "identical")
	writeFile(t, root, "c", "different")

	f := NewFingerprinter()
	fpA, err := f.Fingerprint(root, "a")
	if err != nil {
		t.Fatal(err)
	}
	fpB, err := f.Fingerprint(root, "b")
	if err != nil {
		t.Fatal(err)
	}
	fpC, err := f.Fingerprint(root, "c")
	if err != nil {
		t.Fatal(err)
	}

	if fpA.ContentDigest != fpB.ContentDigest {
		t.Error("identical content must produce identical digests")
	}
	if fpA.ContentDigest == fpC.ContentDigest {
		t.Error("different content must produce different digests")
	}
}

func TestFingerprint_MissingFile(t *testing.T) {
	f := NewFingerprinter()
	if _, err := f.Fingerprint(t.TempDir(), "no/such/file"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSnapshot(t *testing.T) {
	root := t.TempDir()
	paths := []string{"src/a.h", "src/b.h", "src/c.h"}
	for _, rel := range paths {
		writeFile(t, root, rel, "content of "+rel)
	}

	f := &Fingerprinter{Parallelism: 2}
	snap, err := f.Snapshot(context.Background(), root, paths)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap) != len(paths) {
		t.Fatalf("expected %d fingerprints, got %d", len(paths), len(snap))
	}

	for _, rel := range paths {
		want, err := f.Fingerprint(root, rel)
		if err != nil {
			t.Fatal(err)
		}
		if got := snap[rel]; got.ContentDigest != want.ContentDigest || got.Size != want.Size {
			t.Errorf("snapshot fingerprint for %s differs from direct fingerprint", rel)
		}
	}
}

func TestSnapshot_FailureAborts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "present", "here")

	f := NewFingerprinter()
	if _, err := f.Snapshot(context.Background(), root, []string{"present", "absent"}); err == nil {
		t.Error("expected error when one path is missing")
	}
}

func TestSnapshot_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "present", "here")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFingerprinter()
	if _, err := f.Snapshot(ctx, root, []string{"present"}); err == nil {
		t.Error("expected error for canceled context")
	}
}
