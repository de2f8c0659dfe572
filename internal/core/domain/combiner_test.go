package domain_test

import (
	"testing"

	"go.trai.ch/vouch/internal/core/domain"
)

func TestOrderIndependentHasher_Commutativity(t *testing.T) {
	env := domain.DigestOfEnv(map[string]string{"PATH": "/usr/bin"})
	fpA := fingerprintOf("alpha")
	fpB := fingerprintOf("beta")

	h1 := domain.NewOrderIndependentHasher()
	h1.AddArtifact("a", fpA)
	h1.AddArtifact("b", fpB)

	h2 := domain.NewOrderIndependentHasher()
	h2.AddArtifact("b", fpB)
	h2.AddArtifact("a", fpA)

	if d1, d2 := h1.Finish(env), h2.Finish(env); d1 != d2 {
		t.Errorf("digests differ across orders: %s vs %s", d1.Hex(), d2.Hex())
	}
}

func TestOrderIndependentHasher_DistinguishesInputs(t *testing.T) {
	env := domain.DigestOfEnv(map[string]string{"PATH": "/usr/bin"})
	fp := fingerprintOf("alpha")

	base := domain.NewOrderIndependentHasher()
	base.AddArtifact("a", fp)
	baseDigest := base.Finish(env)

	// Different path, same content.
	otherPath := domain.NewOrderIndependentHasher()
	otherPath.AddArtifact("b", fp)
	if otherPath.Finish(env) == baseDigest {
		t.Error("expected different digest for different path")
	}

	// Same path, different content.
	otherContent := domain.NewOrderIndependentHasher()
	otherContent.AddArtifact("a", fingerprintOf("beta"))
	if otherContent.Finish(env) == baseDigest {
		t.Error("expected different digest for different content")
	}

	// Same path and content, different size.
	sizeFP := fp
	sizeFP.Size++
	otherSize := domain.NewOrderIndependentHasher()
	otherSize.AddArtifact("a", sizeFP)
	if otherSize.Finish(env) == baseDigest {
		t.Error("expected different digest for different size")
	}

	// Same artifacts, different environment.
	otherEnv := domain.NewOrderIndependentHasher()
	otherEnv.AddArtifact("a", fp)
	if otherEnv.Finish(domain.DigestOfEnv(map[string]string{"PATH": "/bin"})) == baseDigest {
		t.Error("expected different digest for different environment")
	}
}

func TestOrderIndependentHasher_MTimeDoesNotAffectDigest(t *testing.T) {
	env := domain.Digest{}
	fp := fingerprintOf("alpha")
	stale := fp
	stale.MTimeNS = 1234567890

	h1 := domain.NewOrderIndependentHasher()
	h1.AddArtifact("a", fp)
	h2 := domain.NewOrderIndependentHasher()
	h2.AddArtifact("a", stale)

	if h1.Finish(env) != h2.Finish(env) {
		t.Error("mtime must not affect the combined digest")
	}
}

func TestOrderIndependentHasher_EmptySet(t *testing.T) {
	env := domain.DigestOfEnv(map[string]string{"PATH": "/usr/bin"})

	h := domain.NewOrderIndependentHasher()
	if got := h.Finish(env); got != env {
		t.Errorf("empty set must yield the environment digest, got %s", got.Hex())
	}
}
