package commands_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vouch/cmd/vouch/commands"
	"go.trai.ch/vouch/internal/adapters/cache"
	"go.trai.ch/vouch/internal/adapters/fs"
	"go.trai.ch/vouch/internal/adapters/telemetry"
	"go.trai.ch/vouch/internal/app"
	"go.trai.ch/vouch/internal/build"
	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/engine/validator"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newTestCLI(t *testing.T) (*commands.CLI, *cache.Store) {
	t.Helper()

	store, err := cache.NewStore(filepath.Join(t.TempDir(), domain.DefaultCachePath()), nopLogger{})
	require.NoError(t, err)

	v := validator.New(store, fs.NewFingerprinter(), nopLogger{}, telemetry.NewNoOp())
	a := app.New(store, v, domain.DefaultSettings(), nopLogger{})
	return commands.New(a), store
}

func runCommand(t *testing.T, cli *commands.CLI, args ...string) string {
	t.Helper()
	var out strings.Builder
	cli.SetOut(&out)
	cli.SetArgs(args)
	require.NoError(t, cli.Execute(context.Background()))
	return out.String()
}

func putEntry(t *testing.T, store *cache.Store, key, actionKey string) {
	t.Helper()
	b := domain.NewEntryBuilder(actionKey, map[string]string{"PATH": "/usr/bin"}, true)
	require.NoError(t, b.AddFile("src/a.h", domain.Fingerprint{
		ContentDigest: domain.NewDigest([]byte("alpha")),
		Size:          5,
	}))
	entry, err := b.Build()
	require.NoError(t, err)
	store.Put(key, entry)
}

func TestDumpCommand(t *testing.T) {
	cli, store := newTestCLI(t)
	putEntry(t, store, "bin/out", "Compile#1")

	out := runCommand(t, cli, "dump")
	assert.Contains(t, out, "bin/out")
	assert.Contains(t, out, "actionKey = Compile#1")
}

func TestStatsCommand(t *testing.T) {
	cli, store := newTestCLI(t)
	store.AccountHit()
	store.AccountMiss(domain.MissReasonNotCached)

	out := runCommand(t, cli, "stats")
	assert.Contains(t, out, "hits: 1")
	assert.Contains(t, out, "misses: 1")
	assert.Contains(t, out, "not_cached: 1")
}

func TestVerifyCommand(t *testing.T) {
	cli, _ := newTestCLI(t)
	t.Chdir(t.TempDir())

	out := runCommand(t, cli, "verify")
	assert.Contains(t, out, "valid: 0")
	assert.Contains(t, out, "stale: 0")
}

func TestCleanCommand(t *testing.T) {
	cli, store := newTestCLI(t)
	putEntry(t, store, "bin/out", "Compile#1")

	runCommand(t, cli, "clean")
	assert.Nil(t, store.Get("bin/out"))
}

func TestVersionCommand(t *testing.T) {
	cli, _ := newTestCLI(t)

	out := runCommand(t, cli, "version")
	assert.Equal(t, build.Version+"\n", out)
}

func TestUnknownCommand(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"no-such-command"})
	assert.Error(t, cli.Execute(context.Background()))
}
