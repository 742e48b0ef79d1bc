package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/spendview/internal/sample"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Display.Currency = "$"
	cfg.Sample.Categories = []string{"Coffee", "Books"}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "$", got.Display.Currency)
	assert.Equal(t, cfg.Display.DateFormat, got.Display.DateFormat)
	assert.Equal(t, cfg.Input.Format, got.Input.Format)
	assert.Equal(t, cfg.Sample.Size, got.Sample.Size)
	assert.InDelta(t, cfg.Sample.MinAmount, got.Sample.MinAmount, 0.001)
	assert.InDelta(t, cfg.Sample.MaxAmount, got.Sample.MaxAmount, 0.001)
	assert.Equal(t, []string{"Coffee", "Books"}, got.Sample.Categories)
	assert.Equal(t, cfg.Server.Addr, got.Server.Addr)
	assert.Equal(t, cfg.Log, got.Log)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "₹", cfg.Display.Currency)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, "standard", cfg.Input.Format)
	assert.Equal(t, 100, cfg.Sample.Size)
	assert.InDelta(t, 10.0, cfg.Sample.MinAmount, 0.001)
	assert.InDelta(t, 500.0, cfg.Sample.MaxAmount, 0.001)
	assert.Equal(t, sample.DefaultCategories(), cfg.Sample.Categories)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("display:\n  currency: \"€\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "€", cfg.Display.Currency)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, 100, cfg.Sample.Size)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("display: [unclosed\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "display:")
	assert.Contains(t, contents, "format: standard")
	assert.Contains(t, contents, "size: 100")
	assert.Contains(t, contents, "max_amount: 500")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvCurrency: "$",
		EnvAddr:     "127.0.0.1:9000",
		EnvLogLevel: "debug",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, "$", cfg.Display.Currency)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnv_Unset(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(string) (string, bool) { return "", false })
	assert.Equal(t, Default(), cfg)
}

func TestResolve_ExplicitPath(t *testing.T) {
	t.Setenv(EnvCurrency, "£")
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9999\"\n"), 0o644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "£", cfg.Display.Currency, "env overrides file")
}

func TestResolve_MissingExplicitPath(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Sample.MaxAmount = 1
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.max_amount")
	assert.Contains(t, err.Error(), "log.format")
}
