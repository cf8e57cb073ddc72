package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goldstarz.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultStaticDir, cfg.Server.StaticDir)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultStarBalance, cfg.StarBalance())
	assert.False(t, cfg.Server.DevStatic)
	assert.Empty(t, cfg.Seed.Tasks)
}

func TestLoad_FileWithSeeds(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:8080"
stars:
  balance: 0
locale: de
seed:
  tasks:
    - title: Make bed
      stars: "2"
      category: Daily
  rewards:
    - description: Movie
      stars: "50"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 0, cfg.StarBalance())
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, []SeedTask{{Title: "Make bed", Stars: "2", Category: "Daily"}}, cfg.Seed.Tasks)
	assert.Equal(t, []SeedReward{{Description: "Movie", Stars: "50"}}, cfg.Seed.Rewards)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":1\"\nstars:\n  balance: 5\n")
	t.Setenv("GOLDSTARZ_ADDR", ":9999")
	t.Setenv("GOLDSTARZ_STAR_BALANCE", "120")
	t.Setenv("GOLDSTARZ_LOCALE", "fr")
	t.Setenv("GOLDSTARZ_DEV_STATIC", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, 120, cfg.StarBalance())
	assert.Equal(t, "fr", cfg.Locale)
	assert.True(t, cfg.Server.DevStatic)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("GOLDSTARZ_STAR_BALANCE", "lots")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "server: [")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_NegativeBalanceRejected(t *testing.T) {
	path := writeConfig(t, "stars:\n  balance: -1\n")

	_, err := Load(path)
	assert.EqualError(t, err, "stars.balance must not be negative, got -1")
}
