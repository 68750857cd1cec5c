package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExpandsEnvAndParses(t *testing.T) {
	t.Setenv("FEED_SECRET_KEY", "11111111-2222-3333-4444-555555555555")

	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: importer
  password: secret
  dbname: cms
  sslmode: disable
feed:
  base_url: http://api.example.com/
  public_key: abc12345
  secret_key: ${FEED_SECRET_KEY}
  format: json
import:
  mode: both
  date_source: created
  feed_id: 7
  interval_minutes: 60
  legacy_slugs: true
media:
  players:
    - type: html5
      min_version: 1
    - type: flash
      min_version: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", cfg.Feed.SecretKey)
	assert.Equal(t, "json", cfg.Feed.Format)
	assert.Equal(t, "both", cfg.Import.Mode)
	assert.Equal(t, "created", cfg.Import.DateSource)
	assert.Equal(t, int64(7), cfg.Import.FeedID)
	assert.Equal(t, 60, cfg.Import.IntervalMinutes)
	assert.True(t, cfg.Import.LegacySlugs)
	require.Len(t, cfg.Media.Players, 2)
	assert.Equal(t, "html5", cfg.Media.Players[0].Type)
	assert.Equal(t, 10, cfg.Media.Players[1].MinVersion)
	assert.Equal(t,
		"host=localhost port=5432 user=importer password=secret dbname=cms sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
feed:
  public_key: abc12345
  secret_key: 11111111-2222-3333-4444-555555555555
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api.brafton.com/", cfg.Feed.BaseURL)
	assert.Equal(t, "xml", cfg.Feed.Format)
	assert.Equal(t, 10*time.Minute, cfg.Feed.Timeout)
	assert.Equal(t, "default", cfg.Import.ID)
	assert.Equal(t, 180, cfg.Import.IntervalMinutes)
	assert.Equal(t, time.Minute, cfg.Import.PollInterval)
	assert.Equal(t, "articles", cfg.Import.Mode)
	assert.Equal(t, "published", cfg.Import.DateSource)
	assert.Equal(t, 10, cfg.Import.PageSize)
	assert.Equal(t, "live", cfg.Import.State)
	assert.Equal(t, "Admin", cfg.Import.Author)
	assert.Equal(t, "/pics/", cfg.Import.PicsURI)
	assert.Equal(t, 300, cfg.Media.ScaleSize)
	assert.Equal(t, "x", cfg.Media.ScaleAxis)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "article_importer", cfg.RabbitMQ.Exchange)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
