package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[http]
port = "9000"
allowed_origins = ["https://admin.example.com"]

[analytics]
base_url = "https://analytics.example.com"
timeout = "3s"

[fallback]
source = "mysql"

[reports]
timezone = "Europe/Riga"

[bucket]
s3BucketName = "reports"
baseFolder = "snapshots"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "https://analytics.example.com", cfg.Analytics.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Analytics.Timeout)
	assert.Equal(t, FallbackMySQL, cfg.Fallback.Source)
	assert.Equal(t, "reports", cfg.Bucket.S3BucketName)
	assert.Equal(t, "snapshots", cfg.Bucket.BaseFolder)

	loc, err := cfg.Reports.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Riga", loc.String())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "30days", cfg.HTTP.DefaultPeriod)
	assert.Equal(t, FallbackBackend, cfg.Fallback.Source)
	assert.Equal(t, 10*time.Second, cfg.Reconcile.Timeout)
	assert.Equal(t, 10, cfg.Reconcile.TopProducts)
	assert.Equal(t, 1000, cfg.Reconcile.ProductsLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 10, cfg.RateLimit.Max)
	assert.False(t, cfg.Snapshot.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Snapshot.WorkerInterval)
	assert.False(t, cfg.Analytics.Enabled())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ANALYTICS_BASE_URL", "https://env.example.com")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Analytics.BaseURL)
	assert.Equal(t, "7000", cfg.HTTP.Port)
	assert.Equal(t, "secret", cfg.Auth.Secret)
}

func TestLoadConfig_DSNFromEnv(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "reports")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("MYSQL_DATABASE", "shop")

	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "reports:pw@tcp(db.internal:3306)/shop?charset=utf8&parseTime=true&tls=custom", cfg.DB.DSN)
}

func TestLoadConfig_UnknownFallback(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[fallback]\nsource = \"ftp\"\n"))
	assert.Error(t, err)
}

func TestReportsLocation(t *testing.T) {
	loc, err := ReportsConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = ReportsConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
