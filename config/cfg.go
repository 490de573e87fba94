package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	// timezone database for distroless images
	_ "time/tzdata"

	httpapi "github.com/jekabolt/organic-reports/internal/api/http"
	"github.com/jekabolt/organic-reports/internal/auth/jwt"
	"github.com/jekabolt/organic-reports/internal/bucket"
	"github.com/jekabolt/organic-reports/internal/ratelimit"
	"github.com/jekabolt/organic-reports/internal/reconcile"
	"github.com/jekabolt/organic-reports/internal/snapshot"
	"github.com/jekabolt/organic-reports/internal/source/analytics"
	"github.com/jekabolt/organic-reports/internal/source/backend"
	"github.com/jekabolt/organic-reports/internal/store"
	"github.com/jekabolt/organic-reports/log"
	"github.com/spf13/viper"
)

const (
	// FallbackBackend reads raw collections from the storefront REST API.
	FallbackBackend = "backend"
	// FallbackMySQL reads raw collections straight from the storefront database.
	FallbackMySQL = "mysql"
)

// FallbackConfig selects where raw collections come from when the
// analytics service is unavailable.
type FallbackConfig struct {
	Source string `mapstructure:"source"`
}

// ReportsConfig holds reporting settings shared by the API, exporter and worker.
type ReportsConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured timezone. Empty means UTC.
func (c ReportsConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reports timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      jwt.Config       `mapstructure:"auth"`
	Analytics analytics.Config `mapstructure:"analytics"`
	Backend   backend.Config   `mapstructure:"backend"`
	Fallback  FallbackConfig   `mapstructure:"fallback"`
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	Reports   ReportsConfig    `mapstructure:"reports"`
	RateLimit ratelimit.Config `mapstructure:"ratelimit"`
	Bucket    bucket.Config    `mapstructure:"bucket"`
	Snapshot  snapshot.Config  `mapstructure:"snapshot"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn,
// flat names such as MYSQL_DSN are bound in bindEnvVars.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/organic-reports")
		v.AddConfigPath("/etc/organic-reports")
		// config file is optional
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	switch config.Fallback.Source {
	case FallbackBackend, FallbackMySQL:
	default:
		return nil, fmt.Errorf("unknown fallback source %q", config.Fallback.Source)
	}

	return &config, nil
}

// dsnFromEnv builds a MySQL DSN from individual env vars. DigitalOcean's db.*
// vars win over MYSQL_*.
func dsnFromEnv() string {
	var host, port, user, password, database string
	if dbHost := os.Getenv("db.HOSTNAME"); dbHost != "" {
		host = dbHost
		port = os.Getenv("db.PORT")
		user = os.Getenv("db.USERNAME")
		password = os.Getenv("db.PASSWORD")
		database = os.Getenv("db.DATABASE")
	} else {
		host = os.Getenv("MYSQL_HOST")
		port = os.Getenv("MYSQL_PORT")
		user = os.Getenv("MYSQL_USER")
		password = os.Getenv("MYSQL_PASSWORD")
		database = os.Getenv("MYSQL_DATABASE")
	}
	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	// managed databases require TLS, see store.registerTLSConfig
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true&tls=custom",
		user, password, host, port, database)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", 0)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.default_period", "30days")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 60*time.Second)

	v.SetDefault("auth.ttl", 24*time.Hour)

	v.SetDefault("analytics.timeout", 10*time.Second)
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("fallback.source", FallbackBackend)

	rc := reconcile.DefaultConfig()
	v.SetDefault("reconcile.timeout", rc.Timeout)
	v.SetDefault("reconcile.top_products", rc.TopProducts)
	v.SetDefault("reconcile.products_limit", rc.ProductsLimit)

	v.SetDefault("reports.timezone", "UTC")

	rl := ratelimit.DefaultConfig()
	v.SetDefault("ratelimit.window", rl.Window)
	v.SetDefault("ratelimit.max", rl.Max)

	v.SetDefault("mysql.max_open_connections", 5)
	v.SetDefault("mysql.max_idle_connections", 2)

	sc := snapshot.DefaultConfig()
	v.SetDefault("snapshot.enabled", sc.Enabled)
	v.SetDefault("snapshot.worker_interval", sc.WorkerInterval)
	v.SetDefault("snapshot.period", sc.Period)
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.default_period", "HTTP_DEFAULT_PERIOD")

	// Auth
	v.BindEnv("auth.secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.ttl", "AUTH_JWT_TTL")

	// Sources
	v.BindEnv("analytics.base_url", "ANALYTICS_BASE_URL")
	v.BindEnv("analytics.token", "ANALYTICS_TOKEN")
	v.BindEnv("analytics.timeout", "ANALYTICS_TIMEOUT")
	v.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	v.BindEnv("backend.token", "BACKEND_TOKEN")
	v.BindEnv("backend.timeout", "BACKEND_TIMEOUT")
	v.BindEnv("fallback.source", "FALLBACK_SOURCE")

	// Reconcile
	v.BindEnv("reconcile.timeout", "RECONCILE_TIMEOUT")
	v.BindEnv("reconcile.top_products", "RECONCILE_TOP_PRODUCTS")
	v.BindEnv("reconcile.products_limit", "RECONCILE_PRODUCTS_LIMIT")

	// Reports
	v.BindEnv("reports.timezone", "REPORTS_TIMEZONE")

	// Rate limit
	v.BindEnv("ratelimit.window", "RATELIMIT_WINDOW")
	v.BindEnv("ratelimit.max", "RATELIMIT_MAX")

	// Bucket
	v.BindEnv("bucket.s3AccessKey", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3SecretAccessKey", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3Endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3BucketName", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3BucketLocation", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.s3Insecure", "BUCKET_S3_INSECURE")
	v.BindEnv("bucket.baseFolder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.subdomainEndpoint", "BUCKET_SUBDOMAIN_ENDPOINT")

	// Snapshot worker
	v.BindEnv("snapshot.enabled", "SNAPSHOT_ENABLED")
	v.BindEnv("snapshot.worker_interval", "SNAPSHOT_WORKER_INTERVAL")
	v.BindEnv("snapshot.period", "SNAPSHOT_PERIOD")
}
