package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Stripe    StripeConfig
	Square    SquareConfig
	Mail      MailConfig
	Wholesale WholesaleConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// StripeConfig holds payment processor settings
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
	Currency       string
}

// Enabled reports whether checkout payments are configured
func (s *StripeConfig) Enabled() bool {
	return s.SecretKey != ""
}

// SquareConfig holds Square platform settings
type SquareConfig struct {
	AccessToken string
	Environment string // sandbox, production
	LocationID  string
	APIVersion  string
}

// Enabled reports whether the Square integration is configured
func (s *SquareConfig) Enabled() bool {
	return s.AccessToken != "" && s.LocationID != ""
}

// BaseURL returns the Square REST endpoint for the configured environment
func (s *SquareConfig) BaseURL() string {
	if s.Environment == "production" {
		return "https://connect.squareup.com"
	}
	return "https://connect.squareupsandbox.com"
}

// MailConfig holds SMTP transport and team notification settings
type MailConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	FromAddress   string
	UseTLS        bool
	WholesaleTeam string
	QuoteTeam     string
	ContactTeam   string
}

// WholesaleConfig holds wholesale access session settings
type WholesaleConfig struct {
	SigningSecret  string
	CookieName     string
	TokenLifetime  time.Duration
	CookieSecure   bool
	CookieSameSite string // strict, lax, none
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with MEAT_ prefix (e.g., MEAT_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("MEAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Stripe: StripeConfig{
			SecretKey:      v.GetString("stripe.secret_key"),
			PublishableKey: v.GetString("stripe.publishable_key"),
			WebhookSecret:  v.GetString("stripe.webhook_secret"),
			Currency:       v.GetString("stripe.currency"),
		},
		Square: SquareConfig{
			AccessToken: v.GetString("square.access_token"),
			Environment: v.GetString("square.environment"),
			LocationID:  v.GetString("square.location_id"),
			APIVersion:  v.GetString("square.api_version"),
		},
		Mail: MailConfig{
			Host:          v.GetString("mail.host"),
			Port:          v.GetInt("mail.port"),
			Username:      v.GetString("mail.username"),
			Password:      v.GetString("mail.password"),
			FromAddress:   v.GetString("mail.from_address"),
			UseTLS:        v.GetBool("mail.use_tls"),
			WholesaleTeam: v.GetString("mail.wholesale_team"),
			QuoteTeam:     v.GetString("mail.quote_team"),
			ContactTeam:   v.GetString("mail.contact_team"),
		},
		Wholesale: WholesaleConfig{
			SigningSecret:  v.GetString("wholesale.signing_secret"),
			CookieName:     v.GetString("wholesale.cookie_name"),
			TokenLifetime:  v.GetDuration("wholesale.token_lifetime"),
			CookieSecure:   v.GetBool("wholesale.cookie_secure"),
			CookieSameSite: v.GetString("wholesale.cookie_same_site"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "meatdirect-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "meatdirect"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB, webhook payloads are small
	}
	// CORS origins intentionally have no wildcard fallback. An empty
	// list means no cross-origin requests until explicitly configured.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "cad"
	}
	if cfg.Square.Environment == "" {
		cfg.Square.Environment = "sandbox"
	}
	if cfg.Square.APIVersion == "" {
		cfg.Square.APIVersion = "2024-07-17"
	}
	if cfg.Mail.Host == "" {
		cfg.Mail.Host = "localhost"
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 587
	}
	if cfg.Mail.FromAddress == "" {
		cfg.Mail.FromAddress = "no-reply@meatdirect.com"
	}
	if cfg.Mail.WholesaleTeam == "" {
		cfg.Mail.WholesaleTeam = "hello@meatdirect.com"
	}
	if cfg.Mail.QuoteTeam == "" {
		cfg.Mail.QuoteTeam = "hello@meatdirect.com"
	}
	if cfg.Mail.ContactTeam == "" {
		cfg.Mail.ContactTeam = "hello@meatdirect.com"
	}
	if cfg.Wholesale.CookieName == "" {
		cfg.Wholesale.CookieName = "wholesale_access"
	}
	if cfg.Wholesale.TokenLifetime == 0 {
		cfg.Wholesale.TokenLifetime = 14 * 24 * time.Hour
	}
	if cfg.Wholesale.CookieSameSite == "" {
		cfg.Wholesale.CookieSameSite = "lax"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Square.Environment != "sandbox" && c.Square.Environment != "production" {
		return fmt.Errorf("square.environment must be 'sandbox' or 'production', got %q", c.Square.Environment)
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		if c.Stripe.WebhookSecret == "" {
			return fmt.Errorf("stripe.webhook_secret is required in production")
		}
		if c.Wholesale.SigningSecret == "" {
			return fmt.Errorf("wholesale.signing_secret is required in production")
		}
		if len(c.Wholesale.SigningSecret) < 32 {
			return fmt.Errorf("wholesale.signing_secret must be at least 32 characters in production")
		}
		if !c.Wholesale.CookieSecure {
			return fmt.Errorf("wholesale.cookie_secure must be true in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
