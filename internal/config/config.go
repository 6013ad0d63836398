package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/spf13/viper"
)

// DateLayout is the format for configured dates.
const DateLayout = "2006-01-02"

// Config is the resolved application configuration.
type Config struct {
	AsOf      time.Time
	Logging   LoggingConfig
	Server    ServerConfig
	Files     []string
	Consent   model.ConsentSettings
	UseDemo   bool
	AsOfFixed bool
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr    string
	CertDir string
	TLS     bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	consent := model.DefaultConsent()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("history.demo", false)
	v.SetDefault("history.files", []string{})
	v.SetDefault("history.as_of", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.tls", false)
	v.SetDefault("server.cert_dir", "~/.config/credit/certs")
	v.SetDefault("consent.credit_scoring", consent.CreditScoring)
	v.SetDefault("consent.loan_eligibility", consent.LoanEligibility)
	v.SetDefault("consent.third_party_sharing", consent.ThirdPartySharing)
}

// Load resolves configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom resolves and validates configuration from v. When no statement
// files are configured the demo history is used.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
		Server: ServerConfig{
			Addr:    v.GetString("server.addr"),
			TLS:     v.GetBool("server.tls"),
			CertDir: ExpandPath(v.GetString("server.cert_dir")),
		},
		UseDemo: v.GetBool("history.demo"),
		Consent: model.ConsentSettings{
			CreditScoring:     v.GetBool("consent.credit_scoring"),
			LoanEligibility:   v.GetBool("consent.loan_eligibility"),
			ThirdPartySharing: v.GetBool("consent.third_party_sharing"),
		},
	}

	for _, f := range v.GetStringSlice("history.files") {
		if f = strings.TrimSpace(f); f != "" {
			cfg.Files = append(cfg.Files, ExpandPath(f))
		}
	}
	if len(cfg.Files) == 0 {
		cfg.UseDemo = true
	}

	if raw := strings.TrimSpace(v.GetString("history.as_of")); raw != "" {
		asOf, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: history.as_of %q: expected YYYY-MM-DD", common.ErrInvalidConfig, raw)
		}
		cfg.AsOf = asOf.Add(24*time.Hour - time.Nanosecond)
		cfg.AsOfFixed = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", common.ErrInvalidConfig)
	}
	if c.Server.TLS && strings.TrimSpace(c.Server.CertDir) == "" {
		return fmt.Errorf("%w: server.cert_dir is required with server.tls", common.ErrInvalidConfig)
	}
	return nil
}

// Clock returns the time source scoring should use: the configured as-of
// date when set, otherwise the wall clock.
func (c *Config) Clock() func() time.Time {
	if c.AsOfFixed {
		asOf := c.AsOf
		return func() time.Time { return asOf }
	}
	return time.Now
}
