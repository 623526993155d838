package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

const (
	EnvPrefix  = "SALEOR"
	ConfigName = "saleor-seed"
)

var keys = []string{"api_url", "app_token", "email", "password", "seed_file", "timeout"}

type Config struct {
	APIURL   string        `json:"api_url" mapstructure:"api_url"`
	AppToken string        `json:"app_token" mapstructure:"app_token"`
	Email    string        `json:"email" mapstructure:"email"`
	Password string        `json:"password" mapstructure:"password"`
	SeedFile string        `json:"seed_file" mapstructure:"seed_file"`
	Timeout  time.Duration `json:"timeout" mapstructure:"timeout"`
}

var ErrMissingAPIURL = errors.New("SALEOR_API_URL is not set. Copy .env.example to .env and fill it in")

// Setup points viper at the optional saleor-seed.{yaml,json} file in the
// working directory and at the SALEOR_* environment variables.
func Setup(v *viper.Viper) {
	v.AddConfigPath(".")
	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.Email = strings.TrimSpace(cfg.Email)

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SALEOR_API_URL is not a valid URL: %q", c.APIURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported SALEOR_API_URL scheme: %s", u.Scheme)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	return nil
}

func (c *Config) Credentials() saleor.Credentials {
	return saleor.Credentials{
		Token:    c.AppToken,
		Email:    c.Email,
		Password: c.Password,
	}
}
