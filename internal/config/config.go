package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret        string `yaml:"secret"`
		Issuer        string `yaml:"issuer"`
		Audience      string `yaml:"audience"`
		ExpireMinutes int    `yaml:"expire_minutes"`
	} `yaml:"jwt"`

	Admin struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Load reads configuration from environment variables when DATABASE_URL is
// set (test/deployment mode), otherwise from the YAML file at CONFIG_PATH
// (default config/config.yaml).
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.Issuer = os.Getenv("JWT_ISSUER")
		cfg.JWT.Audience = os.Getenv("JWT_AUDIENCE")
		cfg.JWT.ExpireMinutes, _ = strconv.Atoi(os.Getenv("JWT_EXPIRE_MINUTES"))
		cfg.Admin.Name = os.Getenv("ADMIN_NAME")
		cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
		cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
		cfg.applyDefaults()
		return &cfg, cfg.validate()
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.JWT.ExpireMinutes == 0 {
		c.JWT.ExpireMinutes = 60
	}
}

// validate rejects configurations the server must not start with. A missing
// signing key, issuer or audience would silently produce unverifiable tokens.
func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if c.JWT.Issuer == "" {
		return errors.New("jwt issuer is required")
	}
	if c.JWT.Audience == "" {
		return errors.New("jwt audience is required")
	}
	return nil
}
