package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ProtocolPostgres = "postgresql"
	ProtocolMySQL    = "mysql"
	ProtocolSQLite   = "sqlite"

	DefaultHost           = "localhost"
	DefaultPort           = 5432
	DefaultMySQLPort      = 3306
	DefaultTargetName     = "books_shop"
	DefaultSeedFile       = "db_data/db_data.json"
	DefaultCredentialsDir = "info_not_for_git"
)

type Config struct {
	CredentialsDir string            `json:"credentials_dir" yaml:"credentials_dir" mapstructure:"credentials_dir" validate:"required"`
	SeedFile       string            `json:"seed_file" yaml:"seed_file" mapstructure:"seed_file" validate:"required"`
	Target         string            `json:"target" yaml:"target" mapstructure:"target" validate:"required"`
	Targets        map[string]Target `json:"targets" yaml:"targets" mapstructure:"targets" validate:"required,min=1,dive"`
}

// Target is one deployment entry of the registry: which engine, which
// account and which database to talk to.
type Target struct {
	Protocol string `json:"protocol" yaml:"protocol" mapstructure:"protocol" validate:"required,oneof=postgresql mysql sqlite"`
	User     string `json:"user,omitempty" yaml:"user,omitempty" mapstructure:"user" validate:"required_unless=Protocol sqlite"`
	Database string `json:"database" yaml:"database" mapstructure:"database" validate:"required"`
	Host     string `json:"host,omitempty" yaml:"host,omitempty" mapstructure:"host"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty" mapstructure:"port" validate:"gte=0,lte=65535"`
	Driver   string `json:"driver,omitempty" yaml:"driver,omitempty" mapstructure:"driver" validate:"omitempty,oneof=pgx pq"`
}

// DefaultTargets mirrors the single deployment the tool was written for.
func DefaultTargets() map[string]Target {
	return map[string]Target{
		DefaultTargetName: {
			Protocol: ProtocolPostgres,
			User:     "postgres",
			Database: "books_shop",
			Host:     DefaultHost,
			Port:     DefaultPort,
		},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CredentialsDir == "" {
		c.CredentialsDir = DefaultCredentialsDir
	}
	if c.SeedFile == "" {
		c.SeedFile = DefaultSeedFile
	}
	if len(c.Targets) == 0 {
		c.Targets = DefaultTargets()
	}
	if c.Target == "" {
		if len(c.Targets) == 1 {
			for name := range c.Targets {
				c.Target = name
			}
		} else {
			c.Target = DefaultTargetName
		}
	}
	c.Target = strings.ToLower(c.Target)
	for name, t := range c.Targets {
		c.Targets[name] = t.Normalize()
	}
}

// Normalize resolves protocol aliases and fills in host and port defaults.
func (t Target) Normalize() Target {
	t.Protocol = NormalizeProtocol(t.Protocol)
	if t.Protocol == ProtocolSQLite {
		return t
	}
	if t.Host == "" {
		t.Host = DefaultHost
	}
	if t.Port == 0 {
		t.Port = DefaultPort
		if t.Protocol == ProtocolMySQL {
			t.Port = DefaultMySQLPort
		}
	}
	return t
}

func NormalizeProtocol(protocol string) string {
	switch p := strings.ToLower(strings.TrimSpace(protocol)); p {
	case "postgres", "postgresql":
		return ProtocolPostgres
	case "sqlite", "sqlite3":
		return ProtocolSQLite
	default:
		return p
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, ok := c.Targets[c.Target]; !ok {
		return fmt.Errorf("target %q is not defined. Available targets: %s", c.Target, strings.Join(c.TargetNames(), ", "))
	}
	return nil
}

// ActiveTarget returns the target called name, or the configured default
// when name is empty.
func (c *Config) ActiveTarget(name string) (Target, error) {
	if name == "" {
		name = c.Target
	}
	t, ok := c.Targets[strings.ToLower(name)]
	if !ok {
		return Target{}, fmt.Errorf("target %q is not defined. Available targets: %s", name, strings.Join(c.TargetNames(), ", "))
	}
	return t, nil
}

func (c *Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
