package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "bookstock.config.yaml"

var templateTargets = map[string]Target{
	ProtocolPostgres: {
		Protocol: ProtocolPostgres,
		User:     "postgres",
		Database: "books_shop",
		Host:     DefaultHost,
		Port:     DefaultPort,
		Driver:   "pgx",
	},
	ProtocolMySQL: {
		Protocol: ProtocolMySQL,
		User:     "root",
		Database: "books_shop",
		Host:     DefaultHost,
		Port:     DefaultMySQLPort,
	},
	ProtocolSQLite: {
		Protocol: ProtocolSQLite,
		Database: "books_shop.sqlite",
	},
}

// NewTemplate returns a starter configuration with a single target for protocol.
func NewTemplate(protocol string) (*Config, error) {
	protocol = NormalizeProtocol(protocol)
	target, ok := templateTargets[protocol]
	if !ok {
		return nil, fmt.Errorf("unsupported database provider: %s", protocol)
	}

	return &Config{
		CredentialsDir: DefaultCredentialsDir,
		SeedFile:       DefaultSeedFile,
		Target:         DefaultTargetName,
		Targets:        map[string]Target{DefaultTargetName: target},
	}, nil
}

// Directories lists what a fresh project needs on disk for the active target.
func (c *Config) Directories() []string {
	dirs := []string{filepath.Dir(c.SeedFile)}
	if t, ok := c.Targets[c.Target]; ok && t.Protocol != ProtocolSQLite {
		dirs = append(dirs, filepath.Dir(CredentialsPath(c.CredentialsDir, t)))
	}
	return dirs
}

func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
