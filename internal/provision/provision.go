// Package provision turns a configured target into a live database adapter.
package provision

import (
	"context"
	"fmt"

	"github.com/Rana718/bookstock/internal/config"
	"github.com/Rana718/bookstock/internal/database"
	"github.com/Rana718/bookstock/internal/database/postgres"
	"github.com/Rana718/bookstock/internal/logger"
	"github.com/rs/zerolog"
)

// ConnectionString reads the target's credentials file and builds its
// connection string. SQLite targets need no credentials.
func ConnectionString(cfg *config.Config, target config.Target) (string, error) {
	target = target.Normalize()
	if target.Protocol == config.ProtocolSQLite {
		return target.ConnectionString(""), nil
	}

	creds, err := config.ReadCredentials(cfg.CredentialsDir, target)
	if err != nil {
		return "", err
	}
	return target.ConnectionString(creds.Password), nil
}

// Open connects to target and pings it. The caller owns the returned adapter
// and must Close it.
func Open(ctx context.Context, cfg *config.Config, target config.Target, log zerolog.Logger) (database.DatabaseAdapter, error) {
	target = target.Normalize()

	url, err := ConnectionString(cfg, target)
	if err != nil {
		return nil, err
	}

	opts := database.Options{Driver: target.Driver}
	if target.Protocol == config.ProtocolPostgres && target.Driver != postgres.DriverPq && log.GetLevel() <= zerolog.DebugLevel {
		opts.Tracer = logger.NewPgxTracer(log)
	}

	adapter, err := database.NewAdapter(target.Protocol, opts)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("target", target.String()).Str("driver", target.Driver).Msg("connecting")

	if err := adapter.Connect(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target, err)
	}
	if err := adapter.Ping(ctx); err != nil {
		_ = adapter.Close()
		return nil, fmt.Errorf("failed to reach %s: %w", target, err)
	}

	return adapter, nil
}
