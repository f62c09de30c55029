package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rana718/bookstock/internal/config"
	"github.com/Rana718/bookstock/internal/database"
	"github.com/Rana718/bookstock/internal/logger"
	"github.com/Rana718/bookstock/internal/provision"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session is one connected target for the lifetime of a command.
type session struct {
	cfg     *config.Config
	target  config.Target
	log     zerolog.Logger
	adapter database.DatabaseAdapter
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if targetName != "" {
		cfg.Target = strings.ToLower(targetName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	target, err := cfg.ActiveTarget("")
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	adapter, err := provision.Open(cmd.Context(), cfg, target, log)
	if err != nil {
		return nil, err
	}

	color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "🔗 Connected to %s\n", target)

	return &session{cfg: cfg, target: target, log: log, adapter: adapter}, nil
}

func (s *session) Close() error {
	return s.adapter.Close()
}

// prompt prints label and reads one line from the command's input.
func prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question unless --force is set.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return true, nil
	}

	answer, err := prompt(cmd, question+" (y/N): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
