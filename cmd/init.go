package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Rana718/bookstock/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config and credentials layout",
	Long: `
Write ` + config.DefaultConfigFile + ` with a single target and create the
seed and credentials directories. For server databases an empty
credentials file is created for the target user; fill in its password.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		protocol := config.ProtocolPostgres
		flagCount := 0

		if sqliteFlag {
			protocol = config.ProtocolSQLite
			flagCount++
		}
		if postgresqlFlag {
			protocol = config.ProtocolPostgres
			flagCount++
		}
		if mysqlFlag {
			protocol = config.ProtocolMySQL
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		force, _ := cmd.Flags().GetBool("force")
		return initializeProject(cmd, protocol, force)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize for SQLite")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize for PostgreSQL")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Initialize for MySQL")
}

func initializeProject(cmd *cobra.Command, protocol string, force bool) error {
	out := cmd.OutOrStdout()

	path := config.DefaultConfigFile
	if cfgFile != "" {
		path = cfgFile
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := config.NewTemplate(protocol)
	if err != nil {
		return err
	}

	for _, dir := range cfg.Directories() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := cfg.WriteYAML(path); err != nil {
		return err
	}

	credsPath, err := writeCredentialsStub(cfg)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "✅ Initialized bookstock for %s\n", protocol)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📝 Configuration file created:")
	fmt.Fprintf(out, "   %s\n", path)
	if credsPath != "" {
		fmt.Fprintln(out, "🔑 Credentials file (set the password):")
		fmt.Fprintf(out, "   %s\n", credsPath)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "🚀 Next steps:")
	fmt.Fprintf(out, "   put your seed data in %s\n", cfg.SeedFile)
	fmt.Fprintln(out, "   bookstock run")
	return nil
}

// writeCredentialsStub creates an empty credentials file for the active
// target unless one exists. It returns the path, or "" for SQLite.
func writeCredentialsStub(cfg *config.Config) (string, error) {
	target, err := cfg.ActiveTarget("")
	if err != nil {
		return "", err
	}
	if target.Protocol == config.ProtocolSQLite {
		return "", nil
	}

	path := config.CredentialsPath(cfg.CredentialsDir, target)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	data, err := json.MarshalIndent(config.Credentials{}, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
