package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/bookstock/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	targetName string
	verbose    bool
	Version    = "1.0.0"
)

func showBanner(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║   📚  bookstock                               ║",
		"║       publishers • books • shops • stock      ║",
		"╚══════════════════════════════════════════════╝",
	}
	for _, line := range banner {
		green.Fprintln(out, line)
	}

	fmt.Fprint(out, "              ")
	color.New(color.FgCyan, color.Bold).Fprint(out, "Version: ")
	color.New(color.FgYellow, color.Bold).Fprintf(out, "%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "bookstock",
	Short: "Provision, load and query a bookstore inventory database",
	Long: `
bookstock keeps a small bookstore inventory database:
publishers, their books, the shops that stock them and the sales made.

Running it without a subcommand performs the full sequence:
connect, create missing tables, load the seed file and ask which
publisher to look up.

Database Support:
- PostgreSQL (pgx or lib/pq)
- MySQL
- SQLite (embedded databases)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			showBanner(cmd)
			return nil
		}
		return runSequence(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVarP(&targetName, "target", "t", "", "target from the config registry to use")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log diagnostics and SQL to stderr")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	viper.Reset()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(strings.TrimSuffix(config.DefaultConfigFile, ".yaml"))
	}

	viper.SetEnvPrefix("BOOKSTOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{"credentials_dir", "seed_file", "target"} {
		_ = viper.BindEnv(key)
	}

	_ = viper.ReadInConfig()
}
