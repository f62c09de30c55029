package cmd

import (
	"fmt"
	"strings"

	"github.com/Rana718/bookstock/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the bookstore tables",
	Long: `
Drop the sale, stock, shop, book and publisher tables together with
their data.

⚠️  WARNING: This will permanently delete all bookstore data!

Use --force to skip the confirmation prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ok, err := confirm(cmd, fmt.Sprintf("⚠️  Drop all bookstore tables in %s?", s.target))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
			return nil
		}

		dropped, err := schema.NewSchemaManager(s.adapter).DropTables(cmd.Context())
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ Dropped tables: %s\n", strings.Join(dropped, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
