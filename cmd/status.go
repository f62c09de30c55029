package cmd

import (
	"fmt"
	"strings"

	"github.com/Rana718/bookstock/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show table presence, row counts and column drift",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		statuses, err := schema.NewSchemaManager(s.adapter).Status(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "📊 Tables:")
		for _, st := range statuses {
			if !st.Exists {
				color.New(color.FgYellow).Fprintf(out, "   %-10s missing\n", st.Name)
				continue
			}
			fmt.Fprintf(out, "   %-10s %d rows\n", st.Name, st.Rows)
			if len(st.MissingColumns) > 0 {
				color.New(color.FgRed).Fprintf(out, "              missing columns: %s\n", strings.Join(st.MissingColumns, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
