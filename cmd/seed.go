package cmd

import (
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:     "load [file]",
	Aliases: []string{"seed"},
	Short:   "Load a JSON seed file",
	Long: `
Load every record of a seed file in one transaction. The file defaults
to seed_file from the config. Missing tables are created first.

If any record conflicts with existing data nothing is inserted and the
data is reported as already present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		path := s.cfg.SeedFile
		if len(args) == 1 {
			path = args[0]
		}

		if err := ensureTables(cmd, s); err != nil {
			return err
		}
		return loadSeed(cmd, s, path)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
