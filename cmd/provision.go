package cmd

import (
	"github.com/spf13/cobra"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Connect to the target and create missing tables",
	Long: `
Read the credentials file of the active target, connect to it and
create whichever of the publisher, book, shop, stock and sale tables
are missing. Existing tables and their data are never touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return ensureTables(cmd, s)
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}
