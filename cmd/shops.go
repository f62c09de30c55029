package cmd

import (
	"github.com/spf13/cobra"
)

var shopsCmd = &cobra.Command{
	Use:   "shops <publisher>",
	Short: "List shops stocking books of a publisher",
	Long: `
Find the publisher whose name contains the given text, ignoring case,
and list the shops that have any of its books in stock. A shop is
listed once per stocked book.

When no publisher or more than one publisher matches, refine the text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return findShops(cmd, s, args[0])
	},
}

func init() {
	rootCmd.AddCommand(shopsCmd)
}
