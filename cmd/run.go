package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rana718/bookstock/internal/inventory"
	"github.com/Rana718/bookstock/internal/schema"
	"github.com/Rana718/bookstock/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Provision, load the seed file and look up a publisher",
	Long: `
Run the full sequence against the active target:

1. Connect using the credentials file of the target
2. Create any missing bookstore tables
3. Load the seed file in a single transaction
   (skipped with a notice when the data is already there)
4. Ask for part of a publisher name and list the shops
   that have that publisher's books in stock

This is also what bookstock does when run without a subcommand.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSequence(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSequence(cmd *cobra.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	if err := ensureTables(cmd, s); err != nil {
		return err
	}

	if err := loadSeed(cmd, s, s.cfg.SeedFile); err != nil {
		return err
	}

	fmt.Fprintln(out, "🔎 Let's find the shops selling the target publisher")
	fragment, err := prompt(cmd, "Enter part of the publisher name: ")
	if err != nil {
		return err
	}

	return findShops(cmd, s, fragment)
}

func ensureTables(cmd *cobra.Command, s *session) error {
	created, err := schema.NewSchemaManager(s.adapter).EnsureTables(cmd.Context())
	if err != nil {
		return err
	}

	if len(created) == 0 {
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✅ Tables are up to date")
		return nil
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ Created tables: %s\n", strings.Join(created, ", "))
	return nil
}

// loadSeed reads path and loads it. Already loaded data is reported, not
// treated as a failure.
func loadSeed(cmd *cobra.Command, s *session, path string) error {
	out := cmd.OutOrStdout()

	records, err := seeder.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := seeder.NewLoader(s.adapter, s.log).Load(cmd.Context(), records)
	if errors.Is(err, seeder.ErrDataAlreadyPresent) {
		color.New(color.FgYellow).Fprintln(out, "⚠️  Loading data from file: data already present in the database!")
		return nil
	}
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "🌱 Loaded %d records from %s\n", result.Total, path)
	return writeLoadSummary(out, result)
}

// writeLoadSummary prints inserted row counts per table in insertion order.
func writeLoadSummary(out io.Writer, result *seeder.LoadResult) error {
	order, err := schema.InsertionOrder()
	if err != nil {
		return err
	}
	for _, table := range order {
		if n, ok := result.Inserted[table]; ok {
			fmt.Fprintf(out, "   %-10s %d\n", table, n)
		}
	}
	return nil
}

func findShops(cmd *cobra.Command, s *session, fragment string) error {
	result, err := inventory.NewFinder(s.adapter).ShopsByPublisher(cmd.Context(), fragment)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(out io.Writer, result inventory.Result) {
	switch result.Outcome {
	case inventory.NotFound:
		color.New(color.FgYellow).Fprintln(out, result.Message())
		return
	case inventory.Ambiguous:
		color.New(color.FgYellow).Fprintln(out, result.Message())
		for _, p := range result.Publishers {
			fmt.Fprintf(out, "   %s\n", p)
		}
		return
	}

	color.New(color.FgCyan).Fprintln(out, result.Message())
	if len(result.Shops) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No shops found!")
		return
	}

	fmt.Fprintln(out, "Shops selling books of the selected publisher (in stock):")
	for _, shop := range result.Shops {
		fmt.Fprintf(out, "   %s\n", shop)
	}
}
