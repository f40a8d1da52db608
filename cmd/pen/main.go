// Package main provides the pen CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/corpusgen/pen/cli"
	"github.com/corpusgen/pen/config"
)

var verbose bool

func main() {
	// Load .env file if present (ignore "file not found" errors).
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "pen",
		Short: "A corpus-driven stochastic text generator with suffix-rank indexing",
		Long: `pen indexes a tokenised corpus for suffix ranking, cyclic sample
matching, and lazy Markov-style rendering.

Two commands are available:
- render: generate text from a corpus
- query:  inspect where a sample occurs in a corpus`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show diagnostic output on stderr")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(queryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate text from a corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.New()
			if err != nil {
				return err
			}
			return cli.Render(context.Background(), settings, cli.RenderOptions{
				File:    file,
				Verbose: verbose,
			}, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "corpus file (falls back to PEN_WEBSOURCE_* if unset)")

	return cmd
}

func queryCmd() *cobra.Command {
	var file string
	var op string

	cmd := &cobra.Command{
		Use:   "query [op] [tokens...]",
		Short: "Query where a sample occurs: positions-of, first, last, count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.New()
			if err != nil {
				return err
			}
			op = args[0]
			sample := args[1:]
			return cli.Query(context.Background(), settings, cli.QueryOptions{
				File:    file,
				Op:      cli.QueryOp(op),
				Sample:  sample,
				Verbose: verbose,
			}, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "corpus file (falls back to PEN_WEBSOURCE_* if unset)")

	return cmd
}
