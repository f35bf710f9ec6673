// Command corvid is the UCI-speaking chess engine binary: it parses
// startup flags, constructs the engine facade, and hands off to the
// blocking stdin/stdout protocol loop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvidchess/corvid/engine"
	"github.com/corvidchess/corvid/uci"
)

func main() {
	var (
		configPath string
		hashMB     int
		bookPath   string
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "corvid",
		Short: "Corvid is a UCI chess engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := engine.LoadOptions(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("hash") {
				opts.Hash = hashMB
			}
			if cmd.Flags().Changed("book") {
				opts.BookFile = bookPath
			}

			logger := engine.NewLogger(logLevel, os.Stderr)

			eng, err := engine.New(opts, logger)
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}

			loop := uci.NewLoop(eng, os.Stdout)
			loop.Run(os.Stdin)
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a TOML options file")
	root.Flags().IntVar(&hashMB, "hash", 64, "transposition table size in megabytes")
	root.Flags().StringVar(&bookPath, "book", "", "path to a YAML opening book")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
