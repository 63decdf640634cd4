package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diljotgrewal/whatshap/internal/duckdb"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the read store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	store, err := duckdb.Open(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	logger.Info("opened read store", zap.String("path", path))

	st, err := store.Stats()
	if err != nil {
		return fmt.Errorf("collect stats: %w", err)
	}

	fmt.Printf("Reads:        %d\n", st.ReadCount)
	fmt.Printf("Observations: %d\n", st.VariantCount)
	if st.HasPositions {
		fmt.Printf("Position span: %d - %d\n", st.MinPosition, st.MaxPosition)
	} else {
		fmt.Println("Position span: (no observations)")
	}
	return nil
}
