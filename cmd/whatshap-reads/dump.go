package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diljotgrewal/whatshap/internal/duckdb"
)

func newDumpCmd() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print reads and their observations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			onlyID := -1
			if cmd.Flags().Changed("id") {
				onlyID = id
			}
			return runDump(onlyID)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Dump only the read with this id")

	return cmd
}

func runDump(onlyID int) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}

	store, err := duckdb.Open(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	rs, err := store.LoadReadSet()
	if err != nil {
		return fmt.Errorf("load reads: %w", err)
	}

	if onlyID >= 0 {
		if onlyID >= rs.Len() {
			return fmt.Errorf("no read with id %d (store has %d reads)", onlyID, rs.Len())
		}
		fmt.Println(rs.Get(onlyID))
		return nil
	}

	for r := range rs.All() {
		fmt.Println(r)
	}
	return nil
}
