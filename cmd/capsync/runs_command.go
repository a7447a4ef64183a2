package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"capsync/internal/runstore"
	"capsync/internal/workspace"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded alignment runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			ws, err := workspace.Acquire(cfg.Paths.WorkspaceDir)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Release() }()

			store, err := runstore.Open(cmd.Context(), ws.RunsDBPath())
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					shortID(rec.ID),
					rec.CreatedAt.Local().Format(time.DateTime),
					rec.Granularity,
					fmt.Sprintf("%d", rec.TokenCount),
					fmt.Sprintf("%.0f%%", rec.Coverage*100),
					fmt.Sprintf("%.2fs", rec.TimelineEnd),
					rec.OutputPath,
				})
			}
			table := renderTable(
				[]string{"ID", "Created", "Mode", "Tokens", "Coverage", "End", "Output"},
				rows, 4, 5, 6,
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print runs as JSON")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
