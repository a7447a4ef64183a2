package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON renders v as two-space indented JSON on the command's
// configured stdout, for the --json output modes.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
