package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/the-credit-must-flow/internal/cli"
	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show the credit score, loan offers, and insights",
		Long: `Score the loaded history and print the overall score, the per-category
breakdown, every loan offer with its eligibility, and insights.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			e, _, err := loadEngine(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			snap := e.Snapshot()
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			return cli.RenderReport(cmd.OutOrStdout(), snap)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}

func validateFormat(format string) error {
	if format != "table" && format != "json" {
		return common.NewUserError(fmt.Sprintf("Unknown output format %q; use table or json", format), common.ErrInvalidConfig)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
