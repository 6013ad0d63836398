package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/the-credit-must-flow/internal/cli"
	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/config"
	"github.com/Veraticus/the-credit-must-flow/internal/engine"
	"github.com/Veraticus/the-credit-must-flow/internal/importer"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	amount      string
	method      string
	description string
	date        string
	format      string
	interactive bool
}

func simulateCmd() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Preview how one more transaction would change the score",
		Long: `Add a transaction on top of the loaded history and show the score before
and after. Nothing is saved.

Examples:
  credit simulate --amount 2500 --method mobile_money --description "Bridal trial"
  credit simulate --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.amount, "amount", "", "transaction amount")
	cmd.Flags().StringVar(&opts.method, "method", "", "payment method (cash, card, mobile_money)")
	cmd.Flags().StringVar(&opts.description, "description", "", "transaction description")
	cmd.Flags().StringVar(&opts.date, "date", "", "transaction date (default: scoring date)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for the transaction")

	return cmd
}

func runSimulate(cmd *cobra.Command, opts simulateOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	e, _, err := loadEngine(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var in model.NewTransaction
	if opts.interactive {
		in, err = cli.NewCLIPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).PromptTransaction(cmd.Context())
		if err != nil {
			return err
		}
	} else {
		in, err = entryFromFlags(opts)
		if err != nil {
			return err
		}
	}

	before := e.Snapshot()
	txn, after, err := e.Record(in)
	if err != nil {
		if common.IsValidationError(err) {
			return common.NewUserError("Transaction rejected", err)
		}
		return err
	}

	slog.Debug("Simulated transaction",
		"before", before.Score.Overall,
		"after", after.Score.Overall)

	if opts.format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]engine.Snapshot{"before": before, "after": after})
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Recorded %s via %s on %s",
		txn.Amount.StringFixed(2), txn.Method, txn.OccurredAt.Format(config.DateLayout)))); err != nil {
		return err
	}
	return cli.RenderComparison(cmd.OutOrStdout(), before, after)
}

func entryFromFlags(opts simulateOptions) (model.NewTransaction, error) {
	if opts.amount == "" || opts.method == "" {
		return model.NewTransaction{}, common.NewUserError("--amount and --method are required unless --interactive is set", nil)
	}

	amount, err := importer.ParseAmount(opts.amount)
	if err != nil {
		return model.NewTransaction{}, common.NewUserError("Transaction rejected", err)
	}

	in := model.NewTransaction{
		Amount:      amount,
		Method:      model.ParseMethod(opts.method),
		Description: opts.description,
	}

	if opts.date != "" {
		at, err := importer.ParseDate(opts.date)
		if err != nil {
			return model.NewTransaction{}, common.NewUserError("Invalid --date", err)
		}
		in.OccurredAt = at
	}

	return in, nil
}
