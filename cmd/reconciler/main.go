package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ledger-reconciler/internal/buildinfo"
	"ledger-reconciler/internal/config"
	"ledger-reconciler/internal/gateway"
	"ledger-reconciler/internal/usecase"
)

func main() {
	var (
		cfgPath string
		ledgerA string
		ledgerB string
		outA    string
		outB    string
	)

	rootCmd := &cobra.Command{
		Use:     "reconciler",
		Short:   "Reconcile two transaction ledgers against each other",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				// Flags override the run file.
				if ledgerA == "" {
					ledgerA = cfg.Ledgers.A
				}
				if ledgerB == "" {
					ledgerB = cfg.Ledgers.B
				}
				if outA == "" {
					outA = cfg.Output.A
				}
				if outB == "" {
					outB = cfg.Output.B
				}
			}
			if ledgerA == "" || ledgerB == "" {
				return fmt.Errorf("both ledgers are required: pass --ledger-a and --ledger-b, or a --config run file")
			}

			// --- Dependency Injection (Wiring the application) ---
			source := gateway.NewCSVRecordSource()
			reconciliationUseCase := usecase.NewReconciliationUseCase(source)

			// --- Execute the Usecase ---
			report, err := reconciliationUseCase.Reconcile(cmd.Context(), ledgerA, ledgerB)
			if err != nil {
				return err
			}

			// --- Present the Output ---
			writer := gateway.NewCSVReportWriter()
			if outA != "" {
				if err := writer.WriteLedger(outA, report.LedgerA); err != nil {
					return err
				}
			}
			if outB != "" {
				if err := writer.WriteLedger(outB, report.LedgerB); err != nil {
					return err
				}
			}

			output, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to generate JSON report: %w", err)
			}
			fmt.Println(string(output))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML run file")
	rootCmd.Flags().StringVar(&ledgerA, "ledger-a", "", "path to the first ledger CSV file")
	rootCmd.Flags().StringVar(&ledgerB, "ledger-b", "", "path to the second ledger CSV file")
	rootCmd.Flags().StringVar(&outA, "out-a", "", "where to write the annotated first ledger")
	rootCmd.Flags().StringVar(&outB, "out-b", "", "where to write the annotated second ledger")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
