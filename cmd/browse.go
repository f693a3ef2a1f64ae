package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hbasekit/rsregions/internal/domain"
	"hbasekit/rsregions/internal/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// browseCmd returns the "browse" subcommand: an interactive browser over
// the same scan results the root command prints.
func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <server> [server...]",
		Short: "Interactively browse region histograms",
		Long: `Fetch region metrics from the given servers and open an interactive
browser: a server list with table and region totals, and a per-server
detail view with the histogram and a bar chart.

Examples:
  rsregions browse rs1.example.com rs2.example.com
  rsregions browse --port 16040 rs1`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBrowse,
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires a terminal; run the plain scan for piped output")
	}

	targets, scanner, err := setupScan(cmd, args)
	if err != nil {
		return err
	}

	accessible := os.Getenv("ACCESSIBLE") != ""

	// Initial fetch happens behind a spinner before the alt-screen opens;
	// the in-app refresh re-runs the same scan.
	var reports []domain.Report
	spinErr := spinner.New().
		Title(fmt.Sprintf("Fetching region metrics from %d server(s)...", len(targets))).
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			reports = scanner.Scan(ctx, targets)
			return nil
		}).
		Run()
	if spinErr != nil {
		if errors.Is(spinErr, context.Canceled) {
			return nil
		}
		return spinErr
	}

	refresh := func(ctx context.Context) []domain.Report {
		return scanner.Scan(ctx, targets)
	}

	return tui.RunBrowser(reports, refresh)
}
