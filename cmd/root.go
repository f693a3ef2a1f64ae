package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hbasekit/rsregions/internal/config"
	"hbasekit/rsregions/internal/domain"
	"hbasekit/rsregions/internal/jmx"
	"hbasekit/rsregions/internal/scan"
	"hbasekit/rsregions/internal/util"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// rootCmd represents the base command. The root itself runs the scan so the
// tool stays invokable as `rsregions <server> [server...]`.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsregions <server> [server...]",
		Short: "Report HBase region counts per table across RegionServers",
		Long: `rsregions fetches the JMX metrics dump from one or more HBase
RegionServers and prints, for each server, a histogram of how many regions
each table has on that server.

Results are printed in the order servers were given, one block per server.
A server that cannot be reached gets a failure line instead of a histogram;
the remaining servers are still reported.

Examples:
  rsregions rs1.example.com rs2.example.com
  rsregions --port 16040 -o json rs1 rs2 rs3
  rsregions --strict rs1 rs2          # non-zero exit if any server failed
  rsregions browse rs1 rs2            # interactive browser`,
		Args:    cobra.MinimumNArgs(1),
		Version: version,
		RunE:    runScan,
	}

	cmd.PersistentFlags().IntP("port", "P", config.Port(),
		"RegionServer info port serving /jmx (env: RSREGIONS_PORT, HBASE_REGIONSERVER_PORT, PORT)")
	cmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "per-server fetch timeout")
	cmd.PersistentFlags().IntP("parallel", "p", config.DefaultParallel, "maximum concurrent fetches (1 = sequential)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log fetch progress to stderr")

	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, or chart")
	cmd.Flags().Bool("strict", false, "exit non-zero if any server's fetch failed")

	cmd.AddCommand(browseCmd())

	return cmd
}

// Execute runs the root command with a signal-aware context so an interrupt
// stops issuing fetches and exits promptly. Called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; runtime failures should not
	// dump the usage text.
	cmd.SilenceUsage = true

	output, _ := cmd.Flags().GetString("output")
	format := util.NormalizeKey(output)
	switch format {
	case "text", "json", "chart":
	default:
		return fmt.Errorf("unknown output format %q (expected text, json, or chart)", output)
	}

	targets, scanner, err := setupScan(cmd, args)
	if err != nil {
		return err
	}

	reports := scanner.Scan(cmd.Context(), targets)

	switch format {
	case "json":
		printReportsJSON(cmd, reports)
	case "chart":
		printReportsChart(cmd, reports)
	default:
		printReportsText(cmd, reports)
	}

	// Per-server failures are reported above and do not fail the run by
	// default; --strict opts into a non-zero exit when any server failed.
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		failed := 0
		for _, r := range reports {
			if r.Failed() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d servers failed", failed, len(reports))
		}
	}

	return nil
}

// setupScan turns positional args plus shared flags into scan targets and a
// configured scanner. Used by both the root scan and the browse command.
func setupScan(cmd *cobra.Command, args []string) ([]domain.Target, *scan.Scanner, error) {
	port, _ := cmd.Flags().GetInt("port")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	parallel, _ := cmd.Flags().GetInt("parallel")

	targets, err := domain.ParseTargets(args, port)
	if err != nil {
		return nil, nil, err
	}

	scanner := scan.New(jmx.NewClient(timeout), parallel)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		errOut := cmd.ErrOrStderr()
		scanner.Logf = func(format string, args ...any) {
			fmt.Fprintf(errOut, format+"\n", args...)
		}
	}

	return targets, scanner, nil
}
