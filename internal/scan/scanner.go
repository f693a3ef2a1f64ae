// Package scan orchestrates one run across a list of RegionServer targets:
// fetch each server's metrics dump, extract region metric occurrences, and
// aggregate them into per-server table histograms.
package scan

import (
	"context"

	"hbasekit/rsregions/internal/domain"
	"hbasekit/rsregions/internal/jmx"

	"golang.org/x/sync/errgroup"
)

// Scanner runs fetch+extract+aggregate over a set of targets. Fetches run
// concurrently up to Parallel, but results are always returned in input
// order. A per-server failure is recorded on its report and never aborts
// the rest of the run.
type Scanner struct {
	client   *jmx.Client
	parallel int

	// Logf, when set, receives verbose progress messages.
	Logf func(format string, args ...any)
}

// New creates a Scanner using the given client. parallel values below 1
// are treated as 1, which reproduces strictly sequential behavior.
func New(client *jmx.Client, parallel int) *Scanner {
	if parallel < 1 {
		parallel = 1
	}
	return &Scanner{client: client, parallel: parallel}
}

// Scan fetches every target and returns one report per target, in input
// order. Cancelling the context stops issuing further fetches; targets not
// reached before cancellation carry the context error on their report.
func (s *Scanner) Scan(ctx context.Context, targets []domain.Target) []domain.Report {
	reports := make([]domain.Report, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)

	for i, target := range targets {
		g.Go(func() error {
			reports[i] = s.scanOne(gctx, target)
			return nil
		})
	}

	// Workers never return errors; failures live on the reports.
	g.Wait()

	return reports
}

// scanOne owns exactly one report slot, so no locking is needed.
func (s *Scanner) scanOne(ctx context.Context, target domain.Target) domain.Report {
	if err := ctx.Err(); err != nil {
		return domain.Report{Target: target, Err: err}
	}

	s.logf("fetching %s", target)

	dump, err := s.client.FetchDump(ctx, target)
	if err != nil {
		s.logf("fetch failed for %s: %v", target, err)
		return domain.Report{Target: target, Err: err}
	}

	hist := domain.NewHistogram(jmx.ExtractTables(dump)...)
	s.logf("%s: %d region metrics across %d tables", target, hist.Total(), len(hist))

	return domain.Report{Target: target, Histogram: hist}
}

func (s *Scanner) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}
