// Package domain holds the core types shared between the scanner, the CLI
// commands, and the TUI: scan targets, per-table histograms, and the
// per-server report produced by one run.
package domain

import (
	"fmt"

	"hbasekit/rsregions/internal/util"
)

// Target identifies one RegionServer metrics endpoint. The port is the
// same for every target in a single run; it comes from the --port flag or
// the environment (see internal/config).
type Target struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// String returns the host:port form used in log and error messages.
func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// NewTarget validates the host and port and returns a Target.
func NewTarget(host string, port int) (Target, error) {
	if err := util.ValidateHostname(host); err != nil {
		return Target{}, err
	}
	if port < 1 || port > 65535 {
		return Target{}, fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return Target{Host: host, Port: port}, nil
}

// ParseTargets builds a Target per host argument, all sharing the same port.
func ParseTargets(hosts []string, port int) ([]Target, error) {
	targets := make([]Target, 0, len(hosts))
	for _, host := range hosts {
		t, err := NewTarget(host, port)
		if err != nil {
			return nil, fmt.Errorf("invalid server %q: %w", host, err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}
