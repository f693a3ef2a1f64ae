package domain

import "errors"

// Sentinel errors for fetch-failure classification. The jmx client wraps
// these so the CLI can handle error categories uniformly.
//
//	return fmt.Errorf("%w: %s", domain.ErrUnreachable, target)
var (
	// ErrUnreachable indicates the server could not be contacted:
	// connection failure, DNS failure, or a timed-out request.
	ErrUnreachable = errors.New("server unreachable")

	// ErrBadStatus indicates the server answered with a non-2xx status.
	ErrBadStatus = errors.New("unexpected response status")
)
