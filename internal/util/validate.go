package util

import (
	"fmt"
	"net"
	"regexp"
)

// validHostChars matches only alphanumeric characters, hyphens, and periods.
var validHostChars = regexp.MustCompile(`^[a-zA-Z0-9.\-]+$`)

// ValidateHostname checks that a server argument is a plausible hostname or
// IP address following RFC 1123 hostname rules:
//   - Non-empty
//   - Only alphanumeric characters (a-z, A-Z, 0-9), hyphens (-), and periods (.)
//   - First character must be alphanumeric
//   - Last character must not be a hyphen or period
//
// IP literals (IPv4 and IPv6) are accepted as-is.
func ValidateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("hostname must not be empty")
	}

	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if !validHostChars.MatchString(host) {
		return fmt.Errorf("hostname %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and periods are allowed)", host)
	}

	first := host[0]
	if !isAlphanumeric(first) {
		return fmt.Errorf("hostname must start with an alphanumeric character, got %q", string(first))
	}

	last := host[len(host)-1]
	if last == '-' || last == '.' {
		return fmt.Errorf("hostname must not end with a hyphen or period, got %q", string(last))
	}

	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
