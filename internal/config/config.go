// Package config resolves the runtime configuration for rsregions.
//
// The only configuration surface besides flags is the target port, read
// from the environment. Several variables are consulted so the tool works
// alongside existing HBase tooling: the first one that is set and parses
// as a valid TCP port wins.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultPort is the HBase RegionServer info port serving /jmx.
const DefaultPort = 16030

// DefaultTimeout bounds each fetch so one stuck server cannot hang a run.
const DefaultTimeout = 5 * time.Second

// DefaultParallel is the default number of concurrent fetches.
const DefaultParallel = 4

// portEnvVars are consulted most-specific first.
var portEnvVars = []string{
	"RSREGIONS_PORT",
	"HBASE_REGIONSERVER_PORT",
	"PORT",
}

// Port returns the target port from the environment, or DefaultPort when
// no variable is set to a valid port number.
func Port() int {
	for _, key := range portEnvVars {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			continue
		}
		return port
	}
	return DefaultPort
}
