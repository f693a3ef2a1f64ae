package jmx

import "regexp"

// metricKeyPattern matches region count metric keys of the form
//
//	Namespace_<ns>_table_<table>_region_<region>_metric_getCount" : <number>
//
// The pattern is deliberately permissive: the upstream exporter's exact
// delimiter punctuation is not a stable contract, so the closing quote is
// optional and any amount of whitespace is tolerated around the colon.
// Only the table segment is captured; namespace and region are matched and
// discarded. Keys without a parseable numeric value do not match and are
// skipped silently.
var metricKeyPattern = regexp.MustCompile(`Namespace_\w+_table_(\w+)_region_\w+_metric_getCount"?\s*:\s*-?\d+`)

// ExtractTables scans a raw metrics dump and returns one table name per
// matching region metric entry, so a table hosting three regions on the
// server appears three times. The caller aggregates occurrences into a
// histogram; the metric values themselves are never used.
func ExtractTables(dump string) []string {
	matches := metricKeyPattern.FindAllStringSubmatch(dump, -1)
	if len(matches) == 0 {
		return nil
	}

	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables
}
