package domain

import "sort"

// Histogram maps a table name to the number of region metric entries seen
// for that table on one server. Counting is by occurrence of matching
// metric keys, not by the metric values themselves.
type Histogram map[string]int

// NewHistogram aggregates a sequence of table names into a Histogram.
// Input order is irrelevant; each occurrence increments its table's count.
func NewHistogram(tables ...string) Histogram {
	h := make(Histogram, len(tables))
	for _, table := range tables {
		h.Add(table)
	}
	return h
}

// Add records one region metric occurrence for the given table.
func (h Histogram) Add(table string) {
	h[table]++
}

// Tables returns the table names in lexicographic order. Presentation
// order is fixed even though aggregation is order-independent.
func (h Histogram) Tables() []string {
	tables := make([]string, 0, len(h))
	for table := range h {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	return tables
}

// Total returns the sum of all counts, i.e. the number of matching metric
// entries in the dump the histogram was built from.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}
