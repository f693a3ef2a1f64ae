package domain

// Report is the outcome of scanning one server. Exactly one of Histogram
// or Err is meaningful: a fetch failure leaves the histogram nil and is
// reported per-server without aborting the rest of the run.
type Report struct {
	Target    Target    `json:"target"`
	Histogram Histogram `json:"tables,omitempty"`
	Err       error     `json:"-"`
}

// Failed reports whether the server's fetch failed.
func (r Report) Failed() bool {
	return r.Err != nil
}
