package convert

// FailureEntry records one failed conversion for the final report.
type FailureEntry struct {
	Path   string
	Reason error
}

// Summary tallies the outcome of one batch. It is owned by a single
// aggregator and fed each result exactly once; batches never share or
// reuse a Summary.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []FailureEntry
}

// Add records a single result. Failures keep the order results were
// received in, which does not correlate with input order under a
// concurrent pool.
func (s *Summary) Add(result ConversionResult) {
	s.Total++
	if result.Succeeded() {
		s.Succeeded++
		return
	}
	s.Failed++
	s.Failures = append(s.Failures, FailureEntry{Path: result.SourcePath, Reason: result.Err})
}

// Aggregate builds a Summary from a completed batch of results.
func Aggregate(results []ConversionResult) *Summary {
	summary := &Summary{}
	for _, result := range results {
		summary.Add(result)
	}
	return summary
}
