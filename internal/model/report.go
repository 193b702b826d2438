package model

// Outcome represents the result of migrating a single target file.
type Outcome int

const (
	// Skipped indicates the file already carries the RouteParams interface.
	Skipped Outcome = iota
	// Rewritten indicates the file was transformed and passed verification.
	Rewritten
	// VerificationFailed indicates the file was transformed but the result
	// did not pass the post-transform checks (e.g. a handler without a try
	// block never received its await extraction).
	VerificationFailed
	// Failed indicates the file could not be read or written.
	Failed
)

// String returns the human-readable label for an outcome.
func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "already migrated"
	case Rewritten:
		return "fixed"
	case VerificationFailed:
		return "verification failed"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// FileReport holds the migration result for a single target.
type FileReport struct {
	Target  Target
	Outcome Outcome
	Diff    string // unified diff of the change (dry-run and verbose output)
	Err     error  // I/O error for Failed outcomes
}

// RunReport aggregates per-file reports for a whole invocation.
type RunReport struct {
	Files []FileReport
}

// Clean reports whether every file ended in Skipped or Rewritten.
func (r RunReport) Clean() bool {
	for _, f := range r.Files {
		if f.Outcome == VerificationFailed || f.Outcome == Failed {
			return false
		}
	}

	return true
}

// Count returns the number of files with the given outcome.
func (r RunReport) Count(o Outcome) int {
	n := 0

	for _, f := range r.Files {
		if f.Outcome == o {
			n++
		}
	}

	return n
}
