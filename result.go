package proptest

// ResultStatus is the verdict of a property run.
type ResultStatus int

const (
	// StatusPassed means every trial satisfied the predicate.
	StatusPassed ResultStatus = iota
	// StatusFalsified means a trial produced a counterexample. The property
	// is disproved; the run stopped at that trial.
	StatusFalsified
	// StatusErrored means a trial panicked. The property itself is broken,
	// which is a different finding than a counterexample.
	StatusErrored
	// StatusExhausted means a bounded accept-reject draw ran out of retries
	// before any trial could finish.
	StatusExhausted
)

// String returns the status name for diagnostics.
func (s ResultStatus) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFalsified:
		return "falsified"
	case StatusErrored:
		return "errored"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one property run. Run builds it once and never
// mutates it afterwards; two runs with the same Config produce equal Results.
type Result struct {
	// Status is the verdict.
	Status ResultStatus

	// Trials counts the trials that passed before the run stopped. For a
	// passed run this equals Config.NumTests.
	Trials int

	// Counterexample is the rendered falsifying value, set only when
	// Status is StatusFalsified.
	Counterexample string

	// Err is the recovered panic value when Status is StatusErrored, and
	// the *ExhaustedError when Status is StatusExhausted.
	Err error

	// Trace holds one line per passed trial in draw order: the rendered
	// value and the state token the trial ended at.
	Trace []string
}

// Passed reports whether the run succeeded.
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}
