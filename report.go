package proptest

import (
	"fmt"
	"io"
)

// renderValue formats a generated value for traces and counterexamples.
func renderValue(v any) string {
	return fmt.Sprintf("%+v", v)
}

// traceLine formats one passed trial: the rendered value and the token of
// the state the trial ended at. Replaying the run reproduces the same
// tokens, which is how two runs can be diffed line by line.
func traceLine(rendered string, next Source) string {
	return fmt.Sprintf("a = %s  rng = %v", rendered, next)
}

// counterexample joins a rendered value with optional failure detail.
func counterexample(rendered, detail string) string {
	if detail == "" {
		return rendered
	}
	return rendered + " (" + detail + ")"
}

// Render returns the one-line verdict for a Result. Rendering is a pure
// function of the Result value; it writes nothing and logs nothing.
func Render(r Result) string {
	switch r.Status {
	case StatusPassed:
		return fmt.Sprintf("Passed: %d trials.", r.Trials)
	case StatusFalsified:
		return fmt.Sprintf("Falsified: %s (after %d passed trials)", r.Counterexample, r.Trials)
	case StatusErrored:
		return fmt.Sprintf("Error: %v (after %d passed trials)", r.Err, r.Trials)
	case StatusExhausted:
		return fmt.Sprintf("Sampling exhausted: gave up after %d passed trials.", r.Trials)
	default:
		return fmt.Sprintf("Unknown status %d", int(r.Status))
	}
}

// WriteTrace writes every trace line followed by the verdict line to w.
// Verbose test runs print this.
func WriteTrace(w io.Writer, r Result) error {
	for _, line := range r.Trace {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Render(r))
	return err
}
