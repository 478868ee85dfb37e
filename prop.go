package proptest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shipq/proptest/validate"
)

// Prop is a runnable property: handed a Config, it executes its trials and
// reports a Result. Props are plain values; combining them with And builds
// bigger properties without running anything.
type Prop func(Config) Result

// Run executes the property against cfg.
func (p Prop) Run(cfg Config) Result {
	return p(cfg)
}

// And sequences two properties under one Config: q runs only when p passes,
// and both start from the same seed, so the conjunction reproduces exactly
// like a single property. A failing Result comes back unchanged from
// whichever side produced it. When both pass, the trial counts add and the
// traces join in run order.
func (p Prop) And(q Prop) Prop {
	return func(cfg Config) Result {
		left := p(cfg)
		if !left.Passed() {
			return left
		}
		right := q(cfg)
		if !right.Passed() {
			return right
		}
		trace := make([]string, 0, len(left.Trace)+len(right.Trace))
		trace = append(trace, left.Trace...)
		trace = append(trace, right.Trace...)
		return Result{Status: StatusPassed, Trials: left.Trials + right.Trials, Trace: trace}
	}
}

// ForAll builds the canonical property: every value drawn from g must
// satisfy pred. Trials run sequentially and trial i+1 draws from the state
// trial i ended with, so the whole run is a function of (NumTests, Seed)
// alone. The run stops at the first falsifying value.
func ForAll[A any](g Gen[A], pred func(A) bool) Prop {
	return ForAllSized(fixedSize(g), pred)
}

// ForAllSized is ForAll for sized generators. Trial i instantiates sg at
// size i mod (MaxSize+1), so a full run walks every size from 0 to MaxSize
// before wrapping around.
func ForAllSized[A any](sg Sized[A], pred func(A) bool) Prop {
	return forAllChecked(sg, func(v A) (bool, string) {
		return pred(v), ""
	})
}

// ForAllValidated runs a validating function as a property: a Valid outcome
// passes the trial, an Invalid outcome falsifies it with the accumulated
// messages folded into the counterexample.
func ForAllValidated[A, B any](g Gen[A], f func(A) validate.Validated[B]) Prop {
	return forAllChecked(fixedSize(g), func(v A) (bool, string) {
		out := f(v)
		if out.IsValid() {
			return true, ""
		}
		return false, strings.Join(out.Errors(), "; ")
	})
}

func fixedSize[A any](g Gen[A]) Sized[A] {
	return func(int) Gen[A] { return g }
}

// trial carries one trial's outcome out of the recovery scope. The value
// leaves already rendered so the loop below stays independent of the
// generated type.
type trial struct {
	rendered string
	detail   string
	line     string
	next     Source
	ok       bool
	err      error
}

// runTrial executes one draw plus check with panic recovery. A recovered
// *ExhaustedError stays inspectable through out.err; any other panic value
// is normalized to an error.
func runTrial[A any](sg Sized[A], size int, check func(A) (bool, string), src Source) (out trial) {
	defer func() {
		if r := recover(); r != nil {
			if err, isErr := r.(error); isErr {
				out.err = err
			} else {
				out.err = fmt.Errorf("trial panicked: %v", r)
			}
		}
	}()

	v, next := sg(size)(src)
	ok, detail := check(v)

	rendered := renderValue(v)
	out = trial{
		rendered: rendered,
		detail:   detail,
		line:     traceLine(rendered, next),
		next:     next,
		ok:       ok,
	}
	return
}

// =============================================================================
// Predicate Helpers
// =============================================================================

// Within returns a predicate satisfied by ints in [lo, hi].
func Within(lo, hi int) func(int) bool {
	return func(n int) bool { return n >= lo && n <= hi }
}

// Every lifts an element predicate to slices: satisfied when every element
// passes. Vacuously true for an empty slice.
func Every[A any](pred func(A) bool) func([]A) bool {
	return func(s []A) bool {
		for _, v := range s {
			if !pred(v) {
				return false
			}
		}
		return true
	}
}

// Some lifts an element predicate to slices: satisfied when at least one
// element passes. Always false for an empty slice.
func Some[A any](pred func(A) bool) func([]A) bool {
	return func(s []A) bool {
		for _, v := range s {
			if pred(v) {
				return true
			}
		}
		return false
	}
}

// forAllChecked is the trial loop shared by the ForAll variants. check
// reports whether a value passes plus optional detail for the
// counterexample line.
func forAllChecked[A any](sg Sized[A], check func(A) (bool, string)) Prop {
	return func(cfg Config) Result {
		sizeMod := cfg.MaxSize + 1
		if sizeMod < 1 {
			sizeMod = 1
		}

		src := NewSource(cfg.Seed)
		var trace []string
		for i := 0; i < cfg.NumTests; i++ {
			out := runTrial(sg, i%sizeMod, check, src)
			if out.err != nil {
				status := StatusErrored
				var ex *ExhaustedError
				if errors.As(out.err, &ex) {
					status = StatusExhausted
				}
				return Result{Status: status, Trials: len(trace), Err: out.err, Trace: trace}
			}
			if !out.ok {
				return Result{
					Status:         StatusFalsified,
					Trials:         len(trace),
					Counterexample: counterexample(out.rendered, out.detail),
					Trace:          trace,
				}
			}
			trace = append(trace, out.line)
			src = out.next
		}
		return Result{Status: StatusPassed, Trials: len(trace), Trace: trace}
	}
}
