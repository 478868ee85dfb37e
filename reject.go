package proptest

import "fmt"

// ExhaustedError is the panic value of a bounded accept-reject draw that
// used up its retry budget. Property runners recover it and report
// StatusExhausted; code drawing from the generator directly can recover and
// inspect it with errors.As.
type ExhaustedError struct {
	// Retries is the budget that was exhausted.
	Retries int
}

// Error returns the panic message.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("proptest: AcceptRejectN: no value accepted in %d draws", e.Retries)
}

// AcceptReject returns a generator that draws from g until pred accepts the
// value. Every retry starts from the state the rejected draw returned, so
// the result is still a pure function of its input Source.
//
// There is no retry bound. The caller owns the liveness assumption: pred
// must accept with strictly positive probability over g's output, otherwise
// a draw will never return. AcceptRejectN trades that assumption for a
// budget.
func AcceptReject[A any](g Gen[A], pred func(A) bool) Gen[A] {
	return func(src Source) (A, Source) {
		for {
			v, next := g(src)
			if pred(v) {
				return v, next
			}
			src = next
		}
	}
}

// AcceptRejectN is AcceptReject with a retry budget: the draw makes at most
// maxRetries attempts and panics with *ExhaustedError once they are spent.
// Inside a property run the panic surfaces as StatusExhausted, distinct
// from both a counterexample and a defect. Panics with *ConstructionError
// if maxRetries < 1.
func AcceptRejectN[A any](g Gen[A], pred func(A) bool, maxRetries int) Gen[A] {
	if maxRetries < 1 {
		panic(invalidRange("AcceptRejectN", "maxRetries %d < 1", maxRetries))
	}
	return func(src Source) (A, Source) {
		for i := 0; i < maxRetries; i++ {
			v, next := g(src)
			if pred(v) {
				return v, next
			}
			src = next
		}
		panic(&ExhaustedError{Retries: maxRetries})
	}
}
