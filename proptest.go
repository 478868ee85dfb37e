// Package proptest is a deterministic property-based testing engine.
//
// Test inputs come from seeded generators, a property asserts that a
// predicate holds across many generated inputs, and a runner executes a
// fixed number of trials and reports a verdict. A run is a pure function
// of its Config: no wall clock, no goroutines, no global state, so any
// failure replays exactly from the reported seed.
//
// Earlier generations of this tooling wrapped a shared *math/rand.Rand.
// Here the random state is an immutable Source value that every draw
// threads explicitly, which is what makes generators composable and whole
// runs replayable.
//
// Basic usage:
//
//	func TestLengthsSurviveMapping(t *testing.T) {
//	    proptest.QuickCheck(t, "mapping preserves length",
//	        proptest.ForAll(proptest.SliceOfN(16, proptest.ChooseInt(0, 100)), func(s []int) bool {
//	            return len(double(s)) == len(s)
//	        }))
//	}
//
// Properties compose with And, stay falsifiable with a rendered
// counterexample, and distinguish a counterexample (StatusFalsified) from
// a broken property (StatusErrored) and from a sampling budget running dry
// (StatusExhausted).
package proptest
