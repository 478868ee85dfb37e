// Package validate provides an accumulating validation outcome: a value is
// either valid, or invalid with the complete ordered list of everything
// wrong with it. Unlike an error return, combining two invalid outcomes
// keeps both message lists instead of stopping at the first.
package validate

// Validated is the outcome of checking one value. The zero Validated is a
// valid zero value; use Valid and Invalid to construct outcomes explicitly.
type Validated[A any] struct {
	value A
	errs  []string
}

// Valid wraps a value as a valid outcome.
func Valid[A any](v A) Validated[A] {
	return Validated[A]{value: v}
}

// Invalid builds an invalid outcome. At least one message is required; an
// invalid outcome with nothing wrong would be a contradiction, so the
// signature makes it unrepresentable.
func Invalid[A any](first string, rest ...string) Validated[A] {
	errs := make([]string, 0, 1+len(rest))
	errs = append(errs, first)
	errs = append(errs, rest...)
	return Validated[A]{errs: errs}
}

// IsValid reports whether the outcome holds a value.
func (v Validated[A]) IsValid() bool {
	return len(v.errs) == 0
}

// Value returns the valid value. Panics on an invalid outcome; check
// IsValid first.
func (v Validated[A]) Value() A {
	if !v.IsValid() {
		panic("validate: Value called on invalid outcome")
	}
	return v.value
}

// Errors returns the messages of an invalid outcome in the order they were
// recorded, or nil for a valid outcome.
func (v Validated[A]) Errors() []string {
	return v.errs
}

// Map transforms the value of a valid outcome. Invalid outcomes pass
// through with their messages intact.
func Map[A, B any](v Validated[A], f func(A) B) Validated[B] {
	if !v.IsValid() {
		return Validated[B]{errs: v.errs}
	}
	return Valid(f(v.value))
}

// Map2 merges two outcomes: when both are valid, f combines their values;
// otherwise the message lists concatenate, a's messages first. Both sides
// are always inspected, so every field of a form gets checked even when
// the first one is already wrong.
func Map2[A, B, C any](a Validated[A], b Validated[B], f func(A, B) C) Validated[C] {
	if a.IsValid() && b.IsValid() {
		return Valid(f(a.value, b.value))
	}
	errs := make([]string, 0, len(a.errs)+len(b.errs))
	errs = append(errs, a.errs...)
	errs = append(errs, b.errs...)
	return Validated[C]{errs: errs}
}

// Map3 merges three outcomes the way Map2 merges two.
func Map3[A, B, C, D any](a Validated[A], b Validated[B], c Validated[C], f func(A, B, C) D) Validated[D] {
	ab := Map2(a, b, func(av A, bv B) func(C) D {
		return func(cv C) D { return f(av, bv, cv) }
	})
	return Map2(ab, c, func(g func(C) D, cv C) D {
		return g(cv)
	})
}

// AndThen chains a dependent check. Unlike Map2 it short-circuits: f never
// runs when v is invalid, so use it only when the next check cannot be
// stated without the previous value.
func AndThen[A, B any](v Validated[A], f func(A) Validated[B]) Validated[B] {
	if !v.IsValid() {
		return Validated[B]{errs: v.errs}
	}
	return f(v.value)
}
