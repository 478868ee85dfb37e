package proptest

import "fmt"

// ErrorKind classifies why a generator constructor rejected its arguments.
type ErrorKind int

const (
	// KindInvalidRange means a bound pair was inverted or a count negative.
	KindInvalidRange ErrorKind = iota + 1
	// KindEmptyDomain means a choice was requested from zero alternatives.
	KindEmptyDomain
)

// String returns the kind name for diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRange:
		return "invalid range"
	case KindEmptyDomain:
		return "empty domain"
	default:
		return "unknown"
	}
}

// ConstructionError reports invalid arguments to a generator constructor.
// Constructors panic with a *ConstructionError at build time, before any
// draw happens, so a malformed generator can never feed values into a run.
// Recovered panics can be inspected with errors.As.
type ConstructionError struct {
	// Op is the constructor that rejected its arguments, e.g. "ChooseInt".
	Op string
	// Kind classifies the rejection.
	Kind ErrorKind
	// Detail describes the offending arguments.
	Detail string
}

// Error returns the panic message.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("proptest: %s: %s", e.Op, e.Detail)
}

func invalidRange(op, format string, args ...any) *ConstructionError {
	return &ConstructionError{Op: op, Kind: KindInvalidRange, Detail: fmt.Sprintf(format, args...)}
}

func emptyDomain(op string) *ConstructionError {
	return &ConstructionError{Op: op, Kind: KindEmptyDomain, Detail: "no alternatives given"}
}
