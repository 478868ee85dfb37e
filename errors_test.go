package proptest

import (
	"strings"
	"testing"
)

func TestConstructionError_Message(t *testing.T) {
	err := invalidRange("ChooseInt", "lo %d > hi %d", 20, 10)

	got := err.Error()
	if !strings.HasPrefix(got, "proptest: ChooseInt: ") {
		t.Errorf("Error() = %q, want proptest/op prefix", got)
	}
	if !strings.Contains(got, "lo 20 > hi 10") {
		t.Errorf("Error() = %q, want the offending bounds", got)
	}
}

func TestErrorKind_Names(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindInvalidRange, "invalid range"},
		{KindEmptyDomain, "empty domain"},
		{ErrorKind(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
