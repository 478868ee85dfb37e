// Package webform validates signup form submissions. It demonstrates the
// contract the property engine expects from a system under test: a pure,
// total function from input to an accumulating validation outcome. Every
// rule here is deterministic, so the same submission always validates the
// same way.
package webform

import (
	"strings"

	"github.com/shipq/proptest/validate"
)

// Field rules. A submission outside these bounds is rejected with a
// message naming the field.
const (
	MaxNameLen = 64
	MinAge     = 13
	MaxAge     = 150
)

// Submission is one raw signup form post, exactly as the user typed it.
type Submission struct {
	Name  string
	Email string
	Age   int
}

// Account is a signup that passed every rule. Name arrives trimmed.
type Account struct {
	Name  string
	Email string
	Age   int
}

// ValidateName requires a non-blank name of at most MaxNameLen characters
// after trimming.
func ValidateName(name string) validate.Validated[string] {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return validate.Invalid[string]("name: must not be blank")
	}
	if len(trimmed) > MaxNameLen {
		return validate.Invalid[string]("name: longer than 64 characters")
	}
	return validate.Valid(trimmed)
}

// ValidateEmail requires the local@domain shape with a dotted domain and
// no whitespace. It is a plausibility check, not an RFC parser.
func ValidateEmail(email string) validate.Validated[string] {
	if strings.ContainsAny(email, " \t") {
		return validate.Invalid[string]("email: must not contain whitespace")
	}
	if strings.Count(email, "@") != 1 {
		return validate.Invalid[string]("email: must contain exactly one @")
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return validate.Invalid[string]("email: must look like local@domain")
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return validate.Invalid[string]("email: domain needs an interior dot")
	}
	return validate.Valid(email)
}

// ValidateAge requires an age in [MinAge, MaxAge].
func ValidateAge(age int) validate.Validated[int] {
	if age < MinAge {
		return validate.Invalid[int]("age: below 13")
	}
	if age > MaxAge {
		return validate.Invalid[int]("age: above 150")
	}
	return validate.Valid(age)
}

// Validate checks every field and merges the outcomes, so one bad
// submission reports everything wrong with it in a single pass. Field
// order in the messages is name, email, age.
func Validate(sub Submission) validate.Validated[Account] {
	return validate.Map3(
		ValidateName(sub.Name),
		ValidateEmail(sub.Email),
		ValidateAge(sub.Age),
		func(name, email string, age int) Account {
			return Account{Name: name, Email: email, Age: age}
		},
	)
}
