// Package score parses and renders student scores.
package score

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The inclusive range a score must fall in when it is entered or edited.
const (
	Min = 0.0
	Max = 100.0
)

var (
	// ErrNotANumber is reported when the input cannot be parsed as a number.
	ErrNotANumber = errors.New("not a number")

	// ErrOutOfRange is reported when the input parses but lies outside
	// [Min, Max].
	ErrOutOfRange = errors.New("score must be between 0 and 100")
)

// Kind tells what a parsed input turned out to be.
type Kind int

// Absent is the zero value so that an unset Result keeps the current score.
const (
	Absent Kind = iota
	Valid
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the outcome of parsing one line of score input. Value is only
// meaningful when Kind is Valid and Err is only set when Kind is Invalid.
type Result struct {
	Kind  Kind
	Value float64
	Err   error
}

// Of returns a Valid result holding v. It does not check the range.
func Of(v float64) Result {
	return Result{Kind: Valid, Value: v}
}

// Parse reads a score that must be present. Empty input is invalid.
func Parse(raw string) Result {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Result{Kind: Invalid, Err: ErrNotANumber}
	}

	return parse(line)
}

// ParseOptional reads a score that may be left out. Empty input yields an
// Absent result, which callers treat as "keep the current value".
func ParseOptional(raw string) Result {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Result{Kind: Absent}
	}

	return parse(line)
}

func parse(line string) Result {
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Result{Kind: Invalid, Err: ErrOutOfRange}
		}

		return Result{Kind: Invalid, Err: ErrNotANumber}
	}

	if err := Check(v); err != nil {
		return Result{Kind: Invalid, Err: err}
	}

	return Of(v)
}

// Check returns ErrOutOfRange unless v lies in [Min, Max]. NaN is out of
// range.
func Check(v float64) error {
	if !(v >= Min && v <= Max) {
		return ErrOutOfRange
	}

	return nil
}
