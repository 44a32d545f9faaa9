package question

import (
	"errors"
	"fmt"
)

// FailKind names a recoverable failure category. Every kind maps to a
// response message and a retry; anything that is not a Failure propagates
// to the caller as fatal.
type FailKind int

const (
	// FailNotValid is input rejected by the validation rule.
	FailNotValid FailKind = iota
	// FailNotInRange is a converted value outside the accepted bounds.
	FailNotInRange
	// FailInvalidType is input that could not be converted.
	FailInvalidType
	// FailNoCompletion is a completion prefix matching zero candidates.
	FailNoCompletion
	// FailAmbiguous is a completion prefix matching several candidates.
	FailAmbiguous
	// FailDeclined is a confirmation answered negatively; it carries no
	// message.
	FailDeclined
)

func (k FailKind) String() string {
	switch k {
	case FailNotValid:
		return "not_valid"
	case FailNotInRange:
		return "not_in_range"
	case FailInvalidType:
		return "invalid_type"
	case FailNoCompletion:
		return "no_completion"
	case FailAmbiguous:
		return "ambiguous_completion"
	case FailDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// Failure is the tagged recoverable outcome of a pipeline step.
type Failure struct {
	Kind  FailKind
	Value string
}

func (f *Failure) Error() string {
	if f.Value == "" {
		return fmt.Sprintf("question: %s", f.Kind)
	}
	return fmt.Sprintf("question: %s (%q)", f.Kind, f.Value)
}

// AsFailure unwraps err into a recoverable Failure, reporting whether the
// error is one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
