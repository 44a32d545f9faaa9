// Package question describes a single pending prompt: the target answer
// shape, its validators, range bounds, echo behavior, and the response
// messages emitted when input is rejected.
//
// A Question is configuration only. It is built once, handed to a prompt
// session, and never mutated while the session's retry loop is reading
// input; all per-attempt state lives in the session.
package question

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the target shape a raw input is converted into.
type Kind int

const (
	// String accepts the prepared input as-is.
	String Kind = iota
	// Int parses a base-10 integer.
	Int
	// Float parses a floating point number.
	Float
	// Choice resolves the input against an enumerated candidate list by
	// unique-prefix completion.
	Choice
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "integer"
	case Float:
		return "number"
	case Choice:
		return "choice"
	default:
		return "string"
	}
}

// CaseMode controls case folding applied to raw input.
type CaseMode int

const (
	CasePreserve CaseMode = iota
	CaseLower
	CaseUpper
)

// WhitespaceMode controls whitespace normalization of raw input. The line
// terminator is always removed; modes differ in what else goes.
type WhitespaceMode int

const (
	// WhitespaceStrip trims surrounding blanks (the default).
	WhitespaceStrip WhitespaceMode = iota
	// WhitespaceKeep preserves everything but the line terminator.
	WhitespaceKeep
)

// ConvertFunc overrides the kind-based conversion, turning prepared raw
// input into the final answer value. Returning a *Failure makes the
// outcome recoverable; any other error is fatal.
type ConvertFunc func(raw string) (any, error)

// ErrConflictingValidators is returned when both a regexp rule and a
// whitelist are configured; exactly one may be set.
var ErrConflictingValidators = errors.New("question: both Validate and In configured; set exactly one")

// Question configures one pending prompt.
type Question struct {
	// Text is the prompt shown to the user. It may contain inline
	// template tags.
	Text string

	// Kind is the target answer shape.
	Kind Kind

	// Validate rejects raw input not matching the pattern. Mutually
	// exclusive with In.
	Validate *regexp.Regexp

	// In whitelists acceptable raw inputs. Mutually exclusive with
	// Validate.
	In []string

	// Above and Below are exclusive bounds checked against converted
	// numeric answers.
	Above *float64
	Below *float64

	// InRange whitelists acceptable converted answers as a set, checked
	// after conversion alongside the numeric bounds.
	InRange []string

	// Default substitutes for empty input before validation.
	Default string

	// Character reads a single raw character instead of a line.
	Character bool

	// HideInput reads the line character-by-character without echo.
	HideInput bool

	// Mask, when non-empty, implies HideInput and echoes this string
	// once per keystroke.
	Mask string

	// Choices are the completion candidates for Kind Choice.
	Choices []string

	// Case and Whitespace normalize raw input before validation.
	Case       CaseMode
	Whitespace WhitespaceMode

	// Responses configures the per-situation retry messages.
	Responses Responses

	// Confirm re-asks before accepting the answer.
	Confirm Confirm

	// ConvertWith replaces the kind-based conversion when set.
	ConvertWith ConvertFunc
}

// New returns a Question for the given prompt text and answer kind.
func New(text string, kind Kind) *Question {
	return &Question{Text: text, Kind: kind}
}

// Check verifies the configuration before any input is read.
// Configuration errors are fatal, never retried.
func (q *Question) Check() error {
	if q.Validate != nil && len(q.In) > 0 {
		return ErrConflictingValidators
	}
	if q.Kind == Choice && len(q.Choices) == 0 && q.ConvertWith == nil {
		return errors.New("question: Choice kind requires candidates")
	}
	return nil
}

// Prepare normalizes raw input: the line terminator goes, whitespace and
// case fold per configuration, and empty input falls back to the default.
func (q *Question) Prepare(raw string) string {
	raw = strings.TrimRight(raw, "\r\n")
	if q.Whitespace == WhitespaceStrip {
		raw = strings.TrimSpace(raw)
	}
	switch q.Case {
	case CaseLower:
		raw = strings.ToLower(raw)
	case CaseUpper:
		raw = strings.ToUpper(raw)
	}
	if raw == "" && q.Default != "" {
		raw = q.Default
	}
	return raw
}

// Valid applies the configured validation rule to prepared input.
// Rejection is a recoverable NotValid failure.
func (q *Question) Valid(raw string) error {
	if q.Validate != nil && !q.Validate.MatchString(raw) {
		return &Failure{Kind: FailNotValid, Value: raw}
	}
	if len(q.In) > 0 {
		for _, allowed := range q.In {
			if raw == allowed {
				return nil
			}
		}
		return &Failure{Kind: FailNotValid, Value: raw}
	}
	return nil
}

// Convert coerces prepared input to the target shape. Malformed input is
// a recoverable InvalidType failure; completion misses surface as
// NoCompletion or Ambiguous failures.
func (q *Question) Convert(raw string) (Answer, error) {
	if q.ConvertWith != nil {
		value, err := q.ConvertWith(raw)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Kind: q.Kind, Raw: raw, value: value}, nil
	}

	switch q.Kind {
	case Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Answer{}, &Failure{Kind: FailInvalidType, Value: raw}
		}
		return Answer{Kind: Int, Raw: raw, value: n}, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Answer{}, &Failure{Kind: FailInvalidType, Value: raw}
		}
		return Answer{Kind: Float, Raw: raw, value: f}, nil
	case Choice:
		match, err := Complete(raw, q.Choices)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Kind: Choice, Raw: raw, value: match}, nil
	default:
		return Answer{Kind: String, Raw: raw, value: raw}, nil
	}
}

// CheckRange verifies a converted answer against the InRange set and the
// exclusive Above/Below numeric bounds. Out-of-range values are
// recoverable failures.
func (q *Question) CheckRange(a Answer) error {
	if len(q.InRange) > 0 && !contains(q.InRange, a.String()) {
		return &Failure{Kind: FailNotInRange, Value: a.Raw}
	}

	if q.Above == nil && q.Below == nil {
		return nil
	}

	var v float64
	switch a.Kind {
	case Int:
		v = float64(a.Int())
	case Float:
		v = a.Float()
	default:
		return nil
	}

	if q.Above != nil && v <= *q.Above {
		return &Failure{Kind: FailNotInRange, Value: a.Raw}
	}
	if q.Below != nil && v >= *q.Below {
		return &Failure{Kind: FailNotInRange, Value: a.Raw}
	}
	return nil
}

// Complete resolves token against candidates by unique-prefix match. An
// exact match always wins. Zero matches is a NoCompletion failure; more
// than one distinct match is an Ambiguous failure.
func Complete(token string, candidates []string) (string, error) {
	var matches []string
	for _, c := range candidates {
		if c == token {
			return c, nil
		}
		if strings.HasPrefix(c, token) && !contains(matches, c) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", &Failure{Kind: FailNoCompletion, Value: token}
	case 1:
		return matches[0], nil
	default:
		return "", &Failure{Kind: FailAmbiguous, Value: token}
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Float64 is a convenience for the Above/Below bound fields.
func Float64(v float64) *float64 {
	return &v
}

// Answer is a converted, type-matching answer value.
type Answer struct {
	// Kind is the shape the value was converted to.
	Kind Kind
	// Raw is the prepared raw input the value came from.
	Raw string

	value any
}

// NewAnswer wraps an already-converted value, for callers composing their
// own conversion logic.
func NewAnswer(kind Kind, raw string, value any) Answer {
	return Answer{Kind: kind, Raw: raw, value: value}
}

// Value returns the converted value.
func (a Answer) Value() any {
	return a.value
}

// String returns the value as a string. Non-string kinds are formatted.
func (a Answer) String() string {
	switch v := a.value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int returns the value as an int; zero when the kind does not match.
func (a Answer) Int() int {
	if n, ok := a.value.(int); ok {
		return n
	}
	return 0
}

// Float returns the value as a float64; zero when the kind does not match.
func (a Answer) Float() float64 {
	if f, ok := a.value.(float64); ok {
		return f
	}
	return 0
}
