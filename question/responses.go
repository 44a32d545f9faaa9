package question

import "fmt"

// ErrorAction decides what follows a response message before the prompt
// is shown again.
type ErrorAction int

const (
	// OnErrorRepeat re-renders the full original question (the default).
	OnErrorRepeat ErrorAction = iota
	// OnErrorMessage prints OnErrorText instead of the question.
	OnErrorMessage
	// OnErrorSilent prints nothing further.
	OnErrorSilent
)

// Responses maps recoverable failure situations to the message shown
// before retrying. Empty fields fall back to built-in defaults.
type Responses struct {
	NotValid     string
	NotInRange   string
	InvalidType  string
	NoCompletion string
	Ambiguous    string

	// OnError directs what is printed after the message.
	OnError ErrorAction
	// OnErrorText is the custom output for OnErrorMessage.
	OnErrorText string
}

// Message returns the configured or default message for a failure
// against q. Declined confirmations are silent by contract.
func (r Responses) Message(kind FailKind, q *Question) string {
	switch kind {
	case FailNotValid:
		return fallback(r.NotValid, "Your answer isn't valid (must match the expected format).")
	case FailNotInRange:
		return fallback(r.NotInRange, "Your answer isn't within the expected range.")
	case FailInvalidType:
		return fallback(r.InvalidType, fmt.Sprintf("You must enter a valid %s.", q.Kind))
	case FailNoCompletion:
		return fallback(r.NoCompletion, "You must choose one of the given choices.")
	case FailAmbiguous:
		return fallback(r.Ambiguous, "Ambiguous choice. Please choose one of the given choices.")
	default:
		return ""
	}
}

func fallback(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
