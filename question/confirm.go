package question

// ConfirmMode selects whether and how an accepted answer is re-confirmed
// before being returned.
type ConfirmMode int

const (
	// ConfirmNone returns the answer without re-asking.
	ConfirmNone ConfirmMode = iota
	// ConfirmYesNo asks a fixed "Are you sure?" question.
	ConfirmYesNo
	// ConfirmTemplate expands Template (with access to the pending
	// question and answer) and asks that.
	ConfirmTemplate
)

// Confirm configures the confirmation step. A declined confirmation
// retries the question silently.
type Confirm struct {
	Mode     ConfirmMode
	Template string
}

// YesNo is a Confirm asking the fixed "Are you sure?" question.
func YesNo() Confirm {
	return Confirm{Mode: ConfirmYesNo}
}

// Templated is a Confirm asking a template-expanded question.
func Templated(text string) Confirm {
	return Confirm{Mode: ConfirmTemplate, Template: text}
}
