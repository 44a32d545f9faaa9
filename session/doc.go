// Package session runs interactive console conversations: asking typed
// questions, presenting menus, and printing wrapped, paginated output.
//
// A Session owns an input and output stream pair. Ask and its variants
// drive the answer pipeline (render the prompt, read input, validate,
// convert, range-check, confirm), retrying on recoverable rejections
// until an acceptable answer arrives. Say prints template-expanded text
// through the same wrapping and paging rules the prompts use.
//
// Example:
//
//	s := session.New(os.Stdin, os.Stdout, session.WithWrap(80))
//	age, err := s.Ask("How old are you? ", question.Int, func(q *question.Question) {
//	    q.Above = question.Float64(0)
//	    q.Below = question.Float64(150)
//	})
package session
