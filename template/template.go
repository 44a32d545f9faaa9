// Package template expands inline tags embedded in prompt text.
//
// Tags are delimited by <% and %> and evaluated against an explicit
// Context carrying only the pending question text and the current answer
// value. Plain strings without tags pass through untouched.
package template

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	openTag  = "<%"
	closeTag = "%>"
)

// Context is the read-only data visible to prompt templates.
type Context struct {
	// Question is the pending prompt text.
	Question string
	// Answer is the value about to be returned, if one exists yet.
	Answer any
}

// HasTags reports whether text contains inline tags worth expanding.
func HasTags(text string) bool {
	return strings.Contains(text, openTag)
}

// Expand renders the inline tags in text against ctx. Text without tags
// is returned unchanged and never errors.
func Expand(text string, ctx Context) (string, error) {
	if !HasTags(text) {
		return text, nil
	}

	t, err := template.New("prompt").Delims(openTag, closeTag).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse prompt template: %w", err)
	}

	var b strings.Builder
	if err := t.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("expand prompt template: %w", err)
	}
	return b.String(), nil
}
