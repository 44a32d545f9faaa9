package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scheme maps semantic names (e.g. "warning", "heading") to style lists,
// so applications can restyle their output without touching call sites.
type Scheme map[string][]Style

// ParseScheme parses a YAML scheme document of the form:
//
//	warning: [bold, yellow]
//	heading: [bold, underline, cyan]
//
// Every referenced style must exist in the style table.
func ParseScheme(data []byte) (Scheme, error) {
	raw := map[string][]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse scheme: %w", err)
	}

	scheme := make(Scheme, len(raw))
	for name, styles := range raw {
		list := make([]Style, 0, len(styles))
		for _, s := range styles {
			if !Known(Style(s)) {
				return nil, fmt.Errorf("scheme %q references unknown style %q", name, s)
			}
			list = append(list, Style(s))
		}
		scheme[name] = list
	}
	return scheme, nil
}

// LoadScheme reads and parses a YAML scheme file.
func LoadScheme(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scheme file: %w", err)
	}
	return ParseScheme(data)
}

// Styles returns the style list for a semantic name. Unknown names
// return nil.
func (s Scheme) Styles(name string) []Style {
	return s[name]
}

// Apply decorates text with the styles registered under name.
// An unregistered name falls back to treating it as a direct style name.
func (s Scheme) Apply(text, name string) string {
	if styles, ok := s[name]; ok {
		return Apply(text, styles...)
	}
	return Apply(text, Style(name))
}
