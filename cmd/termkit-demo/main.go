// termkit-demo exercises the toolkit interactively: typed questions,
// yes/no confirmation, menu selection, and wrapped, paginated output.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/termkit/layout"
	"github.com/jongio/termkit/logutil"
	"github.com/jongio/termkit/menu"
	"github.com/jongio/termkit/question"
	"github.com/jongio/termkit/session"
	"github.com/jongio/termkit/style"
)

var (
	wrapFlag  int
	pageFlag  int
	debugFlag bool
)

// listModeValue lets --layout parse directly into a layout.ListMode.
type listModeValue layout.ListMode

var _ pflag.Value = (*listModeValue)(nil)

func (v *listModeValue) String() string {
	switch layout.ListMode(*v) {
	case layout.Inline:
		return "inline"
	case layout.ColumnsAcross:
		return "columns-across"
	case layout.ColumnsDown:
		return "columns-down"
	default:
		return "rows"
	}
}

func (v *listModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "rows":
		*v = listModeValue(layout.Rows)
	case "inline":
		*v = listModeValue(layout.Inline)
	case "columns-across":
		*v = listModeValue(layout.ColumnsAcross)
	case "columns-down":
		*v = listModeValue(layout.ColumnsDown)
	default:
		return fmt.Errorf("unknown layout %q (rows, inline, columns-across, columns-down)", s)
	}
	return nil
}

func (v *listModeValue) Type() string { return "layout" }

var rootCmd = &cobra.Command{
	Use:   "termkit-demo",
	Short: "Interactive console toolkit demo",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logutil.SetupLogger(debugFlag, false)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a validated, range-checked question",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()

		name, err := s.AskString("What is your name? ")
		if err != nil {
			return err
		}

		age, err := s.Ask("How old are you? ", question.Int, func(q *question.Question) {
			q.Above = question.Float64(0)
			q.Below = question.Float64(150)
		})
		if err != nil {
			return err
		}

		return s.Say(fmt.Sprintf("Hello %s, age %d.", name, age.Int()))
	},
}

var agreeCmd = &cobra.Command{
	Use:   "agree",
	Short: "Ask a yes/no question with confirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()

		ok, err := s.Agree("Proceed with the demo? ")
		if err != nil {
			return err
		}
		if !ok {
			return s.Say("Stopping here.")
		}

		env, err := s.Ask("Environment to delete? ", question.String, func(q *question.Question) {
			q.Confirm = question.Templated("Really delete <% .Answer %>? ")
		})
		if err != nil {
			return err
		}
		return s.Say(style.Apply(fmt.Sprintf("Deleted %s.", env), style.Red))
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Present a menu and report the selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()

		m := menu.New("build", "deploy", "status", "exit")
		m.Header = "Commands"
		m.Layout = layout.ListMode(menuLayout)

		choice, err := s.Choose(m)
		if err != nil {
			return err
		}
		return s.Say(fmt.Sprintf("You picked %s (item %d).", choice.Item, choice.Index+1))
	},
}

var sayCmd = &cobra.Command{
	Use:   "say [text...]",
	Short: "Print text through the wrap and page pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		text := strings.Join(args, " ")
		if text == "" {
			text = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
		}
		return s.Say(text)
	},
}

var menuLayout listModeValue

func newSession() *session.Session {
	s := session.New(os.Stdin, os.Stdout)
	s.WrapAt = wrapFlag
	if s.WrapAt == 0 {
		s.WrapAt = s.Width()
	}
	s.PageAt = pageFlag
	return s
}

func init() {
	rootCmd.PersistentFlags().IntVar(&wrapFlag, "wrap", 0, "Wrap output at this column (0 = terminal width)")
	rootCmd.PersistentFlags().IntVar(&pageFlag, "page", 0, "Paginate output after this many lines (0 = off)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	menuCmd.Flags().Var(&menuLayout, "layout", "Menu layout: rows, inline, columns-across, columns-down")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(agreeCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
