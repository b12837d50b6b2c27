// Package terminal implements the decorative command terminal shown on the home page. It is a
// fixed lookup table; nothing it does touches the API.
package terminal

import (
	"fmt"
	"strings"
)

const (
	HelpResponse     = "Available commands: help, clear, show blog"
	NavigateResponse = "Navigating to Blog Overview..."
	UnknownResponse  = "Command not recognized. Type 'help' for available commands."

	Prompt = "terminal@cybersec:~$"
)

// Action is a side effect the host should perform after a command
type Action int

const (
	ActionNone Action = iota
	ActionClear
	ActionNavigateBlog
)

func (a Action) String() string {
	switch a {
	case ActionClear:
		return "clear"
	case ActionNavigateBlog:
		return "navigate-blog"
	default:
		return "none"
	}
}

// Result is the outcome of one command. Response is empty when nothing should be printed.
type Result struct {
	Response string
	Action   Action
}

// Process maps a command to its response. Input is trimmed and lower-cased first.
func Process(input string) Result {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "help":
		return Result{Response: HelpResponse}
	case "clear":
		return Result{Action: ActionClear}
	case "show blog":
		return Result{Response: NavigateResponse, Action: ActionNavigateBlog}
	default:
		return Result{Response: UnknownResponse}
	}
}

// QuickCommand handles the single-line prompt of the hero banner, which only knows "show blog".
// It reports whether to navigate, or the message to show otherwise.
func QuickCommand(input string) (navigate bool, message string) {
	if strings.ToLower(strings.TrimSpace(input)) == "show blog" {
		return true, ""
	}
	return false, fmt.Sprintf("Command \"%s\" not recognized.", input)
}

type LineType string

const (
	LineCommand  LineType = "command"
	LineResponse LineType = "response"
)

type Line struct {
	Type LineType
	Text string
}

// Session keeps the scrollback of an interactive terminal
type Session struct {
	history []Line
}

// Submit records input and its response in the history. Blank input is ignored and yields
// ActionNone; "clear" empties the history, including the command line itself.
func (s *Session) Submit(input string) Result {
	if strings.TrimSpace(input) == "" {
		return Result{}
	}

	s.history = append(s.history, Line{Type: LineCommand, Text: input})

	result := Process(input)
	if result.Action == ActionClear {
		s.history = nil
		return result
	}

	s.history = append(s.history, Line{Type: LineResponse, Text: result.Response})
	return result
}

func (s *Session) History() []Line {
	return append([]Line(nil), s.history...)
}
