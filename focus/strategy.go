package focus

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a setter receives a value it does not
// recognize.
var ErrInvalidArgument = errors.New("invalid argument")

// TextAreaStrategy decides what Enter does inside a text area.
type TextAreaStrategy string

const (
	// StrategyTab moves focus to the next element, like any other field.
	StrategyTab TextAreaStrategy = "tab"
	// StrategyNewLine keeps focus and lets the text area insert a newline.
	StrategyNewLine TextAreaStrategy = "new line"
	// StrategyCtrlEnter inserts a newline on Ctrl+Enter and moves focus on a
	// plain Enter.
	StrategyCtrlEnter TextAreaStrategy = "ctrl+enter"
)

// Valid reports whether s is one of the known strategies.
func (s TextAreaStrategy) Valid() bool {
	switch s {
	case StrategyTab, StrategyNewLine, StrategyCtrlEnter:
		return true
	}
	return false
}

// ParseTextAreaStrategy converts a string into a TextAreaStrategy.
func ParseTextAreaStrategy(s string) (TextAreaStrategy, error) {
	v := TextAreaStrategy(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown textarea strategy %q (want %q, %q or %q)",
			ErrInvalidArgument, s, StrategyTab, StrategyNewLine, StrategyCtrlEnter)
	}
	return v, nil
}
