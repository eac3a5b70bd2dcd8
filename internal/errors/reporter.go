package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter handles consistent error formatting for the CLI and REPL.
type Reporter struct {
	filename string
}

// NewReporter creates a new error reporter. The filename labels the
// constraint source in the output and may be empty for REPL input.
func NewReporter(filename string) *Reporter {
	return &Reporter{filename: filename}
}

// Format renders a compiler error with colored, Rust-like styling.
func (r *Reporter) Format(err *CompilerError) string {
	var result strings.Builder

	levelColor := r.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0200]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	if r.filename != "" {
		result.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), r.filename))
	}

	// Conflict witnesses, one per line
	if err.Left != nil && err.Right != nil {
		termColor := color.New(color.FgMagenta).SprintFunc()
		result.WriteString(fmt.Sprintf("  %s\n", dim("│")))
		result.WriteString(fmt.Sprintf("  %s   left:  %s\n", dim("│"), termColor(err.Left.String())))
		result.WriteString(fmt.Sprintf("  %s   right: %s\n", dim("│"), termColor(err.Right.String())))
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("  %s %s %s\n", dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("  %s %s %s\n", dim("│"), helpColor("help:"), err.HelpText))
	}

	return result.String()
}

// getLevelColor returns the appropriate color function for an error level
func (r *Reporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
