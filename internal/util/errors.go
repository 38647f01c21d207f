package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors surfaced by the CLI layer.
var (
	ErrNoSheets     = errors.New("workbook contains no sheets")
	ErrSheetMissing = errors.New("sheet not found in workbook")
	ErrNotATerminal = errors.New("stdout is not a terminal")
)

// AppError is a structured error with context and suggestions, rendered by
// the CLI when a command fails.
type AppError struct {
	Title       string   // short error title
	Message     string   // detailed message
	Context     string   // what was being attempted
	Suggestions []string // actionable suggestions with commands
	Err         error    // wrapped error
}

func (e *AppError) Error() string {
	return e.Title
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Format returns a nicely formatted multi-line error message.
func (e *AppError) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))
	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}
	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}
	return sb.String()
}

// NewError creates a new AppError.
func NewError(title string) *AppError {
	return &AppError{Title: title}
}

// WithMessage adds a detailed message.
func (e *AppError) WithMessage(msg string) *AppError {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted.
func (e *AppError) WithContext(ctx string) *AppError {
	e.Context = ctx
	return e
}

// WithSuggestion adds an actionable suggestion.
func (e *AppError) WithSuggestion(sug string) *AppError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// Wrap wraps an underlying error.
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

// OpenWorkbookError returns a structured error for an unreadable workbook.
func OpenWorkbookError(path string, err error) *AppError {
	return NewError("Cannot open workbook").
		WithContext(path).
		WithMessage("The file is missing, locked, or not a spreadsheet this tool understands (.xlsx, .xlsm, .csv)").
		WithSuggestion("sheetscout sheets <file>   # Check the file is readable").
		Wrap(err)
}

// SheetNotFoundError returns a structured error for a bad --sheet argument.
func SheetNotFoundError(name string, available []string) *AppError {
	return NewError(fmt.Sprintf("Sheet %q not found", name)).
		WithMessage(fmt.Sprintf("Available sheets: %s", strings.Join(available, ", "))).
		Wrap(ErrSheetMissing)
}
