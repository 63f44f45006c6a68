package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrTopicNotFound      = errors.New("topic not found")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrExampleNotFound    = errors.New("code example not found")
	ErrNoLinks            = errors.New("problem has no links")
	ErrNoSteps            = errors.New("nothing to play")
	ErrContentInvalid     = errors.New("invalid content")
	ErrConfigNotFound     = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrHistoryUnavailable = errors.New("history unavailable")
)

// StepwiseError wraps an error with a user-friendly suggestion.
type StepwiseError struct {
	Err        error
	Suggestion string
}

func (e *StepwiseError) Error() string {
	return e.Err.Error()
}

func (e *StepwiseError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &StepwiseError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var swErr *StepwiseError
	if errors.As(err, &swErr) && swErr.Suggestion != "" {
		return swErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrTopicNotFound) {
		return "Run 'stepwise topics' to see available topics"
	}

	if errors.Is(err, ErrProblemNotFound) || errors.Is(err, ErrNoLinks) {
		return "Run 'stepwise problems <topic>' to see the problem set"
	}

	if errors.Is(err, ErrExampleNotFound) {
		return "Run 'stepwise show <topic>' to see its code examples"
	}

	if errors.Is(err, ErrContentInvalid) || strings.Contains(errStr, "yaml") {
		return "Check the content files, or unset content.path to use the built-in topics"
	}

	if errors.Is(err, ErrHistoryUnavailable) || strings.Contains(errStr, "timeout") {
		return "Another stepwise may hold the history database; close it or set history.enabled = false"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'stepwise config init' to create a configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// Err joins all collected errors, or returns nil.
func (p *PartialResult[T]) Err() error {
	return errors.Join(p.Errors...)
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
