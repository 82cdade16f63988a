package emojifier

import "fmt"

// UnknownWordError indicates a sentence contained a token that is absent
// from the embedding table.
type UnknownWordError struct {
	Word     string
	Sentence string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q in sentence %q", e.Word, e.Sentence)
}

// EmptyInputError indicates a sentence produced zero tokens after splitting.
type EmptyInputError struct {
	Sentence string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("sentence %q contains no tokens", e.Sentence)
}

// DimensionMismatchError indicates a vector of unexpected length or a label
// outside the valid class range. Context names the offending input.
type DimensionMismatchError struct {
	Expected int
	Actual   int
	Context  string
}

func (e *DimensionMismatchError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("dimension mismatch (%s): expected %d, got %d", e.Context, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ConfigurationError indicates an invalid hyperparameter or missing
// dependency, detected before training starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}
