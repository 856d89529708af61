package ui

import (
	"context"
	"io"
)

// Confirm asks the user for a yes/no confirmation
// Default is no (returns false on empty input)
func Confirm(message string, input io.Reader, output io.Writer) (bool, error) {
	return ConfirmWithDefault(message, false, input, output)
}

// ConfirmWithDefault asks the user for a yes/no confirmation with a specified default
func ConfirmWithDefault(message string, defaultYes bool, input io.Reader, output io.Writer) (bool, error) {
	return newPlainPrompter(input, output).Confirm(context.Background(), message, defaultYes)
}

// SelectOption shows options as a numbered list and returns the picked index
func SelectOption(message string, options []string, defaultIndex int, input io.Reader, output io.Writer) (int, error) {
	return newPlainPrompter(input, output).Select(context.Background(), message, options, defaultIndex)
}

func newPlainPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{reader: newPlainReader(input, output), output: output}
}
