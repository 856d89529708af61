package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "upper case", input: "Y\n", want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "n", input: "n\n", want: false},
		{name: "no", input: "no\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "last line without newline", input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}

			result, err := Confirm("Overwrite .czrc.yaml?", strings.NewReader(tt.input), output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
			assert.Contains(t, output.String(), "Overwrite .czrc.yaml? [y/N]")
		})
	}
}

func TestConfirm_InvalidThenYes(t *testing.T) {
	output := &bytes.Buffer{}

	result, err := Confirm("Proceed?", strings.NewReader("maybe\ny\n"), output)
	require.NoError(t, err)
	assert.True(t, result)
	assert.Contains(t, output.String(), "Please enter 'y' or 'n'")
	assert.Equal(t, 2, strings.Count(output.String(), "Proceed? [y/N]"))
}

func TestConfirm_EOF(t *testing.T) {
	result, err := Confirm("Proceed?", strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, result)
}

func TestConfirmWithDefault(t *testing.T) {
	tests := []struct {
		name       string
		defaultYes bool
		wantPrompt string
	}{
		{name: "default yes", defaultYes: true, wantPrompt: "[Y/n]"},
		{name: "default no", defaultYes: false, wantPrompt: "[y/N]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}

			result, err := ConfirmWithDefault("Commit with this message?", tt.defaultYes, strings.NewReader("\n"), output)
			require.NoError(t, err)
			assert.Equal(t, tt.defaultYes, result)
			assert.Contains(t, output.String(), tt.wantPrompt)
		})
	}
}

func TestShowCommitMessage(t *testing.T) {
	output := &bytes.Buffer{}

	message := "feat(auth): PROJ-7 add login\n\nImplement JWT authentication\n\nRefs: #123"
	err := ShowCommitMessage("Commit message", message, output)
	require.NoError(t, err)

	outputStr := output.String()
	assert.Contains(t, outputStr, "Commit message")
	assert.Contains(t, outputStr, "feat(auth): PROJ-7 add login")
	assert.Contains(t, outputStr, "JWT authentication")
	assert.Contains(t, outputStr, "Refs: #123")
}
