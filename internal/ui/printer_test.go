package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)
	require.NotNil(t, printer)
	assert.True(t, printer.colorEnabled)
}

func TestPrinter_Messages(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, WithColor(false))

	require.NoError(t, printer.PrintInfo("loading config"))
	require.NoError(t, printer.PrintSuccess("Commit created"))
	require.NoError(t, printer.PrintWarning("no scopes"))
	require.NoError(t, printer.PrintError("git failed"))
	require.NoError(t, printer.PrintValidation(errors.New("Invalid JIRA issue.")))

	output := buf.String()
	assert.Contains(t, output, "loading config")
	assert.Contains(t, output, "Commit created")
	assert.Contains(t, output, "no scopes")
	assert.Contains(t, output, "Error: git failed")
	assert.Contains(t, output, ">> Invalid JIRA issue.")
}

func TestPrinter_PrintPreview(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, WithColor(false))

	require.NoError(t, printer.PrintPreview("fix: eof", 3, 67))
	assert.Equal(t, "  fix: eof (3/67)\n", buf.String())

	buf.Reset()
	require.NoError(t, printer.PrintPreview("fix: eof", 3, 0))
	assert.Equal(t, "  fix: eof\n", buf.String())
}

func TestPrinter_Verbose(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewPrinter(&buf, WithColor(false))
	require.NoError(t, quiet.PrintDetail("hidden"))
	assert.Empty(t, buf.String())

	verbose := NewPrinter(&buf, WithColor(false), WithVerbose(true))
	require.NoError(t, verbose.PrintDetail("shown"))
	assert.Contains(t, buf.String(), "shown")
}
