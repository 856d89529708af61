package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	previewHeaderStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	previewBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Padding(0, 1)
)

// RenderCommitMessage renders message in a bordered box below title
func RenderCommitMessage(title, message string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		previewHeaderStyle.Render(title),
		previewBoxStyle.Render(message),
	)
}

// ShowCommitMessage displays a formatted commit message
func ShowCommitMessage(title, message string, output io.Writer) error {
	_, err := fmt.Fprintln(output, RenderCommitMessage(title, message))
	return err
}
