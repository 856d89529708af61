package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// ErrInterrupted is returned when the user interrupts input with Ctrl+C
	ErrInterrupted = errors.New("input interrupted")

	// ErrNoOptions is returned when a selection is asked without options
	ErrNoOptions = errors.New("no options to select from")
)

// lineReader reads one line of input after showing prompt
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Prompter asks single questions. All questions share one reader so
// buffered input is never lost between them.
type Prompter struct {
	reader lineReader
	output io.Writer
}

// NewPrompter creates a Prompter. Interactive terminals get line editing via
// readline; anything else is read line by line.
func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	if isTerminal(input, output) {
		rl, err := readline.NewEx(&readline.Config{
			InterruptPrompt: "^C",
			EOFPrompt:       "^D",
			Stdout:          output,
		})
		if err == nil {
			return &Prompter{reader: &terminalReader{rl: rl}, output: output}
		}
	}
	return &Prompter{reader: newPlainReader(input, output), output: output}
}

// Close releases the terminal
func (p *Prompter) Close() error {
	return p.reader.Close()
}

func isTerminal(input io.Reader, output io.Writer) bool {
	in, ok := input.(*os.File)
	if !ok {
		return false
	}
	out, ok := output.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// readLine reads one line, giving up when ctx is done.
// The pending read is abandoned; callers stop asking after an error.
func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}

	resultChan := make(chan inputResult, 1)
	go func() {
		line, err := p.reader.ReadLine(prompt)
		resultChan <- inputResult{result: line, err: err}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(p.output)
		return "", ErrInterrupted
	case r := <-resultChan:
		return r.result, r.err
	}
}

// inputResult holds the result from reading input
type inputResult struct {
	result string
	err    error
}

// Select shows a numbered list and returns the index picked.
// Empty input picks defaultIndex; an out-of-range default becomes 0.
func (p *Prompter) Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)

	if _, err := bold.Fprintf(p.output, "? %s\n", message); err != nil {
		return -1, err
	}
	for i, option := range options {
		marker := " "
		if i == defaultIndex {
			marker = cyan.Sprint(">")
		}
		if _, err := fmt.Fprintf(p.output, "%s %2d) %s\n", marker, i+1, option); err != nil {
			return -1, err
		}
	}

	prompt := fmt.Sprintf("  Enter a number [%d]: ", defaultIndex+1)
	for {
		line, err := p.readLine(ctx, prompt)
		if err != nil {
			return -1, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return defaultIndex, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		if _, err := red.Fprintf(p.output, "  Please enter a number between 1 and %d\n", len(options)); err != nil {
			return -1, err
		}
	}
}

// Input asks for a line of text. Empty input takes defaultValue.
func (p *Prompter) Input(ctx context.Context, message, defaultValue string) (string, error) {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	prompt := bold.Sprintf("? %s ", message)
	if defaultValue != "" {
		prompt += dim.Sprintf("(%s) ", defaultValue)
	}

	line, err := p.readLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question, re-asking until the answer is recognizable
func (p *Prompter) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	var prompt string
	if defaultYes {
		prompt = fmt.Sprintf("%s [Y/n]: ", message)
	} else {
		prompt = fmt.Sprintf("%s [y/N]: ", message)
	}

	for {
		line, err := p.readLine(ctx, prompt)
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if _, err := fmt.Fprintln(p.output, "Please enter 'y' or 'n'"); err != nil {
				return false, err
			}
		}
	}
}

// plainReader reads lines from any reader, echoing the prompt to output
type plainReader struct {
	input  *bufio.Reader
	output io.Writer
}

func newPlainReader(input io.Reader, output io.Writer) *plainReader {
	return &plainReader{input: bufio.NewReader(input), output: output}
}

func (r *plainReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.output, prompt); err != nil {
		return "", err
	}

	line, err := r.input.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *plainReader) Close() error {
	return nil
}

// terminalReader reads with readline for line editing (Chinese, arrows, history)
type terminalReader struct {
	rl *readline.Instance
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}
