package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/huimingz/gitcz/internal/log"
)

// Executor defines the git operations the commit flow needs
type Executor interface {
	// StagedFiles returns the paths of staged files
	StagedFiles(ctx context.Context) ([]string, error)

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// Commit executes a git commit with the given message
	Commit(ctx context.Context, message string) error
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, stdin io.Reader, args ...string) (string, error) {
	log.DebugCommand("git", args)
	start := time.Now()
	defer func() {
		log.DebugDuration("git "+args[0], time.Since(start))
	}()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// StagedFiles returns the paths of staged files
func (e *DefaultExecutor) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := e.runGit(ctx, nil, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	return e.runGit(ctx, nil, "rev-parse", "--abbrev-ref", "HEAD")
}

// Commit executes a git commit with the given message.
// The message is passed on stdin and committed verbatim.
func (e *DefaultExecutor) Commit(ctx context.Context, message string) error {
	_, err := e.runGit(ctx, strings.NewReader(message), "commit", "--cleanup=verbatim", "-F", "-")
	return err
}
