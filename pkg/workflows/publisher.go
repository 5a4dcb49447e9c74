package workflows

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRunner runs one git command with dir as the working directory and
// returns its combined output. A non-zero exit is returned as an error.
type GitRunner interface {
	Run(dir string, args ...string) (string, error)
}

// ExecGitRunner shells out to the git binary.
type ExecGitRunner struct{}

// Run implements GitRunner.
func (ExecGitRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), &GitError{Args: args, Output: strings.TrimSpace(string(out)), Cause: err}
	}
	return string(out), nil
}

// Publisher commits reconciled workflow files through the project's own
// git working tree.
type Publisher struct {
	Git GitRunner
	Out io.Writer
	Err io.Writer
}

// NewPublisher creates a Publisher running real git commands.
func NewPublisher(out, errOut io.Writer) *Publisher {
	return &Publisher{Git: ExecGitRunner{}, Out: out, Err: errOut}
}

// Publish stages the updated files, commits them with an
// "update-workflows:" message naming each file in update order, and
// pushes when requested. Returns true only if the full sequence
// succeeded. A project outside a git working tree is a warning, any
// failing git command an error; neither affects other projects.
func (p *Publisher) Publish(project Project, updatedFiles []string, push bool) bool {
	if len(updatedFiles) == 0 {
		return false
	}

	if _, err := p.Git.Run(project.Root, "rev-parse", "--git-dir"); err != nil {
		fmt.Fprintf(p.Err, "  Warning: %s is not a git repository\n", project.Root)
		return false
	}

	for _, name := range updatedFiles {
		path := filepath.Join(project.WorkflowsDir, name)
		if _, err := p.Git.Run(project.Root, "add", path); err != nil {
			fmt.Fprintf(p.Err, "  Error running git: %v\n", err)
			return false
		}
	}

	message := "update-workflows: " + strings.Join(updatedFiles, ", ")
	if _, err := p.Git.Run(project.Root, "commit", "-m", message); err != nil {
		fmt.Fprintf(p.Err, "  Error running git: %v\n", err)
		return false
	}
	fmt.Fprintf(p.Out, "  Committed: %s\n", message)

	if push {
		if _, err := p.Git.Run(project.Root, "push"); err != nil {
			fmt.Fprintf(p.Err, "  Error running git: %v\n", err)
			return false
		}
		fmt.Fprintf(p.Out, "  Pushed to remote\n")
	}

	return true
}
