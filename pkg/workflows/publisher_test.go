package workflows

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGit records every git invocation and fails the configured
// subcommand.
type recordingGit struct {
	calls  [][]string
	dirs   []string
	failOn string
}

func (g *recordingGit) Run(dir string, args ...string) (string, error) {
	g.calls = append(g.calls, args)
	g.dirs = append(g.dirs, dir)
	if g.failOn != "" && args[0] == g.failOn {
		return "boom", &GitError{Args: args, Output: "boom", Cause: assert.AnError}
	}
	return "", nil
}

func newTestPublisher(git *recordingGit) (*Publisher, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &Publisher{Git: git, Out: out, Err: errOut}, out, errOut
}

func TestPublisher_Publish(t *testing.T) {
	git := &recordingGit{}
	publisher, out, _ := newTestPublisher(git)
	project := NewProject("/work/proj")

	ok := publisher.Publish(project, []string{"test.yml", "publish.yml"}, false)

	assert.True(t, ok)
	require.Len(t, git.calls, 4)
	assert.Equal(t, []string{"rev-parse", "--git-dir"}, git.calls[0])
	assert.Equal(t, []string{"add", filepath.Join(project.WorkflowsDir, "test.yml")}, git.calls[1])
	assert.Equal(t, []string{"add", filepath.Join(project.WorkflowsDir, "publish.yml")}, git.calls[2])
	assert.Equal(t, []string{"commit", "-m", "update-workflows: test.yml, publish.yml"}, git.calls[3])
	for _, dir := range git.dirs {
		assert.Equal(t, "/work/proj", dir, "every git command runs in the project root")
	}
	assert.Contains(t, out.String(), "Committed: update-workflows: test.yml, publish.yml")
}

func TestPublisher_Publish_Push(t *testing.T) {
	git := &recordingGit{}
	publisher, out, _ := newTestPublisher(git)

	ok := publisher.Publish(NewProject("/work/proj"), []string{"test.yml"}, true)

	assert.True(t, ok)
	require.Len(t, git.calls, 4)
	assert.Equal(t, []string{"push"}, git.calls[3])
	assert.Contains(t, out.String(), "Pushed to remote")
}

func TestPublisher_Publish_EmptyFileList(t *testing.T) {
	git := &recordingGit{}
	publisher, _, _ := newTestPublisher(git)

	ok := publisher.Publish(NewProject("/work/proj"), nil, true)

	assert.False(t, ok)
	assert.Empty(t, git.calls, "no git command runs without updated files")
}

func TestPublisher_Publish_NotARepository(t *testing.T) {
	git := &recordingGit{failOn: "rev-parse"}
	publisher, _, errOut := newTestPublisher(git)

	ok := publisher.Publish(NewProject("/work/proj"), []string{"test.yml"}, false)

	assert.False(t, ok)
	assert.Len(t, git.calls, 1)
	assert.Contains(t, errOut.String(), "is not a git repository")
}

func TestPublisher_Publish_CommitFailureAbortsPush(t *testing.T) {
	git := &recordingGit{failOn: "commit"}
	publisher, _, errOut := newTestPublisher(git)

	ok := publisher.Publish(NewProject("/work/proj"), []string{"test.yml"}, true)

	assert.False(t, ok)
	assert.Contains(t, errOut.String(), "Error running git")
	for _, call := range git.calls {
		assert.NotEqual(t, "push", call[0])
	}
}

func TestPublisher_Publish_AddFailureAbortsCommit(t *testing.T) {
	git := &recordingGit{failOn: "add"}
	publisher, _, errOut := newTestPublisher(git)

	ok := publisher.Publish(NewProject("/work/proj"), []string{"a.yml", "b.yml"}, false)

	assert.False(t, ok)
	assert.Len(t, git.calls, 2, "first failing add aborts the sequence")
	assert.Contains(t, errOut.String(), "Error running git")
}
