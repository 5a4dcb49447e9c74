package workflows

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultWorkflowsDir is the workflows directory relative to a
	// project root.
	DefaultWorkflowsDir = ".github/workflows"

	// DefaultConfigPath is the binding configuration file relative to a
	// project root.
	DefaultConfigPath = ".github/workflows.yml"

	// TemplateRepository is the repository name that hosts workflow
	// templates for every owner.
	TemplateRepository = "actions-workflows"

	// TemplateBranch is the branch templates are fetched from.
	TemplateBranch = "main"
)

// Binding associates a local workflow filename with the raw template
// reference that should populate it. The reference is kept unparsed so
// a malformed entry fails its own reconciliation without invalidating
// the rest of the binding set.
type Binding struct {
	FileName string
	Template string
}

// Project is one directory tree to reconcile. All paths are absolute;
// every filesystem and git operation stays inside Root.
type Project struct {
	Root         string
	WorkflowsDir string
	ConfigPath   string
}

// NewProject resolves the default workflows directory and config path
// under root.
func NewProject(root string) Project {
	return Project{
		Root:         root,
		WorkflowsDir: filepath.Join(root, filepath.FromSlash(DefaultWorkflowsDir)),
		ConfigPath:   filepath.Join(root, filepath.FromSlash(DefaultConfigPath)),
	}
}

// Options is the immutable per-run configuration resolved from CLI
// input.
type Options struct {
	DryRun       bool
	All          bool
	Commit       bool
	Push         bool
	FromComments bool
	WorkflowsDir string
}

// Validate enforces flag interdependencies. Push implies Commit, which
// the caller applies before validation; DryRun is mutually exclusive
// with Commit and Push.
func (o Options) Validate() error {
	if o.DryRun && (o.Commit || o.Push) {
		return fmt.Errorf("cannot use --commit or --push with --dry-run")
	}
	if o.All && o.WorkflowsDir != "" {
		return fmt.Errorf("cannot use --workflows-dir with --all")
	}
	if o.All && o.FromComments {
		return fmt.Errorf("cannot use --from-comments with --all")
	}
	return nil
}

// NormalizeFileName appends a .yml suffix to filenames that carry
// neither .yml nor .yaml.
func NormalizeFileName(name string) string {
	if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
		return name
	}
	return name + ".yml"
}
