package workflows

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Syncer reconciles workflow files against their remote templates. Out
// receives progress lines, Err receives warnings and errors; both are
// injected so runs are testable and multi-project output stays ordered.
type Syncer struct {
	Fetcher Fetcher
	Out     io.Writer
	Err     io.Writer
}

// NewSyncer creates a Syncer writing to the given streams.
func NewSyncer(fetcher Fetcher, out, errOut io.Writer) *Syncer {
	return &Syncer{Fetcher: fetcher, Out: out, Err: errOut}
}

// UpdateFile reconciles one binding: fetch the template, compare, and
// overwrite the local file when stale. Returns true when the file was
// updated, or would be in dry-run mode. Every failure is reported and
// confined to this binding.
func (s *Syncer) UpdateFile(path, template string, dryRun bool) bool {
	ref, err := ParseTemplateRef(template)
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return false
	}
	url := ref.RawURL()

	fmt.Fprintf(s.Out, "Processing: %s\n", filepath.Base(path))
	fmt.Fprintf(s.Out, "  Template: %s\n", ref)
	fmt.Fprintf(s.Out, "  Fetching from: %s\n", url)

	content, err := s.Fetcher.Fetch(url)
	if err != nil {
		fmt.Fprintf(s.Err, "%v\n", err)
		fmt.Fprintf(s.Err, "  Failed to fetch content, skipping\n")
		return false
	}

	existing, haveExisting := "", false
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			// Treat the file as absent so the fetched content replaces it.
			fmt.Fprintf(s.Err, "  Warning: could not read existing file: %v\n", err)
		} else {
			existing, haveExisting = string(data), true
		}
	}

	if haveExisting && existing == content {
		fmt.Fprintf(s.Out, "  Already up to date\n")
		return false
	}

	if dryRun {
		fmt.Fprintf(s.Out, "  [DRY RUN] Would update %s\n", path)
		return true
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Fprintf(s.Err, "  Error writing to %s: %v\n", path, err)
		return false
	}

	fmt.Fprintf(s.Out, "  Successfully updated %s\n", path)
	return true
}

// ProcessProject reconciles every binding declared in the project's
// config file, in document order. Returns the number of changed files
// and their names in update order.
func (s *Syncer) ProcessProject(p Project, dryRun bool) (int, []string) {
	if _, err := os.Stat(p.WorkflowsDir); err != nil {
		fmt.Fprintf(s.Err, "Error: directory %s does not exist\n", p.WorkflowsDir)
		return 0, nil
	}

	source := &ConfigSource{Path: p.ConfigPath, ErrOut: s.Err}
	bindings := source.Bindings()
	if len(bindings) == 0 {
		fmt.Fprintf(s.Out, "No workflows configured in %s\n", p.ConfigPath)
		return 0, nil
	}

	fmt.Fprintf(s.Out, "Found %d workflow(s) to update\n\n", len(bindings))
	return s.reconcile(p, bindings, dryRun)
}

// ProcessComments reconciles a project using the comment-based
// discovery strategy: every workflow file in the workflows directory is
// inspected for a first-line "# owner/name" reference.
func (s *Syncer) ProcessComments(p Project, dryRun bool) (int, []string) {
	if _, err := os.Stat(p.WorkflowsDir); err != nil {
		fmt.Fprintf(s.Err, "Error: directory %s does not exist\n", p.WorkflowsDir)
		return 0, nil
	}

	files := workflowFiles(p.WorkflowsDir)
	if len(files) == 0 {
		fmt.Fprintf(s.Out, "No workflow files found in %s\n", p.WorkflowsDir)
		return 0, nil
	}

	var bindings []Binding
	for _, file := range files {
		source := &CommentSource{Path: filepath.Join(p.WorkflowsDir, file), ErrOut: s.Err}
		bindings = append(bindings, source.Bindings()...)
	}
	if len(bindings) == 0 {
		fmt.Fprintf(s.Out, "No template references found in %s\n", p.WorkflowsDir)
		return 0, nil
	}

	fmt.Fprintf(s.Out, "Found %d workflow(s) to update\n\n", len(bindings))
	return s.reconcile(p, bindings, dryRun)
}

func (s *Syncer) reconcile(p Project, bindings []Binding, dryRun bool) (int, []string) {
	updated := 0
	var updatedFiles []string
	for _, b := range bindings {
		path := filepath.Join(p.WorkflowsDir, b.FileName)
		if s.UpdateFile(path, b.Template, dryRun) {
			updated++
			updatedFiles = append(updatedFiles, b.FileName)
		}
		fmt.Fprintln(s.Out)
	}
	return updated, updatedFiles
}

// workflowFiles lists the .yml and .yaml files directly inside dir,
// sorted by name.
func workflowFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".yml" || filepath.Ext(name) == ".yaml" {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files
}
