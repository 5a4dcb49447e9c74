package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wfsync/pkg/workflows"
)

var (
	syncDryRun       bool
	syncAll          bool
	syncCommit       bool
	syncPush         bool
	syncFromComments bool
	syncWorkflowsDir string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update workflow files from their remote templates",
	Long: `Update the workflow files of the current project (or, with --all, of
every project below the current directory) from the templates they are
bound to.

Bindings live in .github/workflows.yml, either as a list of references:

  - username/test
  - username/publish

or as a mapping from local filename to reference:

  test: username/test
  publish: username/other-workflow

Each reference owner/name resolves to the file name.yml on the main
branch of the owner's actions-workflows repository. With
--from-comments the bindings are instead read from a first-line
"# owner/name" comment inside each workflow file.

Examples:
  # Preview what would change in the current project
  wfsync sync --dry-run

  # Update every project below the current directory and commit each
  wfsync sync --all --commit

  # Update, commit and push the current project
  wfsync sync --push`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would be updated without making changes")
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "Find and process all projects with .github/workflows.yml in the current directory and subdirectories")
	syncCmd.Flags().BoolVar(&syncCommit, "commit", false, "Commit changes with an auto-generated message")
	syncCmd.Flags().BoolVar(&syncPush, "push", false, "Push committed changes (implies --commit)")
	syncCmd.Flags().BoolVar(&syncFromComments, "from-comments", false, "Discover bindings from first-line comments instead of the config file (single-project mode only)")
	syncCmd.Flags().StringVar(&syncWorkflowsDir, "workflows-dir", "", "Override the workflows directory (single-project mode only)")
}

func runSync(_ *cobra.Command, _ []string) error {
	opts := workflows.Options{
		DryRun:       syncDryRun,
		All:          syncAll,
		Commit:       syncCommit,
		Push:         syncPush,
		FromComments: syncFromComments,
		WorkflowsDir: syncWorkflowsDir,
	}
	if opts.Push {
		opts.Commit = true
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	syncer := workflows.NewSyncer(workflows.NewHTTPFetcher(), os.Stdout, os.Stderr)
	publisher := workflows.NewPublisher(os.Stdout, os.Stderr)

	if opts.All {
		return syncAllProjects(opts, baseDir, syncer, publisher)
	}
	return syncSingleProject(opts, baseDir, syncer, publisher)
}

// syncSingleProject reconciles the project at baseDir. Nothing changed
// is an error so the process exits non-zero.
func syncSingleProject(opts workflows.Options, baseDir string, syncer *workflows.Syncer, publisher *workflows.Publisher) error {
	project := workflows.NewProject(baseDir)
	if opts.WorkflowsDir != "" {
		dir := opts.WorkflowsDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		project.WorkflowsDir = dir
	}

	if _, err := os.Stat(project.WorkflowsDir); err != nil {
		return fmt.Errorf("directory %s does not exist", project.WorkflowsDir)
	}

	var updated int
	var updatedFiles []string
	if opts.FromComments {
		updated, updatedFiles = syncer.ProcessComments(project, opts.DryRun)
	} else {
		source := &workflows.ConfigSource{Path: project.ConfigPath, ErrOut: syncer.Err}
		if len(source.Bindings()) == 0 {
			return fmt.Errorf("no workflows configured in %s", project.ConfigPath)
		}
		updated, updatedFiles = syncer.ProcessProject(project, opts.DryRun)
	}

	fmt.Fprintf(syncer.Out, "%s %d file(s)\n", updateVerb(opts.DryRun), updated)

	if opts.Commit && !opts.DryRun && updated > 0 {
		publisher.Publish(project, updatedFiles, opts.Push)
	}

	if updated == 0 {
		return fmt.Errorf("no files were updated")
	}
	return nil
}

// syncAllProjects discovers and reconciles every project below baseDir,
// publishing each project's changes immediately after processing it.
func syncAllProjects(opts workflows.Options, baseDir string, syncer *workflows.Syncer, publisher *workflows.Publisher) error {
	projects, err := workflows.FindProjects(baseDir)
	if err != nil {
		return fmt.Errorf("failed to discover projects: %w", err)
	}
	if len(projects) == 0 {
		return fmt.Errorf("no projects with %s found", workflows.DefaultConfigPath)
	}

	fmt.Fprintf(syncer.Out, "Found %d project(s) with workflow configs\n\n", len(projects))

	totalUpdated := 0
	for _, project := range projects {
		fmt.Fprintf(syncer.Out, "=== Processing: %s ===\n", filepath.Base(project.Root))
		fmt.Fprintf(syncer.Out, "Path: %s\n\n", project.Root)

		updated, updatedFiles := syncer.ProcessProject(project, opts.DryRun)

		if updated > 0 {
			fmt.Fprintf(syncer.Out, "%s %d file(s) in %s\n", updateVerb(opts.DryRun), updated, filepath.Base(project.Root))
			totalUpdated += updated

			if opts.Commit && !opts.DryRun {
				publisher.Publish(project, updatedFiles, opts.Push)
			}
		} else {
			fmt.Fprintf(syncer.Out, "No files to update in %s\n", filepath.Base(project.Root))
		}

		fmt.Fprintf(syncer.Out, "\n%s\n\n", strings.Repeat("=", 60))
	}

	fmt.Fprintf(syncer.Out, "Total: %s %d file(s) across %d project(s)\n", updateVerb(opts.DryRun), totalUpdated, len(projects))

	if totalUpdated == 0 {
		return fmt.Errorf("no files were updated")
	}
	return nil
}

func updateVerb(dryRun bool) string {
	if dryRun {
		return "Would update"
	}
	return "Updated"
}
