package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	gogithub "github.com/google/go-github/v66/github"
	"github.com/spf13/cobra"

	"wfsync/pkg/config"
	"wfsync/pkg/workflows"
)

var listCmd = &cobra.Command{
	Use:   "list [owner]",
	Short: "List the workflow templates an owner publishes",
	Long: `List the workflow templates available in the owner's
actions-workflows repository on its default branch. Each listed name
can be used as owner/name in a project's .github/workflows.yml.

When the owner argument is omitted it is read from github.owner in
~/.wfsync/config.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(_ *cobra.Command, args []string) error {
	owner := ""
	if len(args) == 1 {
		owner = args[0]
	} else {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load wfsync config: %w", err)
		}
		owner = cfg.GitHub.Owner
	}
	if owner == "" {
		return fmt.Errorf("template owner not specified: pass an owner argument or set github.owner in config")
	}

	client := gogithub.NewClient(nil)
	opts := &gogithub.RepositoryContentGetOptions{Ref: workflows.TemplateBranch}
	_, contents, _, err := client.Repositories.GetContents(context.Background(), owner, workflows.TemplateRepository, "", opts)
	if err != nil {
		return fmt.Errorf("failed to list templates for %s: %w", owner, err)
	}

	count := 0
	for _, entry := range contents {
		if entry.GetType() != "file" {
			continue
		}
		name := entry.GetName()
		if !strings.HasSuffix(name, ".yml") && !strings.HasSuffix(name, ".yaml") {
			continue
		}
		template := strings.TrimSuffix(strings.TrimSuffix(name, ".yml"), ".yaml")
		fmt.Fprintf(os.Stdout, "%s/%s\n", owner, template)
		count++
	}

	if count == 0 {
		return fmt.Errorf("no workflow templates found in %s/%s", owner, workflows.TemplateRepository)
	}
	return nil
}
