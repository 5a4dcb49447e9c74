package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wfsync",
	Short: "A CLI tool to keep GitHub workflow files in sync with remote templates",
	Long: `Wfsync synchronizes the workflow files of one or many projects with
canonical templates hosted in a remote actions-workflows repository.
Each project declares its bindings in .github/workflows.yml; wfsync
fetches the latest template content, rewrites stale files, and can
commit and push the result per project.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
}
