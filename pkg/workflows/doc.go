// Package workflows implements synchronization of local GitHub Actions
// workflow files against canonical templates hosted in a remote
// actions-workflows repository.
//
// A project declares its bindings either in .github/workflows.yml (list
// or mapping format) or as a first-line comment inside each workflow
// file. Each binding is reconciled independently: the remote template
// is fetched, compared to the local file, and the file is overwritten
// only when its content is stale. Optionally the updated files are
// committed and pushed through the project's own git working tree.
package workflows
