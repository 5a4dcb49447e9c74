package workflows

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// FindProjects walks baseDir for every .github/workflows.yml at any
// depth and returns the matching project roots, sorted and
// deduplicated. A directory that has only the workflows subdirectory
// without the config file is not a project.
func FindProjects(baseDir string) ([]Project, error) {
	seen := make(map[string]bool)
	var roots []string

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal to discovery.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == "workflows.yml" && filepath.Base(filepath.Dir(path)) == ".github" {
			// Project root is two levels up from .github/workflows.yml.
			root := filepath.Dir(filepath.Dir(path))
			if !seen[root] {
				seen[root] = true
				roots = append(roots, root)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(roots)

	projects := make([]Project, 0, len(roots))
	for _, root := range roots {
		projects = append(projects, NewProject(root))
	}
	return projects, nil
}
