package loader

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitgitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

var courseListSuffixes = []string{".courses.json", ".courses.yaml", ".courses.yml"}

// isCourseList reports whether a filename ends with a course list suffix.
func isCourseList(name string) bool {
	for _, s := range courseListSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// splitRel turns a root-relative path into slash components; "." is empty.
func splitRel(rel string) []string {
	if rel == "." || rel == "" {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}

// readGitignorePatterns reads dir/.gitignore, scoping patterns to base.
func readGitignorePatterns(dir string, base []string) []gitgitignore.Pattern {
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	var patterns []gitgitignore.Pattern
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitgitignore.ParsePattern(line, base))
	}
	return patterns
}

// Discover walks root and returns the sorted paths of *.courses.json,
// *.courses.yaml and *.courses.yml files, skipping .git and anything matched
// by a .gitignore file at or below root.
func Discover(ctx context.Context, root string) ([]string, error) {
	var patterns []gitgitignore.Pattern
	var files []string
	ignored := func(comps []string, isDir bool) bool {
		if len(patterns) == 0 || len(comps) == 0 {
			return false
		}
		return gitgitignore.NewMatcher(patterns).Match(comps, isDir)
	}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		comps := splitRel(rel)
		if d.IsDir() {
			if len(comps) > 0 && d.Name() == ".git" {
				return filepath.SkipDir
			}
			if ignored(comps, true) {
				return filepath.SkipDir
			}
			patterns = append(patterns, readGitignorePatterns(p, comps)...)
			return nil
		}
		if !isCourseList(d.Name()) || ignored(comps, false) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &IOError{Path: root, Err: err}
	}
	sort.Strings(files)
	return files, nil
}
