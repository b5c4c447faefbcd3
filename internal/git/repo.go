package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from dir to the root of the enclosing repository
func FindRepoRoot(dir string) (string, error) {
	path := dir
	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", fmt.Errorf("%s is not inside a git repository", dir)
		}
		path = parent
	}
}

// HooksDir returns the hooks directory of the repository enclosing dir.
// Worktrees and submodules keep a gitdir pointer file instead of a .git
// directory; the pointer is followed.
func HooksDir(dir string) (string, error) {
	root, err := FindRepoRoot(dir)
	if err != nil {
		return "", err
	}

	gitDir := filepath.Join(root, ".git")
	fi, err := os.Stat(gitDir)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		data, err := os.ReadFile(gitDir)
		if err != nil {
			return "", err
		}
		target := strings.TrimSpace(strings.TrimPrefix(string(data), "gitdir:"))
		if target == "" {
			return "", fmt.Errorf("unreadable gitdir pointer in %s", gitDir)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(root, target)
		}
		gitDir = target
	}

	return filepath.Join(gitDir, "hooks"), nil
}
