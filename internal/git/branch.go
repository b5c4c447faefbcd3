package git

import (
	"errors"
	"os/exec"
	"strings"
)

// BranchError indicates the current branch could not be resolved
type BranchError struct {
	Output string
}

func (e *BranchError) Error() string {
	return "resolve branch: " + e.Output
}

// CurrentBranch returns the short name of the checked-out branch by asking
// the git CLI, so the answer matches what the repository's hooks see.
func CurrentBranch() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		msg := err.Error()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				msg = stderr
			}
		}
		return "", &BranchError{Output: msg}
	}
	return strings.TrimSpace(string(out)), nil
}
