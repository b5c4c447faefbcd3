package hook

import (
	"fmt"
	"os"
	"strings"

	"github.com/wahlandcase/commitcraft/internal/git"
	"github.com/wahlandcase/commitcraft/internal/ticket"
)

// Options configures a single hook invocation.
type Options struct {
	// Filename is the commit-message file path git passes to the hook.
	Filename string
	// Pattern extracts tickets from the branch name (compiled case-insensitively).
	Pattern string
	// Format is the subject template ({ticket}, {tickets}, {commit_msg}).
	Format string
	// Body, when non-empty, is the body template ({ticket}, {tickets}).
	Body string

	// BranchName overrides branch resolution; used by tests.
	BranchName func() (string, error)
}

// Run executes the whole hook pipeline: resolve the branch, read the
// commit-message file, rewrite the message and write it back. The file is
// only written when the message actually changed and all formatting
// succeeded. Reports whether the file was modified.
func Run(opts Options) (bool, error) {
	re, err := ticket.Compile(opts.Pattern)
	if err != nil {
		return false, err
	}

	resolve := opts.BranchName
	if resolve == nil {
		resolve = git.CurrentBranch
	}
	branch, err := resolve()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(opts.Filename)
	if err != nil {
		return false, fmt.Errorf("read commit message: %w", err)
	}

	newLines, modified, err := Transform(SplitLines(string(data)), branch, re, opts.Format, opts.Body)
	if err != nil || !modified {
		return false, err
	}

	if err := os.WriteFile(opts.Filename, []byte(strings.Join(newLines, "")), 0644); err != nil {
		return false, fmt.Errorf("write commit message: %w", err)
	}
	return true, nil
}

// SplitLines splits text into lines, keeping each line's terminator so the
// untouched parts of the message round-trip byte for byte.
func SplitLines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
