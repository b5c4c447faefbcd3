package git

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// hookMarker identifies hook scripts managed by commitcraft. Install and
// uninstall refuse to touch scripts without it.
const hookMarker = "# installed by commitcraft"

// HookScript renders the shell script written into .git/hooks. args are the
// flags baked into the hook invocation; git appends the commit-message file
// path as "$1".
func HookScript(args []string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString(hookMarker + "\n")
	b.WriteString("exec commitcraft")
	for _, a := range args {
		b.WriteString(" " + shellQuote(a))
	}
	b.WriteString(" \"$1\"\n")
	return b.String()
}

// InstallHook writes the commitcraft hook script for hookName into the
// hooks directory of the repository enclosing dir. An existing hook that
// commitcraft does not manage is only overwritten with force. Returns the
// path of the installed script.
func InstallHook(dir, hookName string, args []string, force bool) (string, error) {
	hooksDir, err := HooksDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(hooksDir, hookName)
	if data, err := os.ReadFile(path); err == nil && !force {
		if !strings.Contains(string(data), hookMarker) {
			return "", fmt.Errorf("%s hook already exists and is not managed by commitcraft (use --force to overwrite)", hookName)
		}
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", fmt.Errorf("create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(HookScript(args)), 0755); err != nil {
		return "", fmt.Errorf("write hook: %w", err)
	}
	return path, nil
}

// UninstallHook removes the commitcraft-managed hookName script from the
// repository enclosing dir. Returns the path that was removed.
func UninstallHook(dir, hookName string) (string, error) {
	hooksDir, err := HooksDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(hooksDir, hookName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no %s hook installed", hookName)
		}
		return "", err
	}
	if !strings.Contains(string(data), hookMarker) {
		return "", fmt.Errorf("%s hook is not managed by commitcraft, leaving it alone", hookName)
	}

	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("remove hook: %w", err)
	}
	return path, nil
}

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

func shellQuote(s string) string {
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
