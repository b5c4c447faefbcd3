package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/wahlandcase/commitcraft/internal/git"
	"github.com/wahlandcase/commitcraft/internal/hook"
	"github.com/wahlandcase/commitcraft/internal/ticket"
	"github.com/wahlandcase/commitcraft/internal/ui"
	"github.com/wahlandcase/commitcraft/internal/update"

	"github.com/spf13/cobra"
)

const updateRepo = "wahlandcase/commitcraft"

func newInstallCmd() *cobra.Command {
	var hookName string
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the commitcraft hook into .git/hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validHookName(hookName); err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			// Bake non-default flags into the hook script
			var hookArgs []string
			if regexFlag != defaultPattern {
				hookArgs = append(hookArgs, "--regex", regexFlag)
			}
			if formatFlag != defaultFormat {
				hookArgs = append(hookArgs, "--format", formatFlag)
			}
			if bodyFlag != "" {
				hookArgs = append(hookArgs, "--body", bodyFlag)
			}

			path, err := git.InstallHook(cwd, hookName, hookArgs, force)
			if err != nil {
				return err
			}
			fmt.Println("Installed", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&hookName, "hook", "prepare-commit-msg", "Hook to install (prepare-commit-msg or commit-msg)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing hook not managed by commitcraft")
	return cmd
}

func newUninstallCmd() *cobra.Command {
	var hookName string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the commitcraft hook from .git/hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validHookName(hookName); err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			path, err := git.UninstallHook(cwd, hookName)
			if err != nil {
				return err
			}
			fmt.Println("Removed", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&hookName, "hook", "prepare-commit-msg", "Hook to remove (prepare-commit-msg or commit-msg)")
	return cmd
}

func validHookName(name string) error {
	switch name {
	case "prepare-commit-msg", "commit-msg":
		return nil
	}
	return fmt.Errorf("unsupported hook %q (want prepare-commit-msg or commit-msg)", name)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [commit-msg-file]",
		Short: "Preview what the hook would do on the current branch",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	ui.ConfigureColors()

	re, err := ticket.Compile(regexFlag)
	if err != nil {
		return err
	}
	branch, err := git.CurrentBranch()
	if err != nil {
		return err
	}
	fmt.Println(ui.Label("Branch: ") + ui.Branch(branch))

	info := ticket.Extract(branch, re)
	if info == nil {
		fmt.Println(ui.Dim("No ticket in branch name; commit messages will be left alone"))
		return nil
	}
	fmt.Println(ui.Label("Tickets:") + " " + ui.Ticket(info.JoinedTickets()))

	if len(args) == 0 {
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read commit message: %w", err)
	}
	lines := hook.SplitLines(string(data))

	newLines, modified, err := hook.Transform(lines, branch, re, formatFlag, bodyFlag)
	if err != nil {
		return err
	}
	if !modified {
		fmt.Println(ui.Dim("Nothing to do (special commit, or message already ticketed)"))
		return nil
	}

	fmt.Println(ui.Label("Before: ") + strings.TrimRight(lines[0], "\r\n"))
	fmt.Println(ui.Label("After:  ") + ui.Subject(strings.TrimRight(newLines[0], "\n")))
	return nil
}

func newUpdateCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update commitcraft to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			release, err := update.CheckForUpdate(version, updateRepo)
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Println("Already up to date")
				return nil
			}
			fmt.Println("New version available:", update.VersionDisplay(release.TagName))
			if checkOnly {
				return nil
			}
			if err := update.DownloadAndInstall(release, updateRepo); err != nil {
				return err
			}
			fmt.Println("Updated to", update.VersionDisplay(release.TagName))
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only check whether a new version exists")
	return cmd
}
