package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/commitcraft/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/wahlandcase/commitcraft/internal/hook"

	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags "-X main.version=..."
var version = "dev"

const (
	defaultPattern = `[A-Z]+-\d+`
	defaultFormat  = "{ticket} {commit_msg}"
)

var (
	regexFlag  string
	formatFlag string
	bodyFlag   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "commitcraft <commit-msg-file>",
		Short:   "Add ticket info to commit messages based on branch name",
		Long:    "commitcraft is a git hook that extracts a ticket identifier from the\ncurrent branch name and rewrites the commit message to include it.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE:    runHook,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&regexFlag, "regex", defaultPattern,
		"Regex pattern to extract ticket from branch name")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", defaultFormat,
		"Template for the commit subject ({ticket}, {tickets}, {commit_msg})")
	rootCmd.PersistentFlags().StringVar(&bodyFlag, "body", "",
		"Template for an inserted body line ({ticket}, {tickets})")

	rootCmd.AddCommand(newInstallCmd(), newUninstallCmd(), newCheckCmd(), newUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "commitcraft error: %v\n", err)
		os.Exit(1)
	}
}

func runHook(cmd *cobra.Command, args []string) error {
	_, err := hook.Run(hook.Options{
		Filename: args[0],
		Pattern:  regexFlag,
		Format:   formatFlag,
		Body:     bodyFlag,
	})
	return err
}
