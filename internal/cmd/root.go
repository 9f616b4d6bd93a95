package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/chatfmt/internal/classifier"
	"github.com/pthm/chatfmt/internal/config"
	"github.com/pthm/chatfmt/internal/profile"
	"github.com/pthm/chatfmt/internal/ui"
)

var (
	// Global flags
	verbose     bool
	format      string
	profileName string
	profileFile string

	// Set up by the root command before any subcommand runs
	globalUI   *ui.UI
	scorer     *classifier.Scorer
	userConfig *config.Config
)

// RootCmd is the chatfmt command tree
var RootCmd = &cobra.Command{
	Use:   "chatfmt",
	Short: "Detect unformatted source code in chat messages",
	Long: `chatfmt scores chat messages for how much they look like source code
and flags the ones that should have been posted inside a fenced code block.

Fenced code blocks are removed before scoring, so properly formatted
snippets never count against a message. Scoring weights and thresholds
come from profiles; list them with "chatfmt profiles".`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", profile.DefaultName, "Builtin scoring profile")
	RootCmd.PersistentFlags().StringVar(&profileFile, "profile-file", "", "Load the scoring profile from a YAML file")
}

// setup applies user defaults, then builds the UI and the scorer
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	userConfig = cfg

	if f := cmd.Flag("format"); f != nil && !f.Changed {
		format = cfg.GetStringWithFallback("defaults.format", format)
	}
	if f := cmd.Flag("profile"); f != nil && !f.Changed {
		profileName = cfg.GetStringWithFallback("defaults.profile", profileName)
	}

	if format != "terminal" && format != "json" {
		return fmt.Errorf("unsupported format %q (expected terminal or json)", format)
	}

	globalUI = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	globalUI.Verbose = verbose
	if cfg.File() != "" {
		globalUI.Verbosef("config: %s", cfg.File())
	}

	p, err := loadProfile()
	if err != nil {
		return err
	}

	scorer, err = classifier.New(p)
	if err != nil {
		return fmt.Errorf("failed to build scorer: %w", err)
	}
	globalUI.Verbosef("profile: %s (%d heuristics)", p.Name, len(p.Heuristics))
	globalUI.Verbosef("sequences: %s", strings.Join(scorer.Sequences(), " "))

	return nil
}

func loadProfile() (*profile.Profile, error) {
	if profileFile != "" {
		return profile.LoadFromFile(profileFile)
	}

	p, err := profile.Load(profileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// GetUI returns the UI configured for the running command
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
		globalUI.Verbose = verbose
	}
	return globalUI
}

// getScorer returns the scorer configured for the running command
func getScorer() *classifier.Scorer {
	if scorer == nil {
		return classifier.Default()
	}
	return scorer
}
