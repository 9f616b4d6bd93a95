package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/pthm/chatfmt/internal/classifier"
	"github.com/pthm/chatfmt/internal/markdown"
	"github.com/pthm/chatfmt/internal/reporter"
	"github.com/pthm/chatfmt/internal/transcript"
	"github.com/pthm/chatfmt/internal/ui"
)

// transcriptGlob matches the files picked up when a directory is checked
const transcriptGlob = "**/*.{json,yaml,yml,md,markdown,txt}"

var (
	checkAll bool
	checkRaw bool
)

var checkCmd = &cobra.Command{
	Use:   "check [path|glob...]",
	Short: "Check chat transcripts for unformatted code",
	Long: `Classify every message in one or more transcripts and report the ones
that look like unformatted source code. Exits non-zero when any are found.

Transcripts are JSON or YAML message lists, markdown or plain text files.
Directories are searched recursively; "-" reads one message from stdin.

Examples:
  chatfmt check logs/
  chatfmt check "logs/**/*.json" --all
  chatfmt check --format json room.yaml > report.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkAll, "all", false, "Also list messages that read like chat")
	checkCmd.Flags().BoolVar(&checkRaw, "raw", false, "Score messages as is, without removing fenced code blocks")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	u := GetUI()
	s := getScorer()

	if f := cmd.Flag("all"); f != nil && !f.Changed && userConfig != nil {
		checkAll = userConfig.GetBool("check.all")
	}

	// Start progress tracking if in interactive mode
	progress := u.StartProgress()
	defer func() {
		progress.Done(nil)
	}()

	// Stage 1: Profile was loaded by the root command
	progress.SetStage(ui.StageLoadProfile)

	// Stage 2: Read transcripts
	progress.SetStage(ui.StageReadInputs)

	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	u.Verbosef("inputs: %d", len(paths))

	var transcripts []*transcript.Transcript
	for _, path := range paths {
		progress.SetOperation(filepath.Base(path))

		var tr *transcript.Transcript
		if path == "-" {
			tr, err = transcript.ParseReader("stdin", cmd.InOrStdin())
		} else {
			tr, err = transcript.Parse(path)
		}
		if err != nil {
			u.Warnf("skipping %s: %v", path, err)
			continue
		}
		u.Verbosef("%s: %d messages (%s)", tr.Source, len(tr.Messages), tr.Format)
		transcripts = append(transcripts, tr)
	}
	if len(transcripts) == 0 {
		return fmt.Errorf("no readable transcripts in %d inputs", len(paths))
	}

	// Stage 3: Classify messages
	progress.SetStage(ui.StageClassify)

	entries := classifyTranscripts(s, transcripts, checkRaw, progress)

	// Stop progress before reporting
	progress.Done(nil)
	progress = nil // Prevent double-done in defer

	// Stage 4: Report results
	var rep reporter.Reporter
	if u.IsJSON() {
		rep = reporter.NewJSONReporter(u.Writer, s.Profile().Name)
	} else {
		rep = reporter.NewTerminalReporter(u.Writer, u, checkAll)
	}

	if err := rep.Report(entries); err != nil {
		return err
	}

	summary := reporter.ComputeSummary(entries)
	if summary.Flagged > 0 {
		return fmt.Errorf("%d of %d messages look like unformatted code", summary.Flagged, summary.Messages)
	}
	return nil
}

// expandInputs resolves paths, directories and doublestar globs to files.
// Order follows the arguments; duplicates are dropped.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if arg == "-" {
			add(arg)
			continue
		}

		pattern := arg
		if info, err := os.Stat(arg); err == nil {
			if !info.IsDir() {
				add(arg)
				continue
			}
			pattern = filepath.Join(arg, transcriptGlob)
		} else if !hasGlobMeta(arg) {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no transcripts match %s", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// classifyTranscripts scores every message, stripping fenced code unless raw
func classifyTranscripts(s *classifier.Scorer, transcripts []*transcript.Transcript, raw bool, progress *ui.ProgressController) []reporter.Entry {
	count := 0
	for _, tr := range transcripts {
		count += len(tr.Messages)
	}
	progress.SetMessageCount(count)

	entries := make([]reporter.Entry, 0, count)
	for _, tr := range transcripts {
		for _, msg := range tr.Messages {
			text := msg.Text
			if !raw {
				text = markdown.StripCodeBlocks(text)
			}

			r := s.Classify(text)
			entries = append(entries, reporter.Entry{
				Source:  tr.Source,
				Message: msg,
				Result:  r,
			})
			progress.MessageDone(r.IsCode)
		}
	}

	return entries
}
