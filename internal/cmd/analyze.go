package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pthm/chatfmt/internal/analyzer"
	"github.com/pthm/chatfmt/internal/classifier"
	"github.com/pthm/chatfmt/internal/markdown"
)

var (
	analyzeFile string
	analyzeRaw  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Score a single chat message",
	Long: `Score one message and explain how each heuristic contributed.

The message comes from the arguments, from --file, or from stdin.

Examples:
  chatfmt analyze "const a = b.filter(x => x.ok);"
  chatfmt analyze --file message.md
  pbpaste | chatfmt analyze --format json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Read the message from a file (- for stdin)")
	analyzeCmd.Flags().BoolVar(&analyzeRaw, "raw", false, "Score the text as is, without removing fenced code blocks")
	RootCmd.AddCommand(analyzeCmd)
}

// Analysis is the outcome of the analyze command
type Analysis struct {
	Profile       string                    `json:"profile"`
	FencedBlocks  bool                      `json:"fencedBlocks"`
	Text          string                    `json:"text"`
	Result        classifier.Result         `json:"result"`
	Contributions []classifier.Contribution `json:"contributions"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	message, err := readMessage(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	a := analyzeMessage(getScorer(), message, analyzeRaw)

	u := GetUI()
	if u.IsJSON() {
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(a)
	}

	printAnalysis(u.Writer, a)
	return nil
}

// readMessage picks the message source: --file, then arguments, then stdin
func readMessage(stdin io.Reader, args []string) (string, error) {
	switch {
	case analyzeFile == "-":
		return readAll(stdin)
	case analyzeFile != "":
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("failed to read message: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return readAll(stdin)
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// analyzeMessage strips fenced code unless raw is set, then classifies
func analyzeMessage(s *classifier.Scorer, message string, raw bool) Analysis {
	text := message
	fenced := false
	if !raw {
		fenced = markdown.HasCodeBlocks(message)
		text = markdown.StripCodeBlocks(message)
	}

	r := s.Classify(text)
	return Analysis{
		Profile:       s.Profile().Name,
		FencedBlocks:  fenced,
		Text:          text,
		Result:        r,
		Contributions: s.ExplainMetrics(r.Metrics),
	}
}

func printAnalysis(w io.Writer, a Analysis) {
	s := GetUI().Styles
	m := a.Result.Metrics

	fmt.Fprintln(w, s.Header.Render("Metrics"))
	printMetrics(w, m)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("Heuristics"))
	for _, c := range a.Contributions {
		fmt.Fprintf(w, "  %-22s %4d  %s %.3f\n",
			c.Heuristic, c.Count, s.ScoreBar(c.Value, 12), c.Share)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s %.3f\n", s.Label.Render("Score:"), s.ScoreBar(a.Result.Score, 24), a.Result.Score)
	fmt.Fprintf(w, "%s %d/%d code-like (%.0f%%)\n", s.Label.Render("Lines:"),
		a.Result.CodeLines, a.Result.ContentLines, a.Result.CodeLineRatio*100)
	if a.FencedBlocks {
		fmt.Fprintln(w, s.Subheader.Render("Fenced code blocks were ignored"))
	}

	fmt.Fprintln(w)
	if a.Result.IsCode {
		color.New(color.FgYellow, color.Bold).Fprintf(w, "%s Looks like unformatted code (profile %s)\n", s.IconCode, a.Profile)
	} else {
		color.New(color.FgGreen).Fprintf(w, "%s Reads like chat (profile %s)\n", s.IconProse, a.Profile)
	}
}

func printMetrics(w io.Writer, m analyzer.TextMetrics) {
	rows := []struct {
		label string
		value interface{}
	}{
		{"characters", m.Characters},
		{"lines", m.Lines},
		{"words", m.Words},
		{"avg characters/line", fmt.Sprintf("%.1f", m.AverageCharactersPerLine)},
		{"avg words/line", fmt.Sprintf("%.1f", m.AverageWordsPerLine)},
		{"semicolons", m.SemiColons},
		{"lines ending in ;", m.SemiColonsBeforeLineEnding},
		{"statement endings", m.StatementEndings},
		{"curly braces", m.CurlyBraces},
		{"square brackets", m.SquareBrackets},
		{"parentheses", m.RoundParenthesis},
		{"dots between words", m.DotsWithoutSpaceAfter},
		{"operator sequences", m.UncommonCharacterSequences},
		{"camelCase", m.CamelCase},
		{"snake_case", m.UnderscoreCase},
		{"indented lines", m.IndentedLines},
	}

	for _, row := range rows {
		fmt.Fprintf(w, "  %-22s %v\n", row.label, row.value)
	}
}
