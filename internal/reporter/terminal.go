package reporter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pthm/chatfmt/internal/ui"
)

// previewWidth caps the message preview printed under each entry
const previewWidth = 72

// TerminalReporter outputs results to the terminal with styles
type TerminalReporter struct {
	w       io.Writer
	ui      *ui.UI
	showAll bool
}

// NewTerminalReporter creates a new terminal reporter.
// With showAll set, messages that read like chat are listed too.
func NewTerminalReporter(w io.Writer, u *ui.UI, showAll bool) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u, showAll: showAll}
}

// Report outputs entries grouped by source, in input order
func (r *TerminalReporter) Report(entries []Entry) error {
	s := r.ui.Styles

	shown := entries
	if !r.showAll {
		shown = Flagged(entries)
	}

	if len(shown) == 0 {
		fmt.Fprintln(r.w, s.Success.Render(s.IconSuccess+" No unformatted code found"))
		r.printSummary(entries)
		return nil
	}

	// Group by source, keeping first-seen order
	var sources []string
	bySource := make(map[string][]Entry)
	for _, e := range shown {
		if _, ok := bySource[e.Source]; !ok {
			sources = append(sources, e.Source)
		}
		bySource[e.Source] = append(bySource[e.Source], e)
	}

	for _, source := range sources {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render(filepath.Base(source)))
		fmt.Fprintln(r.w, s.Path.Render("  "+source))

		for _, e := range bySource[source] {
			r.printEntry(e)
		}
	}

	r.printSummary(entries)
	return nil
}

func (r *TerminalReporter) printEntry(e Entry) {
	s := r.ui.Styles

	icon, style := s.IconProse, s.Prose
	if e.Result.IsCode {
		icon, style = s.IconCode, s.Code
	}

	who := ""
	if e.Message.Author != "" {
		who = " @" + e.Message.Author
	}

	fmt.Fprintf(r.w, "  %s %s%s %s %.2f %s\n",
		style.Render(icon),
		e.Message.ID,
		s.Label.Render(who),
		s.ScoreBar(e.Result.Score, 10),
		e.Result.Score,
		s.Subheader.Render(fmt.Sprintf("[%d/%d lines]", e.Result.CodeLines, e.Result.ContentLines)),
	)

	if preview := Preview(e.Message.Text, previewWidth); preview != "" {
		fmt.Fprintln(r.w, s.Subheader.Render("    > "+preview))
	}
}

func (r *TerminalReporter) printSummary(entries []Entry) {
	s := r.ui.Styles
	summary := ComputeSummary(entries)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render(strings.Repeat("─", 37)))

	flagged := fmt.Sprintf("%d flagged", summary.Flagged)
	if summary.Flagged > 0 {
		flagged = s.Code.Render(flagged)
	} else {
		flagged = s.Success.Render(flagged)
	}

	fmt.Fprintf(r.w, "Checked %d messages in %d sources: %s, mean score %.2f\n",
		summary.Messages, summary.Sources, flagged, summary.MeanScore)
}

// Preview returns the first non-blank line of text, cut to width runes
func Preview(text string, width int) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if width > 0 && len(runes) > width {
			return string(runes[:width-1]) + "…"
		}
		return line
	}
	return ""
}
