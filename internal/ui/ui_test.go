package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDetectMode(t *testing.T) {
	var buf bytes.Buffer

	if got := New(&buf, &buf, "json").Mode; got != OutputModeJSON {
		t.Errorf("json format: Mode = %v, want %v", got, OutputModeJSON)
	}
	if got := New(&buf, &buf, "terminal").Mode; got != OutputModePlain {
		t.Errorf("buffer output: Mode = %v, want %v", got, OutputModePlain)
	}
}

func TestScoreBar(t *testing.T) {
	s := NewStyles(false)

	tests := []struct {
		value float64
		width int
		want  string
	}{
		{0, 4, "...."},
		{1, 4, "####"},
		{0.5, 4, "##.."},
		{0.6, 10, "######...."},
		{-1, 3, "..."},
		{2, 3, "###"},
		{0.5, 0, ""},
	}

	for _, tt := range tests {
		if got := s.ScoreBar(tt.value, tt.width); got != tt.want {
			t.Errorf("ScoreBar(%v, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}

func TestVerbosefAndWarnf(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, "terminal")

	u.Verbosef("hidden %d", 1)
	if errOut.Len() != 0 {
		t.Errorf("Verbosef wrote without verbose: %q", errOut.String())
	}

	u.Verbose = true
	u.Verbosef("shown %d", 2)
	u.Warnf("careful %s", "now")

	got := errOut.String()
	if !strings.Contains(got, "shown 2") {
		t.Errorf("missing verbose line in %q", got)
	}
	if !strings.Contains(got, "WARN: careful now") {
		t.Errorf("missing warning in %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("diagnostics leaked to stdout: %q", out.String())
	}
}

func TestProgressControllerNilSafe(t *testing.T) {
	var buf bytes.Buffer
	pc := New(&buf, &buf, "terminal").StartProgress()
	if pc != nil {
		t.Fatal("expected no progress display without a terminal")
	}

	pc.SetStage(StageClassify)
	pc.SetOperation("room.json")
	pc.SetMessageCount(3)
	pc.MessageDone(true)
	pc.Done(nil)
}

func TestModelCountsMessages(t *testing.T) {
	var m tea.Model = NewModel()

	for _, msg := range []tea.Msg{
		StageMsg(StageClassify),
		MessageCountMsg(3),
		MessageDoneMsg{Flagged: true},
		MessageDoneMsg{},
	} {
		m, _ = m.Update(msg)
	}

	view := m.View()
	if !strings.Contains(view, "Classified 2/3 messages, 1 look like code") {
		t.Errorf("unexpected view %q", view)
	}

	m, cmd := m.Update(DoneMsg{})
	if cmd == nil || m.View() != "" {
		t.Error("expected the model to quit and clear on DoneMsg")
	}
}
