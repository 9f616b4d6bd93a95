package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func countingEval(text string) Evaluation {
	lines := 0
	if strings.TrimSpace(text) != "" {
		lines = len(strings.Split(text, "\n"))
	}
	return Evaluation{
		Score:        float64(strings.Count(text, ";")) / 10,
		IsCode:       strings.Count(text, ";") >= 2,
		ContentLines: lines,
	}
}

func TestPlaygroundRescoresOnInput(t *testing.T) {
	m := NewPlaygroundModel(countingEval, NewStyles(false), "default")
	if m.Current().IsCode {
		t.Fatal("empty input should not be code")
	}

	for _, r := range "a;b;" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(PlaygroundModel)
	}

	if !m.Current().IsCode {
		t.Errorf("expected code verdict after typing, got %+v", m.Current())
	}
	if !strings.Contains(m.View(), "looks like unformatted code") {
		t.Errorf("view does not show the code verdict:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(PlaygroundModel)
	if m.Current().IsCode || m.Current().Score != 0 {
		t.Errorf("expected reset evaluation, got %+v", m.Current())
	}
	if !strings.Contains(m.View(), "reads like chat") {
		t.Errorf("view does not show the chat verdict:\n%s", m.View())
	}
}

func TestPlaygroundQuits(t *testing.T) {
	m := NewPlaygroundModel(countingEval, NewStyles(false), "default")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit the playground")
	}
}

func TestRunPlaygroundNeedsTerminal(t *testing.T) {
	var out strings.Builder
	u := New(&out, &out, "terminal")
	if err := u.RunPlayground(countingEval, "default"); err == nil {
		t.Error("expected error when output is not a terminal")
	}
}
