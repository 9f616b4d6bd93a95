package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Evaluation is what the playground shows for the current input
type Evaluation struct {
	Score         float64
	IsCode        bool
	ContentLines  int
	CodeLines     int
	CodeLineRatio float64
	FencedBlocks  bool
}

// EvaluateFunc scores the playground input on every edit
type EvaluateFunc func(text string) Evaluation

// PlaygroundModel is the Bubbletea model for the interactive playground
type PlaygroundModel struct {
	input    textarea.Model
	evaluate EvaluateFunc
	styles   *Styles
	profile  string
	current  Evaluation
}

// NewPlaygroundModel creates a playground that scores input with evaluate
func NewPlaygroundModel(evaluate EvaluateFunc, styles *Styles, profile string) PlaygroundModel {
	ta := textarea.New()
	ta.Placeholder = "Paste or type a chat message..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(10)
	ta.Focus()

	return PlaygroundModel{
		input:    ta,
		evaluate: evaluate,
		styles:   styles,
		profile:  profile,
		current:  evaluate(""),
	}
}

// Init starts the cursor blink
func (m PlaygroundModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles key presses and re-scores the input
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.input.Reset()
			m.current = m.evaluate("")
			return m, nil
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 100 {
			width = 100
		}
		if width > 20 {
			m.input.SetWidth(width)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.current = m.evaluate(m.input.Value())
	return m, cmd
}

// View renders the input and the live verdict
func (m PlaygroundModel) View() string {
	var sb strings.Builder
	s := m.styles

	sb.WriteString(s.Header.Render("chatfmt playground"))
	sb.WriteString(s.Subheader.Render(fmt.Sprintf("  profile: %s", m.profile)))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	e := m.current
	sb.WriteString(fmt.Sprintf("%s %s %.3f\n", s.Label.Render("score"), s.ScoreBar(e.Score, 30), e.Score))
	sb.WriteString(fmt.Sprintf("%s %d/%d code-like lines (%.0f%%)\n",
		s.Label.Render("lines"), e.CodeLines, e.ContentLines, e.CodeLineRatio*100))

	if e.IsCode {
		sb.WriteString(s.Code.Render(s.IconCode + " looks like unformatted code"))
	} else {
		sb.WriteString(s.Prose.Render(s.IconProse + " reads like chat"))
	}
	if e.FencedBlocks {
		sb.WriteString(s.Subheader.Render("  (fenced blocks ignored)"))
	}

	sb.WriteString("\n\n")
	sb.WriteString(s.Subheader.Render("esc quit • ctrl+l clear"))
	sb.WriteString("\n")

	return sb.String()
}

// Current returns the evaluation of the current input
func (m PlaygroundModel) Current() Evaluation {
	return m.current
}

// RunPlayground runs the playground until the user quits
func (ui *UI) RunPlayground(evaluate EvaluateFunc, profile string) error {
	if !ui.IsInteractive() {
		return fmt.Errorf("the playground needs an interactive terminal")
	}

	p := tea.NewProgram(NewPlaygroundModel(evaluate, ui.Styles, profile), tea.WithOutput(ui.Writer))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playground failed: %w", err)
	}
	return nil
}
