package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	ui      *UI
	program *tea.Program
	done    chan struct{}
}

// StartProgress starts the progress display if in interactive mode.
// Returns nil if not in interactive mode; all methods accept a nil receiver.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	p := tea.NewProgram(NewModel(), tea.WithOutput(ui.ErrWriter))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
		done:    make(chan struct{}),
	}

	go func() {
		// Rendering errors only affect the progress display
		_, _ = p.Run()
		close(ctrl.done)
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetOperation updates the current operation description
func (pc *ProgressController) SetOperation(op string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(OperationMsg(op))
	}
}

// SetMessageCount sets the total number of messages to classify
func (pc *ProgressController) SetMessageCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(MessageCountMsg(count))
	}
}

// MessageDone records a classified message
func (pc *ProgressController) MessageDone(flagged bool) {
	if pc != nil && pc.program != nil {
		pc.program.Send(MessageDoneMsg{Flagged: flagged})
	}
}

// Done signals that all work is complete and waits for the display to clear
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		<-pc.done
	}
}
