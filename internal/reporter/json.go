package reporter

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w       io.Writer
	profile string
	runID   string
}

// NewJSONReporter creates a new JSON reporter. Each reporter gets its own run ID.
func NewJSONReporter(w io.Writer, profile string) *JSONReporter {
	return &JSONReporter{w: w, profile: profile, runID: uuid.NewString()}
}

// RunID identifies the report produced by this reporter
func (r *JSONReporter) RunID() string {
	return r.runID
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	RunID    string        `json:"runId"`
	Profile  string        `json:"profile"`
	Messages []JSONMessage `json:"messages"`
	Summary  Summary       `json:"summary"`
}

// JSONMessage represents a classified message in JSON format
type JSONMessage struct {
	Source        string  `json:"source"`
	ID            string  `json:"id"`
	Author        string  `json:"author,omitempty"`
	Score         float64 `json:"score"`
	IsCode        bool    `json:"isCode"`
	ContentLines  int     `json:"contentLines"`
	CodeLines     int     `json:"codeLines"`
	CodeLineRatio float64 `json:"codeLineRatio"`
}

// Report outputs every entry as JSON
func (r *JSONReporter) Report(entries []Entry) error {
	output := JSONOutput{
		RunID:    r.runID,
		Profile:  r.profile,
		Messages: make([]JSONMessage, 0, len(entries)),
		Summary:  ComputeSummary(entries),
	}

	for _, e := range entries {
		output.Messages = append(output.Messages, JSONMessage{
			Source:        e.Source,
			ID:            e.Message.ID,
			Author:        e.Message.Author,
			Score:         e.Result.Score,
			IsCode:        e.Result.IsCode,
			ContentLines:  e.Result.ContentLines,
			CodeLines:     e.Result.CodeLines,
			CodeLineRatio: e.Result.CodeLineRatio,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
