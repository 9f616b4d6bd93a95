package classifier

import (
	"github.com/pthm/chatfmt/internal/analyzer"
)

// Classifier decides whether a message looks like unformatted source code.
// Input text must already have its fenced code blocks removed.
type Classifier interface {
	// Classify scores the text and returns the decision with its evidence
	Classify(text string) Result
}

// Result holds everything that went into a classification
type Result struct {
	Metrics analyzer.TextMetrics `json:"metrics"`

	// Score is the code likelihood of the whole text, within [0, 1]
	Score float64 `json:"score"`

	// LineScores holds the score of each line; blank lines score 0
	LineScores []float64 `json:"lineScores"`

	ContentLines  int     `json:"contentLines"`  // Non-blank lines
	CodeLines     int     `json:"codeLines"`     // Non-blank lines at or above the line threshold
	CodeLineRatio float64 `json:"codeLineRatio"` // CodeLines / ContentLines

	IsCode bool `json:"isCode"`
}

// Contribution explains how one heuristic affected a score
type Contribution struct {
	Heuristic   string  `json:"heuristic"`
	Description string  `json:"description"`
	Count       int     `json:"count"`
	Weight      float64 `json:"weight"`
	Scale       float64 `json:"scale"`
	Value       float64 `json:"value"` // Saturated term, within [0, 1)
	Share       float64 `json:"share"` // Weighted part of the final score
}
