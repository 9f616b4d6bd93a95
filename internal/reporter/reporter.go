package reporter

import (
	"github.com/pthm/chatfmt/internal/classifier"
	"github.com/pthm/chatfmt/internal/transcript"
)

// Entry is one classified message
type Entry struct {
	Source  string
	Message transcript.Message
	Result  classifier.Result
}

// Reporter defines the interface for outputting classification results
type Reporter interface {
	// Report outputs the classification results
	Report(entries []Entry) error
}

// Summary holds summary statistics for a check run
type Summary struct {
	Messages  int     `json:"messages"`
	Flagged   int     `json:"flagged"`
	Sources   int     `json:"sources"`
	MeanScore float64 `json:"meanScore"`
	MaxScore  float64 `json:"maxScore"`
}

// ComputeSummary computes summary statistics from entries
func ComputeSummary(entries []Entry) Summary {
	s := Summary{
		Messages: len(entries),
	}

	sources := make(map[string]bool)
	total := 0.0
	for _, e := range entries {
		sources[e.Source] = true
		total += e.Result.Score
		if e.Result.Score > s.MaxScore {
			s.MaxScore = e.Result.Score
		}
		if e.Result.IsCode {
			s.Flagged++
		}
	}
	s.Sources = len(sources)
	if s.Messages > 0 {
		s.MeanScore = total / float64(s.Messages)
	}

	return s
}

// Flagged returns the entries classified as code, in input order
func Flagged(entries []Entry) []Entry {
	var flagged []Entry
	for _, e := range entries {
		if e.Result.IsCode {
			flagged = append(flagged, e)
		}
	}
	return flagged
}
