package classifier

import (
	"fmt"
	"strings"

	"github.com/pthm/chatfmt/internal/analyzer"
	"github.com/pthm/chatfmt/internal/profile"
)

// term is a heuristic bound to its profile weight
type term struct {
	Heuristic
	weight float64
	scale  float64
}

// Scorer combines heuristics into a code-likelihood score.
// It is immutable after construction and safe for concurrent use.
type Scorer struct {
	profile   *profile.Profile
	extractor *analyzer.Extractor
	terms     []term
	total     float64
}

var defaultScorer = mustNew(profile.Default())

var _ Classifier = (*Scorer)(nil)

// New creates a scorer configured by p
func New(p *profile.Profile) (*Scorer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for _, name := range p.HeuristicNames() {
		if _, ok := Get(name); !ok {
			return nil, fmt.Errorf("profile %s: unknown heuristic %q", p.Name, name)
		}
	}

	s := &Scorer{
		profile:   p,
		extractor: analyzer.NewExtractor(p.Sequences),
	}
	if len(p.Sequences) == 0 {
		s.extractor = analyzer.NewExtractor(analyzer.DefaultSequences)
	}

	// Registry order keeps explanations stable across profiles
	for _, h := range heuristics {
		w, ok := p.Heuristics[h.Name]
		if !ok {
			continue
		}
		s.terms = append(s.terms, term{Heuristic: h, weight: w.Weight, scale: w.Scale})
		s.total += w.Weight
	}

	return s, nil
}

func mustNew(p *profile.Profile) *Scorer {
	s, err := New(p)
	if err != nil {
		panic(fmt.Sprintf("classifier: invalid builtin profile: %v", err))
	}
	return s
}

// Default returns the scorer for the default profile
func Default() *Scorer {
	return defaultScorer
}

// Profile returns the profile the scorer was built from
func (s *Scorer) Profile() *profile.Profile {
	return s.profile
}

// Sequences returns the operator catalog in matching order
func (s *Scorer) Sequences() []string {
	return s.extractor.Sequences()
}

// Analyze extracts metrics with the scorer's sequence catalog
func (s *Scorer) Analyze(text string) analyzer.TextMetrics {
	return s.extractor.Analyze(text)
}

// Score returns the code likelihood of text, within [0, 1]
func (s *Scorer) Score(text string) float64 {
	return s.ScoreMetrics(s.extractor.Analyze(text))
}

// ScoreMetrics combines metrics into a score. Each heuristic contributes
// weight * count/(count+scale), so every term saturates below its weight
// and never decreases as its count grows.
func (s *Scorer) ScoreMetrics(m analyzer.TextMetrics) float64 {
	if s.total <= 0 {
		return 0
	}

	sum := 0.0
	for _, t := range s.terms {
		sum += t.weight * saturate(t.Count(m), t.scale)
	}
	return clamp(sum / s.total)
}

// Explain breaks the score of text down by heuristic
func (s *Scorer) Explain(text string) []Contribution {
	return s.ExplainMetrics(s.extractor.Analyze(text))
}

// ExplainMetrics breaks the score of m down by heuristic.
// The shares add up to ScoreMetrics(m).
func (s *Scorer) ExplainMetrics(m analyzer.TextMetrics) []Contribution {
	contributions := make([]Contribution, 0, len(s.terms))
	for _, t := range s.terms {
		count := t.Count(m)
		value := saturate(count, t.scale)
		share := 0.0
		if s.total > 0 {
			share = t.weight * value / s.total
		}
		contributions = append(contributions, Contribution{
			Heuristic:   t.Name,
			Description: t.Description,
			Count:       count,
			Weight:      t.weight,
			Scale:       t.scale,
			Value:       value,
			Share:       share,
		})
	}
	return contributions
}

// IsCode reports whether text looks like unformatted code
func (s *Scorer) IsCode(text string) bool {
	return s.Classify(text).IsCode
}

// Classify scores text and each of its lines, then decides.
//
// Text with fewer than two non-blank lines is never code: a lone line is too
// ambiguous, and flagging ordinary chat is worse than missing a one-liner.
// Otherwise the text is code when enough non-blank lines are code-like on
// their own and the whole text clears the score floor.
func (s *Scorer) Classify(text string) Result {
	m := s.extractor.Analyze(text)
	r := Result{
		Metrics: m,
		Score:   s.ScoreMetrics(m),
	}

	lines := analyzer.SplitLines(text)
	r.LineScores = make([]float64, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.ContentLines++

		score := s.Score(line)
		r.LineScores[i] = score
		if score >= s.profile.LineThreshold {
			r.CodeLines++
		}
	}

	if r.ContentLines > 0 {
		r.CodeLineRatio = float64(r.CodeLines) / float64(r.ContentLines)
	}

	r.IsCode = r.ContentLines >= 2 &&
		r.CodeLineRatio >= s.profile.MinCodeLineRatio &&
		r.Score >= s.profile.MinScore

	return r
}

// Score returns the code likelihood of text using the default profile
func Score(text string) float64 {
	return defaultScorer.Score(text)
}

// IsCode reports whether text looks like code using the default profile
func IsCode(text string) bool {
	return defaultScorer.IsCode(text)
}

// Classify classifies text using the default profile
func Classify(text string) Result {
	return defaultScorer.Classify(text)
}

func saturate(count int, scale float64) float64 {
	if count <= 0 || scale <= 0 {
		return 0
	}
	c := float64(count)
	return c / (c + scale)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
