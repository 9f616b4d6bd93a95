package profile

import (
	"fmt"
	"sort"
)

// Profile holds the scoring configuration for the code classifier:
// heuristic weights, decision thresholds and the operator sequence catalog.
// A Profile is treated as read-only once loaded.
type Profile struct {
	// Name is the identifier for this profile (e.g., "default", "sensitive")
	Name string `yaml:"name"`

	// Description explains when to use the profile
	Description string `yaml:"description"`

	// LineThreshold is the score a single line needs to count as code-like
	LineThreshold float64 `yaml:"line_threshold"`

	// MinCodeLineRatio is the share of non-blank lines that must be code-like
	MinCodeLineRatio float64 `yaml:"min_code_line_ratio"`

	// MinScore is the floor for the score of the whole text
	MinScore float64 `yaml:"min_score"`

	// Heuristics maps heuristic names to their weight and saturation scale
	Heuristics map[string]Weight `yaml:"heuristics"`

	// Sequences is the catalog of operator-like character sequences
	Sequences []string `yaml:"sequences"`
}

// Weight configures one heuristic term
type Weight struct {
	// Weight is the relative importance of the term
	Weight float64 `yaml:"weight"`

	// Scale is the count at which the term reaches half saturation
	Scale float64 `yaml:"scale"`
}

// Validate checks thresholds and weights
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}

	thresholds := []struct {
		key   string
		value float64
	}{
		{"line_threshold", p.LineThreshold},
		{"min_code_line_ratio", p.MinCodeLineRatio},
		{"min_score", p.MinScore},
	}
	for _, th := range thresholds {
		if th.value < 0 || th.value > 1 {
			return fmt.Errorf("profile %s: %s must be within [0, 1], got %v", p.Name, th.key, th.value)
		}
	}

	if len(p.Heuristics) == 0 {
		return fmt.Errorf("profile %s: no heuristics configured", p.Name)
	}

	total := 0.0
	for _, name := range p.HeuristicNames() {
		w := p.Heuristics[name]
		if w.Weight < 0 {
			return fmt.Errorf("profile %s: heuristic %s has negative weight %v", p.Name, name, w.Weight)
		}
		if w.Scale <= 0 {
			return fmt.Errorf("profile %s: heuristic %s needs a positive scale, got %v", p.Name, name, w.Scale)
		}
		total += w.Weight
	}
	if total == 0 {
		return fmt.Errorf("profile %s: all heuristic weights are zero", p.Name)
	}

	return nil
}

// HeuristicNames returns the configured heuristic names in sorted order
func (p *Profile) HeuristicNames() []string {
	names := make([]string, 0, len(p.Heuristics))
	for name := range p.Heuristics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
