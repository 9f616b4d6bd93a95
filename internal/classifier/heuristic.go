package classifier

import (
	"github.com/pthm/chatfmt/internal/analyzer"
)

// Heuristic is one independent code signal read from TextMetrics
type Heuristic struct {
	Name        string
	Description string
	Count       func(m analyzer.TextMetrics) int
}

// heuristics is the registry of known signals, in reporting order
var heuristics = []Heuristic{
	{
		Name:        "semicolon-line-ending",
		Description: "Lines ending with a semicolon, closing brackets allowed after it",
		Count:       func(m analyzer.TextMetrics) int { return m.StatementEndings },
	},
	{
		Name:        "semicolons",
		Description: "Semicolons anywhere",
		Count:       func(m analyzer.TextMetrics) int { return m.SemiColons },
	},
	{
		Name:        "curly-braces",
		Description: "Curly braces { }",
		Count:       func(m analyzer.TextMetrics) int { return m.CurlyBraces },
	},
	{
		Name:        "square-brackets",
		Description: "Square brackets [ ]",
		Count:       func(m analyzer.TextMetrics) int { return m.SquareBrackets },
	},
	{
		Name:        "parentheses",
		Description: "Round parentheses ( )",
		Count:       func(m analyzer.TextMetrics) int { return m.RoundParenthesis },
	},
	{
		Name:        "member-access",
		Description: "Dots followed by a non-space character (a.b.c)",
		Count:       func(m analyzer.TextMetrics) int { return m.DotsWithoutSpaceAfter },
	},
	{
		Name:        "operators",
		Description: "Operator sequences rare in prose (=>, ||, !=, ...)",
		Count:       func(m analyzer.TextMetrics) int { return m.UncommonCharacterSequences },
	},
	{
		Name:        "camel-case",
		Description: "camelCase identifiers",
		Count:       func(m analyzer.TextMetrics) int { return m.CamelCase },
	},
	{
		Name:        "underscore-case",
		Description: "snake_case identifiers",
		Count:       func(m analyzer.TextMetrics) int { return m.UnderscoreCase },
	},
	{
		Name:        "indentation",
		Description: "Lines indented with a tab or two or more spaces",
		Count:       func(m analyzer.TextMetrics) int { return m.IndentedLines },
	},
}

// Heuristics returns all known heuristics
func Heuristics() []Heuristic {
	return append([]Heuristic(nil), heuristics...)
}

// Get returns a heuristic by name
func Get(name string) (Heuristic, bool) {
	for _, h := range heuristics {
		if h.Name == name {
			return h, true
		}
	}
	return Heuristic{}, false
}
