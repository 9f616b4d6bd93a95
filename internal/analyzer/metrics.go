package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextMetrics contains structural and lexical measurements of a text fragment
type TextMetrics struct {
	Characters               int     `json:"characters"`
	Words                    int     `json:"words"`
	Lines                    int     `json:"lines"`
	CharactersPerLine        []int   `json:"charactersPerLine"`
	AverageCharactersPerLine float64 `json:"averageCharactersPerLine"`
	WordsPerLine             []int   `json:"wordsPerLine"`
	AverageWordsPerLine      float64 `json:"averageWordsPerLine"`

	SemiColons                 int `json:"semiColons"`
	SemiColonsBeforeLineEnding int `json:"semiColonsBeforeLineEnding"`

	// StatementEndings counts lines whose last semicolon is followed only by
	// brackets, arrow or comparison characters and whitespace ("foo();", "run(); }")
	StatementEndings int `json:"statementEndings"`

	CurlyBraces      int `json:"curlyBraces"`
	SquareBrackets   int `json:"squareBrackets"`
	RoundParenthesis int `json:"roundParenthesis"`

	DotsWithoutSpaceAfter      int `json:"dotsWithoutSpaceAfter"`
	UncommonCharacterSequences int `json:"uncommonCharacterSequences"`

	CamelCase      int `json:"camelCase"`
	UnderscoreCase int `json:"underscoreCase"`
	IndentedLines  int `json:"indentedLines"`
}

// DefaultSequences is the catalog of operator-like sequences that are rare in prose
var DefaultSequences = []string{
	"===", "!==",
	"=>", "->",
	"||", "&&",
	"+=", "-=", "*=", "/=",
	"!=", "==", "<=", ">=",
	"::", "</", "/>",
}

var (
	identifierPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)
	camelCasePattern  = regexp.MustCompile(`^[a-z][a-z0-9]*[A-Z]`)
	snakeCasePattern  = regexp.MustCompile(`^_*[A-Za-z][A-Za-z0-9]*(_[A-Za-z0-9]+)+_*$`)
)

// Extractor computes TextMetrics. It holds only immutable configuration and
// may be shared between goroutines.
type Extractor struct {
	sequences []string
}

var defaultExtractor = NewExtractor(DefaultSequences)

// NewExtractor creates an extractor matching the given sequence catalog.
// Empty entries are ignored; longer sequences win over their prefixes.
func NewExtractor(sequences []string) *Extractor {
	seqs := make([]string, 0, len(sequences))
	for _, s := range sequences {
		if s != "" {
			seqs = append(seqs, s)
		}
	}
	sort.SliceStable(seqs, func(i, j int) bool {
		return len(seqs[i]) > len(seqs[j])
	})
	return &Extractor{sequences: seqs}
}

// Sequences returns a copy of the catalog in matching order
func (e *Extractor) Sequences() []string {
	return append([]string(nil), e.sequences...)
}

// Analyze computes metrics for text using the default sequence catalog
func Analyze(text string) TextMetrics {
	return defaultExtractor.Analyze(text)
}

// Analyze computes metrics for text
func (e *Extractor) Analyze(text string) TextMetrics {
	lines := SplitLines(text)

	m := TextMetrics{
		Characters:        utf8.RuneCountInString(text) - strings.Count(text, "\r\n"),
		Lines:             len(lines),
		CharactersPerLine: make([]int, len(lines)),
		WordsPerLine:      make([]int, len(lines)),
	}

	totalLineChars := 0
	for i, line := range lines {
		chars := utf8.RuneCountInString(line)
		words := len(strings.Fields(line))

		m.CharactersPerLine[i] = chars
		m.WordsPerLine[i] = words
		m.Words += words
		totalLineChars += chars

		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if strings.HasSuffix(trimmed, ";") {
			m.SemiColonsBeforeLineEnding++
		}
		if endsStatement(trimmed) {
			m.StatementEndings++
		}
		if trimmed != "" && (strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "  ")) {
			m.IndentedLines++
		}
	}

	m.AverageCharactersPerLine = float64(totalLineChars) / float64(m.Lines)
	m.AverageWordsPerLine = float64(m.Words) / float64(m.Lines)

	countPunctuation(text, &m)
	m.UncommonCharacterSequences = e.countSequences(text)
	m.CamelCase, m.UnderscoreCase = countIdentifierCasing(text)

	return m
}

// SplitLines splits text on newlines. A text without newlines is one line,
// and a trailing newline produces a trailing empty line. The "\r" of a CRLF
// ending belongs to the line break, not to the line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// statementTail holds what may follow the last semicolon of a statement line
const statementTail = " \t)]}{=>"

func endsStatement(line string) bool {
	i := strings.LastIndexByte(line, ';')
	if i < 0 {
		return false
	}
	return strings.Trim(line[i+1:], statementTail) == ""
}

func countPunctuation(text string, m *TextMetrics) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ';':
			m.SemiColons++
		case '{', '}':
			m.CurlyBraces++
		case '[', ']':
			m.SquareBrackets++
		case '(', ')':
			m.RoundParenthesis++
		case '.':
			if i+1 < len(text) {
				next, _ := utf8.DecodeRuneInString(text[i+1:])
				if !unicode.IsSpace(next) {
					m.DotsWithoutSpaceAfter++
				}
			}
		}
	}
}

// countSequences scans left to right; a matched sequence consumes its characters.
func (e *Extractor) countSequences(text string) int {
	count := 0
	for i := 0; i < len(text); {
		matched := 0
		for _, seq := range e.sequences {
			if strings.HasPrefix(text[i:], seq) {
				matched = len(seq)
				break
			}
		}
		if matched > 0 {
			count++
			i += matched
			continue
		}
		i++
	}
	return count
}

func countIdentifierCasing(text string) (camel, snake int) {
	for _, ident := range identifierPattern.FindAllString(text, -1) {
		if camelCasePattern.MatchString(ident) {
			camel++
		}
		if snakeCasePattern.MatchString(ident) {
			snake++
		}
	}
	return camel, snake
}
