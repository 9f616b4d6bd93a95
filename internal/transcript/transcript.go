package transcript

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Message is a single chat message to classify
type Message struct {
	ID     string `json:"id" yaml:"id"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Text   string `json:"text" yaml:"text"`
}

// Transcript is an ordered list of messages read from one source
type Transcript struct {
	Source   string
	Format   Format
	Messages []Message
}

// Format represents the encoding of a transcript file
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "plain"
	}
}

// Parser defines the interface for decoding transcript files
type Parser interface {
	Parse(source string, content []byte) (*Transcript, error)
	CanParse(path string) bool
}

// Parse reads a transcript file using the parser matching its extension
func Parse(path string) (*Transcript, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	t.fillIDs()
	return t, nil
}

// ParseReader reads a single plain-text message, e.g. from stdin
func ParseReader(source string, r io.Reader) (*Transcript, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	t, err := (&PlainParser{}).Parse(source, content)
	if err != nil {
		return nil, err
	}

	t.fillIDs()
	return t, nil
}

// GetFormat returns the Format for a given path
func GetFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatPlain
	}
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFormat(path) {
	case FormatMarkdown:
		return &MarkdownParser{}
	case FormatJSON:
		return &JSONParser{}
	case FormatYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// fillIDs names messages without an ID after their source and position
func (t *Transcript) fillIDs() {
	base := filepath.Base(t.Source)
	for i := range t.Messages {
		if t.Messages[i].ID == "" {
			t.Messages[i].ID = fmt.Sprintf("%s#%d", base, i+1)
		}
	}
}
