package transcript

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// MarkdownParser reads a markdown file as one message. Optional YAML
// frontmatter may carry the message id and author.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFormat(path) == FormatMarkdown
}

// Parse parses a markdown message file
func (p *MarkdownParser) Parse(source string, content []byte) (*Transcript, error) {
	frontmatter, body := ParseFrontmatter(content)

	msg := Message{Text: string(body)}
	if frontmatter != nil {
		if id, ok := frontmatter["id"]; ok {
			msg.ID = toString(id)
		}
		if author, ok := frontmatter["author"]; ok {
			msg.Author = toString(author)
		}
	}

	return &Transcript{
		Source:   source,
		Format:   FormatMarkdown,
		Messages: []Message{msg},
	}, nil
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		out, err := yaml.Marshal(val)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	}
}
