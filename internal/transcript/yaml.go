package transcript

import (
	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML transcripts, in the same shapes as JSONParser
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFormat(path) == FormatYAML
}

// Parse parses a YAML transcript
func (p *YAMLParser) Parse(source string, content []byte) (*Transcript, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, err
	}

	var messages []Message
	if len(node.Content) > 0 {
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			if err := root.Decode(&messages); err != nil {
				return nil, err
			}
		} else {
			var doc struct {
				Messages []Message `yaml:"messages"`
			}
			if err := root.Decode(&doc); err != nil {
				return nil, err
			}
			messages = doc.Messages
		}
	}

	return &Transcript{
		Source:   source,
		Format:   FormatYAML,
		Messages: messages,
	}, nil
}
