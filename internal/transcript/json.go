package transcript

import (
	"bytes"
	"encoding/json"
)

// JSONParser parses JSON transcripts: either an array of messages or an
// object with a "messages" array
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFormat(path) == FormatJSON
}

// Parse parses a JSON transcript
func (p *JSONParser) Parse(source string, content []byte) (*Transcript, error) {
	var messages []Message

	if bytes.HasPrefix(bytes.TrimSpace(content), []byte("[")) {
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, err
		}
	} else {
		var doc struct {
			Messages []Message `json:"messages"`
		}
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, err
		}
		messages = doc.Messages
	}

	return &Transcript{
		Source:   source,
		Format:   FormatJSON,
		Messages: messages,
	}, nil
}
