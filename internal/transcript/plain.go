package transcript

// PlainParser treats the whole file as one message
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file
func (p *PlainParser) Parse(source string, content []byte) (*Transcript, error) {
	return &Transcript{
		Source:   source,
		Format:   FormatPlain,
		Messages: []Message{{Text: string(content)}},
	}, nil
}
