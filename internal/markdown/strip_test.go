package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeBlocks(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "empty",
			message:  "",
			expected: "",
		},
		{
			name:     "plain sentence",
			message:  "This quick brown dog runs over the lazy fox",
			expected: "This quick brown dog runs over the lazy fox",
		},
		{
			name:     "soft line breaks kept",
			message:  "line one\nline two\nline three",
			expected: "line one\nline two\nline three",
		},
		{
			name: "fenced block between paragraphs",
			message: "This is line one and it is not code.\n" +
				"Ditto for the second line.\n" +
				"```\n" +
				"this.isAProperly(formatted => line(of, code))\n" +
				"```\n" +
				"Final line.",
			expected: "This is line one and it is not code.\n" +
				"Ditto for the second line.\n" +
				"Final line.",
		},
		{
			name:     "fenced block with info string",
			message:  "Here:\n\n```ts\nconst a = 1;\n```\n\nThanks!",
			expected: "Here:\nThanks!",
		},
		{
			name:     "tilde fence",
			message:  "~~~\nfoo();\n~~~\nafter",
			expected: "after",
		},
		{
			name:     "only code",
			message:  "```\nfoo();\nbar();\n```",
			expected: "",
		},
		{
			name:     "unclosed fence runs to the end",
			message:  "before\n```\ncode();\nmore();",
			expected: "before",
		},
		{
			name:     "indented code block",
			message:  "Look:\n\n    x := 1\n    y := 2\n\nok",
			expected: "Look:\nok",
		},
		{
			name:     "inline code text kept",
			message:  "use `fmt.Println` here",
			expected: "use fmt.Println here",
		},
		{
			name:     "emphasis and links flattened",
			message:  "this is **bold** and a [link](https://example.com)",
			expected: "this is bold and a link",
		},
		{
			name:     "list items",
			message:  "- item one\n- item two",
			expected: "item one\nitem two",
		},
		{
			name:     "heading and quote",
			message:  "# Title\n\n> quoted text",
			expected: "Title\nquoted text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeBlocks(tt.message))
		})
	}
}

func TestStripCodeBlocksKeepsUnfencedCode(t *testing.T) {
	msg := "const tokens = marked.lexer(message);\n" +
		"const strippedTokens = tokens.filter(token => token.type != 'code');"

	assert.Equal(t, msg, StripCodeBlocks(msg))
}

func TestHasCodeBlocks(t *testing.T) {
	assert.True(t, HasCodeBlocks("text\n```\ncode\n```"))
	assert.True(t, HasCodeBlocks("text\n\n    indented code"))
	assert.False(t, HasCodeBlocks("just `inline` code"))
	assert.False(t, HasCodeBlocks(""))
}
