// Package markdown removes code blocks from chat messages so that only the
// prose a user typed outside of them reaches the classifier.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// StripCodeBlocks returns the plain text of message with fenced and indented
// code blocks removed. Inline markup is dropped but the text of inline code
// spans, links and emphasis is kept. Blocks are joined by a single newline.
func StripCodeBlocks(message string) string {
	source := []byte(message)
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil

		case ast.KindParagraph, ast.KindTextBlock, ast.KindHeading:
			if s := inlineText(n, source); s != "" {
				blocks = append(blocks, s)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n")
}

// HasCodeBlocks reports whether message contains a fenced or indented code block
func HasCodeBlocks(message string) bool {
	source := []byte(message)
	doc := md.Parser().Parse(text.NewReader(source))

	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Kind() == ast.KindFencedCodeBlock || n.Kind() == ast.KindCodeBlock {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return found
}

// inlineText flattens the inline children of a leaf block
func inlineText(block ast.Node, source []byte) string {
	var sb strings.Builder

	_ = ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(source))
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimRight(sb.String(), "\n")
}
