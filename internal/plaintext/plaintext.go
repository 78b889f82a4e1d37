// Package plaintext turns rendered HTML back into readable, wrapped text.
package plaintext

import (
	"errors"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "pre": true, "li": true, "tr": true, "hr": true,
	"blockquote": true, "table": true, "ul": true, "ol": true,
}

type extractor struct {
	out       strings.Builder
	line      strings.Builder
	listDepth int
	cellIndex int
	inPre     bool
	divs      []string
}

// FromHTML returns the visible text of an HTML fragment with one block per
// line. List items are prefixed with "- ", task boxes with "[ ]" or "[x]",
// table cells are joined with " | " and images are replaced by their alt text.
func FromHTML(src string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	var e extractor
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			e.endLine()
			return strings.TrimRight(e.out.String(), "\n"), nil
		case html.TextToken:
			e.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			e.start(tok)
		case html.EndTagToken:
			name, _ := z.TagName()
			e.end(string(name))
		}
	}
}

func (e *extractor) text(s string) {
	if !e.inPre {
		e.line.WriteString(s)
		return
	}
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			e.flush()
		}
		e.line.WriteString(part)
	}
}

func (e *extractor) start(tok html.Token) {
	switch tok.Data {
	case "ul", "ol":
		e.endLine()
		e.listDepth++
	case "li":
		e.endLine()
		e.line.WriteString(strings.Repeat("  ", max(e.listDepth-1, 0)))
		e.line.WriteString("- ")
	case "tr":
		e.endLine()
		e.cellIndex = 0
	case "td", "th":
		if e.cellIndex > 0 {
			e.line.WriteString(" | ")
		}
		e.cellIndex++
	case "input":
		if attr(tok, "checked") {
			e.line.WriteString("[x]")
		} else {
			e.line.WriteString("[ ]")
		}
	case "img":
		e.line.WriteString(attrValue(tok, "alt"))
	case "hr":
		e.endLine()
		e.line.WriteString("---")
		e.endLine()
	case "pre":
		e.endLine()
		e.inPre = true
	case "div":
		class := attrValue(tok, "class")
		e.divs = append(e.divs, class)
		if strings.HasPrefix(class, "alert ") {
			e.endLine()
		}
	default:
		if blockTags[tok.Data] {
			e.endLine()
		}
	}
}

func (e *extractor) end(name string) {
	switch name {
	case "ul", "ol":
		e.endLine()
		e.listDepth = max(e.listDepth-1, 0)
	case "pre":
		e.flush()
		e.inPre = false
	case "div":
		class := ""
		if n := len(e.divs); n > 0 {
			class = e.divs[n-1]
			e.divs = e.divs[:n-1]
		}
		if class == "alert-icon" {
			e.line.WriteByte(' ')
			return
		}
		e.endLine()
	default:
		if blockTags[name] {
			e.endLine()
		}
	}
}

// endLine terminates the current line if it holds any text.
func (e *extractor) endLine() {
	if strings.TrimSpace(e.line.String()) == "" {
		e.line.Reset()
		return
	}
	e.flush()
}

func (e *extractor) flush() {
	e.out.WriteString(strings.TrimRight(e.line.String(), " "))
	e.out.WriteByte('\n')
	e.line.Reset()
}

func attr(tok html.Token, key string) bool {
	for _, a := range tok.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func attrValue(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Wrap word-wraps every line of text to width. A width of zero or less
// returns text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wordwrap.String(line, width)
	}
	return strings.Join(lines, "\n")
}
