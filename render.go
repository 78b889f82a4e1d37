package mdhtml

import "strconv"

const (
	checkboxOpen = `<input type="checkbox" disabled> `
	checkboxDone = `<input type="checkbox" checked disabled> `
)

var alignStyles = [...]string{
	AlignNone:   "",
	AlignLeft:   ` style="text-align: left"`,
	AlignCenter: ` style="text-align: center"`,
	AlignRight:  ` style="text-align: right"`,
}

// render writes tokens as HTML and returns the markup with its word count.
func (p *Parser) render(tokens []token) (string, int) {
	if len(tokens) == 0 {
		return "", 0
	}
	buf := p.buffers.get()
	words := 0
	for i := range tokens {
		tok := &tokens[i]
		switch tok.kind {
		case tokenHeading:
			buf = append(buf, "<h"...)
			buf = strconv.AppendInt(buf, int64(tok.level), 10)
			buf = append(buf, '>')
			buf = append(buf, tok.text...)
			buf = append(buf, "</h"...)
			buf = strconv.AppendInt(buf, int64(tok.level), 10)
			buf = append(buf, '>')
			words += countWords(tok.text)
		case tokenParagraph:
			buf = appendElement(buf, "<p>", tok.text, "</p>")
			words += countWords(tok.text)
		case tokenCodeBlock:
			buf = append(buf, "<pre><code"...)
			if tok.language != "" {
				buf = append(buf, ` class="language-`...)
				buf = appendEscaped(buf, tok.language)
				buf = append(buf, '"')
			}
			buf = append(buf, '>')
			buf = appendEscaped(buf, tok.code)
			buf = append(buf, "</code></pre>"...)
			words += countCodeWords(tok.code)
		case tokenList:
			var n int
			buf, n = appendList(buf, tok)
			words += n
		case tokenTable:
			var n int
			buf, n = appendTable(buf, tok)
			words += n
		case tokenBlockquote:
			buf = appendElement(buf, "<blockquote><p>", tok.text, "</p></blockquote>")
			words += countWords(tok.text)
		case tokenAlert:
			style := alertStyles[tok.alert]
			buf = append(buf, `<div class="alert alert-`...)
			buf = append(buf, style.class...)
			buf = append(buf, `"><div class="alert-icon">`...)
			buf = append(buf, style.icon...)
			buf = append(buf, `</div><div class="alert-content"><div class="alert-title">`...)
			buf = append(buf, style.title...)
			buf = append(buf, "</div>"...)
			buf = appendElement(buf, "<p>", tok.text, "</p></div></div>")
			words += countWords(tok.text)
		case tokenHorizontalRule:
			buf = append(buf, "<hr>"...)
		}
	}
	out := string(buf)
	p.buffers.put(buf)
	return out, words
}

func appendElement(buf []byte, open, text, close string) []byte {
	buf = append(buf, open...)
	buf = append(buf, text...)
	return append(buf, close...)
}

// appendList nests wrappers by diffing each item's level against the number
// of open nested lists. Deeper items open one wrapper inside the previous
// item; shallower items close as many wrappers as needed.
func appendList(buf []byte, tok *token) ([]byte, int) {
	open, close := "<ul>", "</ul>"
	if tok.ordered {
		open, close = "<ol>", "</ol>"
	}
	buf = append(buf, open...)
	if len(tok.items) == 0 {
		return append(buf, close...), 0
	}

	words := 0
	depth := 0
	for i, item := range tok.items {
		switch {
		case i == 0:
		case item.level > depth:
			for depth < item.level {
				buf = append(buf, open...)
				depth++
			}
		case item.level < depth:
			buf = append(buf, "</li>"...)
			for depth > item.level {
				buf = append(buf, close...)
				buf = append(buf, "</li>"...)
				depth--
			}
		default:
			buf = append(buf, "</li>"...)
		}
		buf = append(buf, "<li>"...)
		switch item.checked {
		case checkOpen:
			buf = append(buf, checkboxOpen...)
		case checkDone:
			buf = append(buf, checkboxDone...)
		}
		buf = append(buf, item.content...)
		words += countWords(item.content)
	}
	buf = append(buf, "</li>"...)
	for ; depth > 0; depth-- {
		buf = append(buf, close...)
		buf = append(buf, "</li>"...)
	}
	return append(buf, close...), words
}

func alignStyle(alignments []Alignment, col int) string {
	if col >= len(alignments) {
		return ""
	}
	return alignStyles[alignments[col]]
}

func appendTable(buf []byte, tok *token) ([]byte, int) {
	words := 0
	buf = append(buf, "<table><thead><tr>"...)
	for col, header := range tok.headers {
		buf = append(buf, "<th"...)
		buf = append(buf, alignStyle(tok.alignments, col)...)
		buf = appendElement(buf, ">", header, "</th>")
		words += countWords(header)
	}
	buf = append(buf, "</tr></thead>"...)
	if len(tok.rows) > 0 {
		buf = append(buf, "<tbody>"...)
		for _, row := range tok.rows {
			buf = append(buf, "<tr>"...)
			for col, cell := range row {
				buf = append(buf, "<td"...)
				buf = append(buf, alignStyle(tok.alignments, col)...)
				buf = appendElement(buf, ">", cell, "</td>")
				words += countWords(cell)
			}
			buf = append(buf, "</tr>"...)
		}
		buf = append(buf, "</tbody>"...)
	}
	return append(buf, "</table>"...), words
}

// countWords counts runs of non ASCII-whitespace bytes. Markup tags are
// skipped without acting as separators; literal '<' never reaches here
// unescaped, so every '<' opens a tag.
func countWords(text string) int {
	count := 0
	inWord := false
	inTag := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inTag:
			if c == '>' {
				inTag = false
			}
		case c == '<':
			inTag = true
		case isASCIISpace(c):
			inWord = false
		case !inWord:
			inWord = true
			count++
		}
	}
	return count
}

// countCodeWords counts words in raw code, where '<' is ordinary text.
func countCodeWords(code string) int {
	count := 0
	inWord := false
	for i := 0; i < len(code); i++ {
		if isASCIISpace(code[i]) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
