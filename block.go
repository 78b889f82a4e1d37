package mdhtml

import (
	"strings"
	"unicode"
)

const codeFence = "```"

// tokenize splits document into block tokens. Each rule either consumes one
// or more lines or declines, in which case the next rule sees the same line.
func (p *Parser) tokenize(document string) []token {
	lines := splitLines(document)
	tokens := make([]token, 0, len(document)/50+1)
	for i := 0; i < len(lines); {
		line := trimRight(lines[i])
		if isBlank(line) {
			i++
			continue
		}

		if strings.HasPrefix(line, codeFence) {
			tok, consumed := parseCodeBlock(lines, i)
			tokens = append(tokens, tok)
			i += consumed
			continue
		}

		if level, text, ok := parseHeading(line); ok {
			tokens = append(tokens, token{kind: tokenHeading, level: level, text: p.formatInline(text)})
			i++
			continue
		}

		if p.dialect.Has(FeatureTables) && isPotentialTableLine(line) {
			if tok, consumed, ok := p.parseTable(lines, i); ok {
				tokens = append(tokens, tok)
				i += consumed
				continue
			}
		}

		if isHorizontalRule(line) {
			tokens = append(tokens, token{kind: tokenHorizontalRule})
			i++
			continue
		}

		if isListLine(line) {
			tok, consumed := p.parseList(lines, i)
			tokens = append(tokens, tok)
			i += consumed
			continue
		}

		if quoted, ok := blockquoteText(line); ok {
			if p.dialect.Has(FeatureAlerts) {
				if tok, consumed, ok := p.parseAlert(lines, i); ok {
					tokens = append(tokens, tok)
					i += consumed
					continue
				}
			}
			tokens = append(tokens, token{kind: tokenBlockquote, text: p.formatInline(quoted)})
			i++
			continue
		}

		tokens = append(tokens, token{kind: tokenParagraph, text: p.formatInline(strings.TrimSpace(line))})
		i++
	}
	return tokens
}

// splitLines splits on '\n', drops a trailing '\r' from each line and does
// not yield an empty final line for a document ending in a newline.
func splitLines(document string) []string {
	document = strings.TrimSuffix(document, "\n")
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// parseCodeBlock consumes a fenced block. An unterminated fence runs to the
// end of the document.
func parseCodeBlock(lines []string, start int) (token, int) {
	tok := token{kind: tokenCodeBlock}
	tok.language = strings.TrimSpace(strings.TrimPrefix(trimRight(lines[start]), codeFence))

	end := len(lines)
	consumed := len(lines) - start
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == codeFence {
			end = i
			consumed = i - start + 1
			break
		}
	}
	tok.code = strings.Join(lines[start+1:end], "\n")
	return tok, consumed
}

// parseHeading accepts 1 to 6 '#' followed by a space and non-empty text.
func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(line[level:])
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}

// isHorizontalRule reports three or more identical '-' or '*' characters.
func isHorizontalRule(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	first := trimmed[0]
	if first != '-' && first != '*' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != first {
			return false
		}
	}
	return true
}

func blockquoteText(line string) (string, bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "> ") {
		return "", false
	}
	return trimmed[2:], true
}
