package mdhtml

import "strings"

const (
	maxListLevel   = 20
	maxOrdinalLen  = 4
	tabIndentWidth = 4
)

// isListLine reports an unordered marker ("- ", "* ", "+ ") or a 1 to 4
// digit ordinal followed by ". ".
func isListLine(line string) bool {
	_, ok := listItemContent(line)
	return ok
}

// listItemContent returns the text after the list marker.
func listItemContent(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) >= 2 && trimmed[1] == ' ' {
		switch trimmed[0] {
		case '-', '*', '+':
			return trimmed[2:], true
		}
	}
	digits := 0
	for digits < len(trimmed) && digits <= maxOrdinalLen && isDigit(trimmed[digits]) {
		digits++
	}
	if digits == 0 || digits > maxOrdinalLen {
		return "", false
	}
	if !strings.HasPrefix(trimmed[digits:], ". ") {
		return "", false
	}
	return trimmed[digits+2:], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// indentLevel counts leading indentation (tab = 4 spaces) in steps of two.
func indentLevel(line string) int {
	width := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += tabIndentWidth
		default:
			return min(width/2, maxListLevel)
		}
	}
	return min(width/2, maxListLevel)
}

// parseList consumes list lines and blank lines starting at start. The list
// kind is taken from the first line only.
func (p *Parser) parseList(lines []string, start int) (token, int) {
	first := lines[start]
	tok := token{
		kind:    tokenList,
		ordered: isDigit(strings.TrimLeft(first, " \t")[0]),
	}
	base := indentLevel(first)
	tasks := p.dialect.Has(FeatureTaskLists)

	prev := -1
	i := start
	for ; i < len(lines); i++ {
		line := trimRight(lines[i])
		if isBlank(line) {
			continue
		}
		content, ok := listItemContent(line)
		if !ok {
			break
		}
		level := max(indentLevel(line)-base, 0)
		if level > prev+1 {
			level = prev + 1
		}
		prev = level

		item := listItem{level: level}
		content = strings.TrimSpace(content)
		if tasks {
			item.checked, content = taskMarker(content)
		}
		item.content = p.formatInline(strings.TrimSpace(content))
		tok.items = append(tok.items, item)
	}
	return tok, i - start
}

// taskMarker strips a leading "[ ]", "[x]" or "[X]".
func taskMarker(content string) (checkState, string) {
	if len(content) < 3 || content[0] != '[' || content[2] != ']' {
		return checkNone, content
	}
	switch content[1] {
	case ' ':
		return checkOpen, content[3:]
	case 'x', 'X':
		return checkDone, content[3:]
	}
	return checkNone, content
}
