package mdhtml

import "strings"

func isPotentialTableLine(line string) bool {
	return len(line) > 2 && strings.Contains(line, "|")
}

// splitRow strips one leading and one trailing pipe and splits on the rest.
func splitRow(line string) []string {
	row := strings.TrimSpace(line)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	return strings.Split(row, "|")
}

// isTableSeparator reports whether every non-empty cell is made of ':', '-'
// and spaces and holds at least one '-'.
func isTableSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || !strings.Contains(trimmed, "|") {
		return false
	}
	found := false
	for _, cell := range splitRow(trimmed) {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if strings.Trim(cell, ":- ") != "" || !strings.Contains(cell, "-") {
			return false
		}
		found = true
	}
	return found
}

func cellAlignment(cell string) Alignment {
	cell = strings.TrimSpace(cell)
	if !strings.Contains(cell, "-") {
		return AlignNone
	}
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return AlignCenter
	case left:
		return AlignLeft
	case right:
		return AlignRight
	}
	return AlignNone
}

// parseTable reads a header, separator and data rows. It declines when the
// second line is not a separator or the header has no content.
func (p *Parser) parseTable(lines []string, start int) (token, int, bool) {
	if start+1 >= len(lines) || !isTableSeparator(lines[start+1]) {
		return token{}, 0, false
	}

	headerCells := splitRow(lines[start])
	headers := make([]string, 0, len(headerCells))
	empty := true
	for _, cell := range headerCells {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			empty = false
		}
		headers = append(headers, p.formatInline(cell))
	}
	if empty {
		return token{}, 0, false
	}

	separatorCells := splitRow(lines[start+1])
	alignments := make([]Alignment, 0, len(separatorCells))
	for _, cell := range separatorCells {
		alignments = append(alignments, cellAlignment(cell))
	}

	tok := token{kind: tokenTable, headers: headers, alignments: alignments}
	i := start + 2
	for ; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || !strings.Contains(line, "|") {
			break
		}
		cells := splitRow(line)
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, p.formatInline(strings.TrimSpace(cell)))
		}
		tok.rows = append(tok.rows, row)
	}
	return tok, i - start, true
}
