package mdhtml

// Upper bounds on the bytes scanned while looking for a closing delimiter.
// An opener without a close inside the bound is emitted literally.
const (
	maxDoubleSpan = 300
	maxSingleSpan = 200
	maxLinkText   = 200
	maxLinkURL    = 500
)

type byteSet [256]bool

func newByteSet(chars string) byteSet {
	var s byteSet
	for i := 0; i < len(chars); i++ {
		s[chars[i]] = true
	}
	return s
}

const escapeChars = `&<>"'`

// inlineTriggers returns the bytes that force a line through the scanner.
func inlineTriggers(d Dialect) byteSet {
	chars := "*`[!" + escapeChars
	if d.Has(FeatureStrikethrough) {
		chars += "~"
	}
	if d.Has(FeatureUnderscoreEmphasis) {
		chars += "_"
	}
	return newByteSet(chars)
}

// formatInline converts one run of raw text into HTML safe inline markup.
func (p *Parser) formatInline(text string) string {
	if text == "" {
		return ""
	}
	if cached, ok := p.cache.get(text); ok {
		return cached
	}
	out := text
	if p.needsScan(text) {
		buf := p.buffers.get()
		buf = p.appendInline(buf, text)
		out = string(buf)
		p.buffers.put(buf)
	}
	p.cache.put(text, out)
	return out
}

func (p *Parser) needsScan(text string) bool {
	for i := 0; i < len(text); i++ {
		if p.triggers[text[i]] {
			return true
		}
	}
	return false
}

func (p *Parser) appendInline(buf []byte, s string) []byte {
	strike := p.dialect.Has(FeatureStrikethrough)
	underscore := p.dialect.Has(FeatureUnderscoreEmphasis)
	for i := 0; i < len(s); {
		c := s[i]
		next := byte(0)
		if i+1 < len(s) {
			next = s[i+1]
		}
		switch {
		case c == '~' && strike && next == '~':
			if end, ok := findDouble(s, i+2, '~', maxDoubleSpan); ok {
				buf = p.appendWrapped(buf, "<del>", s[i+2:end], "</del>")
				i = end + 2
				continue
			}
			buf = append(buf, "~~"...)
			i += 2
		case (c == '*' || c == '_' && underscore) && next == c:
			if end, ok := findDouble(s, i+2, c, maxDoubleSpan); ok {
				buf = p.appendWrapped(buf, "<strong>", s[i+2:end], "</strong>")
				i = end + 2
				continue
			}
			buf = append(buf, c, c)
			i += 2
		case c == '*' || c == '_' && underscore:
			if end, ok := findSingle(s, i+1, c, maxSingleSpan); ok {
				buf = p.appendWrapped(buf, "<em>", s[i+1:end], "</em>")
				i = end + 1
				continue
			}
			buf = append(buf, c)
			i++
		case c == '`':
			if end, ok := findSingle(s, i+1, '`', maxSingleSpan); ok {
				buf = append(buf, "<code>"...)
				buf = appendEscaped(buf, s[i+1:end])
				buf = append(buf, "</code>"...)
				i = end + 1
				continue
			}
			buf = append(buf, c)
			i++
		case c == '!' && next == '[':
			if alt, url, end, ok := scanLink(s, i+2); ok {
				buf = append(buf, `<img src="`...)
				buf = appendEscaped(buf, url)
				buf = append(buf, `" alt="`...)
				buf = appendEscaped(buf, alt)
				buf = append(buf, `" loading="lazy">`...)
				i = end
				continue
			}
			buf = append(buf, c)
			i++
		case c == '[':
			if text, url, end, ok := scanLink(s, i+1); ok {
				buf = append(buf, `<a href="`...)
				buf = appendEscaped(buf, url)
				buf = append(buf, `">`...)
				buf = appendEscaped(buf, text)
				buf = append(buf, "</a>"...)
				i = end
				continue
			}
			buf = append(buf, c)
			i++
		default:
			buf = appendEscapedByte(buf, c)
			i++
		}
	}
	return buf
}

// appendWrapped formats inner recursively between open and close tags.
func (p *Parser) appendWrapped(buf []byte, open, inner, close string) []byte {
	buf = append(buf, open...)
	buf = p.appendInline(buf, inner)
	return append(buf, close...)
}

// findDouble returns the index of the first dd pair at or after from.
func findDouble(s string, from int, d byte, limit int) (int, bool) {
	for j := from; j < len(s); j++ {
		if s[j] == d && j+1 < len(s) && s[j+1] == d {
			return j, true
		}
		if j-from+1 > limit {
			return 0, false
		}
	}
	return 0, false
}

func findSingle(s string, from int, d byte, limit int) (int, bool) {
	for j := from; j < len(s); j++ {
		if s[j] == d {
			return j, true
		}
		if j-from+1 > limit {
			return 0, false
		}
	}
	return 0, false
}

// scanLink parses "text](url)" starting just after the opening bracket and
// returns the index after the closing parenthesis.
func scanLink(s string, from int) (text, url string, end int, ok bool) {
	j := from
	for ; j < len(s) && s[j] != ']'; j++ {
		if j-from+1 > maxLinkText {
			return "", "", 0, false
		}
	}
	if j+1 >= len(s) || s[j+1] != '(' {
		return "", "", 0, false
	}
	text = s[from:j]
	start := j + 2
	for k := start; k < len(s); k++ {
		if s[k] == ')' {
			return text, s[start:k], k + 1, true
		}
		if k-start+1 > maxLinkURL {
			return "", "", 0, false
		}
	}
	return "", "", 0, false
}

func appendEscaped(buf []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		buf = appendEscapedByte(buf, s[i])
	}
	return buf
}

func appendEscapedByte(buf []byte, c byte) []byte {
	switch c {
	case '&':
		return append(buf, "&amp;"...)
	case '<':
		return append(buf, "&lt;"...)
	case '>':
		return append(buf, "&gt;"...)
	case '"':
		return append(buf, "&quot;"...)
	case '\'':
		return append(buf, "&#x27;"...)
	}
	return append(buf, c)
}
