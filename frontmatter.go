package mdhtml

import "strings"

var frontMatterDelimiters = [...]string{"---", "+++", ";;;"}

// stripFrontMatter drops a leading front matter block. The block must open
// with a delimiter line, continue with a line that looks like metadata and be
// closed by the same delimiter; anything else is returned unchanged.
func stripFrontMatter(doc string) string {
	body := strings.TrimPrefix(doc, "\ufeff")
	openLine, rest, ok := cutLine(body)
	if !ok {
		return doc
	}
	delim, ok := openingDelimiter(openLine)
	if !ok {
		return doc
	}
	metaLine, _, ok := cutLine(rest)
	if !ok || !metadataLikely(metaLine) {
		return doc
	}
	for remaining := rest; remaining != ""; {
		line, next, _ := cutLine(remaining)
		if strings.TrimSpace(line) == delim {
			return next
		}
		remaining = next
	}
	return doc
}

// cutLine splits off the first line, without its line ending.
func cutLine(s string) (line, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	line, rest, found := strings.Cut(s, "\n")
	if !found {
		rest = ""
	}
	return strings.TrimSuffix(line, "\r"), rest, true
}

func openingDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, d := range frontMatterDelimiters {
		if trimmed == d {
			return d, true
		}
	}
	return "", false
}

func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
