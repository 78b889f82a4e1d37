package mdhtml

import (
	"strings"
	"unicode"
)

var alertTags = map[string]AlertKind{
	"[!NOTE]":      AlertNote,
	"[!TIP]":       AlertTip,
	"[!IMPORTANT]": AlertImportant,
	"[!WARNING]":   AlertWarning,
	"[!CAUTION]":   AlertCaution,
}

type alertStyle struct {
	class string
	icon  string
	title string
}

var alertStyles = [...]alertStyle{
	AlertNote:      {class: "note", icon: "ℹ️", title: "Note"},
	AlertTip:       {class: "tip", icon: "💡", title: "Tip"},
	AlertImportant: {class: "important", icon: "❗", title: "Important"},
	AlertWarning:   {class: "warning", icon: "⚠️", title: "Warning"},
	AlertCaution:   {class: "caution", icon: "⛔", title: "Caution"},
}

// String returns the alert title.
func (k AlertKind) String() string {
	if int(k) < len(alertStyles) {
		return alertStyles[k].title
	}
	return "Alert"
}

// alertStart matches quoted text beginning with a recognized [!KIND] tag and
// returns the kind and the text after the tag.
func alertStart(quoted string) (AlertKind, string, bool) {
	if !strings.HasPrefix(quoted, "[!") {
		return 0, "", false
	}
	end := strings.IndexByte(quoted, ']')
	if end < 0 {
		return 0, "", false
	}
	kind, ok := alertTags[quoted[:end+1]]
	if !ok {
		return 0, "", false
	}
	return kind, quoted[end+1:], true
}

// parseAlert consumes an alert and its "> " continuation lines. It stops at
// a blank line, a line outside the quote, or the start of another alert.
func (p *Parser) parseAlert(lines []string, start int) (token, int, bool) {
	quoted, ok := blockquoteText(trimRight(lines[start]))
	if !ok {
		return token{}, 0, false
	}
	kind, rest, ok := alertStart(quoted)
	if !ok {
		return token{}, 0, false
	}

	var content strings.Builder
	if rest = strings.TrimSpace(rest); rest != "" {
		content.WriteString(p.formatInline(rest))
	}
	i := start + 1
	for ; i < len(lines); i++ {
		line := trimRight(lines[i])
		if isBlank(line) {
			break
		}
		quoted, ok := continuationText(line)
		if !ok {
			break
		}
		if _, _, another := alertStart(quoted); another {
			break
		}
		if quoted = strings.TrimSpace(quoted); quoted == "" {
			continue
		}
		if content.Len() > 0 {
			content.WriteByte(' ')
		}
		content.WriteString(p.formatInline(quoted))
	}
	return token{kind: tokenAlert, alert: kind, text: content.String()}, i - start, true
}

// continuationText accepts "> text" and a bare ">" inside an alert.
func continuationText(line string) (string, bool) {
	if quoted, ok := blockquoteText(line); ok {
		return quoted, true
	}
	if strings.TrimLeftFunc(line, unicode.IsSpace) == ">" {
		return "", true
	}
	return "", false
}
