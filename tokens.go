package mdhtml

// token is one block of the document. Text fields hold inline formatted,
// HTML safe markup; code holds raw text that is escaped when rendered.
type token struct {
	kind tokenKind

	level    int
	text     string
	language string
	code     string

	items   []listItem
	ordered bool

	headers    []string
	rows       [][]string
	alignments []Alignment

	alert AlertKind
}

type tokenKind uint8

const (
	tokenHeading tokenKind = iota
	tokenParagraph
	tokenCodeBlock
	tokenList
	tokenTable
	tokenBlockquote
	tokenAlert
	tokenHorizontalRule
)

var tokenKindNames = [...]string{
	tokenHeading:        "heading",
	tokenParagraph:      "paragraph",
	tokenCodeBlock:      "code",
	tokenList:           "list",
	tokenTable:          "table",
	tokenBlockquote:     "blockquote",
	tokenAlert:          "alert",
	tokenHorizontalRule: "hr",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// listItem is a single entry of a list run. level is relative to the first
// item and never exceeds the previous item's level by more than one.
type listItem struct {
	content string
	level   int
	checked checkState
}

type checkState uint8

const (
	checkNone checkState = iota
	checkOpen
	checkDone
)

// Alignment is the column alignment of a table.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// AlertKind identifies a callout type.
type AlertKind uint8

const (
	AlertNote AlertKind = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)
