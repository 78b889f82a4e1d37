package mdhtml

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func renderHTML(t *testing.T, d Dialect, src string) string {
	t.Helper()
	return NewParser(WithDialect(d)).Parse(src).HTML
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()
	for _, d := range []Dialect{Basic, GFM} {
		res := NewParser(WithDialect(d)).Parse("")
		if res != (Result{}) {
			t.Fatalf("%s: expected zero result for empty input, got %+v", d.Name(), res)
		}
	}
}

func TestParseWhitespaceOnly(t *testing.T) {
	t.Parallel()
	res := ParseGFM("\n  \n\t\n")
	if res.HTML != "" || res.WordCount != 0 {
		t.Fatalf("expected empty output, got %+v", res)
	}
}

func TestParseHeadings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "h1", src: "# Title", want: "<h1>Title</h1>"},
		{name: "h6", src: "###### Deep", want: "<h6>Deep</h6>"},
		{name: "seven hashes", src: "####### Too deep", want: "<p>####### Too deep</p>"},
		{name: "no space", src: "#tag", want: "<p>#tag</p>"},
		{name: "bare hash", src: "#", want: "<p>#</p>"},
		{name: "inline", src: "## A *b*", want: "<h2>A <em>b</em></h2>"},
		{name: "trailing space", src: "### spaced   ", want: "<h3>spaced</h3>"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, d := range []Dialect{Basic, GFM} {
				if got := renderHTML(t, d, tc.src); got != tc.want {
					t.Fatalf("%s: got %q, want %q", d.Name(), got, tc.want)
				}
			}
		})
	}
}

func TestParseBlocksWithoutSeparators(t *testing.T) {
	t.Parallel()
	src := "# Title\n\nFirst paragraph.\n\n---\n\n```sh\necho hi\n```\n"
	want := `<h1>Title</h1><p>First paragraph.</p><hr><pre><code class="language-sh">echo hi</code></pre>`
	if got := renderHTML(t, GFM, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseHorizontalRules(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"---", "***", "-----", "  ***  "} {
		if got := renderHTML(t, GFM, src); got != "<hr>" {
			t.Fatalf("%q: got %q", src, got)
		}
	}
	if got := renderHTML(t, GFM, "-*-"); got != "<p>-*-</p>" {
		t.Fatalf("mixed rule characters: got %q", got)
	}
}

func TestParseCRLF(t *testing.T) {
	t.Parallel()
	got := renderHTML(t, GFM, "# Title\r\n\r\nbody\r\n")
	if got != "<h1>Title</h1><p>body</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestParseBlockquotePerLine(t *testing.T) {
	t.Parallel()
	got := renderHTML(t, GFM, "> one\n> *two*")
	want := "<blockquote><p>one</p></blockquote><blockquote><p><em>two</em></p></blockquote>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := renderHTML(t, GFM, ">tight"); got != "<p>&gt;tight</p>" {
		t.Fatalf("quote without space: got %q", got)
	}
}

func TestParseFunctions(t *testing.T) {
	t.Parallel()
	src := "~~x~~"
	if got := ParseBasic(src).HTML; got != "<p>~~x~~</p>" {
		t.Fatalf("ParseBasic: got %q", got)
	}
	if got := ParseGFM(src).HTML; got != "<p><del>x</del></p>" {
		t.Fatalf("ParseGFM: got %q", got)
	}
	if got := Parse(src).HTML; got != "<p><del>x</del></p>" {
		t.Fatalf("Parse default dialect: got %q", got)
	}
}

func TestParseNeverSetsError(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"```", "|", "| |\n|-|", "> [!NOTE", "[", "![", "**", "- ", "1. ",
		strings.Repeat("*", 1000), strings.Repeat("[a](", 300),
	}
	for _, src := range inputs {
		if res := ParseGFM(src); res.Error != "" {
			t.Fatalf("%q: unexpected error %q", src, res.Error)
		}
	}
}

func TestParseBytesValidates(t *testing.T) {
	t.Parallel()
	p := NewParser()
	res, err := p.ParseBytes([]byte("**ok**"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if res.HTML != "<p><strong>ok</strong></p>" || res.WordCount != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, err := p.ParseBytes([]byte{'a', 0xff}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestParseStripFrontMatterOption(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Post\n---\n# Hello\n"
	if got := NewParser(WithStripFrontMatter(true)).Parse(src).HTML; got != "<h1>Hello</h1>" {
		t.Fatalf("stripped: got %q", got)
	}
	want := "<hr><p>title: Post</p><hr><h1>Hello</h1>"
	if got := NewParser().Parse(src).HTML; got != want {
		t.Fatalf("unstripped: got %q, want %q", got, want)
	}
}

func TestParseResetKeepsOutput(t *testing.T) {
	t.Parallel()
	p := NewParser()
	src := "**a** [b](c) `d`\n\n- e\n- f"
	before := p.Parse(src)
	p.Reset()
	if p.cache.len() != 0 {
		t.Fatalf("expected empty cache after Reset, got %d entries", p.cache.len())
	}
	if after := p.Parse(src); after != before {
		t.Fatalf("output changed after Reset: %+v vs %+v", after, before)
	}
}

// TestParseOutputIsBalanced feeds rendered samples through an HTML
// tokenizer and checks that every element is closed in order.
func TestParseOutputIsBalanced(t *testing.T) {
	t.Parallel()
	src, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	inputs := map[string]string{
		"sample":  string(src),
		"nesting": "- a\n  - b\n    - c\n- d\n  - e\n1. x\n   1. y\n",
		"stairs":  "- a\n        - b\n  - c\n- d",
		"dedent":  "    - a\n  - b\n- c",
		"broken":  "**a *b [c](d `e",
	}
	for name, doc := range inputs {
		for _, d := range []Dialect{Basic, GFM} {
			assertBalanced(t, name+"/"+d.Name(), renderHTML(t, d, doc))
		}
	}
}

var voidElements = map[string]bool{"hr": true, "img": true, "input": true, "br": true}

func assertBalanced(t *testing.T, name, doc string) {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(doc))
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				t.Fatalf("%s: tokenize: %v", name, err)
			}
			if len(stack) != 0 {
				t.Fatalf("%s: unclosed elements %v in %q", name, stack, doc)
			}
			return
		case html.StartTagToken:
			tag, _ := z.TagName()
			if !voidElements[string(tag)] {
				stack = append(stack, string(tag))
			}
		case html.EndTagToken:
			tag, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(tag) {
				t.Fatalf("%s: unexpected </%s> with open %v in %q", name, tag, stack, doc)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
