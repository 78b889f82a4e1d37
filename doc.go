// Package mdhtml renders Markdown to HTML.
//
// A document is tokenized into blocks line by line, each block's text is run
// through an inline formatter, and the blocks are written out as HTML along
// with a word count. Every call re-reads the whole document; no syntax tree
// is exposed.
//
// Core properties:
//   - Two dialects: Basic, and GFM which adds tables, alerts, strikethrough,
//     underscore emphasis and task lists
//   - Malformed input degrades to literal text instead of failing
//   - Literal text is HTML escaped; no other sanitization is done
//   - Parsers memoize inline results and reuse scratch buffers
//
// Example:
//
//	p := mdhtml.NewParser(mdhtml.WithDialect(mdhtml.GFM))
//	res := p.Parse("# Hello\n\n**Markdown** in, HTML out.\n")
//	fmt.Println(res.HTML, res.WordCount)
//
// A Parser is not safe for concurrent use. Use one per goroutine, or a Pool.
package mdhtml
