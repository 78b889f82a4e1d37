package mdhtml

// Result is the outcome of a parse call.
type Result struct {
	HTML      string `json:"html"`
	WordCount int    `json:"word_count"`
	// Error is reserved for catastrophic failures and is currently never set.
	Error string `json:"error,omitempty"`
}

// Parser converts Markdown documents to HTML. A Parser owns a memoization
// cache and a scratch buffer pool that persist across calls; it is not safe
// for concurrent use. Use one Parser per goroutine or a Pool.
type Parser struct {
	dialect          Dialect
	stripFrontMatter bool
	triggers         byteSet

	cache   inlineCache
	buffers bufferPool
}

// NewParser creates a Parser. The default dialect is GFM.
func NewParser(opts ...Option) *Parser {
	return newParser(buildConfig(opts))
}

func newParser(cfg parserConfig) *Parser {
	return &Parser{
		dialect:          cfg.dialect,
		stripFrontMatter: cfg.stripFrontMatter,
		triggers:         inlineTriggers(cfg.dialect),
		cache:            newInlineCache(cfg.cacheLimit),
		buffers:          newBufferPool(),
	}
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Parse renders markdown to HTML and counts its words.
func (p *Parser) Parse(markdown string) Result {
	if markdown == "" {
		return Result{}
	}
	if p.stripFrontMatter {
		markdown = stripFrontMatter(markdown)
	}
	html, words := p.render(p.tokenize(markdown))
	return Result{HTML: html, WordCount: words}
}

// ParseBytes validates src with ValidateInput before parsing it.
func (p *Parser) ParseBytes(src []byte) (Result, error) {
	if err := ValidateInput(src); err != nil {
		return Result{}, err
	}
	return p.Parse(string(src)), nil
}

// Reset drops memoized inline results. Output is unaffected.
func (p *Parser) Reset() {
	p.cache.clear()
}

// Parse renders markdown with a fresh Parser configured by opts.
func Parse(markdown string, opts ...Option) Result {
	return NewParser(opts...).Parse(markdown)
}

// ParseBasic renders markdown with the basic dialect.
func ParseBasic(markdown string) Result {
	return Parse(markdown, WithDialect(Basic))
}

// ParseGFM renders markdown with the extended dialect.
func ParseGFM(markdown string) Result {
	return Parse(markdown, WithDialect(GFM))
}
