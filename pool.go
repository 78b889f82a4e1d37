package mdhtml

import "sync"

// Pool hands out Parsers sharing one configuration. Unlike a Parser, a Pool
// is safe for concurrent use; each call borrows a parser for its duration.
type Pool struct {
	cfg     parserConfig
	parsers sync.Pool
}

// NewPool creates a Pool whose parsers are configured by opts.
func NewPool(opts ...Option) *Pool {
	p := &Pool{cfg: buildConfig(opts)}
	p.parsers.New = func() any {
		return newParser(p.cfg)
	}
	return p
}

// Parse renders markdown with a pooled Parser.
func (p *Pool) Parse(markdown string) Result {
	parser := p.parsers.Get().(*Parser)
	defer p.parsers.Put(parser)
	return parser.Parse(markdown)
}

// ParseBytes validates and renders src with a pooled Parser.
func (p *Pool) ParseBytes(src []byte) (Result, error) {
	parser := p.parsers.Get().(*Parser)
	defer p.parsers.Put(parser)
	return parser.ParseBytes(src)
}
