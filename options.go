package mdhtml

// DefaultCacheLimit is the number of memoized inline results kept per parser.
const DefaultCacheLimit = 256

// Option configures a Parser.
type Option func(*parserConfig)

type parserConfig struct {
	dialect          Dialect
	cacheLimit       int
	stripFrontMatter bool
}

func defaultConfig() parserConfig {
	return parserConfig{
		dialect:    DefaultDialect(),
		cacheLimit: DefaultCacheLimit,
	}
}

func buildConfig(opts []Option) parserConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDialect selects the recognized Markdown constructs.
func WithDialect(d Dialect) Option {
	return func(cfg *parserConfig) {
		cfg.dialect = d
	}
}

// WithCacheLimit bounds the inline memoization cache. Zero or less disables it.
func WithCacheLimit(n int) Option {
	return func(cfg *parserConfig) {
		if n < 0 {
			n = 0
		}
		cfg.cacheLimit = n
	}
}

// WithStripFrontMatter drops a leading YAML, TOML or JSON front matter block.
func WithStripFrontMatter(enabled bool) Option {
	return func(cfg *parserConfig) {
		cfg.stripFrontMatter = enabled
	}
}
