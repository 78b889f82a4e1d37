package mdhtml

import (
	"sort"
	"strings"
)

// Feature is a single extension of the basic Markdown subset.
type Feature uint8

const (
	// FeatureTables enables pipe tables with a separator row.
	FeatureTables Feature = 1 << iota
	// FeatureAlerts enables "> [!NOTE]" style callouts.
	FeatureAlerts
	// FeatureStrikethrough enables ~~deleted~~ spans.
	FeatureStrikethrough
	// FeatureUnderscoreEmphasis enables _em_ and __strong__.
	FeatureUnderscoreEmphasis
	// FeatureTaskLists enables [ ] and [x] list item checkboxes.
	FeatureTaskLists
)

// FeaturesGFM is the full extended feature set.
const FeaturesGFM = FeatureTables | FeatureAlerts | FeatureStrikethrough | FeatureUnderscoreEmphasis | FeatureTaskLists

// Dialect is a named feature set selecting which constructs are recognized.
type Dialect struct {
	name     string
	features Feature
}

// NewDialect returns a Dialect with the given name and features.
func NewDialect(name string, features Feature) Dialect {
	return Dialect{name: name, features: features}
}

// Name returns the dialect name.
func (d Dialect) Name() string { return d.name }

// Features returns the dialect feature set.
func (d Dialect) Features() Feature { return d.features }

// Has reports whether every feature in f is enabled.
func (d Dialect) Has(f Feature) bool { return d.features&f == f }

var (
	// Basic recognizes headings, paragraphs, code, lists, blockquotes, rules and
	// the asterisk/backtick/link inline set.
	Basic = Dialect{name: "basic"}
	// GFM adds tables, alerts, strikethrough, underscore emphasis and task lists.
	GFM = Dialect{name: "gfm", features: FeaturesGFM}
)

var builtinDialects = map[string]Dialect{
	"basic":    Basic,
	"gfm":      GFM,
	"extended": GFM,
}

// AvailableDialects returns the names of built-in dialects.
func AvailableDialects() []string {
	names := make([]string, 0, len(builtinDialects))
	for name := range builtinDialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DialectByName returns a built-in dialect by name.
func DialectByName(name string) (Dialect, bool) {
	if name == "" {
		return DefaultDialect(), true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	d, ok := builtinDialects[normalized]
	return d, ok
}

// DefaultDialect returns the extended dialect.
func DefaultDialect() Dialect {
	return GFM
}
