package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
	"pkt.systems/mdhtml/internal/config"
	"pkt.systems/mdhtml/internal/logger"
	"pkt.systems/mdhtml/internal/plaintext"
	"pkt.systems/version"
)

const defaultTitle = "Document"

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	dialect          string
	listDialects     bool
	outPath          string
	standalone       bool
	title            string
	stylesheet       string
	text             bool
	width            int
	stripFrontMatter bool
	stats            bool
	configPath       string
	verbose          bool
	showVersion      bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdhtml", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.dialect, "dialect", "d", mdhtml.DefaultDialect().Name(), "Markdown dialect (see --list-dialects)")
	flags.BoolVar(&opts.listDialects, "list-dialects", false, "List available dialects")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.standalone, "standalone", "s", false, "Wrap the output in a complete HTML document")
	flags.StringVar(&opts.title, "title", defaultTitle, "Document title for --standalone")
	flags.StringVar(&opts.stylesheet, "css", "", "Stylesheet URL linked from --standalone output")
	flags.BoolVar(&opts.text, "text", false, "Emit wrapped plain text instead of HTML")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width for --text (0 uses terminal width if available)")
	flags.BoolVar(&opts.stripFrontMatter, "strip-front-matter", false, "Drop leading YAML/TOML/JSON front matter")
	flags.BoolVar(&opts.stats, "stats", false, "Print the word count to stderr")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default "+config.Path()+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s) URLs. If none is given, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listDialects {
		printDialects(stdout)
		return 0
	}

	log := logger.New(stderr, opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	if err := applyFlags(cfg, flags, opts); err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		printDialects(stderr)
		return 2
	}
	log.ConfigLoaded(configSource(opts.configPath), cfg.Dialect)

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	source := inputName(flags.Args())
	log.InputRead(source, len(src))

	parser := mdhtml.NewParser(cfg.ParserOptions()...)
	start := time.Now()
	res, err := parser.ParseBytes(src)
	if err != nil {
		log.InputRejected(source, err)
		return 1
	}
	log.Rendered(parser.Dialect().Name(), res.WordCount, len(res.HTML), time.Since(start))

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	switch {
	case opts.text:
		text, err := plaintext.FromHTML(res.HTML)
		if err != nil {
			fmt.Fprintf(stderr, "extract text: %v\n", err)
			return 1
		}
		width := cfg.Width
		if width == 0 && isTerminal(writer) {
			width = terminalWidth(0)
		}
		_, err = fmt.Fprintln(writer, plaintext.Wrap(text, width))
		if err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return 1
		}
	case cfg.Standalone:
		if err := writeDocument(writer, document{
			Title:      opts.title,
			Stylesheet: cfg.Stylesheet,
			Body:       res.HTML,
		}); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return 1
		}
	default:
		if _, err := fmt.Fprintln(writer, res.HTML); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return 1
		}
	}

	if opts.stats {
		printStats(stderr, res.WordCount, isTerminal(stderr))
	}
	return 0
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts options) error {
	if flags.Changed("dialect") {
		cfg.Dialect = opts.dialect
	}
	if flags.Changed("strip-front-matter") {
		cfg.StripFrontMatter = opts.stripFrontMatter
	}
	if flags.Changed("standalone") {
		cfg.Standalone = opts.standalone
	}
	if flags.Changed("css") {
		cfg.Stylesheet = opts.stylesheet
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if _, ok := mdhtml.DialectByName(cfg.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q", cfg.Dialect)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("invalid --width %d", cfg.Width)
	}
	return nil
}

func configSource(path string) string {
	if path == "" {
		return config.Path()
	}
	return path
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "stdin"
	}
	return strings.Join(args, ",")
}

func printDialects(w io.Writer) {
	for _, name := range mdhtml.AvailableDialects() {
		fmt.Fprintln(w, name)
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
