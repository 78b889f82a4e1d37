package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statsLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4"))
	statsValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9"))
)

type document struct {
	Title      string
	Stylesheet string
	Body       string
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .Stylesheet}}
<link rel="stylesheet" href="{{.Stylesheet}}">
{{- end}}
</head>
<body>
<article class="markdown-body">
{{.HTML}}
</article>
</body>
</html>
`))

func writeDocument(w io.Writer, doc document) error {
	// Body is already rendered HTML.
	return documentTemplate.Execute(w, struct {
		Title      string
		Stylesheet string
		HTML       template.HTML
	}{Title: doc.Title, Stylesheet: doc.Stylesheet, HTML: template.HTML(doc.Body)})
}

func printStats(w io.Writer, words int, styled bool) {
	label, value := "words:", fmt.Sprint(words)
	if styled {
		label = statsLabelStyle.Render(label)
		value = statsValueStyle.Render(value)
	}
	fmt.Fprintln(w, label, value)
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" || path == "-" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
