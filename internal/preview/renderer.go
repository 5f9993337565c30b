// Package preview builds the standalone HTML document used both for
// on-screen preview and for printing. One rendering path serves both so the
// printed page always matches what the user saw.
package preview

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"agridesk/internal/types"
)

// Theme parameterizes the document's palette so the same template produces a
// light or dark variant.
type Theme struct {
	Primary    string
	Border     string
	Background string
	Text       string
	Muted      string
}

// Renderer turns a dataset projection into a self-contained HTML document.
type Renderer struct {
	tmpl    *template.Template
	printer *message.Printer
	now     func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the footer timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New creates a renderer for the given BCP 47 locale tag ("fr", "en-US", ...).
// Unparseable tags fall back to French, the product's default locale.
func New(locale string, opts ...Option) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	r := &Renderer{
		tmpl:    template.Must(template.New("preview").Parse(documentTemplate)),
		printer: message.NewPrinter(tag),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type documentData struct {
	Title     string
	Module    string
	Headers   []string
	Rows      [][]string
	Generated string
	Count     int

	Primary    template.CSS
	Border     template.CSS
	Background template.CSS
	Text       template.CSS
	Muted      template.CSS
}

// Render builds the document. Columns define both the cell projection and
// the header row; record keys outside the projection never appear.
func (r *Renderer) Render(title, module string, records []types.Record, columns []types.Column, theme Theme) (string, error) {
	data := documentData{
		Title:      title,
		Module:     module,
		Generated:  r.now().Format("2006-01-02 15:04"),
		Count:      len(records),
		Primary:    cssColor(theme.Primary),
		Border:     cssColor(theme.Border),
		Background: cssColor(theme.Background),
		Text:       cssColor(theme.Text),
		Muted:      cssColor(theme.Muted),
	}

	for _, col := range columns {
		data.Headers = append(data.Headers, col.Header)
	}
	for _, rec := range records {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			v, _ := rec.Get(col.Key)
			row = append(row, r.formatCell(v))
		}
		data.Rows = append(data.Rows, row)
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render preview document: %w", err)
	}
	return sb.String(), nil
}

// formatCell localizes numbers through the configured locale; other scalars
// use the plain export formatting.
func (r *Renderer) formatCell(v types.Scalar) string {
	switch n := v.(type) {
	case int:
		return r.printer.Sprintf("%d", n)
	case int64:
		return r.printer.Sprintf("%d", n)
	case float64:
		return r.printer.Sprintf("%.2f", n)
	default:
		return types.FormatScalar(v)
	}
}

// cssColor trusts theme values into the CSS context. Themes come from the
// user's own config file, never from imported data.
func cssColor(s string) template.CSS {
	return template.CSS(s)
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body {
    font-family: "Helvetica Neue", Arial, sans-serif;
    margin: 2rem;
    background: {{.Background}};
    color: {{.Text}};
  }
  h1 {
    color: {{.Primary}};
    border-bottom: 2px solid {{.Primary}};
    padding-bottom: 0.4rem;
  }
  table {
    border-collapse: collapse;
    width: 100%;
    margin-top: 1rem;
  }
  th {
    background: {{.Primary}};
    color: {{.Background}};
    text-align: left;
    padding: 0.5rem 0.75rem;
  }
  td {
    border: 1px solid {{.Border}};
    padding: 0.4rem 0.75rem;
  }
  tr:nth-child(even) td {
    background: rgba(127, 127, 127, 0.08);
  }
  footer {
    margin-top: 1.5rem;
    font-size: 0.8rem;
    color: {{.Muted}};
  }
  @media print {
    body { margin: 0.5rem; background: #fff; color: #000; }
  }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
  <thead>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>
<footer>{{.Module}} &mdash; {{.Count}} enregistrement(s) &mdash; {{.Generated}}</footer>
</body>
</html>
`
