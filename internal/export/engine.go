// Package export turns module datasets into downloadable artifacts: delimited
// text, spreadsheet-compatible text, or a printable HTML document.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"agridesk/internal/preview"
	"agridesk/internal/types"
)

// Format selects the artifact type.
type Format string

const (
	FormatCSV   Format = "csv"   // comma-delimited text
	FormatExcel Format = "excel" // same row model, spreadsheet-flagged extension
	FormatPDF   Format = "pdf"   // printable HTML document opened in the host browser
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatExcel, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Opener hands an artifact path to the host, e.g. the platform browser
// opener for printable documents.
type Opener func(path string) error

// Engine writes export artifacts. It holds no dataset state; callers pass
// the records and column projection for every job.
type Engine struct {
	dir      string
	renderer *preview.Renderer
	theme    preview.Theme
	opener   Opener
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithOpener replaces the platform browser opener.
func WithOpener(open Opener) Option {
	return func(e *Engine) { e.opener = open }
}

// WithClock overrides the clock used in artifact filenames.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine writing artifacts under dir.
func NewEngine(dir string, renderer *preview.Renderer, theme preview.Theme, opts ...Option) *Engine {
	e := &Engine{
		dir:      dir,
		renderer: renderer,
		theme:    theme,
		opener:   openInBrowser,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dir returns the directory artifacts are written to.
func (e *Engine) Dir() string {
	return e.dir
}

// Export produces the artifact for one job and returns its path.
// An empty record set still produces a valid header-only artifact.
func (e *Engine) Export(module string, format Format, records []types.Record, columns []types.Column) (string, error) {
	switch format {
	case FormatCSV:
		return e.writeDelimitedFile(module, "csv", records, columns)
	case FormatExcel:
		// Spreadsheet apps open delimited text fine; only the extension
		// differs so the host associates it with them.
		return e.writeDelimitedFile(module, "xls", records, columns)
	case FormatPDF:
		title := fmt.Sprintf("Export %s", module)
		return e.Print(title, module, records, columns)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

// Print renders the HTML document, writes it to a transient file and hands
// it to the opener so the user can print from the browser dialog.
func (e *Engine) Print(title, module string, records []types.Record, columns []types.Column) (string, error) {
	doc, err := e.renderer.Render(title, module, records, columns, e.theme)
	if err != nil {
		return "", err
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("agridesk-%s-%s.html", module, uuid.NewString()))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write print document: %w", err)
	}
	if err := e.opener(path); err != nil {
		return "", fmt.Errorf("failed to open print document: %w", err)
	}
	return path, nil
}

func (e *Engine) writeDelimitedFile(module, ext string, records []types.Record, columns []types.Column) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.%s", module, e.now().Format("2006-01-02"), ext)
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteDelimited(f, records, columns); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDelimited writes the header row and one row per record. When no
// column projection is given the header comes from the first record's keys.
// encoding/csv quotes values containing the delimiter or line breaks.
func WriteDelimited(w io.Writer, records []types.Record, columns []types.Column) error {
	if len(columns) == 0 && len(records) > 0 {
		for _, key := range records[0].Keys() {
			columns = append(columns, types.Column{Key: key, Header: key})
		}
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Key
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			v, _ := rec.Get(col.Key)
			row[i] = types.FormatScalar(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// openInBrowser asks the platform to open path with its default handler.
func openInBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
