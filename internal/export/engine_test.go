package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agridesk/internal/preview"
	"agridesk/internal/types"
)

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	renderer := preview.New("fr", preview.WithClock(clock))
	opts = append([]Option{WithClock(clock)}, opts...)
	return NewEngine(t.TempDir(), renderer, preview.Theme{
		Primary: "#2E7D32", Border: "#CCC", Background: "#FFF", Text: "#000", Muted: "#777",
	}, opts...)
}

func sampleRecords() []types.Record {
	return []types.Record{
		types.NewRecord(
			types.Field{Key: "id", Value: int64(1)},
			types.Field{Key: "name", Value: "A"},
			types.Field{Key: "amount", Value: int64(10)},
		),
		types.NewRecord(
			types.Field{Key: "id", Value: int64(2)},
			types.Field{Key: "name", Value: "B"},
			types.Field{Key: "amount", Value: int64(20)},
		),
	}
}

func TestExportCSVRowOrderAndHeader(t *testing.T) {
	e := testEngine(t)

	path, err := e.Export("finances", FormatCSV, sampleRecords(), nil)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if got := filepath.Base(path); got != "finances_2025-06-15.csv" {
		t.Errorf("filename = %q, want finances_2025-06-15.csv", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{"id,name,amount", "1,A,10", "2,B,20"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExportQuotesDelimiterAndNewlines(t *testing.T) {
	e := testEngine(t)

	records := []types.Record{
		types.NewRecord(
			types.Field{Key: "id", Value: int64(1)},
			types.Field{Key: "name", Value: `Blé, "hiver"`},
			types.Field{Key: "note", Value: "ligne 1\nligne 2"},
		),
	}
	path, err := e.Export("cultures", FormatCSV, records, nil)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	content := string(data)

	if !strings.Contains(content, `"Blé, ""hiver"""`) {
		t.Errorf("delimiter-containing value not quote-escaped: %q", content)
	}
	if !strings.Contains(content, "\"ligne 1\nligne 2\"") {
		t.Errorf("newline-containing value not quoted: %q", content)
	}
}

func TestExportEmptyDatasetProducesHeaderOnlyArtifact(t *testing.T) {
	e := testEngine(t)

	columns := []types.Column{{Key: "id", Header: "ID"}, {Key: "name", Header: "Nom"}}
	path, err := e.Export("cultures", FormatCSV, nil, columns)
	if err != nil {
		t.Fatalf("Export() of empty dataset error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if got := strings.TrimSpace(string(data)); got != "id,name" {
		t.Errorf("header-only artifact = %q, want %q", got, "id,name")
	}
}

func TestExportExcelUsesSpreadsheetExtension(t *testing.T) {
	e := testEngine(t)

	path, err := e.Export("finances", FormatExcel, sampleRecords(), nil)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if filepath.Ext(path) != ".xls" {
		t.Errorf("extension = %q, want .xls", filepath.Ext(path))
	}
}

func TestExportPDFRendersAndOpensDocument(t *testing.T) {
	var opened string
	e := testEngine(t, WithOpener(func(path string) error {
		opened = path
		return nil
	}))

	path, err := e.Export("cultures", FormatPDF, sampleRecords(), []types.Column{
		{Key: "name", Header: "Culture"},
	})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if opened != path {
		t.Errorf("opener got %q, artifact is %q", opened, path)
	}
	t.Cleanup(func() { os.Remove(path) })

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading document: %v", err)
	}
	if !strings.Contains(string(data), "<th>Culture</th>") {
		t.Error("print document missing projected header")
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"csv", "excel", "pdf"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", name, err)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Error("ParseFormat(docx) should fail")
	}
}
