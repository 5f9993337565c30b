// Package importer parses uploaded delimited files back into typed records.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"agridesk/internal/types"
)

// Result is the outcome of parsing one uploaded file.
type Result struct {
	Accepted []types.Record
	Rejected int // lines skipped for having too few fields or broken quoting
}

// Engine parses delimited uploads. It is stateless; the hub owns the merge
// into the registry.
type Engine struct{}

// NewEngine creates an import engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Parse reads r as delimited text. The first line is a header and is
// discarded; each following line maps positionally onto columns. Lines with
// fewer fields than the column projection are rejected and counted, blank
// lines are ignored. Accepted records get synthetic sequential ids starting
// at nextID so ids stay unique after the merge.
func (e *Engine) Parse(r io.Reader, columns []types.Column, nextID int64) (Result, error) {
	if len(columns) == 0 {
		return Result{}, errors.New("module has no column mapping for imports")
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	// Header row
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("failed to read header row: %w", err)
	}

	var res Result
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed line is a rejected unit, not a fatal error
			res.Rejected++
			continue
		}
		if blank(fields) {
			continue
		}
		if len(fields) < len(columns) {
			res.Rejected++
			continue
		}

		rec := types.NewRecord()
		for i, col := range columns {
			rec.Set(col.Key, types.ParseScalar(fields[i]))
		}
		rec.Set("id", nextID)
		nextID++
		res.Accepted = append(res.Accepted, rec)
	}
	return res, nil
}

// blank reports whether every field on the line is whitespace.
// encoding/csv drops truly empty lines itself; this catches "   " lines.
func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
