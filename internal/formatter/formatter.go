// package formatter reads and writes the CSV datasets and renders run summaries (text, JSON, CSV)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/songbranch/internal/matching"
	"github.com/desertthunder/songbranch/internal/models"
	"github.com/desertthunder/songbranch/internal/shared"
)

const bom = "\ufeff"

// ReadCSV reads a CSV dataset with a header row.
//
// Blank lines are skipped. Rows shorter than the header are padded with empty values;
// rows wider than the header are rejected with [shared.ErrMalformedRow].
func ReadCSV(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, shared.ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	table := &models.Table{Header: header, Rows: [][]string{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", shared.ErrMalformedRow, line, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}

		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// ReadCSVFile opens path and reads it with [ReadCSV].
func ReadCSVFile(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// WriteCSV writes the header and every row of t with CRLF line endings.
//
// Quoting follows encoding/csv: fields with a leading space are quoted, and a
// newline inside a quoted field is written as CRLF.
func WriteCSV(w io.Writer, t *models.Table) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}

// WriteCSVFile truncates path and writes t into it.
//
// The file is written in place; a failure part way leaves whatever was flushed.
func WriteCSVFile(path string, t *models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ExportSummaryText renders the three counts printed after a run.
func ExportSummaryText(s models.Summary) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Total songs processed: %d\n", s.Total))
	buf.WriteString(fmt.Sprintf("Songs in both branches: %d\n", s.BothBranches))
	buf.WriteString(fmt.Sprintf("Songs only in Central: %d\n", s.CentralOnly))

	return buf.Bytes()
}

// ExportMatchDetailsText renders the match breakdown shown in verbose output.
func ExportMatchDetailsText(s models.Summary) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Reference titles: %d (skipped %d blank)\n", s.ReferenceNames, s.ReferenceSkip))
	buf.WriteString(fmt.Sprintf("Reference video IDs: %d\n", s.ReferenceIDs))
	buf.WriteString(fmt.Sprintf("Matched by title: %d\n", s.MatchedByName))
	buf.WriteString(fmt.Sprintf("Matched by video ID: %d\n", s.MatchedByID))

	return buf.Bytes()
}

// LabelStyle decorates a branch label before it is printed.
type LabelStyle func(label string, south bool) string

func plainLabel(label string, _ bool) string { return label }

// ExportMatchesText renders one line per match: row number, label, title and reason.
func ExportMatchesText(matches []matching.Match) []byte {
	return ExportMatchesTextStyled(matches, plainLabel)
}

// ExportMatchesTextStyled is [ExportMatchesText] with each label passed through style.
func ExportMatchesTextStyled(matches []matching.Match, style LabelStyle) []byte {
	var buf bytes.Buffer

	if style == nil {
		style = plainLabel
	}

	for _, m := range matches {
		buf.WriteString(fmt.Sprintf("%4d. [%s] %s", m.Row, style(m.Label, m.South()), m.Name))
		if reason := MatchReason(m); reason != "" {
			buf.WriteString(fmt.Sprintf(" (%s)", reason))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// ExportMatchesCSV converts matches to CSV with columns: Row, Song Name, YouTube ID, Key, Reason, Branch
func ExportMatchesCSV(matches []matching.Match) ([]byte, error) {
	var buf bytes.Buffer

	table := &models.Table{
		Header: []string{"Row", "Song Name", "YouTube ID", "Key", "Reason", "Branch"},
		Rows:   make([][]string, 0, len(matches)),
	}
	for _, m := range matches {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(m.Row), m.Name, m.ID, m.Key, MatchReason(m), m.Label,
		})
	}

	if err := WriteCSV(&buf, table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MatchReason names the keys that matched: "title", "video id", "title+video id" or "".
func MatchReason(m matching.Match) string {
	switch {
	case m.ByName && m.ByID:
		return "title+video id"
	case m.ByName:
		return "title"
	case m.ByID:
		return "video id"
	default:
		return ""
	}
}

// MarshalJSON encodes v as JSON, indented when pretty is set.
func MarshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
