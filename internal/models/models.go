package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/songbranch/internal/shared"
)

// Branch labels written to the masterlist
const (
	BranchCentral      = "Central"
	BranchCentralSouth = "Central, South"
)

// SongRecord maps column names to the values of one row.
type SongRecord map[string]string

// Table is a CSV dataset with its column order preserved.
//
// Every row holds exactly len(Header) values.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of the named column, or -1 when absent.
func (t *Table) Index(column string) int {
	for i, h := range t.Header {
		if h == column {
			return i
		}
	}
	return -1
}

// MustIndex returns the position of the named column or a [shared.ErrMissingColumn] error.
func (t *Table) MustIndex(column string) (int, error) {
	i := t.Index(column)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", shared.ErrMissingColumn, column)
	}
	return i, nil
}

// Record returns row i as a [SongRecord].
func (t *Table) Record(i int) SongRecord {
	rec := make(SongRecord, len(t.Header))
	for j, h := range t.Header {
		rec[h] = t.Rows[i][j]
	}
	return rec
}

// SetColumn writes values into the named column, appending it to the header when absent.
//
// values must hold one entry per row.
func (t *Table) SetColumn(column string, values []string) (appended bool, err error) {
	if len(values) != len(t.Rows) {
		return false, fmt.Errorf("column %q: got %d values for %d rows", column, len(values), len(t.Rows))
	}

	idx := t.Index(column)
	if idx < 0 {
		t.Header = append(t.Header, column)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], values[i])
		}
		return true, nil
	}

	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
	return false, nil
}

// Columns names the CSV columns the pipeline reads and writes.
type Columns struct {
	ReferenceName string
	ReferenceID   string
	MasterName    string
	MasterID      string
	Branch        string
}

// DefaultColumns returns the column names of the south-branch export and the masterlist.
func DefaultColumns() Columns {
	return Columns{
		ReferenceName: "Song Name",
		ReferenceID:   "Video ID",
		MasterName:    "Song Name",
		MasterID:      "YouTube ID",
		Branch:        "Branch",
	}
}

// ColumnsFromConfig builds [Columns] from a loaded [shared.Config].
func ColumnsFromConfig(c *shared.Config) Columns {
	return Columns{
		ReferenceName: c.Columns.ReferenceName,
		ReferenceID:   c.Columns.ReferenceID,
		MasterName:    c.Columns.MasterName,
		MasterID:      c.Columns.MasterID,
		Branch:        c.Columns.Branch,
	}
}

// Summary holds the counts reported after labeling a masterlist.
type Summary struct {
	Total          int `json:"total"`
	BothBranches   int `json:"both_branches"`
	CentralOnly    int `json:"central_only"`
	MatchedByName  int `json:"matched_by_name"`
	MatchedByID    int `json:"matched_by_id"`
	ReferenceNames int `json:"reference_names"`
	ReferenceIDs   int `json:"reference_ids"`
	ReferenceSkip  int `json:"reference_skipped"`
}

// Count tallies one label.
//
// BothBranches is a substring test on the label rather than a comparison with [BranchCentralSouth].
func (s *Summary) Count(label string) {
	s.Total++
	if strings.Contains(label, "South") {
		s.BothBranches++
	}
	if label == BranchCentral {
		s.CentralOnly++
	}
}
