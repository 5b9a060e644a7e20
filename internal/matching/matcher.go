package matching

import "github.com/desertthunder/songbranch/internal/models"

// Match is the outcome of labeling one master row.
type Match struct {
	Row    int    `json:"row"`
	Name   string `json:"name"`
	ID     string `json:"id"`
	Key    string `json:"key"`
	ByName bool   `json:"by_name"`
	ByID   bool   `json:"by_id"`
	Label  string `json:"label"`
}

// South reports whether the row matched the reference list by either key.
func (m Match) South() bool {
	return m.ByName || m.ByID
}

// Matcher labels master rows against a [ReferenceSet].
type Matcher struct {
	ref *ReferenceSet
}

// NewMatcher creates a Matcher over ref.
func NewMatcher(ref *ReferenceSet) *Matcher {
	if ref == nil {
		ref = NewReferenceSet()
	}
	return &Matcher{ref: ref}
}

// Match labels a master row from its title and its bare video id.
//
// The id is compared as stored; no URL extraction happens on the master side.
func (m *Matcher) Match(name, id string) Match {
	key := NormalizeName(name)
	res := Match{
		Name:   name,
		ID:     id,
		Key:    key,
		ByName: m.ref.HasName(key),
		ByID:   m.ref.HasID(id),
		Label:  models.BranchCentral,
	}
	if res.South() {
		res.Label = models.BranchCentralSouth
	}
	return res
}

// Label returns only the branch label for a master row.
func (m *Matcher) Label(name, id string) string {
	return m.Match(name, id).Label
}

// MatchTable labels every row of the master table in order.
func (m *Matcher) MatchTable(t *models.Table, cols models.Columns) ([]Match, error) {
	for _, column := range []string{cols.MasterName, cols.MasterID} {
		if _, err := t.MustIndex(column); err != nil {
			return nil, err
		}
	}

	matches := make([]Match, 0, t.Len())
	for i := range t.Rows {
		rec := t.Record(i)
		res := m.Match(rec[cols.MasterName], rec[cols.MasterID])
		res.Row = i + 1
		matches = append(matches, res)
	}
	return matches, nil
}
