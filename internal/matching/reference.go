package matching

import (
	"strings"

	"github.com/desertthunder/songbranch/internal/models"
)

// ReferenceSet holds the normalized names and video ids of the south-branch songs.
type ReferenceSet struct {
	names   map[string]struct{}
	ids     map[string]struct{}
	skipped int
}

// NewReferenceSet returns an empty [ReferenceSet].
func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{
		names: make(map[string]struct{}),
		ids:   make(map[string]struct{}),
	}
}

// Add records one reference song.
//
// Songs with a blank title are skipped and contribute neither key. Any other
// song adds both keys as computed, even when one of them comes out empty.
func (s *ReferenceSet) Add(name, videoID string) bool {
	if strings.TrimSpace(name) == "" {
		s.skipped++
		return false
	}

	s.names[NormalizeName(name)] = struct{}{}
	s.ids[ExtractVideoID(videoID)] = struct{}{}
	return true
}

// HasName reports whether the normalized name belongs to the set.
func (s *ReferenceSet) HasName(key string) bool {
	_, ok := s.names[key]
	return ok
}

// HasID reports whether the bare video id belongs to the set.
func (s *ReferenceSet) HasID(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Names returns the number of distinct normalized names.
func (s *ReferenceSet) Names() int { return len(s.names) }

// IDs returns the number of distinct video ids.
func (s *ReferenceSet) IDs() int { return len(s.ids) }

// Skipped returns the number of reference rows ignored for a blank title.
func (s *ReferenceSet) Skipped() int { return s.skipped }

// LoadReference builds a [ReferenceSet] from the south-branch table.
//
// Both the name and id columns must be present.
func LoadReference(t *models.Table, cols models.Columns) (*ReferenceSet, error) {
	nameIdx, err := t.MustIndex(cols.ReferenceName)
	if err != nil {
		return nil, err
	}
	idIdx, err := t.MustIndex(cols.ReferenceID)
	if err != nil {
		return nil, err
	}

	set := NewReferenceSet()
	for _, row := range t.Rows {
		set.Add(row[nameIdx], row[idIdx])
	}
	return set, nil
}
