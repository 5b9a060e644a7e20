package matching

import (
	"errors"
	"testing"

	"github.com/desertthunder/songbranch/internal/models"
	"github.com/desertthunder/songbranch/internal/shared"
)

func referenceTable() *models.Table {
	return &models.Table{
		Header: []string{"Song Name", "Video ID", "Notes"},
		Rows: [][]string{
			{"Test Song", "abc123", ""},
			{"Build My Life", "https://www.youtube.com/watch?v=url001&t=5", ""},
			{"Graves Into Gardens", "https://youtu.be/short02", ""},
			{"   ", "blank001", "blank title"},
			{"", "", "empty row"},
		},
	}
}

func TestLoadReference(t *testing.T) {
	t.Run("loads names and ids", func(t *testing.T) {
		set, err := LoadReference(referenceTable(), models.DefaultColumns())
		if err != nil {
			t.Fatalf("LoadReference failed: %v", err)
		}

		for _, key := range []string{"test song", "build my life", "graves into gardens"} {
			if !set.HasName(key) {
				t.Errorf("expected name %q in set", key)
			}
		}
		for _, id := range []string{"abc123", "url001", "short02"} {
			if !set.HasID(id) {
				t.Errorf("expected id %q in set", id)
			}
		}

		if set.Names() != 3 {
			t.Errorf("Names() = %d, want 3", set.Names())
		}
		if set.IDs() != 3 {
			t.Errorf("IDs() = %d, want 3", set.IDs())
		}
		if set.Skipped() != 2 {
			t.Errorf("Skipped() = %d, want 2", set.Skipped())
		}
	})

	t.Run("blank titles contribute nothing", func(t *testing.T) {
		set, err := LoadReference(referenceTable(), models.DefaultColumns())
		if err != nil {
			t.Fatalf("LoadReference failed: %v", err)
		}

		if set.HasID("blank001") {
			t.Error("id of a blank-title row must not be loaded")
		}
		if set.HasName("") || set.HasID("") {
			t.Error("blank-title rows must not add empty keys")
		}
	})

	t.Run("missing column", func(t *testing.T) {
		table := &models.Table{Header: []string{"Song Name"}, Rows: [][]string{{"x"}}}

		_, err := LoadReference(table, models.DefaultColumns())
		if !errors.Is(err, shared.ErrMissingColumn) {
			t.Errorf("expected ErrMissingColumn, got %v", err)
		}
	})
}

func TestEmptyKeys(t *testing.T) {
	reference := &models.Table{
		Header: []string{"Song Name", "Video ID"},
		Rows: [][]string{
			{"No Id Song", ""},
			{"!!!", "abc"},
			{"", "blank001"},
		},
	}

	set, err := LoadReference(reference, models.DefaultColumns())
	if err != nil {
		t.Fatalf("LoadReference failed: %v", err)
	}

	t.Run("titled rows store empty keys", func(t *testing.T) {
		if !set.HasID("") {
			t.Error("expected empty id from a titled row with no video id")
		}
		if !set.HasName("") {
			t.Error("expected empty name key from a punctuation-only title")
		}
		if set.Names() != 2 || set.IDs() != 2 || set.Skipped() != 1 {
			t.Errorf("Names/IDs/Skipped = %d/%d/%d, want 2/2/1", set.Names(), set.IDs(), set.Skipped())
		}
	})

	tc := []struct {
		name       string
		song       string
		id         string
		wantLabel  string
		wantByName bool
		wantByID   bool
	}{
		{name: "blank master id matches a reference row with no id", song: "Unrelated", id: "", wantLabel: models.BranchCentralSouth, wantByID: true},
		{name: "empty name key matches a punctuation-only title", song: "???", id: "zzz", wantLabel: models.BranchCentralSouth, wantByName: true},
		{name: "unrelated row stays central", song: "Café", id: "q", wantLabel: models.BranchCentral},
		{name: "blank-title reference id is not loaded", song: "Other", id: "blank001", wantLabel: models.BranchCentral},
	}

	m := NewMatcher(set)
	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.song, tt.id)

			if got.Label != tt.wantLabel || got.ByName != tt.wantByName || got.ByID != tt.wantByID {
				t.Errorf("Match(%q, %q) = %+v, want label %q byName %v byID %v", tt.song, tt.id, got, tt.wantLabel, tt.wantByName, tt.wantByID)
			}
		})
	}
}

func TestMatcher(t *testing.T) {
	set, err := LoadReference(referenceTable(), models.DefaultColumns())
	if err != nil {
		t.Fatalf("LoadReference failed: %v", err)
	}
	m := NewMatcher(set)

	tc := []struct {
		name       string
		song       string
		id         string
		wantLabel  string
		wantByName bool
		wantByID   bool
	}{
		{name: "name match despite case and punctuation", song: "TEST SONG!!", id: "zzz999", wantLabel: models.BranchCentralSouth, wantByName: true},
		{name: "id match from watch url", song: "Something Else", id: "url001", wantLabel: models.BranchCentralSouth, wantByID: true},
		{name: "id match from short url", song: "Other", id: "short02", wantLabel: models.BranchCentralSouth, wantByID: true},
		{name: "both keys", song: "Build my life", id: "url001", wantLabel: models.BranchCentralSouth, wantByName: true, wantByID: true},
		{name: "no match", song: "Oceans", id: "ocean01", wantLabel: models.BranchCentral},
		{name: "master ids are not extracted", song: "Oceans", id: "https://youtu.be/short02", wantLabel: models.BranchCentral},
		{name: "blank master row does not match blank reference rows", song: "", id: "", wantLabel: models.BranchCentral},
		{name: "punctuation only name misses without an empty reference key", song: "?!", id: "", wantLabel: models.BranchCentral},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.song, tt.id)

			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.ByName != tt.wantByName {
				t.Errorf("ByName = %v, want %v", got.ByName, tt.wantByName)
			}
			if got.ByID != tt.wantByID {
				t.Errorf("ByID = %v, want %v", got.ByID, tt.wantByID)
			}
			if m.Label(tt.song, tt.id) != got.Label {
				t.Error("Label and Match disagree")
			}
		})
	}

	t.Run("nil reference set labels everything central", func(t *testing.T) {
		if got := NewMatcher(nil).Label("Test Song", "abc123"); got != models.BranchCentral {
			t.Errorf("Label = %q, want %q", got, models.BranchCentral)
		}
	})
}

func TestMatchTable(t *testing.T) {
	set, err := LoadReference(referenceTable(), models.DefaultColumns())
	if err != nil {
		t.Fatalf("LoadReference failed: %v", err)
	}

	master := &models.Table{
		Header: []string{"YouTube ID", "Song Name"},
		Rows: [][]string{
			{"zzz999", "Test Song"},
			{"none", "Oceans"},
			{"short02", "Renamed"},
		},
	}

	matches, err := NewMatcher(set).MatchTable(master, models.DefaultColumns())
	if err != nil {
		t.Fatalf("MatchTable failed: %v", err)
	}

	want := []string{models.BranchCentralSouth, models.BranchCentral, models.BranchCentralSouth}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matches), len(want))
	}
	for i, w := range want {
		if matches[i].Label != w {
			t.Errorf("row %d label = %q, want %q", i, matches[i].Label, w)
		}
		if matches[i].Row != i+1 {
			t.Errorf("row %d numbered %d", i, matches[i].Row)
		}
	}

	t.Run("missing master column", func(t *testing.T) {
		bad := &models.Table{Header: []string{"Song Name"}, Rows: [][]string{{"x"}}}
		if _, err := NewMatcher(set).MatchTable(bad, models.DefaultColumns()); !errors.Is(err, shared.ErrMissingColumn) {
			t.Errorf("expected ErrMissingColumn, got %v", err)
		}
	})
}
