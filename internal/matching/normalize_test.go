package matching

import "testing"

func TestNormalizeName(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{name: "punctuation and double space", input: "Song's *Name*  Here!", want: "songs name here"},
		{name: "mixed case", input: "TEST SONG!!", want: "test song"},
		{name: "surrounding whitespace", input: "  Way   Maker  ", want: "way maker"},
		{name: "tabs and newlines", input: "Way\tMaker\nLive", want: "way maker live"},
		{name: "underscore is kept", input: "track_01", want: "track_01"},
		{name: "digits are kept", input: "10,000 Reasons (Bless the Lord)", want: "10000 reasons bless the lord"},
		{name: "hyphen is removed without a space", input: "Rock-a-bye", want: "rockabye"},
		{name: "accented letters are kept", input: "Café Olé", want: "café olé"},
		{name: "decomposed accent drops its combining mark", input: "Cafe\u0301", want: "cafe"},
		{name: "precomposed accent is kept", input: "Caf\u00e9", want: "caf\u00e9"},
		{name: "non latin script", input: "主の祈り!", want: "主の祈り"},
		{name: "only punctuation", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Song's *Name*  Here!",
		"  Great Are You Lord (Live)  ",
		"Café — Olá",
		"İstanbul",
		"",
	}

	for _, in := range inputs {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Errorf("NormalizeName not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
