package rake

import (
	"testing"

	"github.com/poiesic/rake/stoplist"
)

func mustExtractor(t *testing.T, stops *stoplist.StopList, opts ...Option) *Extractor {
	t.Helper()
	e, err := New(stops, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func mustStopList(t *testing.T, words ...string) *stoplist.StopList {
	t.Helper()
	s, err := stoplist.New(words...)
	if err != nil {
		t.Fatalf("stoplist.New() failed: %v", err)
	}
	return s
}

func TestCandidates_SplitsAtStopWords(t *testing.T) {
	stops := mustStopList(t, "of", "the", "over")
	e := mustExtractor(t, stops)

	cands := e.candidates("Compatibility of systems of linear constraints over the set of natural numbers")

	want := []string{"Compatibility", "systems", "linear constraints", "set", "natural numbers"}
	if len(cands) != len(want) {
		t.Fatalf("candidates() returned %d phrases, want %d", len(cands), len(want))
	}
	for i, surface := range want {
		if cands[i].surface != surface {
			t.Errorf("candidates()[%d].surface = %q, want %q", i, cands[i].surface, surface)
		}
	}
}

func TestCandidates_PreservesSurfaceCasing(t *testing.T) {
	stops := mustStopList(t, "the")
	e := mustExtractor(t, stops)

	cands := e.candidates("the Linear Constraints")
	if len(cands) != 1 {
		t.Fatalf("candidates() returned %d phrases, want 1", len(cands))
	}
	if cands[0].surface != "Linear Constraints" {
		t.Errorf("surface = %q, want %q", cands[0].surface, "Linear Constraints")
	}
	if cands[0].key != "linear constraints" {
		t.Errorf("key = %q, want %q", cands[0].key, "linear constraints")
	}
}

func TestCandidates_PunctuationDelimits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "sentence enders",
			text: "red panda. green turtle! blue whale?",
			want: []string{"red panda", "green turtle", "blue whale"},
		},
		{
			name: "commas and parentheses",
			text: "red panda, green turtle (blue whale)",
			want: []string{"red panda", "green turtle", "blue whale"},
		},
		{
			name: "spaced hyphen delimits",
			text: "red panda - green turtle",
			want: []string{"red panda", "green turtle"},
		},
		{
			name: "hyphenated word survives",
			text: "in-process keyword extraction",
			want: []string{"in-process keyword extraction"},
		},
		{
			name: "stop words only",
			text: "the of and over, the.",
			want: nil,
		},
		{
			name: "punctuation only",
			text: "... !?; ,,,",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \t\n  ",
			want: nil,
		},
	}

	stops := mustStopList(t, "the", "of", "and", "over")
	e := mustExtractor(t, stops)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := e.candidates(tt.text)
			if len(cands) != len(tt.want) {
				t.Fatalf("candidates(%q) returned %d phrases, want %d", tt.text, len(cands), len(tt.want))
			}
			for i, surface := range tt.want {
				if cands[i].surface != surface {
					t.Errorf("candidates(%q)[%d] = %q, want %q", tt.text, i, cands[i].surface, surface)
				}
			}
		})
	}
}

func TestCandidates_DuplicatesKept(t *testing.T) {
	stops := mustStopList(t, "the")
	e := mustExtractor(t, stops)

	cands := e.candidates("quick brown fox. quick brown fox. quick brown fox.")
	if len(cands) != 3 {
		t.Fatalf("candidates() returned %d phrases, want 3 (dedup happens at ranking)", len(cands))
	}
}

func TestCandidates_NumeralsStayInPhraseButDoNotScore(t *testing.T) {
	stops := mustStopList(t, "the")
	e := mustExtractor(t, stops)

	cands := e.candidates("the 52 playing cards")
	if len(cands) != 1 {
		t.Fatalf("candidates() returned %d phrases, want 1", len(cands))
	}
	if cands[0].surface != "52 playing cards" {
		t.Errorf("surface = %q, want %q", cands[0].surface, "52 playing cards")
	}
	if len(cands[0].words) != 2 {
		t.Errorf("scored words = %v, want [playing cards]", cands[0].words)
	}
}

func TestCandidates_MinWordLength(t *testing.T) {
	stops := mustStopList(t, "the")
	e := mustExtractor(t, stops, WithMinWordLength(4))

	cands := e.candidates("the big keyword extraction")
	if len(cands) != 1 {
		t.Fatalf("candidates() returned %d phrases, want 1", len(cands))
	}
	// "big" stays in the surface but is too short to score
	if cands[0].surface != "big keyword extraction" {
		t.Errorf("surface = %q", cands[0].surface)
	}
	if len(cands[0].words) != 2 {
		t.Errorf("scored words = %v, want [keyword extraction]", cands[0].words)
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"42", true},
		{"42%", true},
		{"4x2", false},
		{"fox", false},
		{"", false},
		{"%", false},
	}

	for _, tt := range tests {
		if got := isNumeric(tt.word); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
