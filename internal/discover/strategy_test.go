package discover

import (
	"reflect"
	"testing"

	"papergraph/internal/paper"
)

func TestParseStrategies(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Strategy
		wantErr bool
	}{
		{
			name:  "single",
			input: []string{"tags"},
			want:  []Strategy{StrategyTags},
		},
		{
			name:  "canonical order regardless of input order",
			input: []string{"year", "tags"},
			want:  []Strategy{StrategyTags, StrategyYear},
		},
		{
			name:  "duplicates collapsed",
			input: []string{"tags", "tags"},
			want:  []Strategy{StrategyTags},
		},
		{
			name:  "case and whitespace tolerated",
			input: []string{" Keywords ", "AUTHORS"},
			want:  []Strategy{StrategyKeywords, StrategyAuthors},
		},
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
		{
			name:    "unknown strategy",
			input:   []string{"tags", "venue"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategies(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategies(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStrategies(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrategy_Candidates_Tags(t *testing.T) {
	papers := []paper.Paper{
		{ID: 1, Title: "A", Tags: "nlp"},
		{ID: 2, Title: "B", Tags: "nlp, vision"},
		{ID: 3, Title: "C", Tags: "robotics"},
	}

	got := StrategyTags.Candidates(papers, paper.MatchFoldCase)
	want := map[Pair]bool{{A: 1, B: 2}: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestStrategy_Candidates_NoSelfPairs(t *testing.T) {
	papers := []paper.Paper{{ID: 1, Title: "A", Tags: "nlp", Year: 2020}}

	for _, s := range AllStrategies {
		if got := s.Candidates(papers, paper.MatchFoldCase); len(got) != 0 {
			t.Errorf("%s: expected no pairs from a single paper, got %v", s, got)
		}
	}
}

func TestStrategy_Candidates_Keywords_CasePolicy(t *testing.T) {
	papers := []paper.Paper{
		{ID: 1, Title: "A", Keywords: "NLP"},
		{ID: 2, Title: "B", Keywords: "nlp"},
	}

	folded := StrategyKeywords.Candidates(papers, paper.MatchFoldCase)
	if !folded[pairOf(1, 2)] {
		t.Error("expected case-folded keyword match")
	}

	exact := StrategyKeywords.Candidates(papers, paper.MatchExactCase)
	if len(exact) != 0 {
		t.Errorf("expected no exact-case match, got %v", exact)
	}
}

func TestStrategy_Candidates_Authors(t *testing.T) {
	papers := []paper.Paper{
		{ID: 1, Title: "A", Authors: "Alice Smith and Bob Jones"},
		{ID: 2, Title: "B", Authors: "Carol White, Alice Smith"},
		{ID: 3, Title: "C", Authors: "Dan Black"},
		{ID: 4, Title: "D"}, // unparsable/absent authors participate in nothing
	}

	got := StrategyAuthors.Candidates(papers, paper.MatchFoldCase)
	want := map[Pair]bool{{A: 1, B: 2}: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestStrategy_Candidates_Year(t *testing.T) {
	papers := []paper.Paper{
		{ID: 1, Title: "A", Year: 2020},
		{ID: 2, Title: "B", Year: 2020},
		{ID: 3, Title: "C", Year: 2021},
		{ID: 4, Title: "D"}, // unknown year never matches
		{ID: 5, Title: "E"},
	}

	got := StrategyYear.Candidates(papers, paper.MatchFoldCase)
	want := map[Pair]bool{{A: 1, B: 2}: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestPairOf_Normalizes(t *testing.T) {
	if pairOf(5, 2) != (Pair{A: 2, B: 5}) {
		t.Errorf("pairOf(5, 2) = %v, want {2 5}", pairOf(5, 2))
	}
}
