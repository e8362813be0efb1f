package paper

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
		{
			name: "single token",
			raw:  "nlp",
			want: []string{"nlp"},
		},
		{
			name: "trims whitespace",
			raw:  " nlp , vision ,robotics",
			want: []string{"nlp", "vision", "robotics"},
		},
		{
			name: "drops empty tokens",
			raw:  "nlp,,  ,vision",
			want: []string{"nlp", "vision"},
		},
		{
			name: "collapses case-insensitive duplicates keeping first casing",
			raw:  "NLP,nlp,Vision",
			want: []string{"NLP", "Vision"},
		},
		{
			name: "whitespace only",
			raw:  "  ,  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "bibtex and separator",
			raw:  "Alice Smith and Bob Jones",
			want: []string{"Alice Smith", "Bob Jones"},
		},
		{
			name: "comma separated",
			raw:  "Alice Smith, Bob Jones",
			want: []string{"Alice Smith", "Bob Jones"},
		},
		{
			name: "mixed separators",
			raw:  "Alice Smith and Bob Jones, Carol White",
			want: []string{"Alice Smith", "Bob Jones", "Carol White"},
		},
		{
			name: "does not split Anderson on embedded and",
			raw:  "Paul Anderson, Grand Master",
			want: []string{"Paul Anderson", "Grand Master"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAuthors(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitAuthors(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []string
		policy MatchPolicy
		want   bool
	}{
		{
			name:   "shared token",
			a:      []string{"nlp", "vision"},
			b:      []string{"robotics", "nlp"},
			policy: MatchFoldCase,
			want:   true,
		},
		{
			name:   "disjoint",
			a:      []string{"nlp"},
			b:      []string{"vision"},
			policy: MatchFoldCase,
			want:   false,
		},
		{
			name:   "case folded match",
			a:      []string{"NLP"},
			b:      []string{"nlp"},
			policy: MatchFoldCase,
			want:   true,
		},
		{
			name:   "exact case mismatch",
			a:      []string{"NLP"},
			b:      []string{"nlp"},
			policy: MatchExactCase,
			want:   false,
		},
		{
			name:   "empty side never overlaps",
			a:      nil,
			b:      []string{"nlp"},
			policy: MatchFoldCase,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b, tt.policy); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	got := Intersect([]string{"NLP", "vision", "robotics"}, []string{"nlp", "Robotics"}, MatchFoldCase)
	want := []string{"NLP", "robotics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	if got := Intersect(nil, []string{"nlp"}, MatchFoldCase); got != nil {
		t.Errorf("Intersect with empty side = %v, want nil", got)
	}
}
