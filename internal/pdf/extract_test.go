package pdf

import (
	"strings"
	"testing"
)

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "see https://doi.org/10.1038/s41586-020-2649-2 for details", "10.1038/s41586-020-2649-2"},
		{"trailing punctuation", "DOI: 10.1145/3292500.3330701.", "10.1145/3292500.3330701"},
		{"none", "no identifiers here", ""},
		{"too short suffix", "10.1234/", ""},
		{"first of several", "10.1000/first then 10.1000/second", "10.1000/first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGuessTitle(t *testing.T) {
	text := "Journal of Things, Volume 3 Issue 2\n" +
		"short\n" +
		"A Comprehensive Survey of Graph Construction Methods\n" +
		"Jane Doe, John Roe\n"
	want := "A Comprehensive Survey of Graph Construction Methods"
	if got := guessTitle(text); got != want {
		t.Errorf("guessTitle() = %q, want %q", got, want)
	}
}

func TestGuessTitle_Empty(t *testing.T) {
	if got := guessTitle("a\nb\nc\n"); got != "" {
		t.Errorf("expected no title, got %q", got)
	}
}

func TestGuessAbstract(t *testing.T) {
	text := "A Title Long Enough To Be One\n" +
		"Abstract\n" +
		"We study the problem of linking catalogued\n" +
		"papers by shared attributes.\n" +
		"\n" +
		"1 Introduction\n"
	want := "We study the problem of linking catalogued papers by shared attributes."
	if got := guessAbstract(text); got != want {
		t.Errorf("guessAbstract() = %q, want %q", got, want)
	}
}

func TestGuessAbstract_InlineHeading(t *testing.T) {
	text := "Abstract: linking catalogued papers by shared attributes works well.\n\nIntro\n"
	got := guessAbstract(text)
	if got == "" || strings.HasPrefix(strings.ToLower(got), "abstract") {
		t.Errorf("inline heading not stripped: %q", got)
	}
}

func TestGuessAbstract_Missing(t *testing.T) {
	if got := guessAbstract("no heading here\njust text\n"); got != "" {
		t.Errorf("expected empty abstract, got %q", got)
	}
}

func TestGuessYear(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"picks latest", "submitted 2019, published 2021", 2021},
		{"ignores page numbers", "pp. 1024-1031, 2018", 2018},
		{"nothing plausible", "page 42 of 100", 0},
		{"far future ignored", "2099 predictions, written 2020", 2020},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guessYear(tt.text); got != tt.want {
				t.Errorf("guessYear(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
