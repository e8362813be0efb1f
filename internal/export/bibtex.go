// Package export assembles BibTeX entries and bibliography files from
// catalogued papers.
package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"papergraph/internal/paper"
)

// ToBibTeX returns the BibTeX entry for a paper. A stored entry is
// returned verbatim; otherwise one is generated from the paper's fields.
func ToBibTeX(p *paper.Paper) string {
	if strings.TrimSpace(p.BibTeX) != "" {
		entry := strings.TrimRight(p.BibTeX, "\n")
		return entry + "\n"
	}
	return generateBibTeX(p)
}

// ToBibTeXList concatenates entries for multiple papers, blank-line
// separated.
func ToBibTeXList(papers []paper.Paper) string {
	var entries []string
	for i := range papers {
		entries = append(entries, ToBibTeX(&papers[i]))
	}
	return strings.Join(entries, "\n")
}

func generateBibTeX(p *paper.Paper) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", determineEntryType(p), CitationKey(p)))

	if authors := formatAuthors(p.AuthorSet()); authors != "" {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", authors))
	}
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(p.Title)))

	if p.Venue != "" {
		field := "journal"
		if determineEntryType(p) == "inproceedings" {
			field = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", field, escapeLatex(p.Venue)))
	}
	if p.Year != 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", p.Year))
	}
	if p.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", p.DOI))
	}
	if p.URL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", p.URL))
	}
	if p.Abstract != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", escapeLatex(p.Abstract)))
	}

	b.WriteString("}\n")
	return b.String()
}

var keyCleanRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// CitationKey derives a stable citation key for a paper: the external
// paper id when set, else first-author surname plus year, else the
// database id.
func CitationKey(p *paper.Paper) string {
	if p.PaperID != "" {
		return keyCleanRegex.ReplaceAllString(p.PaperID, "")
	}

	authors := p.AuthorSet()
	if len(authors) > 0 {
		surname := lastName(authors[0])
		key := keyCleanRegex.ReplaceAllString(strings.ToLower(surname), "")
		if key != "" {
			if p.Year != 0 {
				return key + strconv.Itoa(p.Year)
			}
			return key
		}
	}
	return "paper" + strconv.FormatInt(p.ID, 10)
}

// determineEntryType picks the BibTeX entry type from the venue name.
func determineEntryType(p *paper.Paper) string {
	venue := strings.ToLower(p.Venue)

	if strings.Contains(venue, "arxiv") ||
		strings.Contains(venue, "biorxiv") ||
		strings.Contains(venue, "medrxiv") {
		return "article"
	}
	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") ||
		strings.Contains(venue, "symposium") {
		return "inproceedings"
	}
	return "article"
}

// formatAuthors renders the stored author list in BibTeX style, joined
// with " and ".
func formatAuthors(authors []string) string {
	return strings.Join(authors, " and ")
}

// lastName guesses the surname from a single author string, handling
// both "First Last" and "Last, First" forms.
func lastName(author string) string {
	if i := strings.Index(author, ","); i >= 0 {
		return strings.TrimSpace(author[:i])
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
