// Package pdf pulls catalog metadata (DOI, title, year) out of PDF
// files so papers can be imported without retyping.
package pdf

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// DOI pattern: 10.XXXX/... where XXXX is 4+ digits
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Metadata is the best-effort extraction result for one PDF. Empty
// fields mean "not found", never an error.
type Metadata struct {
	Title    string
	DOI      string
	Year     int
	Abstract string
}

// Extract reads the leading pages of the PDF at path and guesses its
// title, DOI, publication year, and abstract.
func Extract(path string) (*Metadata, error) {
	text, err := leadingText(path, 3)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		Title:    guessTitle(text),
		DOI:      FindDOI(text),
		Year:     guessYear(text),
		Abstract: guessAbstract(text),
	}, nil
}

// ExtractText returns the plain text of the first maxPages pages
// (all pages when maxPages <= 0).
func ExtractText(path string, maxPages int) (string, error) {
	return leadingText(path, maxPages)
}

func leadingText(path string, maxPages int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that fails to decode should not sink the import.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// FindDOI returns the first plausible DOI in text, or "".
func FindDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if isValidDOI(match) {
			return match
		}
	}
	return ""
}

func isValidDOI(doi string) bool {
	if len(doi) < 10 || !strings.HasPrefix(doi, "10.") {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash != -1 && slash < len(doi)-1
}

// guessTitle takes the first substantial line of the text, skipping
// likely headers and footers.
func guessTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 && !isHeaderLine(line) {
			return line
		}
	}
	return ""
}

// guessYear returns the most recent plausible publication year found in
// the text, capped at next year to tolerate in-press dates.
func guessYear(text string) int {
	ceiling := time.Now().Year() + 1
	best := 0
	for _, match := range yearPattern.FindAllString(text, -1) {
		y, err := strconv.Atoi(match)
		if err != nil || y > ceiling {
			continue
		}
		if y > best {
			best = y
		}
	}
	return best
}

// abstractMaxLen caps the stored abstract snippet.
const abstractMaxLen = 1500

// guessAbstract returns the text following an "Abstract" heading, with
// whitespace collapsed, up to abstractMaxLen runes. Empty when no such
// heading exists.
func guessAbstract(text string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		head := strings.ToLower(strings.TrimSpace(line))
		head = strings.TrimSuffix(head, ":")
		if head == "abstract" {
			start = i + 1
			break
		}
		if rest, ok := strings.CutPrefix(head, "abstract"); ok && len(rest) > 20 {
			// Heading and body share the line.
			lines[i] = strings.TrimSpace(line)[len("abstract"):]
			start = i
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return ""
	}

	var words []string
	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		if line == "" && len(words) > 0 {
			break
		}
		words = append(words, strings.Fields(line)...)
	}

	out := strings.Join(words, " ")
	if len(out) > abstractMaxLen {
		cut := strings.LastIndex(out[:abstractMaxLen], " ")
		if cut <= 0 {
			cut = abstractMaxLen
		}
		out = out[:cut]
	}
	return strings.TrimLeft(out, ":.- ")
}

// isHeaderLine checks if a line is likely a header/footer.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "journal") {
		return true
	}
	if strings.Contains(lower, "volume") && strings.Contains(lower, "issue") {
		return true
	}
	if strings.Contains(lower, "copyright") {
		return true
	}
	if strings.Contains(lower, "article") && strings.Contains(lower, "published") {
		return true
	}
	return false
}
