package newsportal

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// SummaryLength is the maximum length of a generated summary in runes.
	SummaryLength = 150

	summaryEllipsis = "..."
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// inline tags do not separate words in extracted text
var inlineTags = map[string]struct{}{
	"a": {}, "b": {}, "i": {}, "u": {}, "em": {}, "strong": {}, "span": {},
	"code": {}, "sub": {}, "sup": {}, "small": {}, "mark": {},
}

// SlugFor turns a title into a lowercase, hyphen separated URL token.
// Accents are folded to their base letter and anything else outside [a-z0-9] separates words.
func SlugFor(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	slug := nonSlugChars.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(slug, "-")
}

// SummaryFor extracts plain text from body (which may be HTML) and cuts it to at most
// SummaryLength runes on a word boundary. A cut summary is always shorter than body.
func SummaryFor(body string) string {
	text := strings.Join(strings.Fields(plainText(body)), " ")

	rs := []rune(text)
	if len(rs) <= SummaryLength {
		return text
	}

	cut := rs[:SummaryLength-len(summaryEllipsis)]
	if i := lastSpace(cut); i > len(cut)/2 {
		cut = cut[:i]
	}

	return strings.TrimRight(string(cut), " ,.;:-") + summaryEllipsis
}

// GenerateSlug derives the slug from the current title. An article type name is
// used when the title has no usable characters.
func (a *Article) GenerateSlug(fallback string) string {
	if slug := SlugFor(a.Title); slug != "" {
		return slug
	}
	return strings.ToLower(fallback)
}

// GenerateSummary derives the summary from the resolved body.
func (a *Article) GenerateSummary() string {
	return SummaryFor(a.Body)
}

func plainText(body string) string {
	z := html.NewTokenizer(strings.NewReader(body))

	var (
		b    strings.Builder
		skip int
	)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)

			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
			}

			if _, ok := inlineTags[tag]; !ok {
				b.WriteByte(' ')
			}
		}
	}
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
