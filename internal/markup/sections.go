package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/profile-harvester/internal/normalize"
)

// Selectors for the structural elements shared by profile sections.
const (
	selCardTitle    = "h3.profile-section-card__title"
	selCardSubtitle = "h4.profile-section-card__subtitle"
	selDateRange    = "span.date-range"
	selDuration     = "span.date-range__duration"
	selDescLess     = "p.show-more-less-text__text--less"
	selDescMore     = "p.show-more-less-text__text--more"
)

// Kind identifies which extractor a profile section belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindSummary
	KindExperience
	KindProjects
	KindCertifications
)

// Classify maps a section element's class attribute to its extractor kind.
// Unrecognized classes map to KindUnknown and are skipped by the caller.
func Classify(class string) Kind {
	switch {
	case strings.Contains(class, "summary"):
		return KindSummary
	case strings.Contains(class, "experience"):
		return KindExperience
	case strings.Contains(class, "projects"):
		return KindProjects
	case strings.Contains(class, "certifications"):
		return KindCertifications
	default:
		return KindUnknown
	}
}

func parseFragment(section, fragment string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, &ParseError{Section: section, Cause: err}
	}
	return doc, nil
}

// normalizedText returns the normalized text of the first matched node, or
// nil when the selection is empty.
func normalizedText(sel *goquery.Selection) *string {
	if sel.Length() == 0 {
		return nil
	}
	text := normalize.Text(sel.First().Text())
	return &text
}

// hrefOf returns the href attribute of the first matched node, or nil when
// the selection is empty or carries no href.
func hrefOf(sel *goquery.Selection) *string {
	if sel.Length() == 0 {
		return nil
	}
	href, ok := sel.First().Attr("href")
	if !ok {
		return nil
	}
	return &href
}

// description returns the descriptive text of a card, preferring the
// expanded variant over the collapsed one. The expanded node carries the
// full untruncated text and is authoritative whenever it exists.
func description(item *goquery.Selection) *string {
	if more := item.Find(selDescMore); more.Length() > 0 {
		return normalizedText(more)
	}
	return normalizedText(item.Find(selDescLess))
}

// splitDateRange splits a normalized date-range string on its first hyphen.
// The end segment is returned only when the range actually contains one.
func splitDateRange(rangeText string) (start *string, end *string) {
	parts := strings.SplitN(rangeText, "-", 2)
	s := strings.TrimSpace(parts[0])
	start = &s
	if len(parts) > 1 {
		e := strings.TrimSpace(parts[1])
		end = &e
	}
	return start, end
}

// Summary extracts the about text from a summary section fragment. Internal
// line breaks become periods before normalization. A section without a
// paragraph node yields nil.
func Summary(fragment string) (*string, error) {
	doc, err := parseFragment("summary", fragment)
	if err != nil {
		return nil, err
	}

	p := doc.Find("p")
	if p.Length() == 0 {
		return nil, nil
	}

	text := strings.ReplaceAll(p.First().Text(), "\n", ".")
	text = normalize.Text(text)
	return &text, nil
}
