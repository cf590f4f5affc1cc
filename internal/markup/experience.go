package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/profile-harvester/internal/types"
)

const (
	selExperienceItem     = "li.experience-item"
	selEmployerLink       = "a.profile-section-card__subtitle-link"
	selExperienceLocation = "p.experience-item__location"
)

// Experiences extracts the work-history entries from an experience section
// fragment, in document order.
func Experiences(fragment string) ([]types.Experience, error) {
	doc, err := parseFragment("experience", fragment)
	if err != nil {
		return nil, err
	}

	var entries []types.Experience
	doc.Find(selExperienceItem).Each(func(_ int, item *goquery.Selection) {
		var exp types.Experience

		exp.Role = normalizedText(item.Find(selCardTitle))

		if employer := item.Find(selEmployerLink); employer.Length() > 0 {
			exp.CompanyLink = hrefOf(employer)
			exp.Company = normalizedText(employer)
		}

		if dates := normalizedText(item.Find(selDateRange)); dates != nil {
			exp.StartDate, exp.EndDate = splitDateRange(*dates)
		}

		// The duration span's text overlaps the raw end-date text and must
		// be removed from it so the value is not double-counted.
		if duration := normalizedText(item.Find(selDuration)); duration != nil {
			exp.Duration = duration
			if exp.EndDate != nil {
				end := strings.TrimSpace(strings.ReplaceAll(*exp.EndDate, *duration, ""))
				exp.EndDate = &end
			}
		}

		exp.Location = normalizedText(item.Find(selExperienceLocation))
		exp.Description = description(item)

		entries = append(entries, exp)
	})

	return entries, nil
}
