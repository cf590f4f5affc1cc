package markup

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/profile-harvester/internal/types"
)

const (
	selCertificationItem   = "li.profile-section-card"
	selCertificationDate   = "div.certifications__date-range"
	selCertificationButton = "a.certifications__button"
)

// Certifications extracts the certification entries from a certifications
// section fragment, in document order. Every field is independently
// optional; an item lacking a title still produces a record.
func Certifications(fragment string) ([]types.Certification, error) {
	doc, err := parseFragment("certifications", fragment)
	if err != nil {
		return nil, err
	}

	var certs []types.Certification
	doc.Find(selCertificationItem).Each(func(_ int, item *goquery.Selection) {
		certs = append(certs, types.Certification{
			Title:    normalizedText(item.Find(selCardTitle)),
			Issuer:   normalizedText(item.Find(selCardSubtitle)),
			IssuedOn: normalizedText(item.Find(selCertificationDate)),
			Link:     hrefOf(item.Find(selCertificationButton)),
		})
	})

	return certs, nil
}
