package markup

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/profile-harvester/internal/types"
)

const (
	selProjectItem   = "li.personal-project"
	selProjectButton = "a.personal-project__button"
)

// Projects extracts the side-project entries from a projects section
// fragment, in document order.
func Projects(fragment string) ([]types.Project, error) {
	doc, err := parseFragment("projects", fragment)
	if err != nil {
		return nil, err
	}

	var projects []types.Project
	doc.Find(selProjectItem).Each(func(_ int, item *goquery.Selection) {
		var proj types.Project

		proj.Name = normalizedText(item.Find(selCardTitle))

		if dates := normalizedText(item.Find(selDateRange)); dates != nil {
			proj.StartDate, proj.EndDate = splitDateRange(*dates)
		}

		proj.Description = description(item)
		proj.Link = hrefOf(item.Find(selProjectButton))

		projects = append(projects, proj)
	})

	return projects, nil
}
