// Package profile turns one opened profile page into a typed Profile record.
package profile

// Selectors maps each logical lookup the pipeline performs to a CSS
// selector. Page-layout changes are absorbed here (or in the config file)
// without touching extraction logic.
type Selectors struct {
	// Identity fields, read from fixed positions in the top card.
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	Location string `json:"location,omitempty"`
	Company  string `json:"company,omitempty"`

	// Landmark is an element whose presence confirms the profile page has
	// finished loading.
	Landmark string `json:"landmark,omitempty"`

	// Sections matches every content section element; each is classified by
	// its class attribute and routed to a section extractor.
	Sections string `json:"sections,omitempty"`
}

// DefaultSelectors returns the selector set for the public profile layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Name:     "main h1.top-card-layout__title",
		Headline: "main h2.top-card-layout__headline",
		Location: "main .top-card-layout__first-subline",
		Company:  "main .top-card-layout__second-subline",
		Landmark: "main .top-card-layout__entity-image",
		Sections: "main section.core-section-container",
	}
}

// Merge fills every empty field of s from defaults and returns the result.
func (s Selectors) Merge(defaults Selectors) Selectors {
	if s.Name == "" {
		s.Name = defaults.Name
	}
	if s.Headline == "" {
		s.Headline = defaults.Headline
	}
	if s.Location == "" {
		s.Location = defaults.Location
	}
	if s.Company == "" {
		s.Company = defaults.Company
	}
	if s.Landmark == "" {
		s.Landmark = defaults.Landmark
	}
	if s.Sections == "" {
		s.Sections = defaults.Sections
	}
	return s
}
