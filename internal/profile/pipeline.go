package profile

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/profile-harvester/internal/markup"
	"github.com/jonathan/profile-harvester/internal/navigator"
	"github.com/jonathan/profile-harvester/internal/normalize"
	"github.com/jonathan/profile-harvester/internal/types"
)

// ErrNoSections signals that an opened page exposes no content sections at
// all. The caller must skip the profile entirely; no partial record is
// produced.
var ErrNoSections = errors.New("profile page exposes no content sections")

// Pipeline extracts one Profile record from the page a Navigator session is
// currently on.
type Pipeline struct {
	nav navigator.Navigator
	sel Selectors
	log zerolog.Logger
}

// NewPipeline returns a Pipeline reading through nav with the given selector
// mapping.
func NewPipeline(nav navigator.Navigator, sel Selectors, log zerolog.Logger) *Pipeline {
	return &Pipeline{nav: nav, sel: sel, log: log}
}

// identity reads the four basic identity fields from their fixed positions.
// Each read is independently fault-tolerant: a missing element yields a nil
// field without affecting the other three.
func (p *Pipeline) identity(prof *types.Profile) {
	if v, ok := p.nav.Text(p.sel.Name, 0); ok {
		prof.Name = types.Str(normalize.Text(v))
	}
	if v, ok := p.nav.Text(p.sel.Headline, 0); ok {
		prof.Headline = types.Str(normalize.Text(v))
	}
	if v, ok := p.nav.Text(p.sel.Location, 0); ok {
		// Text after the first line break is decorative and discarded.
		if i := strings.IndexByte(v, '\n'); i >= 0 {
			v = v[:i]
		}
		prof.Location = types.Str(normalize.Text(v))
	}
	if v, ok := p.nav.Text(p.sel.Company, 0); ok {
		prof.CurrentCompany = types.Str(normalize.Text(v))
	}
}

// Extract assembles the Profile for the currently opened page. It returns
// ErrNoSections when the page exposes no content sections; any recognized
// section is routed to its extractor, unrecognized sections are ignored. A
// page whose sections are all unrecognized still yields a valid Profile with
// empty list fields.
func (p *Pipeline) Extract(role, url string) (*types.Profile, error) {
	prof := &types.Profile{
		ProfileURL:   url,
		SearchedRole: role,
	}

	p.identity(prof)

	total := p.nav.Count(p.sel.Sections)
	if total == 0 {
		return nil, ErrNoSections
	}

	for i := 0; i < total; i++ {
		class, _ := p.nav.Attribute(p.sel.Sections, i, "class")
		kind := markup.Classify(class)
		if kind == markup.KindUnknown {
			continue
		}

		fragment, ok := p.nav.OuterHTML(p.sel.Sections, i)
		if !ok {
			p.log.Debug().Int("section", i).Msg("section markup unavailable, skipping")
			continue
		}

		p.extractSection(prof, kind, fragment)
	}

	return prof, nil
}

// extractSection routes one section's markup to its extractor. Extraction
// failures are absorbed: the section contributes nothing and the rest of the
// profile is kept.
func (p *Pipeline) extractSection(prof *types.Profile, kind markup.Kind, fragment string) {
	var err error
	switch kind {
	case markup.KindSummary:
		prof.Summary, err = markup.Summary(fragment)
	case markup.KindExperience:
		prof.Experience, err = markup.Experiences(fragment)
	case markup.KindProjects:
		prof.Projects, err = markup.Projects(fragment)
	case markup.KindCertifications:
		prof.Certifications, err = markup.Certifications(fragment)
	}
	if err != nil {
		p.log.Debug().Err(err).Msg("section extraction failed, skipping section")
	}
}
