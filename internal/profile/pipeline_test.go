package profile

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-harvester/internal/types"
)

// fakePage is a Navigator stub representing one already-opened profile page.
type fakePage struct {
	texts    map[string]string // selector -> text of the first match
	sections []fakeSection
}

type fakeSection struct {
	class string
	html  string
}

func (f *fakePage) Open(string) error                       { return nil }
func (f *fakePage) WaitVisible(string, time.Duration) error { return nil }
func (f *fakePage) WaitReady(string, time.Duration) error   { return nil }
func (f *fakePage) Click(string, int) error                 { return nil }
func (f *fakePage) Visible(string, time.Duration) bool      { return false }
func (f *fakePage) Back() error                             { return nil }
func (f *fakePage) Close()                                  {}

func (f *fakePage) Count(selector string) int {
	if selector == DefaultSelectors().Sections {
		return len(f.sections)
	}
	return 0
}

func (f *fakePage) Text(selector string, index int) (string, bool) {
	if index != 0 {
		return "", false
	}
	v, ok := f.texts[selector]
	return v, ok
}

func (f *fakePage) Attribute(selector string, index int, name string) (string, bool) {
	if selector != DefaultSelectors().Sections || name != "class" || index >= len(f.sections) {
		return "", false
	}
	return f.sections[index].class, true
}

func (f *fakePage) OuterHTML(selector string, index int) (string, bool) {
	if selector != DefaultSelectors().Sections || index >= len(f.sections) {
		return "", false
	}
	return f.sections[index].html, true
}

func newTestPipeline(page *fakePage) *Pipeline {
	return NewPipeline(page, DefaultSelectors(), zerolog.Nop())
}

func TestExtract_NoSectionsSignalsSkip(t *testing.T) {
	page := &fakePage{texts: map[string]string{
		DefaultSelectors().Name: "Jane Doe",
	}}

	prof, err := newTestPipeline(page).Extract("data analyst", "https://example.com/in/jane")
	assert.ErrorIs(t, err, ErrNoSections)
	assert.Nil(t, prof)
}

func TestExtract_UnrecognizedSectionsYieldEmptyProfile(t *testing.T) {
	page := &fakePage{
		texts: map[string]string{DefaultSelectors().Name: "Jane Doe"},
		sections: []fakeSection{
			{class: "core-section-container education", html: "<section></section>"},
			{class: "core-section-container languages", html: "<section></section>"},
		},
	}

	prof, err := newTestPipeline(page).Extract("data analyst", "https://example.com/in/jane")
	require.NoError(t, err)
	require.NotNil(t, prof)

	assert.Nil(t, prof.Summary)
	assert.Empty(t, prof.Experience)
	assert.Empty(t, prof.Projects)
	assert.Empty(t, prof.Certifications)
	assert.Equal(t, "Jane Doe", types.Deref(prof.Name))
	assert.Equal(t, "data analyst", prof.SearchedRole)
}

func TestExtract_IdentityFieldsIndependentlyFaultTolerant(t *testing.T) {
	sel := DefaultSelectors()
	page := &fakePage{
		texts: map[string]string{
			sel.Name:     "Jane Doe",
			sel.Location: "Pune, India",
			// headline and company selectors match nothing
		},
		sections: []fakeSection{{class: "summary", html: "<section><p>About me</p></section>"}},
	}

	prof, err := newTestPipeline(page).Extract("data analyst", "https://example.com/in/jane")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", types.Deref(prof.Name))
	assert.Equal(t, "Pune India", types.Deref(prof.Location))
	assert.Nil(t, prof.Headline)
	assert.Nil(t, prof.CurrentCompany)
}

func TestExtract_LocationTruncatedAtLineBreak(t *testing.T) {
	sel := DefaultSelectors()
	page := &fakePage{
		texts: map[string]string{
			sel.Location: "Mumbai, India\n500+ connections",
		},
		sections: []fakeSection{{class: "summary", html: "<section></section>"}},
	}

	prof, err := newTestPipeline(page).Extract("data analyst", "https://example.com/in/jane")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai India", types.Deref(prof.Location))
}

func TestExtract_RoutesSectionsByClass(t *testing.T) {
	page := &fakePage{
		texts: map[string]string{DefaultSelectors().Name: "Jane Doe"},
		sections: []fakeSection{
			{class: "core-section-container summary", html: `<section><p>Analyst and tinkerer</p></section>`},
			{class: "core-section-container experience", html: `
				<section><ul>
					<li class="experience-item"><h3 class="profile-section-card__title">Analyst</h3>
					<span class="date-range">2019-2021</span></li>
				</ul></section>`},
			{class: "core-section-container certifications", html: `
				<section><ul>
					<li class="profile-section-card"><h3 class="profile-section-card__title">Cert A</h3></li>
				</ul></section>`},
		},
	}

	prof, err := newTestPipeline(page).Extract("data analyst", "https://example.com/in/jane")
	require.NoError(t, err)

	assert.Equal(t, "Analyst and tinkerer", types.Deref(prof.Summary))
	require.Len(t, prof.Experience, 1)
	assert.Equal(t, "Analyst", types.Deref(prof.Experience[0].Role))
	assert.Equal(t, "2019", types.Deref(prof.Experience[0].StartDate))
	assert.Equal(t, "2021", types.Deref(prof.Experience[0].EndDate))
	require.Len(t, prof.Certifications, 1)
	assert.Equal(t, "Cert A", types.Deref(prof.Certifications[0].Title))
	assert.Empty(t, prof.Projects)
}

func TestSelectors_MergeFillsEmptyFields(t *testing.T) {
	custom := Selectors{Name: "h1.custom-name"}
	merged := custom.Merge(DefaultSelectors())

	assert.Equal(t, "h1.custom-name", merged.Name)
	assert.Equal(t, DefaultSelectors().Headline, merged.Headline)
	assert.Equal(t, DefaultSelectors().Sections, merged.Sections)
}
