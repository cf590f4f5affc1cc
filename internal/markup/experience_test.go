package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-harvester/internal/types"
)

func TestExperiences_FullEntry(t *testing.T) {
	fragment := `
		<section class="experience">
			<ul>
				<li class="experience-item">
					<h3 class="profile-section-card__title">Data Analyst</h3>
					<a class="profile-section-card__subtitle-link" href="https://example.com/company/acme">Acme Corp</a>
					<span class="date-range">Jan 2019-Dec 2021 3 yrs<span class="date-range__duration">3 yrs</span></span>
					<p class="experience-item__location">Bengaluru, India</p>
					<p class="show-more-less-text__text--less">Built dashboards…</p>
				</li>
			</ul>
		</section>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	exp := entries[0]
	assert.Equal(t, "Data Analyst", types.Deref(exp.Role))
	assert.Equal(t, "Acme Corp", types.Deref(exp.Company))
	assert.Equal(t, "https://example.com/company/acme", types.Deref(exp.CompanyLink))
	assert.Equal(t, "Jan 2019", types.Deref(exp.StartDate))
	assert.Equal(t, "3 yrs", types.Deref(exp.Duration))
	assert.Equal(t, "Bengaluru India", types.Deref(exp.Location))
	assert.Equal(t, "Built dashboards", types.Deref(exp.Description))

	// The duration text must be removed from the raw end-date segment.
	require.NotNil(t, exp.EndDate)
	assert.Equal(t, "Dec 2021", *exp.EndDate)
	assert.NotContains(t, *exp.EndDate, "3 yrs")
}

func TestExperiences_DurationEqualsEndSegment(t *testing.T) {
	fragment := `
		<li class="experience-item">
			<h3 class="profile-section-card__title">Analyst</h3>
			<span class="date-range">Jan 2020-Mar 2022</span>
			<span class="date-range__duration">Mar 2022</span>
		</li>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	exp := entries[0]
	assert.Equal(t, "Jan 2020", types.Deref(exp.StartDate))
	assert.Equal(t, "Mar 2022", types.Deref(exp.Duration))
	require.NotNil(t, exp.EndDate)
	assert.Empty(t, *exp.EndDate)
	assert.NotContains(t, *exp.EndDate, "Mar 2022")
}

func TestExperiences_ExpandedDescriptionWins(t *testing.T) {
	fragment := `
		<li class="experience-item">
			<h3 class="profile-section-card__title">Engineer</h3>
			<p class="show-more-less-text__text--less">Short text</p>
			<p class="show-more-less-text__text--more">The full untruncated description</p>
		</li>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "The full untruncated description", types.Deref(entries[0].Description))
}

func TestExperiences_MissingOptionalFields(t *testing.T) {
	fragment := `
		<li class="experience-item">
			<h3 class="profile-section-card__title">Consultant</h3>
		</li>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	exp := entries[0]
	assert.Equal(t, "Consultant", types.Deref(exp.Role))
	assert.Nil(t, exp.Company)
	assert.Nil(t, exp.CompanyLink)
	assert.Nil(t, exp.StartDate)
	assert.Nil(t, exp.EndDate)
	assert.Nil(t, exp.Duration)
	assert.Nil(t, exp.Location)
	assert.Nil(t, exp.Description)
}

func TestExperiences_MissingRoleHeading(t *testing.T) {
	fragment := `
		<li class="experience-item">
			<span class="date-range">2019-2021</span>
		</li>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	exp := entries[0]
	assert.Nil(t, exp.Role)
	assert.Equal(t, "2019", types.Deref(exp.StartDate))
	assert.Equal(t, "2021", types.Deref(exp.EndDate))
}

func TestExperiences_DateRangeWithoutEnd(t *testing.T) {
	fragment := `
		<li class="experience-item">
			<h3 class="profile-section-card__title">Founder</h3>
			<span class="date-range">2023</span>
		</li>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2023", types.Deref(entries[0].StartDate))
	assert.Nil(t, entries[0].EndDate)
}

func TestExperiences_EmptySection(t *testing.T) {
	entries, err := Experiences(`<section class="experience"><ul></ul></section>`)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExperiences_PreservesDocumentOrder(t *testing.T) {
	fragment := `
		<ul>
			<li class="experience-item"><h3 class="profile-section-card__title">First</h3></li>
			<li class="experience-item"><h3 class="profile-section-card__title">Second</h3></li>
			<li class="experience-item"><h3 class="profile-section-card__title">Third</h3></li>
		</ul>
	`

	entries, err := Experiences(fragment)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "First", types.Deref(entries[0].Role))
	assert.Equal(t, "Second", types.Deref(entries[1].Role))
	assert.Equal(t, "Third", types.Deref(entries[2].Role))
}
