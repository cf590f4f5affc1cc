// Package types provides type definitions for the profile records produced by a crawl.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Optional textual fields are pointers: nil means the source node was absent
// on the page, which is distinct from a node that was present but empty.

// Profile is one normalized record of a single person's public professional page.
// It is assembled once per successfully opened profile page and never mutated
// afterwards.
type Profile struct {
	ProfileURL     string          `json:"profile_url"`
	SearchedRole   string          `json:"searched_role"`
	Name           *string         `json:"name,omitempty"`
	Headline       *string         `json:"headline,omitempty"`
	CurrentCompany *string         `json:"current_company,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Summary        *string         `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// Experience represents a single entry of a profile's work history.
type Experience struct {
	Role        *string `json:"role,omitempty"`
	Company     *string `json:"company,omitempty"`
	CompanyLink *string `json:"company_link,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Project represents a side project listed on a profile.
type Project struct {
	Name        *string `json:"name,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// Certification represents a certification listed on a profile.
// Every field is independently optional; an item lacking a title still
// produces a record.
type Certification struct {
	Title    *string `json:"title,omitempty"`
	Issuer   *string `json:"issuer,omitempty"`
	IssuedOn *string `json:"issued_on,omitempty"`
	Link     *string `json:"link,omitempty"`
}

// Str returns a pointer to s. It exists because Go has no pointer literals
// for strings.
func Str(s string) *string {
	return &s
}

// Deref returns the value of p, or the empty string when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
