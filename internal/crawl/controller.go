// Package crawl drives the search-result traversal: pagination, navigation
// into each profile result, extraction, and the accumulated outcome.
package crawl

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/profile-harvester/internal/navigator"
	"github.com/jonathan/profile-harvester/internal/profile"
	"github.com/jonathan/profile-harvester/internal/types"
)

// The search query scopes results to public profile pages, in English,
// from India, and excludes job postings.
const (
	searchBase     = "https://www.google.com/search?q="
	siteFilter     = " site:linkedin.com/in -jobs"
	languageFilter = " language:en"
	locationFilter = " location:In"
)

// SearchURL builds the search-engine URL for one role query.
func SearchURL(role string) string {
	return searchBase + url.QueryEscape(role+siteFilter+languageFilter+locationFilter)
}

// Options tunes the controller's selectors and waits.
type Options struct {
	// ResultLinks matches the profile links on a search-results page.
	ResultLinks string
	// NextControl matches the pagination control.
	NextControl string
	// WaitTimeout bounds each wait for result links and profile landmarks.
	WaitTimeout time.Duration
	// ProbeTimeout bounds the visibility probe for the next-page control.
	ProbeTimeout time.Duration
	// MaxPages caps pagination; 0 means unbounded.
	MaxPages int
}

// DefaultOptions returns the controller defaults for the search engine's
// result layout.
func DefaultOptions() Options {
	return Options{
		ResultLinks:  `#rso a[href*="linkedin.com/in"]`,
		NextControl:  "#pnnext",
		WaitTimeout:  10 * time.Second,
		ProbeTimeout: 3 * time.Second,
	}
}

// Result is the outcome of one crawl invocation. The profile sequence is
// owned by the caller; nothing else retains it.
type Result struct {
	Role     string
	Profiles []types.Profile
	Skipped  int
	Pages    int
	Elapsed  time.Duration
}

// Controller owns the pagination loop over one navigator session. The
// session's release stays with whoever acquired it.
type Controller struct {
	nav  navigator.Navigator
	pipe *profile.Pipeline
	sel  profile.Selectors
	opts Options
	log  zerolog.Logger
}

// NewController wires a controller over an already-acquired navigator
// session.
func NewController(nav navigator.Navigator, sel profile.Selectors, opts Options, log zerolog.Logger) *Controller {
	return &Controller{
		nav:  nav,
		pipe: profile.NewPipeline(nav, sel, log),
		sel:  sel,
		opts: opts,
		log:  log,
	}
}

// Run performs the full crawl for one role label: open the search page,
// walk every result link on every page until the next-page control
// disappears, and accumulate one Profile per successfully extracted result.
// Per-profile failures are absorbed and counted as skips; a timeout waiting
// for result links ends the crawl normally.
func (c *Controller) Run(role string) (*Result, error) {
	start := time.Now()
	res := &Result{Role: role}

	if err := c.nav.Open(SearchURL(role)); err != nil {
		return nil, fmt.Errorf("failed to open search results: %w", err)
	}

	hasNext := true
	for hasNext {
		if err := c.nav.WaitVisible(c.opts.ResultLinks, c.opts.WaitTimeout); err != nil {
			// No result links on this page: end of results, not a failure.
			c.log.Info().Int("pages", res.Pages).Msg("no result links visible, ending crawl")
			break
		}

		res.Pages++
		if err := c.walkResults(role, res); err != nil {
			return res, err
		}

		if c.opts.MaxPages > 0 && res.Pages >= c.opts.MaxPages {
			c.log.Info().Int("pages", res.Pages).Msg("page cap reached")
			break
		}

		hasNext = c.nextPage()
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// walkResults opens every result link on the current page in document order
// and extracts a profile from each one that loads.
func (c *Controller) walkResults(role string, res *Result) error {
	total := c.nav.Count(c.opts.ResultLinks)
	c.log.Debug().Int("page", res.Pages).Int("links", total).Msg("walking result links")

	for i := 0; i < total; i++ {
		href, _ := c.nav.Attribute(c.opts.ResultLinks, i, "href")

		if err := c.nav.Click(c.opts.ResultLinks, i); err != nil {
			res.Skipped++
			c.log.Debug().Err(err).Str("url", href).Msg("result link not clickable, skipping")
			continue
		}

		if err := c.nav.WaitReady(c.sel.Landmark, c.opts.WaitTimeout); err != nil {
			res.Skipped++
			c.log.Debug().Str("url", href).Msg("profile landmark never appeared, skipping")
			// Best effort: keep the remaining result links addressable.
			_ = c.nav.Back()
			continue
		}

		prof, err := c.pipe.Extract(role, href)
		if err != nil {
			if !errors.Is(err, profile.ErrNoSections) {
				return err
			}
			res.Skipped++
			c.log.Debug().Str("url", href).Msg("no extractable profile, skipping")
			_ = c.nav.Back()
			continue
		}

		res.Profiles = append(res.Profiles, *prof)
		c.log.Info().Str("url", href).Str("name", types.Deref(prof.Name)).Msg("profile captured")

		if err := c.nav.Back(); err != nil {
			return fmt.Errorf("failed to return to search results: %w", err)
		}
	}

	return nil
}

// nextPage probes for the pagination control and activates it when visible.
// Absence of the control is the loop's normal terminal condition.
func (c *Controller) nextPage() bool {
	if !c.nav.Visible(c.opts.NextControl, c.opts.ProbeTimeout) {
		return false
	}
	if err := c.nav.Click(c.opts.NextControl, 0); err != nil {
		c.log.Debug().Err(err).Msg("next-page control not clickable, ending crawl")
		return false
	}
	return true
}
