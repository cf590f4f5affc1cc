// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/profile-harvester/internal/crawl"
	"github.com/jonathan/profile-harvester/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCrawlSummary outputs a human-readable summary of a finished crawl run.
func (p *Printer) PrintCrawlSummary(result *crawl.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:      %s\n", result.Role))
	sb.WriteString(fmt.Sprintf("Captured:  %d profiles\n", len(result.Profiles)))
	sb.WriteString(fmt.Sprintf("Skipped:   %d results\n", result.Skipped))
	sb.WriteString(fmt.Sprintf("Pages:     %d\n", result.Pages))
	sb.WriteString(fmt.Sprintf("Elapsed:   %s", result.Elapsed.Round(100*time.Millisecond)))

	p.printBox("CRAWL SUMMARY", sb.String())
}

// PrintProfile outputs a condensed view of a single captured profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", types.Deref(profile.Name)))
	sb.WriteString(fmt.Sprintf("Headline:  %s\n", types.Deref(profile.Headline)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", types.Deref(profile.Location)))
	sb.WriteString(fmt.Sprintf("URL:       %s\n", profile.ProfileURL))

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", types.Deref(exp.Role)))
			if exp.Company != nil {
				sb.WriteString(fmt.Sprintf(" @ %s", *exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
	}

	if len(profile.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		count := min(len(profile.Projects), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", types.Deref(profile.Projects[i].Name)))
		}
		if len(profile.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Projects)-3))
		}
	}

	if len(profile.Certifications) > 0 {
		sb.WriteString("\nCertifications:\n")
		count := min(len(profile.Certifications), 3)
		for i := 0; i < count; i++ {
			cert := profile.Certifications[i]
			sb.WriteString(fmt.Sprintf("  • %s", types.Deref(cert.Title)))
			if cert.Issuer != nil {
				sb.WriteString(fmt.Sprintf(" (%s)", *cert.Issuer))
			}
			sb.WriteString("\n")
		}
		if len(profile.Certifications) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Certifications)-3))
		}
	}

	p.printBox("CAPTURED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
