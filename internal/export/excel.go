// Package export persists an accumulated profile set to tabular files.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/profile-harvester/internal/types"
)

// Sheet names of the workbook. Scalar fields live on the Profiles sheet;
// each list-valued field gets its own sheet with one row per sub-record,
// keyed by the profile URL, so the workbook is lossless.
const (
	SheetProfiles       = "Profiles"
	SheetExperience     = "Experience"
	SheetProjects       = "Projects"
	SheetCertifications = "Certifications"
)

var (
	profileHeaders = []string{
		"profile_url", "searched_role", "name", "headline",
		"current_company", "location", "summary",
	}
	experienceHeaders = []string{
		"profile_url", "role", "company", "company_link",
		"start_date", "end_date", "duration", "location", "description",
	}
	projectHeaders = []string{
		"profile_url", "name", "start_date", "end_date", "description", "link",
	}
	certificationHeaders = []string{
		"profile_url", "title", "issuer", "issued_on", "link",
	}
)

// Filename derives the workbook name from the searched role.
func Filename(role string) string {
	return strings.ReplaceAll(strings.TrimSpace(role), " ", "_") + "_profiles.xlsx"
}

// WriteWorkbook writes the profile set as one xlsx workbook at path.
func WriteWorkbook(path string, profiles []types.Profile) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetProfiles); err != nil {
		return fmt.Errorf("failed to name profiles sheet: %w", err)
	}
	for _, sheet := range []string{SheetExperience, SheetProjects, SheetCertifications} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	if err := writeRow(f, SheetProfiles, 1, headerCells(profileHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, SheetExperience, 1, headerCells(experienceHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, SheetProjects, 1, headerCells(projectHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, SheetCertifications, 1, headerCells(certificationHeaders)); err != nil {
		return err
	}

	expRow, projRow, certRow := 2, 2, 2
	for i, p := range profiles {
		if err := writeRow(f, SheetProfiles, i+2, []any{
			p.ProfileURL, p.SearchedRole, types.Deref(p.Name), types.Deref(p.Headline),
			types.Deref(p.CurrentCompany), types.Deref(p.Location), types.Deref(p.Summary),
		}); err != nil {
			return err
		}

		for _, exp := range p.Experience {
			if err := writeRow(f, SheetExperience, expRow, []any{
				p.ProfileURL, types.Deref(exp.Role), types.Deref(exp.Company),
				types.Deref(exp.CompanyLink), types.Deref(exp.StartDate),
				types.Deref(exp.EndDate), types.Deref(exp.Duration),
				types.Deref(exp.Location), types.Deref(exp.Description),
			}); err != nil {
				return err
			}
			expRow++
		}

		for _, proj := range p.Projects {
			if err := writeRow(f, SheetProjects, projRow, []any{
				p.ProfileURL, types.Deref(proj.Name), types.Deref(proj.StartDate),
				types.Deref(proj.EndDate), types.Deref(proj.Description), types.Deref(proj.Link),
			}); err != nil {
				return err
			}
			projRow++
		}

		for _, cert := range p.Certifications {
			if err := writeRow(f, SheetCertifications, certRow, []any{
				p.ProfileURL, types.Deref(cert.Title), types.Deref(cert.Issuer),
				types.Deref(cert.IssuedOn), types.Deref(cert.Link),
			}); err != nil {
				return err
			}
			certRow++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func headerCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
