package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/profile-harvester/internal/types"
)

// CSVFilename derives the CSV name from the searched role.
func CSVFilename(role string) string {
	return strings.ReplaceAll(strings.TrimSpace(role), " ", "_") + "_profiles.csv"
}

// WriteCSV writes the scalar profile fields as a CSV file at path. List
// fields are carried only by the workbook; the CSV is a flat convenience
// view.
func WriteCSV(path string, profiles []types.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(profileHeaders); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range profiles {
		rec := []string{
			p.ProfileURL, p.SearchedRole, types.Deref(p.Name), types.Deref(p.Headline),
			types.Deref(p.CurrentCompany), types.Deref(p.Location), types.Deref(p.Summary),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	return w.Error()
}
