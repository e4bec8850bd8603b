package utils

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ayelder/ff-av/models"
)

// WriteCSV writes the scraped player valuations to filename, header first,
// truncating any existing file. Returns the number of data rows written.
func WriteCSV(filename string, players []models.PlayerValue) (int, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(models.CSVHeader); err != nil {
		return 0, fmt.Errorf("write CSV header: %w", err)
	}
	for _, p := range players {
		if err := w.Write(p.Record()); err != nil {
			return 0, fmt.Errorf("write row for %q: %w", p.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush CSV: %w", err)
	}

	return len(players), nil
}
