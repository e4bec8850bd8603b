package utils

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/ayelder/ff-av/models"
)

func TestWriteCSV(t *testing.T) {
	players := []models.PlayerValue{
		{Name: "Josh Allen", Position: "QB", Team: "Buf", ProjectedValue: 54, AverageCost: 58.5, PercentDrafted: 99},
		{Name: "Christian McCaffrey", Position: "RB", Team: "SF", ProjectedValue: 51, AverageCost: 55, PercentDrafted: 98},
	}

	outFile := filepath.Join(t.TempDir(), "stats.csv")
	total, err := WriteCSV(outFile, players)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 rows written, got %d", total)
	}

	f, err := os.Open(outFile)
	if err != nil {
		t.Fatalf("failed to open output file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read output CSV: %v", err)
	}

	if len(records) != len(players)+1 {
		t.Fatalf("expected header + %d data lines, got %d lines", len(players), len(records))
	}
	if !reflect.DeepEqual(records[0], models.CSVHeader) {
		t.Errorf("unexpected header: %v", records[0])
	}

	// Numeric fields must round-trip through the file.
	for i, p := range players {
		got, err := strconv.ParseFloat(records[i+1][3], 64)
		if err != nil {
			t.Fatalf("row %d: projected value %q not numeric: %v", i, records[i+1][3], err)
		}
		if got != p.ProjectedValue {
			t.Errorf("row %d: projected value = %v, expected %v", i, got, p.ProjectedValue)
		}
	}
}

func TestWriteCSVNoPlayers(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "stats.csv")
	total, err := WriteCSV(outFile, nil)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0 rows written, got %d", total)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != "Name,Position,Team,Projected Value,Average Cost,Percent Drafted\n" {
		t.Errorf("expected header-only file, got %q", string(data))
	}
}

func TestWriteCSVOverwrites(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "stats.csv")
	if err := os.WriteFile(outFile, []byte("stale contents\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	players := []models.PlayerValue{
		{Name: "Player A", Position: "QB", Team: "Dal", ProjectedValue: 42, AverageCost: 40, PercentDrafted: 90},
	}
	if _, err := WriteCSV(outFile, players); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != "Name,Position,Team,Projected Value,Average Cost,Percent Drafted\nPlayer A,QB,Dal,42,40,90\n" {
		t.Errorf("expected file to be truncated and rewritten, got %q", string(data))
	}
}
