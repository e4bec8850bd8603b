package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayelder/ff-av/config"
	"github.com/ayelder/ff-av/utils"
)

type stubSource struct {
	pages map[int]string
	err   error
	calls []int
}

func (s *stubSource) FetchTableHTML(ctx context.Context, offset int) (string, error) {
	s.calls = append(s.calls, offset)
	if s.err != nil {
		return "", s.err
	}
	return s.pages[offset], nil
}

// tableHTML builds a draft analysis table from (name, teamPos, value) triples.
func tableHTML(rows ...[3]string) string {
	var b strings.Builder
	b.WriteString(`<table id="draftanalysistable"><tbody>`)
	for _, row := range rows {
		fmt.Fprintf(&b, `<tr>
			<td><div><div><div><a href="#">%s</a> <span>%s</span></div></div></div></td>
			<td><div>%s</div></td>
			<td><div>$1</div></td>
			<td><div>1%%</div></td>
		</tr>`, row[0], row[1], row[2])
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

func testConfig(numPlayers, perPage int) config.Config {
	cfg := config.Default()
	cfg.NumPlayers = numPlayers
	cfg.ResultsPerPage = perPage
	cfg.PageDelay = 0
	return cfg
}

func TestRunPreservesRowCount(t *testing.T) {
	src := &stubSource{pages: map[int]string{
		0: tableHTML(
			[3]string{"Player A", "Dal - QB", "$42"},
			[3]string{"Player B", "SF - RB", "$40"},
		),
		2: tableHTML(
			[3]string{"Player C", "Mia - WR", "$38"},
			[3]string{"Player D", "KC - TE", "$30"},
		),
	}}

	players, err := Run(context.Background(), src, testConfig(4, 2))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(players) != 4 {
		t.Fatalf("expected 4 players, got %d", len(players))
	}
	if len(src.calls) != 2 || src.calls[0] != 0 || src.calls[1] != 2 {
		t.Errorf("expected offsets [0 2], got %v", src.calls)
	}

	// Source page order must be preserved in the output.
	names := []string{"Player A", "Player B", "Player C", "Player D"}
	for i, want := range names {
		if players[i].Name != want {
			t.Errorf("player %d: expected %q, got %q", i, want, players[i].Name)
		}
	}
}

func TestRunFetchErrorIsFatal(t *testing.T) {
	fetchErr := errors.New("page unreachable")
	src := &stubSource{err: fetchErr}

	players, err := Run(context.Background(), src, testConfig(4, 2))
	if err == nil {
		t.Fatal("expected Run to fail on fetch error")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
	if players != nil {
		t.Errorf("expected no players on fatal error, got %d", len(players))
	}
	if len(src.calls) != 1 {
		t.Errorf("expected run to abort after first page, got calls %v", src.calls)
	}
}

func TestRunSkipsMalformedRows(t *testing.T) {
	src := &stubSource{pages: map[int]string{
		0: tableHTML(
			[3]string{"Player A", "Dal - QB", "$42"},
			[3]string{"Player B", "SF - RB", "N/A"},
		),
	}}

	players, err := Run(context.Background(), src, testConfig(2, 2))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected malformed row to be skipped, got %d players", len(players))
	}
	if players[0].Name != "Player A" {
		t.Errorf("expected remaining player 'Player A', got %q", players[0].Name)
	}
}

func TestRunAndExportSingleRow(t *testing.T) {
	src := &stubSource{pages: map[int]string{
		0: tableHTML([3]string{"Player A", "Dal - QB", "$42"}),
	}}
	cfg := testConfig(1, 1)

	players, err := Run(context.Background(), src, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	outFile := filepath.Join(t.TempDir(), "stats.csv")
	if _, err := utils.WriteCSV(outFile, players); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 data line, got %d lines", len(lines))
	}
	if lines[0] != "Name,Position,Team,Projected Value,Average Cost,Percent Drafted" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Player A,QB,Dal,42,1,1" {
		t.Errorf("unexpected data line: %q", lines[1])
	}
}
