package scraper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ayelder/ff-av/models"
)

// FieldError reports a row field that was missing or failed numeric coercion.
type FieldError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: field %q: %q: %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("row %d: field %q not found", e.Row, e.Field)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseTable extracts player valuations from the draft analysis table HTML.
// Rows whose fields cannot be extracted are reported as FieldErrors
// alongside the players that parsed cleanly.
func ParseTable(html string) ([]models.PlayerValue, []error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, []error{fmt.Errorf("parse table HTML: %w", err)}
	}

	var players []models.PlayerValue
	var rowErrs []error

	doc.Find(RowSelector).Each(func(i int, row *goquery.Selection) {
		p, err := parseRow(i, row)
		if err != nil {
			rowErrs = append(rowErrs, err)
			return
		}
		players = append(players, p)
	})

	return players, rowErrs
}

func parseRow(idx int, row *goquery.Selection) (models.PlayerValue, error) {
	var p models.PlayerValue

	name, err := cellText(idx, row, NameSelector, "Name")
	if err != nil {
		return p, err
	}
	p.Name = name

	// Team and position share one cell as "TEAM - POS".
	teamPos, err := cellText(idx, row, TeamPositionSelector, "Position")
	if err != nil {
		return p, err
	}
	parts := strings.SplitN(teamPos, " - ", 2)
	if len(parts) != 2 {
		return p, &FieldError{Row: idx, Field: "Position", Value: teamPos,
			Err: fmt.Errorf("expected \"TEAM - POS\"")}
	}
	p.Team = strings.TrimSpace(parts[0])
	p.Position = strings.TrimSpace(parts[1])

	if p.ProjectedValue, err = cellNumber(idx, row, ProjectedValueSelector, "Projected Value"); err != nil {
		return p, err
	}
	if p.AverageCost, err = cellNumber(idx, row, AverageCostSelector, "Average Cost"); err != nil {
		return p, err
	}
	if p.PercentDrafted, err = cellNumber(idx, row, PercentDraftedSelector, "Percent Drafted"); err != nil {
		return p, err
	}

	return p, nil
}

func cellText(idx int, row *goquery.Selection, selector, field string) (string, error) {
	sel := row.Find(selector)
	if sel.Length() == 0 {
		return "", &FieldError{Row: idx, Field: field}
	}
	text := strings.TrimSpace(sel.First().Text())
	if text == "" {
		return "", &FieldError{Row: idx, Field: field}
	}
	return text, nil
}

func cellNumber(idx int, row *goquery.Selection, selector, field string) (float64, error) {
	text, err := cellText(idx, row, selector, field)
	if err != nil {
		return 0, err
	}

	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &FieldError{Row: idx, Field: field, Value: text, Err: err}
	}
	return value, nil
}
