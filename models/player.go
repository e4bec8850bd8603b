package models

import "strconv"

// CSVHeader is the fixed column order for the output file.
var CSVHeader = []string{"Name", "Position", "Team", "Projected Value", "Average Cost", "Percent Drafted"}

// PlayerValue holds the auction draft valuation scraped for one player.
type PlayerValue struct {
	Name           string
	Position       string
	Team           string
	ProjectedValue float64
	AverageCost    float64
	PercentDrafted float64
}

// Record returns the player's CSV fields in CSVHeader order.
func (p PlayerValue) Record() []string {
	return []string{
		p.Name,
		p.Position,
		p.Team,
		strconv.FormatFloat(p.ProjectedValue, 'f', -1, 64),
		strconv.FormatFloat(p.AverageCost, 'f', -1, 64),
		strconv.FormatFloat(p.PercentDrafted, 'f', -1, 64),
	}
}
