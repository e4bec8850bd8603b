package scraper

// CSS selectors used across the scraper.
// Centralising them makes updates after a Yahoo! layout change trivial.
const (
	// Draft analysis page
	TableSelector = `#draftanalysistable`
	RowSelector   = `#draftanalysistable tbody tr`

	// Per-row cells. The first cell holds the player link and a
	// "TEAM - POS" span; the remaining cells hold one value each.
	NameSelector           = `td:nth-child(1) > div > div:first-child > div > a`
	TeamPositionSelector   = `td:nth-child(1) > div > div:first-child > div > span`
	ProjectedValueSelector = `td:nth-child(2) > div`
	AverageCostSelector    = `td:nth-child(3) > div`
	PercentDraftedSelector = `td:nth-child(4) > div`
)
