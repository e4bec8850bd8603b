package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/ayelder/ff-av/config"
)

// draftAnalysisURL is the fixed source page. The count parameter selects
// the pagination offset in steps of Config.ResultsPerPage.
const draftAnalysisURL = "https://football.fantasysports.yahoo.com/f1/draftanalysis?tab=AD&pos=ALL&sort=DA_PC&count=%d"

// ErrTableNotFound is returned when a loaded page never shows the draft
// analysis table — the most likely failure after a Yahoo! redesign.
var ErrTableNotFound = errors.New("draft analysis table not found")

// Client fetches draft analysis pages through a chromedp browser tab.
// The context passed to FetchTableHTML must be the tab context.
type Client struct {
	cfg config.Config
}

func NewClient(cfg config.Config) *Client {
	return &Client{cfg: cfg}
}

// FetchTableHTML navigates to the draft analysis page at the given player
// offset and returns the valuation table's outer HTML.
func (c *Client) FetchTableHTML(ctx context.Context, offset int) (string, error) {
	pageCtx, cancel := context.WithTimeout(ctx, c.cfg.PageTimeout)
	defer cancel()

	url := fmt.Sprintf(draftAnalysisURL, offset)
	if err := chromedp.Run(pageCtx, chromedp.Navigate(url)); err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}

	var html string
	if err := chromedp.Run(pageCtx,
		chromedp.WaitReady(TableSelector, chromedp.ByQuery),
		chromedp.OuterHTML(TableSelector, &html, chromedp.ByQuery),
	); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w (offset %d)", ErrTableNotFound, offset)
		}
		return "", fmt.Errorf("locate valuation table: %w", err)
	}

	return html, nil
}
