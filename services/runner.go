package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ayelder/ff-av/config"
	"github.com/ayelder/ff-av/models"
	"github.com/ayelder/ff-av/scraper"
)

// PageSource supplies the rendered valuation table for one pagination
// offset. The chromedp-backed scraper.Client implements it; tests stub it.
type PageSource interface {
	FetchTableHTML(ctx context.Context, offset int) (string, error)
}

// Run scrapes up to cfg.NumPlayers valuations in one sequential pass over
// the pagination offsets. A failed page fetch is fatal and aborts the run;
// rows that fail field extraction are skipped with a warning.
func Run(ctx context.Context, src PageSource, cfg config.Config) ([]models.PlayerValue, error) {
	var all []models.PlayerValue

	for offset := 0; offset < cfg.NumPlayers; offset += cfg.ResultsPerPage {
		log.Printf("▶ scraping players %d-%d", offset+1, offset+cfg.ResultsPerPage)

		html, err := src.FetchTableHTML(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}

		players, rowErrs := scraper.ParseTable(html)
		for _, rowErr := range rowErrs {
			log.Printf("⚠ skipping row at offset %d: %v", offset, rowErr)
		}
		if len(players) < cfg.ResultsPerPage {
			log.Printf("⚠ only scraped %d rows at offset %d, expected %d",
				len(players), offset, cfg.ResultsPerPage)
		}

		all = append(all, players...)

		if offset+cfg.ResultsPerPage < cfg.NumPlayers {
			time.Sleep(cfg.PageDelay)
		}
	}

	if len(all) < cfg.NumPlayers {
		log.Printf("⚠ scraped %d players in total, expected %d", len(all), cfg.NumPlayers)
	}

	return all, nil
}
