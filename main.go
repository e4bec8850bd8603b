package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ayelder/ff-av/config"
	"github.com/ayelder/ff-av/scraper"
	"github.com/ayelder/ff-av/services"
	"github.com/ayelder/ff-av/storage"
	"github.com/ayelder/ff-av/utils"
)

var (
	flagOutFile    string
	flagNumPlayers int
	flagDebug      bool
	flagHeadless   bool
	flagDB         bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ff-av",
		Short:        "Scrape Yahoo! Fantasy Football auction draft values to a CSV file",
		SilenceUsage: true,
		RunE:         runScrape,
	}

	cmd.Flags().StringVarP(&flagOutFile, "out-filename", "f", "stats.csv",
		"Filename of the output csv")
	cmd.Flags().IntVarP(&flagNumPlayers, "num-players", "n", 350,
		"Number of players to scrape")
	cmd.Flags().BoolVarP(&flagDebug, "debug", "d", false,
		"Enable debug prints from the browser session")
	cmd.Flags().BoolVar(&flagHeadless, "headless", true,
		"Run Chrome headless (false = visible window)")
	cmd.Flags().BoolVar(&flagDB, "db", false,
		"Also upsert scraped values into PostgreSQL")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runScrape(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠ .env file not found or could not be loaded: %v", err)
	}

	cfg := config.Default()
	cfg.OutFile = flagOutFile
	cfg.NumPlayers = flagNumPlayers
	cfg.Headless = flagHeadless
	cfg.Debug = flagDebug
	if flagDB {
		cfg.DBEnabled = true
	}

	log.Printf("╔═══════════════════════════════════════════════════╗")
	log.Printf("║   Yahoo! Fantasy Football Auction Value Scraper    ║")
	log.Printf("╚═══════════════════════════════════════════════════╝")
	log.Printf("Players  : %d (%d per page)", cfg.NumPlayers, cfg.ResultsPerPage)
	log.Printf("Output   : %s", cfg.OutFile)
	if cfg.DBEnabled {
		log.Printf("Postgres : %s:%d/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	rootCtx, cancelRoot := context.WithTimeout(context.Background(), cfg.GlobalTimeout)
	defer cancelRoot()

	allocCtx, cancelAlloc := utils.NewAllocator(rootCtx, cfg)
	defer cancelAlloc()

	var tabOpts []chromedp.ContextOption
	if cfg.Debug {
		tabOpts = append(tabOpts, chromedp.WithDebugf(log.Printf))
	}
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, tabOpts...)
	defer cancelTab()

	// Start the browser up front so a missing Chrome binary fails
	// before any scraping or output is attempted.
	if err := chromedp.Run(tabCtx); err != nil {
		return fmt.Errorf("start browser (is Chrome on PATH?): %w", err)
	}

	// A fatal scrape error aborts the run before any output is written.
	players, err := services.Run(tabCtx, scraper.NewClient(cfg), cfg)
	if err != nil {
		return err
	}

	total, err := utils.WriteCSV(cfg.OutFile, players)
	if err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}

	saved := 0
	if cfg.DBEnabled {
		store, err := storage.NewPostgresStore(cfg)
		if err != nil {
			return fmt.Errorf("connect to PostgreSQL: %w", err)
		}
		defer store.Close()

		dbCtx, cancelDB := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelDB()
		saved, err = store.SaveValues(dbCtx, players)
		if err != nil {
			return fmt.Errorf("store player values: %w", err)
		}
	}

	stats := utils.BuildSummaryStats(players)

	log.Printf("═══════════════════════════════════════════════════")
	log.Printf("  DONE — %d players → %s", total, cfg.OutFile)
	if cfg.DBEnabled {
		log.Printf("  DB   — %d players upserted → player_values table", saved)
	}
	log.Printf("  STATS")
	log.Printf("    Total Players Scraped   : %d", stats.TotalPlayers)
	log.Printf("    Average Projected Value : %.2f", stats.AverageProjectedValue)
	log.Printf("    Minimum Projected Value : %.2f", stats.MinimumProjectedValue)
	log.Printf("    Maximum Projected Value : %.2f", stats.MaximumProjectedValue)
	if stats.TotalPlayers > 0 {
		log.Printf("    Most Valuable Player    : %s (%s, %s) | $%.2f",
			stats.MostValuablePlayer.Name,
			stats.MostValuablePlayer.Team,
			stats.MostValuablePlayer.Position,
			stats.MostValuablePlayer.ProjectedValue,
		)
	}

	log.Printf("    Players per Position")
	for _, positionStat := range stats.PlayersPerPosition {
		log.Printf("      - %s: %d", positionStat.Position, positionStat.Count)
	}

	log.Printf("    Top 5 by Average Cost")
	for i, p := range stats.TopAverageCost {
		log.Printf("      %d) $%.2f | %s (%s, %s)",
			i+1,
			p.AverageCost,
			p.Name,
			p.Team,
			p.Position,
		)
	}
	log.Printf("═══════════════════════════════════════════════════")

	return nil
}
