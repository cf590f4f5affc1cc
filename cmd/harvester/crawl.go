package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/profile-harvester/internal/config"
	"github.com/jonathan/profile-harvester/internal/crawl"
	"github.com/jonathan/profile-harvester/internal/db"
	"github.com/jonathan/profile-harvester/internal/export"
	"github.com/jonathan/profile-harvester/internal/navigator"
	"github.com/jonathan/profile-harvester/internal/observability"
	"github.com/jonathan/profile-harvester/internal/profile"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl search results for a role and extract matching profiles",
	Long:  "Searches for public profiles matching a role label, follows every result across all result pages, extracts each profile's sections, and writes the captured records to a workbook.",
	RunE:  runCrawl,
}

var (
	crawlRole        string
	crawlConfigPath  string
	crawlOutDir      string
	crawlFormat      string
	crawlHeadless    bool
	crawlMaxPages    int
	crawlWaitSeconds int
	crawlDatabaseURL string
	crawlVerbose     bool
)

func init() {
	crawlCmd.Flags().StringVarP(&crawlRole, "role", "r", "", "Role label to search for (required)")
	crawlCmd.Flags().StringVarP(&crawlConfigPath, "config", "c", "", "Path to JSON config file")
	crawlCmd.Flags().StringVarP(&crawlOutDir, "out", "o", "", "Output directory (default: data)")
	crawlCmd.Flags().StringVar(&crawlFormat, "format", "", "Output format: xlsx, csv or both (default: xlsx)")
	crawlCmd.Flags().BoolVar(&crawlHeadless, "headless", true, "Run the browser headless")
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "Maximum result pages to walk (0 = unbounded)")
	crawlCmd.Flags().IntVar(&crawlWaitSeconds, "timeout", 0, "Per-wait timeout in seconds (default: 10)")
	crawlCmd.Flags().StringVar(&crawlDatabaseURL, "database-url", "", "PostgreSQL URL for the optional run store (or DATABASE_URL env var)")
	crawlCmd.Flags().BoolVarP(&crawlVerbose, "verbose", "v", false, "Enable verbose output")

	if err := crawlCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(crawlCmd)
}

// resolveConfig layers flag values over the config file over the built-in
// defaults. Flags win wherever they were given a value.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Config{
		OutDir:      crawlOutDir,
		Format:      crawlFormat,
		MaxPages:    crawlMaxPages,
		WaitSeconds: crawlWaitSeconds,
		DatabaseURL: crawlDatabaseURL,
	}
	cfg.Headless = crawlHeadless
	cfg.Verbose = crawlVerbose

	if crawlConfigPath != "" {
		fileCfg, err := config.LoadConfig(crawlConfigPath)
		if err != nil {
			return cfg, err
		}
		// Headless only follows the config file when the flag was left alone.
		if !cmd.Flags().Changed("headless") {
			cfg.Headless = fileCfg.Headless
		}
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runCrawl(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cfg.Verbose)

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutDir, err)
	}

	ctx := context.Background()

	// The session is released on every exit path below.
	chrome, err := navigator.NewChrome(ctx, navigator.Options{
		Headless:  cfg.Headless,
		UserAgent: cfg.UserAgent,
	}, log.Logger)
	if err != nil {
		return fmt.Errorf("failed to start browser session: %w", err)
	}
	defer chrome.Close()

	opts := crawl.DefaultOptions()
	opts.MaxPages = cfg.MaxPages
	opts.WaitTimeout = time.Duration(cfg.WaitSeconds) * time.Second
	opts.ProbeTimeout = time.Duration(cfg.ProbeSeconds) * time.Second

	selectors := cfg.Selectors.Merge(profile.DefaultSelectors())

	controller := crawl.NewController(chrome, selectors, opts, log.Logger)
	result, err := controller.Run(crawlRole)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	if err := persistResult(ctx, cfg, result); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintCrawlSummary(result)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Captured %d profiles (%d skipped) across %d pages in %s\n",
			len(result.Profiles), result.Skipped, result.Pages, result.Elapsed.Round(time.Millisecond))
	}

	return nil
}

// persistResult writes the captured profiles to every configured sink.
func persistResult(ctx context.Context, cfg config.Config, result *crawl.Result) error {
	if cfg.Format == "xlsx" || cfg.Format == "both" {
		path := filepath.Join(cfg.OutDir, export.Filename(result.Role))
		if err := export.WriteWorkbook(path, result.Profiles); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Workbook: %s\n", path)
	}
	if cfg.Format == "csv" || cfg.Format == "both" {
		path := filepath.Join(cfg.OutDir, export.CSVFilename(result.Role))
		if err := export.WriteCSV(path, result.Profiles); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "CSV: %s\n", path)
	}

	if cfg.DatabaseURL == "" {
		return nil
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to run store: %w", err)
	}
	defer store.Close()

	runID, err := store.CreateRun(ctx, result.Role)
	if err != nil {
		return err
	}
	if err := store.SaveProfiles(ctx, runID, result.Profiles); err != nil {
		return err
	}
	if err := store.CompleteRun(ctx, runID, len(result.Profiles), result.Skipped, result.Elapsed.Milliseconds()); err != nil {
		return err
	}
	log.Info().Str("run_id", runID.String()).Msg("crawl run recorded")

	return nil
}
