package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edunsouza/meeting-workbook/internal/config"
	"github.com/edunsouza/meeting-workbook/internal/engine"
	"github.com/edunsouza/meeting-workbook/internal/logging"
	"github.com/edunsouza/meeting-workbook/internal/scraper"
	"github.com/edunsouza/meeting-workbook/internal/server"
	"github.com/edunsouza/meeting-workbook/internal/store"
	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

var (
	flagDate    string
	flagNoSkip  bool
	flagFormat  string
	flagForce   bool
	flagNoStore bool
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meeting-workbook",
		Short: "Scrape and serve the weekly meeting workbook",
		Long: `Fetches the weekly meeting workbook from the publisher's site, classifies
its program items and caches the result per week.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		SilenceUsage: true,
	}

	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one week's workbook and print it",
		RunE:  runFetch,
	}
	fetch.Flags().StringVar(&flagDate, "date", "", "Target date (YYYY-MM-DD); resolves the exact ISO week, no weekend roll-forward")
	fetch.Flags().BoolVar(&flagNoSkip, "no-skip", false, "Never roll the current week forward on Fri/Sat/Sun")
	fetch.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	fetch.Flags().BoolVar(&flagForce, "force", false, "Replace any cached workbook with a fresh scrape")
	fetch.Flags().BoolVar(&flagNoStore, "no-store", false, "Skip MongoDB and scrape into memory only")
	fetch.Flags().BoolVar(&flagVerbose, "verbose", false, "Show per-item flags in text output")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the workbook API with the weekly pre-fetch job",
		RunE:  runServe,
	}

	root.AddCommand(fetch, serve)
	return root
}

func runFetch(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", config.AppConfig.Timezone, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := newStore(ctx)
	if err != nil {
		return err
	}

	eng := newEngine(loc, st)

	var target *time.Time
	if flagDate != "" {
		date, err := time.ParseInLocation("2006-01-02", flagDate, loc)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagDate, err)
		}
		target = &date
	}

	var wb *workbook.Workbook
	if flagForce {
		wb, err = eng.Refresh(ctx, target, !flagNoSkip)
	} else {
		wb, err = eng.GetWorkbook(ctx, target, !flagNoSkip)
	}
	if err != nil {
		return err
	}

	return WriteOutput(os.Stdout, wb, format, flagVerbose)
}

func runServe(cmd *cobra.Command, args []string) error {
	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", config.AppConfig.Timezone, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Connect(ctx, config.AppConfig.MongoURI, config.AppConfig.MongoDatabase)
	if err != nil {
		return err
	}

	eng := newEngine(loc, st)
	srv := server.New(eng, loc, logging.Get())

	if spec := config.AppConfig.PrefetchCron; spec != "" {
		if err := srv.StartPrefetch(spec); err != nil {
			return err
		}
	}

	return srv.Run(":" + config.AppConfig.AppPort)
}

func newEngine(loc *time.Location, st store.Store) *engine.Engine {
	timeout := time.Duration(config.AppConfig.HTTPTimeoutSeconds) * time.Second
	sc := scraper.New(config.AppConfig.WorkbookBaseURL, timeout, logging.Get())
	return engine.New(workbook.NewResolver(loc), sc, st, logging.Get())
}

func newStore(ctx context.Context) (store.Store, error) {
	if flagNoStore {
		return store.NewMemory(), nil
	}
	st, err := store.Connect(ctx, config.AppConfig.MongoURI, config.AppConfig.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("connecting store (use --no-store to scrape without MongoDB): %w", err)
	}
	return st, nil
}
