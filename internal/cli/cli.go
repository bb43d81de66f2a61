package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/swishapp/court-scraper/internal/catalog"
	"github.com/swishapp/court-scraper/internal/logger"
	"github.com/swishapp/court-scraper/internal/pipeline"
	"github.com/swishapp/court-scraper/internal/places"
	"github.com/swishapp/court-scraper/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	apiKeyEnv = "GOOGLE_API_KEY"
	// placeholderKey is the value the .env template ships with; treating
	// it as set would burn a run on guaranteed 403s.
	placeholderKey = "paste_your_key_here"
)

var (
	flagDataDir    string
	flagDocsDir    string
	flagCatalog    string
	flagMaxEnrich  int
	flagSkipPhotos bool
	flagFormat     string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "court-scraper",
		Short: "Fetch, enrich, and publish pickleball court data",
		Long: `Fetches pickleball court locations from the Places API, merges them
into the local dataset, enriches them with ratings, hours, and photos,
and republishes courts.json for the static site.

Runs are incremental: completed search queries are checkpointed and
enrichment is capped per run, so repeated invocations converge on a
fully enriched dataset without refetching.`,
		SilenceUsage: true,
		RunE:         runScrape,
	}

	cmd.Flags().StringVar(&flagDataDir, "data-dir", "data", "Directory for courts.json, checkpoint, and photos")
	cmd.Flags().StringVar(&flagDocsDir, "docs-dir", "docs", "Mirror directory for the published courts.json (empty disables)")
	cmd.Flags().StringVar(&flagCatalog, "catalog", "", "Optional YAML file overriding query templates and cities")
	cmd.Flags().IntVar(&flagMaxEnrich, "max-enrich", pipeline.DefaultMaxEnrichment, "Max courts to enrich per run (-1 disables enrichment)")
	cmd.Flags().BoolVar(&flagSkipPhotos, "skip-photos", false, "Skip photo downloads during enrichment")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)

	// .env is optional; a missing file just means the key comes from the
	// process environment.
	_ = godotenv.Load()

	apiKey, err := requireAPIKey(os.Getenv(apiKeyEnv))
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if flagCatalog != "" {
		cat, err = catalog.Load(flagCatalog)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	store, err := storage.New(flagDataDir, flagDocsDir, log)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	lock, err := store.AcquireLock()
	if err != nil {
		return err
	}
	defer lock.Release()

	pipe, err := pipeline.New(pipeline.Config{
		Client:        places.NewClient(apiKey),
		Store:         store,
		Log:           log,
		MaxEnrichment: flagMaxEnrich,
		SkipPhotos:    flagSkipPhotos,
	})
	if err != nil {
		return err
	}

	summary, err := pipe.Run(context.Background(), cat.Queries())
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	if flagVerbose {
		log.Debug("api counters", logger.Fields{"counters": logger.CountersSnapshot()})
	}

	return WriteSummary(os.Stdout, summary, format)
}

// requireAPIKey validates the credential before any network call is made.
// The placeholder value from the .env template counts as absent.
func requireAPIKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || key == placeholderKey {
		return "", fmt.Errorf("set %s in the environment or a .env file", apiKeyEnv)
	}
	return key, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
