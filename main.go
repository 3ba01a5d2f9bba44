package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	keyword      string
	cookiesFile  string
	csvPath      string
	reportPath   string
	apiKey       string
	maxPosts     int
	maxScrolls   int
	headlessMode bool
	llmSentiment bool
	debugMode    bool
	updateCSV    bool
	noBackup     bool
)

var debugEnabled bool

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkedin-pulse",
	Short: "Scrape LinkedIn posts for a keyword and score their sentiment",
	Long: `linkedin-pulse drives a headless browser over a LinkedIn keyword search,
extracts the matching posts, deduplicates them, scores sentiment, and writes
a CSV plus a plain-text summary report.`,
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one scraping pass for a keyword",
	Run: func(cmd *cobra.Command, args []string) {
		if keyword == "" {
			log.Fatal("search keyword required: use --keyword")
		}
		debugEnabled = debugMode

		if err := ensureConfigExists(); err != nil {
			log.Fatalf("Preparing config: %v", err)
		}
		settings, err := loadSettings()
		if err != nil {
			log.Fatalf("Loading settings: %v", err)
		}

		scorer, err := buildScorer(settings)
		if err != nil {
			log.Fatalf("Creating scorer: %v", err)
		}

		cookies, err := loadCookieFile(cookiesFile)
		if err != nil {
			log.Fatalf("Loading cookies: %v", err)
		}

		if csvPath == "" {
			csvPath = filepath.Join(settings.OutputDirectory,
				fmt.Sprintf("%s_posts.csv", keywordSlug(keyword)))
		}
		if reportPath == "" {
			reportPath = defaultReportPath(csvPath)
		}

		pause := time.Duration(settings.LoadPauseSeconds) * time.Second
		timeout := time.Duration(maxScrolls)*pause + 10*time.Minute
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Printf("Starting browser (headless=%v)...", headlessMode)
		session, err := newBrowserSession(ctx, headlessMode, pause)
		if err != nil {
			log.Fatalf("Starting browser: %v", err)
		}
		defer session.Close()

		log.Printf("Logging in with cookies from %s...", cookiesFile)
		if err := session.login(cookies); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		log.Printf("✓ Logged in")

		if err := session.openSearch(keyword); err != nil {
			log.Fatalf("Opening search: %v", err)
		}

		processor := NewProcessor(session, scorer, settings)
		if _, err := processor.Run(RunOptions{
			Keyword:    keyword,
			MaxPosts:   maxPosts,
			MaxScrolls: maxScrolls,
			CSVPath:    csvPath,
			ReportPath: reportPath,
		}); err != nil {
			log.Fatalf("Run failed: %v", err)
		}
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [csv-file]",
	Short: "Regenerate the sentiment report from an existing CSV",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debugEnabled = debugMode
		source := args[0]

		settings, err := loadSettings()
		if err != nil {
			log.Fatalf("Loading settings: %v", err)
		}

		records, err := readRecordsCSV(source)
		if err != nil {
			log.Fatalf("Reading %s: %v", source, err)
		}
		if len(records) == 0 {
			log.Fatalf("No rows found in %s", source)
		}

		if updateCSV {
			scorer, err := buildScorer(settings)
			if err != nil {
				log.Fatalf("Creating scorer: %v", err)
			}

			if !noBackup {
				backup, err := backupCSV(source)
				if err != nil {
					log.Fatalf("Backing up %s: %v", source, err)
				}
				log.Printf("✓ Backup written: %s", backup)
			}

			updated := backfillSentiment(records, newClassifier(scorer, settings.Thresholds))
			if updated > 0 {
				if err := writeRecordsCSV(source, records); err != nil {
					log.Fatalf("Updating %s: %v", source, err)
				}
			}
			log.Printf("✓ Backfilled sentiment for %d rows", updated)
		}

		if reportPath == "" {
			reportPath = defaultReportPath(source)
		}
		s := summarize(records, source, settings.Thresholds)
		if err := writeReport(reportPath, s); err != nil {
			log.Fatalf("Writing report: %v", err)
		}
		log.Printf("✓ Report written: %s", reportPath)
		log.Printf("Summary: Total: %d, Positive: %d, Negative: %d, Neutral: %d",
			s.Total, s.Positive, s.Negative, s.Neutral)
	},
}

// buildScorer picks the lexicon scorer unless --llm-sentiment asks for the
// Claude scorer, which needs an API key.
func buildScorer(settings *Settings) (Scorer, error) {
	if !llmSentiment {
		return newVaderScorer(), nil
	}

	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key required for --llm-sentiment: use --api-key or ANTHROPIC_API_KEY")
	}
	return newClaudeScorer(apiKey, settings.Scorer), nil
}

func defaultReportPath(csvFile string) string {
	return strings.TrimSuffix(csvFile, ".csv") + "_sentiment_report.txt"
}

func init() {
	scrapeCmd.Flags().StringVar(&keyword, "keyword", "", "Search keyword (required)")
	scrapeCmd.Flags().StringVar(&cookiesFile, "cookies", "www.linkedin.com_cookies.txt", "Netscape-format cookies.txt for login")
	scrapeCmd.Flags().StringVar(&csvPath, "out", "", "CSV output path (derived from keyword when empty)")
	scrapeCmd.Flags().StringVar(&reportPath, "report", "", "Report output path (derived from CSV path when empty)")
	scrapeCmd.Flags().IntVar(&maxPosts, "max-posts", 1000, "Stop after collecting this many unique posts")
	scrapeCmd.Flags().IntVar(&maxScrolls, "max-scrolls", 800, "Maximum scroll passes before giving up")
	scrapeCmd.Flags().BoolVar(&headlessMode, "headless", true, "Run Chrome headless")
	scrapeCmd.Flags().BoolVar(&llmSentiment, "llm-sentiment", false, "Score sentiment with Claude instead of the lexicon scorer")
	scrapeCmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key (for --llm-sentiment)")
	scrapeCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	reportCmd.Flags().StringVarP(&reportPath, "output", "o", "", "Report output path (derived from CSV path when empty)")
	reportCmd.Flags().BoolVarP(&updateCSV, "update", "u", false, "Backfill sentiment for rows missing it")
	reportCmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the CSV backup when updating")
	reportCmd.Flags().BoolVar(&llmSentiment, "llm-sentiment", false, "Score sentiment with Claude instead of the lexicon scorer")
	reportCmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key (for --llm-sentiment)")
	reportCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
