package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MichaelGloessl04/wpapihandler/config"
	"github.com/MichaelGloessl04/wpapihandler/filter"
	"github.com/MichaelGloessl04/wpapihandler/wordpress"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *wordpress.Client

	// Command flags
	filterExpr string
	preset     string
	tagNames   []string
	amount     int
	showHTML   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wpapihandler",
	Short: "A tool to manage WordPress posts, tags and site collections over the REST API",
	Long: `wpapihandler is a CLI tool for working with the WordPress REST API.
It lists and filters posts, creates and deletes posts with tag resolution,
and reads the partners, personnel and events collections of the site.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the WordPress client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	headers := wordpress.BasicAuth(cfg.WordPress.Username, cfg.WordPress.AppPassword)
	client, err = wordpress.NewClient(cfg.WordPress.URL, headers, logger,
		wordpress.WithPageSize(cfg.WordPress.PageSize))
	if err != nil {
		return fmt.Errorf("failed to create WordPress client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts matching the filter criteria",
	Long:  `List posts from the WordPress site, optionally narrowed by tags and a filter expression.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().StringSliceVarP(&tagNames, "tag", "t", nil, "only fetch posts carrying these tags")
	listCmd.Flags().IntVarP(&amount, "amount", "n", 0, "maximum number of posts to fetch (0 for all)")
	listCmd.Flags().BoolVar(&showHTML, "html", false, "print raw HTML content instead of plain text")
}

func runList(cmd *cobra.Command, args []string) error {
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	matchFunc, err := filter.ParseAndCreateFilter(expr)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Info().Str("filter", expr).Strs("tags", tagNames).Msg("Fetching posts")

	ctx := context.Background()
	var posts []wordpress.Post
	switch {
	case len(tagNames) > 0:
		posts, err = client.GetPostsByTags(ctx, tagNames)
	case amount > 0:
		posts, err = client.GetPosts(ctx, amount)
	default:
		posts, err = client.GetAllPosts(ctx)
	}
	if err != nil {
		return err
	}

	matched := filter.Apply(posts, matchFunc)
	if len(matched) == 0 {
		fmt.Println("No posts found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d posts:\n", len(matched))
	fmt.Println(strings.Repeat("-", 80))

	for _, post := range matched {
		fmt.Printf("• [%d] %s (%s)\n", post.ID, renderText(post.Title), post.Status)
		if len(post.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(post.Tags, ", "))
		}
		content := post.Content
		if !showHTML {
			content = renderText(content)
		}
		if content != "" {
			fmt.Printf("  %s\n", truncate(content, 120))
		}
	}

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the WordPress site",
	Long:  `Test the connection to the WordPress REST API and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to WordPress at %s...\n", cfg.WordPress.URL)

	ctx := context.Background()
	ok, err := client.CheckConnection(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("✗ Site unreachable or API disabled.")
		return nil
	}
	fmt.Println("✓ Connection successful!")

	stats, err := client.PageStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get post statistics: %w", err)
	}

	fmt.Printf("\nSite Statistics:\n")
	fmt.Printf("- Total posts: %d\n", stats.Total)
	fmt.Printf("- Pages at current page size: %d\n", stats.TotalPages)

	return nil
}

// getFilterExpression determines the filter expression to use.
// Priority: command line filter > preset > config default. An empty
// result is valid and matches every post.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
