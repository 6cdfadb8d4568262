// Package cmd implements the jobo-cli commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jobo-world/jobo-go/config"
	"github.com/jobo-world/jobo-go/filter"
	"github.com/jobo-world/jobo-go/jobo"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *jobo.Client

	// Command flags shared by list-style commands
	filterExpr string
	preset     string
	limit      int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jobo-cli",
	Short: "A CLI for the Jobo Enterprise Jobs API",
	Long: `jobo-cli is a command line tool for the Jobo Enterprise Jobs API.
It can search job listings, stream the bulk feed, list expired job IDs,
geocode locations, and drive auto-apply sessions.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if client != nil {
			client.Close()
		}
	},
}

// SetVersion sets the version information for the CLI.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = jobo.NewClient(cfg.API.Key,
		jobo.WithBaseURL(cfg.API.URL),
		jobo.WithTimeout(cfg.API.Timeout),
		jobo.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create Jobo client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
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

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilter resolves the --filter / --preset flags into a compiled filter.
// Returns nil when neither flag is set.
func getFilter() (*filter.Filter, error) {
	expression := filterExpr
	if preset != "" {
		if expression != "" {
			return nil, fmt.Errorf("use either --filter or --preset, not both")
		}
		presetExpr, ok := cfg.Filters[preset]
		if !ok {
			return nil, fmt.Errorf("unknown filter preset: %s", preset)
		}
		expression = presetExpr
	}
	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// printJobRow writes one job line in the tabular output shared by the
// search and feed commands.
func printJobRow(index int, job jobo.Job) {
	location := "—"
	if job.IsRemote {
		location = "Remote"
	} else if len(job.Locations) > 0 {
		var parts []string
		loc := job.Locations[0]
		if loc.City != nil {
			parts = append(parts, *loc.City)
		}
		if loc.Country != nil {
			parts = append(parts, *loc.Country)
		}
		if len(parts) > 0 {
			location = strings.Join(parts, ", ")
		}
	}

	title := job.Title
	if len(title) > 48 {
		title = title[:45] + "..."
	}
	company := job.Company.Name
	if len(company) > 20 {
		company = company[:17] + "..."
	}

	fmt.Printf("%-4d %-50s %-22s %-12s %s\n", index, title, company, job.Source, location)
}

func printJobHeader() {
	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("%-4s %-50s %-22s %-12s %s\n", "#", "TITLE", "COMPANY", "SOURCE", "LOCATION")
	fmt.Println(strings.Repeat("━", 100))
}
