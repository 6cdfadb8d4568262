package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobo-world/jobo-go/jobo"
)

var (
	feedSources   []string
	feedCountry   string
	feedRegion    string
	feedCity      string
	feedRemote    bool
	feedBatchSize int
	feedSince     time.Duration
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Stream jobs from the bulk feed",
	Long: `Stream jobs from the bulk feed, following cursors until the feed is
exhausted or the limit is reached. Interrupt with Ctrl-C to stop early.`,
	RunE: runFeed,
}

func init() {
	rootCmd.AddCommand(feedCmd)

	feedCmd.Flags().StringSliceVarP(&feedSources, "source", "s", nil, "ATS/source identifier (repeatable)")
	feedCmd.Flags().StringVar(&feedCountry, "country", "", "country filter")
	feedCmd.Flags().StringVar(&feedRegion, "region", "", "region filter")
	feedCmd.Flags().StringVar(&feedCity, "city", "", "city filter")
	feedCmd.Flags().BoolVar(&feedRemote, "remote", false, "remote jobs only")
	feedCmd.Flags().IntVar(&feedBatchSize, "batch-size", 0, "jobs per batch (1-1000, default server-defined)")
	feedCmd.Flags().DurationVar(&feedSince, "since", 0, "only jobs posted within this duration (e.g. 72h)")
	feedCmd.Flags().IntVarP(&limit, "limit", "n", 100, "maximum number of jobs to list (0 = no limit)")
	feedCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied client-side")
	feedCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runFeed(cmd *cobra.Command, args []string) error {
	jobFilter, err := getFilter()
	if err != nil {
		return err
	}

	req := jobo.JobFeedRequest{
		Sources:   feedSources,
		BatchSize: feedBatchSize,
	}
	if feedCountry != "" || feedRegion != "" || feedCity != "" {
		loc := jobo.LocationFilter{}
		if feedCountry != "" {
			loc.Country = jobo.String(feedCountry)
		}
		if feedRegion != "" {
			loc.Region = jobo.String(feedRegion)
		}
		if feedCity != "" {
			loc.City = jobo.String(feedCity)
		}
		req.Locations = []jobo.LocationFilter{loc}
	}
	if feedRemote {
		req.IsRemote = jobo.Bool(true)
	}
	if feedSince > 0 {
		postedAfter := time.Now().UTC().Add(-feedSince)
		req.PostedAfter = &postedAfter
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printJobHeader()
	shown := 0
	for res := range client.Feed.IterJobs(req).Stream(ctx) {
		if res.Err != nil {
			return res.Err
		}

		if jobFilter != nil {
			matched, err := jobFilter.Match(res.Item)
			if err != nil {
				return err
			}
			if !matched {
				continue
			}
		}

		shown++
		printJobRow(shown, res.Item)
		if limit > 0 && shown >= limit {
			stop()
			break
		}
	}

	fmt.Printf("\n%d job(s) shown\n", shown)
	return nil
}
