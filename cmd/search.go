package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobo-world/jobo-go/jobo"
)

var (
	searchQueries   []string
	searchLocations []string
	searchSources   []string
	searchRemote    bool
	searchPageSize  int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job listings",
	Long: `Search job listings with free-text queries and filters.

Results are fetched page by page through the advanced search endpoint until
the limit is reached or the results are exhausted.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceVarP(&searchQueries, "query", "q", nil, "free-text search query (repeatable)")
	searchCmd.Flags().StringSliceVarP(&searchLocations, "location", "l", nil, "location string filter (repeatable)")
	searchCmd.Flags().StringSliceVarP(&searchSources, "source", "s", nil, "ATS/source identifier (repeatable)")
	searchCmd.Flags().BoolVar(&searchRemote, "remote", false, "remote jobs only")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 25, "results per page (1-100)")
	searchCmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number of jobs to list (0 = no limit)")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied client-side")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSearch(cmd *cobra.Command, args []string) error {
	jobFilter, err := getFilter()
	if err != nil {
		return err
	}

	req := jobo.JobSearchRequest{
		Queries:   searchQueries,
		Locations: searchLocations,
		Sources:   searchSources,
		PageSize:  searchPageSize,
	}
	if searchRemote {
		req.IsRemote = jobo.Bool(true)
	}

	logger.Info().
		Strs("queries", searchQueries).
		Strs("locations", searchLocations).
		Msg("Searching jobs")

	ctx := context.Background()
	it := client.Search.IterJobs(req)

	printJobHeader()
	shown := 0
	for it.Next(ctx) {
		job := it.Item()
		if jobFilter != nil {
			matched, err := jobFilter.Match(job)
			if err != nil {
				return err
			}
			if !matched {
				continue
			}
		}

		shown++
		printJobRow(shown, job)
		if limit > 0 && shown >= limit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	fmt.Printf("\n%d job(s) shown\n", shown)
	return nil
}
