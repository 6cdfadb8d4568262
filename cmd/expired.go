package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobo-world/jobo-go/jobo"
)

var expiredSince time.Duration

// expiredCmd represents the expired command
var expiredCmd = &cobra.Command{
	Use:   "expired",
	Short: "List recently expired job IDs",
	Long: `List the IDs of jobs that expired within the given window, following
cursors until the list is exhausted. The server accepts at most 7 days.`,
	RunE: runExpired,
}

func init() {
	rootCmd.AddCommand(expiredCmd)

	expiredCmd.Flags().DurationVar(&expiredSince, "since", 24*time.Hour, "look-back window (max 168h)")
	expiredCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of IDs to list (0 = no limit)")
}

func runExpired(cmd *cobra.Command, args []string) error {
	if expiredSince <= 0 || expiredSince > 7*24*time.Hour {
		return fmt.Errorf("--since must be between 0 and 168h")
	}

	ctx := context.Background()
	it := client.Feed.IterExpiredJobIDs(jobo.ExpiredJobIDsOptions{
		ExpiredSince: time.Now().UTC().Add(-expiredSince),
	})

	count := 0
	for it.Next(ctx) {
		fmt.Println(it.Item())
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	logger.Info().Int("count", count).Msg("Expired job IDs listed")
	return nil
}
