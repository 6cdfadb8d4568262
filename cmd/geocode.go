package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jobo-world/jobo-go/jobo"
)

// geocodeConcurrency bounds how many geocode requests run at once.
const geocodeConcurrency = 4

// geocodeCmd represents the geocode command
var geocodeCmd = &cobra.Command{
	Use:   "geocode LOCATION...",
	Short: "Resolve location strings into coordinates",
	Long: `Resolve one or more location strings (e.g. "San Francisco, CA") into
structured locations with coordinates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGeocode,
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}

func runGeocode(cmd *cobra.Command, args []string) error {
	results := make([]*jobo.GeocodeResult, len(args))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(geocodeConcurrency)

	for i, location := range args {
		i, location := i, location
		g.Go(func() error {
			result, err := client.Locations.Geocode(ctx, location)
			if err != nil {
				return fmt.Errorf("geocode %q: %w", location, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		if !result.Succeeded || len(result.Locations) == 0 {
			fmt.Printf("%s: not resolved\n", result.Input)
			continue
		}
		for _, loc := range result.Locations {
			coords := ""
			if loc.Latitude != nil && loc.Longitude != nil {
				coords = fmt.Sprintf(" (%.4f, %.4f)", *loc.Latitude, *loc.Longitude)
			}
			fmt.Printf("%s: %s%s\n", result.Input, loc.DisplayName, coords)
		}
	}

	return nil
}
