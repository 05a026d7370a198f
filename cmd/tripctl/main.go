// tripctl plans day itineraries from a local seed file, without the
// HTTP server or any remote API.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trip-planner-service/internal/adapters/geoindex"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/services"
	"trip-planner-service/internal/share"
)

var (
	seedPath string
	lat      float64
	lon      float64
	mode     string
	radiusM  int
)

func main() {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Plan sightseeing days from a local spot seed file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&seedPath, "seeds", "data/seeds/spots.json", "path to the spot seed file")
	root.PersistentFlags().Float64Var(&lat, "lat", 0, "center latitude")
	root.PersistentFlags().Float64Var(&lon, "lon", 0, "center longitude")
	root.PersistentFlags().IntVar(&radiusM, "radius", 0, "search radius in meters")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a scheduled day around the given center",
		RunE:  runPlan,
	}
	planCmd.Flags().StringVar(&mode, "mode", "walk", "travel mode: walk, transit or car")

	shopsCmd := &cobra.Command{
		Use:   "shops",
		Short: "List scored shops around the given center",
		RunE:  runShops,
	}

	encodeCmd := &cobra.Command{
		Use:   "encode <trip.json>",
		Short: "Encode a trip file into a shareable token",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}

	root.AddCommand(planCmd, shopsCmd, encodeCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ix, err := geoindex.Load(seedPath)
	if err != nil {
		return err
	}

	trip := domain.Trip{
		Coords: domain.Coordinates{Lat: lat, Lon: lon},
		Mode:   domain.TravelMode(mode),
	}

	day, err := services.GenerateDay(cmd.Context(), trip, ix, radiusM)
	if err != nil {
		return err
	}

	for i, spot := range day.Spots {
		if spot.TravelFromPrev != nil && spot.TravelFromPrev.Minutes > 0 {
			fmt.Printf("      | %s travel (%.1f km)\n",
				geo.FormatDuration(spot.TravelFromPrev.Minutes), spot.TravelFromPrev.DistKm)
		}
		score := 0
		if spot.Score != nil {
			score = *spot.Score
		}
		fmt.Printf("%2d. %s  %s [%s, score %d, stay %s]\n",
			i+1, spot.StartTime, spot.Name, spot.Type, score, geo.FormatDuration(spot.DurationMin))
	}

	return nil
}

func runShops(cmd *cobra.Command, _ []string) error {
	ix, err := geoindex.Load(seedPath)
	if err != nil {
		return err
	}

	center := domain.Coordinates{Lat: lat, Lon: lon}
	shops, err := services.FindShops(cmd.Context(), center, radiusM, ix)
	if err != nil {
		return err
	}

	for _, shop := range shops {
		fmt.Printf("%3d  %s (%s, %.1f km)\n", shop.Score, shop.Name, shop.Type, shop.DistKm)
		for _, reason := range shop.ScoreReasons {
			fmt.Printf("     - %s\n", reason)
		}
	}

	return nil
}

func runEncode(_ *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var trip domain.Trip
	if err := json.Unmarshal(payload, &trip); err != nil {
		return fmt.Errorf("parse trip file %q: %w", args[0], err)
	}

	encoded, err := share.EncodeTrip(trip)
	if err != nil {
		return err
	}

	fmt.Println(encoded)
	return nil
}
