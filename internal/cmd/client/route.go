package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"github.com/spf13/cobra"
)

// pointOut is the CLI's JSON form of an E7 position.
type pointOut struct {
	Latitude  int32 `json:"latitude"`
	Longitude int32 `json:"longitude"`
}

// featureOut is the CLI's JSON form of a feature lookup result.
type featureOut struct {
	Name     string   `json:"name"`
	Location pointOut `json:"location"`
}

// noteOut is the CLI's JSON form of a location note.
type noteOut struct {
	Location pointOut `json:"location"`
	Text     string   `json:"text"`
}

func pointJSON(p *waymarkv1.Point) pointOut {
	return pointOut{Latitude: p.GetLatitude(), Longitude: p.GetLongitude()}
}

func featureJSON(f *waymarkv1.Feature) featureOut {
	return featureOut{Name: f.GetName(), Location: pointJSON(f.GetLocation())}
}

func noteJSON(n *waymarkv1.Note) noteOut {
	return noteOut{Location: pointJSON(n.GetLocation()), Text: n.GetText()}
}

// NewRouteCommand constructs the `route` command group and subcommands.
func NewRouteCommand() *cobra.Command {
	routeCmd := &cobra.Command{Use: "route", Short: "Route guide operations"}

	routeCmd.AddCommand(
		newRouteFeatureCommand(),
		newRouteFeaturesCommand(),
		newRouteTripCommand(),
		newRouteChatCommand(),
	)

	return routeCmd
}

// newRouteFeatureCommand constructs the `route feature` subcommand.
func newRouteFeatureCommand() *cobra.Command {
	featureCmd := &cobra.Command{
		Use:   "feature",
		Short: "Look up the feature at an exact point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lat, _ := cmd.Flags().GetInt32("lat")
			lon, _ := cmd.Flags().GetInt32("lon")

			return withRoutesClient(cmd.Context(), func(cli waymarkv1.RoutesServiceClient) error {
				f, err := cli.GetFeature(cmd.Context(), &waymarkv1.Point{Latitude: lat, Longitude: lon})
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(featureJSON(f))
			})
		},
	}
	featureCmd.Flags().Int32("lat", 0, "Latitude (degrees x 1e7)")
	featureCmd.Flags().Int32("lon", 0, "Longitude (degrees x 1e7)")
	return featureCmd
}

// newRouteFeaturesCommand constructs the `route features` subcommand.
func newRouteFeaturesCommand() *cobra.Command {
	featuresCmd := &cobra.Command{
		Use:   "features",
		Short: "List named features inside a rectangle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loLat, _ := cmd.Flags().GetInt32("lo-lat")
			loLon, _ := cmd.Flags().GetInt32("lo-lon")
			hiLat, _ := cmd.Flags().GetInt32("hi-lat")
			hiLon, _ := cmd.Flags().GetInt32("hi-lon")

			rect := &waymarkv1.Rectangle{
				Lo: &waymarkv1.Point{Latitude: loLat, Longitude: loLon},
				Hi: &waymarkv1.Point{Latitude: hiLat, Longitude: hiLon},
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			return withRoutesClient(cmd.Context(), func(cli waymarkv1.RoutesServiceClient) error {
				stream, err := cli.ListFeatures(cmd.Context(), rect)
				if err != nil {
					return err
				}
				for {
					f, err := stream.Recv()
					if err == io.EOF {
						return nil
					}
					if err != nil {
						return err
					}
					_ = enc.Encode(featureJSON(f))
				}
			})
		},
	}
	featuresCmd.Flags().Int32("lo-lat", 0, "First corner latitude (degrees x 1e7)")
	featuresCmd.Flags().Int32("lo-lon", 0, "First corner longitude (degrees x 1e7)")
	featuresCmd.Flags().Int32("hi-lat", 0, "Second corner latitude (degrees x 1e7)")
	featuresCmd.Flags().Int32("hi-lon", 0, "Second corner longitude (degrees x 1e7)")
	return featuresCmd
}

// newRouteTripCommand constructs the `route trip` subcommand.
func newRouteTripCommand() *cobra.Command {
	tripCmd := &cobra.Command{
		Use:   "trip",
		Short: "Stream trip points and print the summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawPoints, _ := cmd.Flags().GetStringArray("point")
			if len(rawPoints) == 0 {
				return fmt.Errorf("at least one --point is required")
			}
			points := make([]*waymarkv1.Point, 0, len(rawPoints))
			for _, raw := range rawPoints {
				p, err := parsePointArg(raw)
				if err != nil {
					return err
				}
				points = append(points, p)
			}

			return withRoutesClient(cmd.Context(), func(cli waymarkv1.RoutesServiceClient) error {
				stream, err := cli.RecordTrip(cmd.Context())
				if err != nil {
					return err
				}
				for _, p := range points {
					if err := stream.Send(p); err != nil {
						return err
					}
				}
				sum, err := stream.CloseAndRecv()
				if err != nil {
					return err
				}
				var out struct {
					PointCount     int32 `json:"point_count"`
					FeatureCount   int32 `json:"feature_count"`
					DistanceMeters int32 `json:"distance_meters"`
					ElapsedSeconds int32 `json:"elapsed_seconds"`
				}
				out.PointCount = sum.GetPointCount()
				out.FeatureCount = sum.GetFeatureCount()
				out.DistanceMeters = sum.GetDistanceMeters()
				out.ElapsedSeconds = sum.GetElapsedSeconds()
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			})
		},
	}
	tripCmd.Flags().StringArray("point", []string{}, "Trip point as lat,lon in E7 (repeat, in travel order)")
	return tripCmd
}

// newRouteChatCommand constructs the `route chat` subcommand.
func newRouteChatCommand() *cobra.Command {
	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Post location notes and print the notes already there",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawNotes, _ := cmd.Flags().GetStringArray("note")
			if len(rawNotes) == 0 {
				return fmt.Errorf("at least one --note is required")
			}
			notes := make([]*waymarkv1.Note, 0, len(rawNotes))
			for _, raw := range rawNotes {
				parts := strings.SplitN(raw, ":", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid --note, expected lat,lon:text: %s", raw)
				}
				p, err := parsePointArg(parts[0])
				if err != nil {
					return err
				}
				notes = append(notes, &waymarkv1.Note{Location: p, Text: parts[1]})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return withRoutesClient(cmd.Context(), func(cli waymarkv1.RoutesServiceClient) error {
				stream, err := cli.Chat(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range notes {
					if err := stream.Send(n); err != nil {
						return err
					}
				}
				if err := stream.CloseSend(); err != nil {
					return err
				}
				for {
					n, err := stream.Recv()
					if err == io.EOF {
						return nil
					}
					if err != nil {
						return err
					}
					_ = enc.Encode(noteJSON(n))
				}
			})
		},
	}
	chatCmd.Flags().StringArray("note", []string{}, "Note as lat,lon:text with E7 coordinates (repeat)")
	return chatCmd
}
