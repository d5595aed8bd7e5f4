package grpcserver

import (
	"context"
	"io"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"github.com/rzbill/waymark/internal/geo"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
	"google.golang.org/grpc"
)

type routesSvc struct {
	waymarkv1.UnimplementedRoutesServiceServer
	svc *routesvc.Service
}

func pointFromProto(p *waymarkv1.Point) geo.Point {
	return geo.Point{Lat: p.GetLatitude(), Lon: p.GetLongitude()}
}

func pointToProto(p geo.Point) *waymarkv1.Point {
	return &waymarkv1.Point{Latitude: p.Lat, Longitude: p.Lon}
}

func featureToProto(f geo.Feature) *waymarkv1.Feature {
	return &waymarkv1.Feature{Name: f.Name, Location: pointToProto(f.Location)}
}

func noteToProto(n routesvc.Note) *waymarkv1.Note {
	return &waymarkv1.Note{Location: pointToProto(n.Location), Text: n.Text}
}

func (r *routesSvc) GetFeature(ctx context.Context, req *waymarkv1.Point) (*waymarkv1.Feature, error) {
	return featureToProto(r.svc.GetFeature(pointFromProto(req))), nil
}

func (r *routesSvc) ListFeatures(req *waymarkv1.Rectangle, stream grpc.ServerStreamingServer[waymarkv1.Feature]) error {
	rect := geo.Rect{Lo: pointFromProto(req.GetLo()), Hi: pointFromProto(req.GetHi())}
	for _, f := range r.svc.ListFeatures(rect) {
		if err := stream.Send(featureToProto(f)); err != nil {
			return err
		}
	}
	return nil
}

func (r *routesSvc) RecordTrip(stream grpc.ClientStreamingServer[waymarkv1.Point, waymarkv1.TripSummary]) error {
	trip := r.svc.NewTrip()
	for {
		p, err := stream.Recv()
		if err == io.EOF {
			sum := trip.Summary()
			return stream.SendAndClose(&waymarkv1.TripSummary{
				PointCount:     int32(sum.PointCount),
				FeatureCount:   int32(sum.FeatureCount),
				DistanceMeters: int32(sum.DistanceMeters),
				ElapsedSeconds: int32(sum.ElapsedSeconds),
			})
		}
		if err != nil {
			return err
		}
		if err := trip.Observe(pointFromProto(p)); err != nil {
			return err
		}
	}
}

func (r *routesSvc) Chat(stream grpc.BidiStreamingServer[waymarkv1.Note, waymarkv1.Note]) error {
	for {
		n, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		prior := r.svc.ExchangeNotes(pointFromProto(n.GetLocation()), n.GetText())
		for _, prev := range prior {
			if err := stream.Send(noteToProto(prev)); err != nil {
				return err
			}
		}
	}
}
