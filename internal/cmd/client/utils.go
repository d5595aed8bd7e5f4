package client

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcAddrFromEnv returns the gRPC server address from WAYMARK_GRPC or a default.
func grpcAddrFromEnv() string {
	if addr := os.Getenv("WAYMARK_GRPC"); addr != "" {
		return addr
	}
	return "127.0.0.1:50051"
}

// dialGRPCContext dials the Waymark gRPC endpoint with insecure transport for local/dev.
func dialGRPCContext(ctx context.Context) (*grpc.ClientConn, error) {
	addr := grpcAddrFromEnv()
	return grpc.DialContext(ctx, addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// withRoutesClient provides a RoutesService client and ensures the connection is closed.
func withRoutesClient(ctx context.Context, fn func(waymarkv1.RoutesServiceClient) error) error {
	conn, err := dialGRPCContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	cli := waymarkv1.NewRoutesServiceClient(conn)
	return fn(cli)
}

// parsePointArg parses a "lat,lon" pair of E7 coordinates (degrees x 1e7).
func parsePointArg(s string) (*waymarkv1.Point, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid point, expected lat,lon: %s", s)
	}
	lat, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return &waymarkv1.Point{Latitude: int32(lat), Longitude: int32(lon)}, nil
}
