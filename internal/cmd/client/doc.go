// Package client provides the `waymark` command-line client.
//
// The CLI talks to the Waymark HTTP and gRPC endpoints to perform common
// topic and route-guide operations from a terminal. It is primarily
// intended for developers and operators.
//
// Installation
//
//	go install github.com/rzbill/waymark/cmd/waymark@latest
//
// Or build from this repo and use the embedded `waymark` binary.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it
// defaults to http://127.0.0.1:8080. The gRPC address is read from the
// WAYMARK_GRPC environment variable (default 127.0.0.1:50051).
//
// Usage
//
//	waymark topic publish --topic lobby --author ann --text "hello"
//
//	# Subscribe via gRPC; replays the backlog first, then streams live
//	waymark topic subscribe --topic lobby --cursor 0 --max-count 50
//	waymark topic subscribe --topic lobby --limit 5
//	waymark topic subscribe --topic lobby --filter 'author == "ann"'
//
//	waymark topic messages --topic lobby --after 0 --limit 10
//	waymark topic stats
//
//	# Route guide: coordinates are degrees x 1e7 (E7)
//	waymark route feature --lat 409146138 --lon -746188906
//	waymark route features --lo-lat 400000000 --lo-lon -750000000 \
//	    --hi-lat 420000000 --hi-lon -730000000
//	waymark route trip --point 0,0 --point 10000000,0
//	waymark route chat --note "0,0:first note here"
//
// Notes
//
//   - subscribe connects to the gRPC MessagingService.Subscribe stream.
//     The cursor is the id of the last message already seen; when
//     --max-count is smaller than the unread count, only the newest
//     --max-count messages are replayed. An empty replay prints an
//     explicit no_backlog line.
//   - messages and stats use the HTTP API exposed by the Waymark server.
//   - trip streams its points in one client-streaming call and prints the
//     summary the server computes on stream end; chat sends each note and
//     prints the notes that were already stored at that location.
package client
