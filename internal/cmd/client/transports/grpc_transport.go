// Package transports provides pluggable transport implementations for the CLI.
package transports

import (
	"context"
	"errors"
	"io"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"google.golang.org/grpc"
)

// GrpcTransport implements MessagingTransport over gRPC.
type GrpcTransport struct {
	dial func(ctx context.Context) (*grpc.ClientConn, error)
}

// NewGrpcTransport constructs a new GrpcTransport using the provided dialer.
func NewGrpcTransport(dial func(ctx context.Context) (*grpc.ClientConn, error)) *GrpcTransport {
	return &GrpcTransport{dial: dial}
}

func (t *GrpcTransport) withClient(ctx context.Context, fn func(cli waymarkv1.MessagingServiceClient) error) error {
	conn, err := t.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	cli := waymarkv1.NewMessagingServiceClient(conn)
	return fn(cli)
}

func messageFromProto(m *waymarkv1.Message) Message {
	return Message{Topic: m.GetTopic(), Author: m.GetAuthor(), Text: m.GetText(), ID: m.GetId()}
}

// Publish sends a message via gRPC and returns the stored message with its
// assigned id.
func (t *GrpcTransport) Publish(ctx context.Context, topic, author, text string) (Message, error) {
	var out Message
	err := t.withClient(ctx, func(cli waymarkv1.MessagingServiceClient) error {
		resp, err := cli.Publish(ctx, &waymarkv1.PublishRequest{Topic: topic, Author: author, Text: text})
		if err != nil {
			return err
		}
		out = messageFromProto(resp.GetMessage())
		return nil
	})
	return out, err
}

// Subscribe streams frames and invokes onFrame for each one. A callback
// returning ErrStop ends the stream without error.
func (t *GrpcTransport) Subscribe(ctx context.Context, req SubscribeRequest, onFrame func(Frame) error) error {
	return t.withClient(ctx, func(cli waymarkv1.MessagingServiceClient) error {
		greq := &waymarkv1.SubscribeRequest{
			Topic:    req.Topic,
			Cursor:   req.Cursor,
			MaxCount: int32(req.MaxCount),
			Filter:   req.Filter,
		}
		stream, err := cli.Subscribe(ctx, greq)
		if err != nil {
			return err
		}
		for {
			resp, err := stream.Recv()
			if err != nil {
				if err == io.EOF || err == context.Canceled {
					return nil
				}
				return err
			}
			var f Frame
			if m := resp.GetMessage(); m != nil {
				msg := messageFromProto(m)
				f.Message = &msg
			} else {
				f.NoBacklog = true
			}
			if cbErr := onFrame(f); cbErr != nil {
				if errors.Is(cbErr, ErrStop) {
					return nil
				}
				return cbErr
			}
		}
	})
}
