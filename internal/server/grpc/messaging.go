package grpcserver

import (
	"context"
	"errors"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"github.com/rzbill/waymark/internal/eventlog"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type messagingSvc struct {
	waymarkv1.UnimplementedMessagingServiceServer
	svc *messagingsvc.Service
}

func eventMessage(ev *eventlog.Event) *waymarkv1.Message {
	return &waymarkv1.Message{Topic: ev.Topic, Author: ev.Author, Text: ev.Text, Id: ev.ID}
}

func (m *messagingSvc) Publish(ctx context.Context, req *waymarkv1.PublishRequest) (*waymarkv1.PublishResponse, error) {
	if req.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	if req.GetAuthor() == "" {
		return nil, status.Error(codes.InvalidArgument, "author is required")
	}
	ev, err := m.svc.Publish(ctx, req.GetTopic(), req.GetAuthor(), req.GetText())
	if err != nil {
		return nil, err
	}
	return &waymarkv1.PublishResponse{Message: eventMessage(ev)}, nil
}

// grpcSink adapts a Subscribe stream to the messaging sink. An empty backlog
// becomes an explicit NoBacklog frame; everything else is a Message frame.
type grpcSink struct {
	stream grpc.ServerStreamingServer[waymarkv1.SubscribeResponse]
}

func (g grpcSink) SendBacklog(b messagingsvc.Backlog) error {
	if b.None() {
		return g.stream.Send(&waymarkv1.SubscribeResponse{
			Kind: &waymarkv1.SubscribeResponse_NoBacklog{NoBacklog: &waymarkv1.NoBacklog{}},
		})
	}
	for _, ev := range b.Events {
		if err := g.Send(ev); err != nil {
			return err
		}
	}
	return nil
}

func (g grpcSink) Send(ev *eventlog.Event) error {
	return g.stream.Send(&waymarkv1.SubscribeResponse{
		Kind: &waymarkv1.SubscribeResponse_Message{Message: eventMessage(ev)},
	})
}

func (m *messagingSvc) Subscribe(req *waymarkv1.SubscribeRequest, stream grpc.ServerStreamingServer[waymarkv1.SubscribeResponse]) error {
	if req.GetTopic() == "" {
		return status.Error(codes.InvalidArgument, "topic is required")
	}
	opts := messagingsvc.SubscribeOptions{
		Topic:    req.GetTopic(),
		Cursor:   req.GetCursor(),
		MaxCount: int(req.GetMaxCount()),
		Filter:   req.GetFilter(),
	}
	if err := m.svc.Subscribe(stream.Context(), opts, grpcSink{stream: stream}); err != nil {
		if errors.Is(err, messagingsvc.ErrBadFilter) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		return err
	}
	return nil
}
