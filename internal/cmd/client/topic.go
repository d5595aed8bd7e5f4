// Package client contains Cobra CLI commands for Waymark.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	transports "github.com/rzbill/waymark/internal/cmd/client/transports"
	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

func getTransport() transports.MessagingTransport {
	// For now, only gRPC transport; can add HTTP/SSE in future.
	return transports.NewGrpcTransport(dialGRPCContext)
}

// NewTopicCommand constructs the `topic` command group and subcommands.
func NewTopicCommand(baseURL BaseURLFunc) *cobra.Command {
	topicCmd := &cobra.Command{Use: "topic", Short: "Topic operations"}

	topicCmd.AddCommand(
		newTopicPublishCommand(),
		newTopicSubscribeCommand(),
		newTopicMessagesCommand(baseURL),
		newTopicStatsCommand(baseURL),
	)

	return topicCmd
}

// newTopicPublishCommand constructs the `topic publish` subcommand.
func newTopicPublishCommand() *cobra.Command {
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a message to a topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			author, _ := cmd.Flags().GetString("author")
			text, _ := cmd.Flags().GetString("text")

			if topic == "" {
				return fmt.Errorf("topic is required")
			}
			if author == "" {
				return fmt.Errorf("author is required")
			}

			msg, err := getTransport().Publish(cmd.Context(), topic, author, text)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(msg)
		},
	}
	publishCmd.Flags().StringP("topic", "t", "", "Topic name")
	publishCmd.Flags().String("author", "", "Author name")
	publishCmd.Flags().String("text", "", "Message text")
	return publishCmd
}

// newTopicSubscribeCommand constructs the `topic subscribe` subcommand.
func newTopicSubscribeCommand() *cobra.Command {
	subscribeCmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to a topic (backlog replay, then live messages)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			cursor, _ := cmd.Flags().GetInt64("cursor")
			maxCount, _ := cmd.Flags().GetInt("max-count")
			filter, _ := cmd.Flags().GetString("filter")
			limit, _ := cmd.Flags().GetInt("limit")

			if topic == "" {
				return fmt.Errorf("topic is required")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			received := 0
			err := getTransport().Subscribe(cmd.Context(), transports.SubscribeRequest{
				Topic:    topic,
				Cursor:   cursor,
				MaxCount: maxCount,
				Filter:   filter,
			}, func(f transports.Frame) error {
				if f.NoBacklog {
					_ = enc.Encode(map[string]bool{"no_backlog": true})
					return nil
				}
				_ = enc.Encode(f.Message)
				received++
				if limit > 0 && received >= limit {
					return transports.ErrStop
				}
				return nil
			})
			return err
		},
	}
	subscribeCmd.Flags().StringP("topic", "t", "", "Topic name")
	subscribeCmd.Flags().Int64("cursor", 0, "Id of the last message already seen (0 = from the beginning)")
	subscribeCmd.Flags().Int("max-count", 100, "Cap the replay backlog to the newest N messages")
	subscribeCmd.Flags().String("filter", "", "CEL filter over topic, author, text and id (server-side)")
	subscribeCmd.Flags().Int("limit", 0, "Stop after N messages (0 = infinite)")
	return subscribeCmd
}

// newTopicMessagesCommand constructs the `topic messages` subcommand.
func newTopicMessagesCommand(baseURL BaseURLFunc) *cobra.Command {
	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "List messages from a topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			after, _ := cmd.Flags().GetInt64("after")
			limit, _ := cmd.Flags().GetInt("limit")
			waitMs, _ := cmd.Flags().GetInt64("wait-ms")

			if topic == "" {
				return fmt.Errorf("topic is required")
			}

			q := url.Values{}
			q.Set("topic", topic)
			q.Set("after", fmt.Sprintf("%d", after))
			q.Set("limit", fmt.Sprintf("%d", limit))
			if waitMs > 0 {
				q.Set("wait_ms", fmt.Sprintf("%d", waitMs))
			}
			resp, err := http.Get(baseURL() + "/v1/topics/messages?" + q.Encode())
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode >= 300 {
				_, _ = io.Copy(io.Discard, resp.Body)
				return fmt.Errorf("http error: %s", resp.Status)
			}
			var data struct {
				Topic    string               `json:"topic"`
				Messages []transports.Message `json:"messages"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
	messagesCmd.Flags().StringP("topic", "t", "", "Topic name")
	messagesCmd.Flags().Int64("after", 0, "Return messages with ids greater than this")
	messagesCmd.Flags().Int("limit", 100, "Max messages to return")
	messagesCmd.Flags().Int64("wait-ms", 0, "Long-poll timeout for an empty page in ms")
	return messagesCmd
}

// newTopicStatsCommand constructs the `topic stats` subcommand.
func newTopicStatsCommand(baseURL BaseURLFunc) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Get per-topic counters for every known topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := http.Get(baseURL() + "/v1/topics/stats")
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode >= 300 {
				_, _ = io.Copy(io.Discard, resp.Body)
				return fmt.Errorf("http error: %s", resp.Status)
			}
			var data struct {
				Topics []struct {
					Topic       string `json:"topic"`
					Events      int64  `json:"events"`
					Subscribers int    `json:"subscribers"`
				} `json:"topics"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
	return statsCmd
}
