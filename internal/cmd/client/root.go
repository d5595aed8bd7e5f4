package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the Waymark client.
// It registers the topic and route command groups.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "waymark",
		Short: "Waymark client commands",
	}
	root.AddCommand(NewTopicCommand(baseURL))
	root.AddCommand(NewRouteCommand())
	return root
}
