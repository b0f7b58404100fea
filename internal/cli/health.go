package cli

import (
	"fmt"

	"github.com/ozgurgul/taskdemo/internal/client"
	"github.com/spf13/cobra"
)

func newHealthCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newClient().HealthCheck(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API Status: %s\n", h.Status)
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", h.Version)
			return nil
		},
	}
}
