// Package cli provides the taskctl command-line interface for the demo
// API.
package cli

import (
	"os"
	"path/filepath"

	"github.com/ozgurgul/taskdemo/internal/client"
	"github.com/ozgurgul/taskdemo/internal/confstore"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

// NewRootCommand creates the root command for taskctl.
func NewRootCommand(version string) *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:   "taskctl",
		Short: "CLI client for the demo task API",
		Long: `taskctl manages users and tasks through the demo API.

The API address is taken from --api-url, then from api.base_url in the
config file, then defaults to ` + defaultAPIURL + `.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL")

	newClient := func() *client.Client {
		return client.New(resolveAPIURL(apiURL))
	}

	root.AddCommand(newHealthCommand(newClient))
	root.AddCommand(newUserCommand(newClient))
	root.AddCommand(newTaskCommand(newClient))

	return root
}

// resolveAPIURL picks the API address: explicit flag, config file,
// then the built-in default.
func resolveAPIURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := configDir(); dir != "" {
		cs := confstore.New(dir, "config.json")
		if url := cs.GetString("api.base_url", ""); url != "" {
			return url
		}
	}
	return defaultAPIURL
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taskctl")
}
