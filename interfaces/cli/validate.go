package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long: `Resolve the configuration file and environment, then report whether the
result is valid.

Examples:
  # Validate a configuration file
  toolkit validate -c toolkit.yaml

  # Validate the environment-only configuration
  GITHUB_TOKEN=... toolkit validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			source := a.configPath
			if source == "" {
				source = "environment"
			}
			_, _ = fmt.Fprintf(a.stdout, "Configuration is valid (%s)\n", source)
			_, _ = fmt.Fprintf(a.stdout, "  GitHub API:  %s\n", cfg.GitHub.BaseURL)
			_, _ = fmt.Fprintf(a.stdout, "  GitHub auth: %t\n", cfg.GitHub.Token != "")
			_, _ = fmt.Fprintf(a.stdout, "  Transport:   %s\n", cfg.Server.Transport)
			_, _ = fmt.Fprintf(a.stdout, "  Agents:      %d\n", len(cfg.Agents))
			return nil
		},
	}
}
