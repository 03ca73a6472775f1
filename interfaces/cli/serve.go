package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	agenttoolkit "github.com/felixgeelhaar/agent-toolkit"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/logging"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/mcp"
)

func (a *App) newServeCmd() *cobra.Command {
	var (
		agentName string
		httpAddr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tools over the Model Context Protocol",
		Long: `Expose the tools over MCP. stdio is used unless --http or the
server.transport setting selects HTTP.

Examples:
  # Serve every tool over stdio
  toolkit serve

  # Serve the CV agent tools over HTTP
  toolkit serve --agent cv --http :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tk, err := a.buildToolkit(ctx)
			if err != nil {
				return err
			}
			defer shutdown(tk)

			reg, err := tk.AgentRegistry(agentName)
			if err != nil {
				return err
			}

			cfg := tk.Config()
			description := "Agent toolkit"
			if agentName != "" {
				profile := cfg.Agents[agentName]
				description = profile.Description
			}

			srv, err := mcp.NewToolServer(mcp.ServerConfig{
				Name:        cfg.Server.Name,
				Version:     agenttoolkit.Version,
				Description: description,
				Registry:    reg,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			tk.LogModelEndpoint()
			logging.Info().
				Add(logging.Component("cli")).
				Add(logging.Str("agent", agentName)).
				Add(logging.Str("tools", fmt.Sprint(srv.ToolNames()))).
				Msg("starting server")

			addr := httpAddr
			if addr == "" && cfg.Server.Transport == "http" {
				addr = cfg.Server.Addr
			}
			if addr != "" {
				return srv.ServeHTTP(ctx, addr)
			}
			return srv.ServeStdio(ctx)
		},
	}

	cmd.Flags().StringVar(&agentName, "agent", "", "Only serve tools of this agent profile")
	cmd.Flags().StringVar(&httpAddr, "http", "", "Serve over HTTP on this address instead of stdio")
	return cmd
}
