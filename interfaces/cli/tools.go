package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) newToolsCmd() *cobra.Command {
	var agentName string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List available tools",
		Long: `List the registered tools, optionally restricted to one agent profile.

Examples:
  toolkit tools
  toolkit tools --agent cv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.buildToolkit(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown(tk)

			reg, err := tk.AgentRegistry(agentName)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tREAD-ONLY\tTAGS\tDESCRIPTION")
			for _, t := range reg.List() {
				ann := t.Annotations()
				_, _ = fmt.Fprintf(w, "%s\t%t\t%s\t%s\n",
					t.Name(), ann.ReadOnly, strings.Join(ann.Tags, ","), t.Description())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&agentName, "agent", "", "Only list tools of this agent profile")
	return cmd
}
