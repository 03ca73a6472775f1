package cli

import (
	"fmt"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) newAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List agent profiles and the model endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.buildToolkit(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown(tk)

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tMODEL\tTOOLS\tDESCRIPTION")
			for _, p := range tk.Profiles() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					p.Name, p.Model, strings.Join(p.Tools, ","), p.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			endpoint, proxy := tk.Config().LLM.Endpoint()
			mode := "direct"
			if proxy {
				mode = "proxy"
			}
			if u, err := url.Parse(endpoint); err == nil {
				endpoint = u.Redacted()
			}
			_, _ = fmt.Fprintf(a.stdout, "\nModel endpoint: %s (%s)\n", endpoint, mode)
			return nil
		},
	}
}
