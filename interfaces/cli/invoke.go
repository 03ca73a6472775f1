package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ErrInvocationFailed is returned when the tool reports an unsuccessful
// outcome. The outcome itself is still printed.
var ErrInvocationFailed = errors.New("tool invocation failed")

func (a *App) newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <tool> [json|-]",
		Short: "Invoke a tool once and print its outcome",
		Long: `Invoke a tool with a JSON input and print the outcome envelope.

The input is read from the second argument, or from stdin when it is "-".
Without an input, {} is sent.

Examples:
  toolkit invoke web-search '{"query":"jane doe golang"}'
  toolkit invoke github-operations '{"action":"get_issue","owner":"octo","repo":"hello","issue_number":1}'
  echo '{"action":"read_pdf","url":"https://example.com/cv.pdf"}' | toolkit invoke pdf-operations -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.readInput(args[1:])
			if err != nil {
				return err
			}

			tk, err := a.buildToolkit(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown(tk)

			result, err := tk.Invoke(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if err := json.Indent(&out, result.Output, "", "  "); err != nil {
				return fmt.Errorf("format output: %w", err)
			}
			_, _ = fmt.Fprintln(a.stdout, out.String())

			if result.IsError() {
				return ErrInvocationFailed
			}
			return nil
		},
	}
}

func (a *App) readInput(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return json.RawMessage(`{}`), nil
	}

	raw := []byte(args[0])
	if args[0] == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = bytes.TrimSpace(data)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("input is not valid JSON: %s", raw)
	}
	return json.RawMessage(raw), nil
}
