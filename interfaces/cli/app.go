// Package cli provides the command-line interface for the agent toolkit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	agenttoolkit "github.com/felixgeelhaar/agent-toolkit"
	"github.com/felixgeelhaar/agent-toolkit/application"
	"github.com/felixgeelhaar/agent-toolkit/domain/config"
	infraconfig "github.com/felixgeelhaar/agent-toolkit/infrastructure/config"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/logging"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/observability"
)

// Build information set at link time.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lookup infraconfig.LookupFunc

	configPath string
	logLevel   string
	logFormat  string

	toolkitOpts []application.Option
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookup: infraconfig.OSLookup,
	}

	app.root = &cobra.Command{
		Use:   "toolkit",
		Short: "GitHub, PDF and web search tools for LLM agents",
		Long: `toolkit exposes the github-operations, pdf-operations and web-search tools
to LLM agents over the Model Context Protocol, and can invoke them directly
from the command line.

Configuration is read from an optional YAML or JSON file and from the
environment (GITHUB_TOKEN, GITHUB_API_URL, OPENAI_PROXY_URL, OPENAI_API_KEY).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := app.root.PersistentFlags()
	flags.StringVarP(&app.configPath, "config", "c", "", "Path to configuration file")
	flags.StringVar(&app.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&app.logFormat, "log-format", "", "Log format (json, console)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newValidateCmd(),
		app.newToolsCmd(),
		app.newInvokeCmd(),
		app.newServeCmd(),
		app.newAgentsCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used for "-" input.
func (a *App) WithInput(stdin io.Reader) *App {
	a.stdin = stdin
	a.root.SetIn(stdin)
	return a
}

// WithLookup replaces the environment lookup.
func (a *App) WithLookup(lookup infraconfig.LookupFunc) *App {
	a.lookup = lookup
	return a
}

// WithToolkitOptions passes extra options to every toolkit the app builds.
func (a *App) WithToolkitOptions(opts ...application.Option) *App {
	a.toolkitOpts = append(a.toolkitOpts, opts...)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// loadConfig resolves the file, environment and flag overrides.
func (a *App) loadConfig() (*config.ToolkitConfig, error) {
	cfg, err := infraconfig.Resolve(a.configPath, a.lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.logLevel == "" && a.logFormat == "" {
		return cfg, nil
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if errs := config.NewValidator().Validate(cfg); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %v", config.ErrValidationFailed, errs)
	}
	return cfg, nil
}

// buildToolkit configures logging and telemetry, then assembles the tools.
func (a *App) buildToolkit(ctx context.Context) (*application.Toolkit, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: a.stderr,
	})
	logging.SetDefault(logger)

	telemetry, err := observability.New(ctx,
		observability.ConfigFrom(cfg.Telemetry, cfg.Server.Name, agenttoolkit.Version))
	if err != nil {
		return nil, fmt.Errorf("failed to start telemetry: %w", err)
	}

	opts := append([]application.Option{
		application.WithLogger(logger),
		application.WithTelemetry(telemetry),
	}, a.toolkitOpts...)

	tk, err := application.New(*cfg, opts...)
	if err != nil {
		_ = telemetry.Shutdown(ctx)
		return nil, err
	}
	return tk, nil
}

// shutdown flushes telemetry, logging any failure.
func shutdown(tk *application.Toolkit) {
	if err := tk.Shutdown(context.Background()); err != nil {
		logging.Warn().Add(logging.ErrorField(err)).Msg("telemetry shutdown failed")
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(a.stdout, "agent-toolkit version %s\n", agenttoolkit.GetVersion())
			_, _ = fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			_, _ = fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
