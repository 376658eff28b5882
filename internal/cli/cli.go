// Package cli implements the ghcount command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghcount/pkg/buildinfo"
	"github.com/matzehuels/ghcount/pkg/config"
	"github.com/matzehuels/ghcount/pkg/errors"
	"github.com/matzehuels/ghcount/pkg/integrations"
	"github.com/matzehuels/ghcount/pkg/integrations/github"
	"github.com/matzehuels/ghcount/pkg/observability"
	"github.com/matzehuels/ghcount/pkg/releases"
	"github.com/matzehuels/ghcount/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "ghcount"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the root command.
type CLI struct {
	Logger *log.Logger

	stdout io.Writer
	stderr io.Writer
	errLog *log.Logger
	getenv func(string) string
}

// New creates a CLI writing results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		stdout: stdout,
		stderr: stderr,
		errLog: newErrorLogger(stderr),
		getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// gateway is what the command needs from the API client.
type gateway interface {
	releases.Source
	ReleasesByTag(ctx context.Context, user, repo, tag string) ([]releases.Asset, error)
}

// options holds the parsed command-line flags.
type options struct {
	summarize  bool
	plain      bool
	verbose    bool
	jobs       int
	timeout    time.Duration
	apiURL     string
	configPath string
	completion string
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   appName + " [USER [REPO [TAG]]]",
		Short: "Display download counts of GitHub releases",
		Long: `ghcount shows how often the assets of GitHub releases were downloaded.

With a user it lists every repository that has release assets; add a
repository to see only its assets, and a tag to see a single release.
Without arguments the user owning GITHUB_TOKEN is used.`,
		Example: `  ghcount brbsix
  ghcount brbsix debtool
  ghcount -s brbsix debtool v0.2.5`,
		Args:              cobra.MaximumNArgs(3),
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.completion != "" {
				return writeCompletion(cmd.Root(), c.stdout, opts.completion)
			}
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.run(cmd, args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.Flags()
	flags.BoolVarP(&opts.summarize, "summarize", "s", false, "display only total download counts")
	flags.BoolVar(&opts.plain, "plain", false, "do not highlight repository names")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "repositories to fetch in parallel")
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "per-request timeout (0 disables)")
	flags.StringVar(&opts.apiURL, "api-url", config.DefaultAPIURL, "GitHub API origin")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ghcount/config.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&opts.completion, "completion", "", "print a shell completion script (bash, zsh, fish, powershell)")
	_ = root.RegisterFlagCompletionFunc("completion", cobra.FixedCompletions(completionShells, cobra.ShellCompDirectiveNoFileComp))

	return root
}

// Execute runs the root command with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// =============================================================================
// Run
// =============================================================================

func (c *CLI) run(cmd *cobra.Command, args []string, opts options) error {
	t, err := parseTarget(args)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	c.Logger.Debug("config loaded", "path", cfg.Path, "api_url", cfg.APIURL,
		"credential", cfg.Credential, "timeout", cfg.Timeout, "jobs", cfg.Jobs)

	client := github.NewClient(cfg.Credential,
		github.WithBaseURL(cfg.APIURL),
		github.WithHTTPOptions(
			integrations.WithTimeout(cfg.Timeout),
			integrations.WithUserAgent(buildinfo.UserAgent()),
		),
	)

	ro := render.Options{Summarize: opts.summarize, Highlight: render.Plain}
	if cfg.Highlight {
		ro.Highlight = render.Bold()
	}

	interactive := !opts.verbose && isTerminal(c.stderr)
	c.installHooks(interactive)
	defer observability.Reset()

	ctx := withLogger(cmd.Context(), c.Logger)
	return c.show(ctx, client, t, cfg.Jobs, ro, interactive)
}

// loadConfig reads the config file and applies explicitly set flags on top.
func (c *CLI) loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath, c.getenv)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = opts.apiURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if opts.plain {
		cfg.Highlight = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) show(ctx context.Context, gw gateway, t target, jobs int, ro render.Options, interactive bool) error {
	prog := newProgress(c.Logger)

	switch {
	case t.tag != "":
		assets, err := c.fetch(ctx, interactive, "Fetching "+t.String(), func(ctx context.Context) ([]releases.Asset, error) {
			return gw.ReleasesByTag(ctx, t.user, t.repo, t.tag)
		})
		if err != nil {
			return err
		}
		prog.done("Fetched " + t.String())
		return render.Assets(c.stdout, assets, ro)

	case t.repo != "":
		assets, err := c.fetch(ctx, interactive, "Fetching "+t.String(), func(ctx context.Context) ([]releases.Asset, error) {
			return gw.ReleasesByRepo(ctx, t.user, t.repo)
		})
		if err != nil {
			return err
		}
		prog.done("Fetched " + t.String())
		return render.Assets(c.stdout, assets, ro)

	default:
		all, err := releases.NewAggregator(gw, releases.WithJobs(jobs)).ByUser(ctx, t.user)
		if err != nil {
			return err
		}
		prog.done("Aggregated releases")
		return render.User(c.stdout, all, ro)
	}
}

// fetch runs a single-request operation, with a spinner on interactive
// terminals.
func (c *CLI) fetch(ctx context.Context, interactive bool, msg string, fn func(context.Context) ([]releases.Asset, error)) ([]releases.Asset, error) {
	if !interactive {
		return fn(ctx)
	}
	s := newSpinner(ctx, c.stderr, msg)
	s.Start()
	defer s.Stop()
	return fn(ctx)
}

// installHooks routes library events to the debug log and, on interactive
// terminals, to a progress bar.
func (c *CLI) installHooks(interactive bool) {
	observability.SetHTTPHooks(logHooks{})
	var agg observability.AggregateHooks = logHooks{}
	if interactive {
		agg = newProgressBar(c.stderr, agg)
	}
	observability.SetAggregateHooks(agg)
}

// =============================================================================
// Arguments
// =============================================================================

// target is what the positional arguments select. Empty fields were not
// given; an empty user means the authenticated user.
type target struct {
	user, repo, tag string
}

func (t target) String() string {
	s := t.user
	if t.repo != "" {
		s += "/" + t.repo
	}
	if t.tag != "" {
		s += "@" + t.tag
	}
	return s
}

func parseTarget(args []string) (target, error) {
	var t target
	if len(args) > 0 {
		t.user = args[0]
		if err := errors.ValidateUser(t.user); err != nil {
			return t, err
		}
	}
	if len(args) > 1 {
		t.repo = args[1]
		if err := errors.ValidateRepo(t.repo); err != nil {
			return t, err
		}
	}
	if len(args) > 2 {
		t.tag = args[2]
		if err := errors.ValidateTag(t.tag); err != nil {
			return t, err
		}
	}
	return t, nil
}
