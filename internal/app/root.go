package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/adace74/distribulator2-contrib/internal/log"
	"github.com/adace74/distribulator2-contrib/internal/output"
	"github.com/adace74/distribulator2-contrib/internal/pipeline"
	"github.com/adace74/distribulator2-contrib/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command-line mistakes share the generic failure status.
const exitInvocation = 1

// Largest whole-second timeout a time.Duration can hold.
const maxTimeoutSeconds = int64(math.MaxInt64 / int64(time.Second))

type options struct {
	banner  string
	port    int
	timeout int
	quiet   bool
	version bool
	format  string
	noColor bool
	verbose bool
	debug   bool
}

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "pingtcp [OPTION] host_name",
		Short:         "Application layer TCP ping",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &invocationError{err: err}
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintln(w, output.VersionBanner(version, commit, buildDate))
		output.PrintUsage(w, "pingtcp")
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&opts.banner, "banner", "b", "", "require the remote banner to contain MATCH")
	flags.IntVarP(&opts.port, "port", "p", model.DefaultPort, "TCP port to connect to")
	flags.IntVarP(&opts.timeout, "timeout", "t", int(model.DefaultTimeout/time.Second), "socket timeout in seconds")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "exit code only, no output")
	flags.BoolVarP(&opts.version, "version", "v", false, "print the version banner")
	flags.StringVar(&opts.format, "format", string(output.FormatText), "output format: text, short, json or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	flags.BoolVar(&opts.verbose, "verbose", false, "show the received banner and timings")
	flags.BoolVar(&opts.debug, "debug", false, "write a debug trace to stderr")

	return cmd
}

// Execute runs the command line and exits with the probe's status.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes one invocation and returns its exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return model.ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	reportInvocationError(stderr, err)
	return exitInvocation
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if opts.version {
		fmt.Fprintln(stdout, output.VersionBanner(version, commit, buildDate))
		return nil
	}

	req, format, err := opts.request(cmd, args)
	if err != nil {
		return &invocationError{err: err}
	}

	log.Setup(stderr, opts.debug && !req.Quiet)
	defer log.Sync()

	if !req.Quiet && format == output.FormatText {
		fmt.Fprintln(stdout, output.VersionBanner(version, commit, buildDate))
	}

	res := pipeline.Probe(cmd.Context(), req)

	reporter := output.Reporter{
		Stdout:  stdout,
		Stderr:  stderr,
		Format:  format,
		Quiet:   req.Quiet,
		Verbose: opts.verbose,
		NoColor: opts.noColor,
	}
	if err := reporter.Report(res); err != nil {
		log.Warn("report failed", zap.Error(err))
	}

	if res.ExitCode != model.ExitSuccess {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

func (o *options) request(cmd *cobra.Command, args []string) (model.Request, output.Format, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return model.Request{}, "", errors.New("missing host_name argument")
	}
	if len(args) > 1 {
		return model.Request{}, "", errors.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
	if o.port < 1 || o.port > 65535 {
		return model.Request{}, "", errors.Errorf("port %d out of range 1-65535", o.port)
	}
	if o.timeout <= 0 {
		return model.Request{}, "", errors.Errorf("timeout must be a positive number of seconds, got %d", o.timeout)
	}
	if int64(o.timeout) > maxTimeoutSeconds {
		return model.Request{}, "", errors.Errorf("timeout %d exceeds the maximum of %d seconds", o.timeout, maxTimeoutSeconds)
	}
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return model.Request{}, "", err
	}

	return model.Request{
		Host:        args[0],
		Port:        o.port,
		Timeout:     time.Duration(o.timeout) * time.Second,
		BannerMatch: o.banner,
		BannerMode:  cmd.Flags().Changed("banner"),
		Quiet:       o.quiet,
	}, format, nil
}

// normalizeArgs maps the -? and --? help aliases onto --help, which pflag
// cannot declare itself.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if arg == "-?" || arg == "--?" {
			arg = "--help"
		}
		out = append(out, arg)
	}
	return out
}

func reportInvocationError(w io.Writer, err error) {
	fmt.Fprintln(w, output.VersionBanner(version, commit, buildDate))
	fmt.Fprintln(w, "ERROR: Invalid argument or flag found.  Please check your syntax.")
	fmt.Fprintln(w, "ERROR: Please run again with the --help flag for more information.")
	fmt.Fprintf(w, "ERROR: %v\n", err)
}
