package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/reugn/reldate/internal/config"
	"github.com/reugn/reldate/logger"
	"github.com/reugn/reldate/reldate"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = "Valid commands are of the form `month`, `week`, `year` or `cron`\n" +
	"    reldate month -d 1 -o 1        # First Sunday of the month\n" +
	"    reldate week -d 1              # Every Sunday\n" +
	"    reldate year -d 13             # Thirteenth day of the year\n" +
	"    reldate cron -e \"0 0 1 * *\"    # Every day a cron expression fires\n"

var errUsage = errors.New("usage")

func usageError(reason string) error {
	return fmt.Errorf("%w: %s", errUsage, reason)
}

// app carries the state shared by the commands of a single invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	cfg    config.Config
}

// run executes the command line args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, now: time.Now}
	return a.execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.stderr, "reldate: %v\n", err)
		fmt.Fprint(a.stdout, usage)
		return exitUsage
	default:
		fmt.Fprintf(a.stderr, "reldate: %v\n", err)
		return exitError
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reldate",
		Short:         "Prints relative dates",
		Long:          "reldate prints sequences of dates such as the 3rd Friday of every month, every Tuesday or the 256th day of every year.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError("no rule given")
			}
			return usageError(fmt.Sprintf("unknown rule %q", args[0]))
		},
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err.Error())
	})

	root.PersistentFlags().String("config", "", "path of the YAML defaults file (default $"+config.EnvPath+" or the user config dir)")
	root.PersistentFlags().String("layout", "", "Go time layout of printed dates")
	root.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error or off")

	root.AddCommand(
		a.monthCmd(),
		a.weekCmd(),
		a.yearCmd(),
		a.cronCmd(),
		versionCmd(),
	)
	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout, _ = cmd.Flags().GetString("layout")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger.SetDefault(logger.NewTextLogger(a.stderr, level))
	a.cfg = cfg
	return nil
}

// addRangeFlags adds the flags shared by every rule.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("seed", "s", "", "date to start from, 2006-01-02 or RFC 3339 (default today)")
	cmd.Flags().IntP("count", "c", 0, fmt.Sprintf("number of dates to print (default %d)", reldate.DefaultCount))
}

// newCommand builds a reldate.Command of the given kind from the shared
// flags, falling back to today and the configured count.
func (a *app) newCommand(cmd *cobra.Command, kind reldate.Kind) (reldate.Command, error) {
	seed := reldate.Truncate(a.now())
	if cmd.Flags().Changed("seed") {
		value, _ := cmd.Flags().GetString("seed")
		parsed, err := reldate.ParseDate(value)
		if err != nil {
			return reldate.Command{}, err
		}
		seed = parsed
	}
	c := reldate.NewCommand(kind, seed)
	c.Count = a.cfg.Count
	if cmd.Flags().Changed("count") {
		c.Count, _ = cmd.Flags().GetInt("count")
	}
	return c, nil
}

func (a *app) print(cmd *cobra.Command, c reldate.Command) error {
	return reldate.Run(cmd.Context(), c, a.stdout, a.cfg.Layout)
}

// requireFlags returns a usage error naming every flag not given.
func requireFlags(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return usageError(fmt.Sprintf("%s requires %s", cmd.Name(), strings.Join(missing, " and ")))
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(fmt.Sprintf("unexpected argument %q for %s", args[0], cmd.Name()))
	}
	return nil
}
