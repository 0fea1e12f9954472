package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/streak-radar/internal/app"
	"github.com/comitanigiacomo/streak-radar/internal/config"
	"github.com/comitanigiacomo/streak-radar/internal/platform/logger"
)

// skipStore marks commands that run without opening the store.
const skipStore = "skip-store"

type cli struct {
	out     io.Writer
	errOut  io.Writer
	envFile string
	backend string
	asJSON  bool
	debug   bool

	app *app.App
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// run executes one command line and always releases the store, including
// when the command fails.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	c := &cli{out: out, errOut: errOut}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "streakctl",
		Short:         "Track habits, streaks and routines from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipStore] != "" {
				return nil
			}
			return c.open(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Optional dotenv file read before the environment")
	root.PersistentFlags().StringVar(&c.backend, "backend", "", "Override the store backend (memory, sqlite, postgres, redis)")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Print results as JSON")
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(
		c.newHabitCmd(),
		c.newRoutineCmd(),
		c.newStatsCmd(),
		c.newAchievementsCmd(),
		c.newStateCmd(),
		c.newSettingsCmd(),
		c.newDSNCmd(),
	)
	return root
}

func (c *cli) open(ctx context.Context) error {
	level := "warn"
	if c.debug {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Service: "streakctl", Level: level, Pretty: true, Out: c.errOut})
	if err != nil {
		return err
	}
	zlog.Logger = log

	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}
	if c.backend != "" {
		cfg.Backend = c.backend
		if err := cfg.ResolveDefaults(); err != nil {
			return err
		}
	}
	cfg.MetricsEnabled = false

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, app.Options{}, log)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close(context.Background())
	c.app = nil
	return err
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) table(header ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(c.out, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	return w
}

func (c *cli) println(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
