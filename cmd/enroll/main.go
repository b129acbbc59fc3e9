package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/yigit/enrollment/internal/bootstrap"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Error().Err(err).Msg("Failed to start enrollment")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run builds and executes the command-line app. User-level enrollment
// failures are printed and never returned; only startup problems are.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var deps *bootstrap.Dependencies

	setup := func(c *cli.Context) error {
		cfg, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"), bootstrap.Overrides{
			LogLevel:        c.String("log-level"),
			LogFormat:       c.String("log-format"),
			EnrollmentsFile: c.String("enrollments-file"),
		}, stderr)
		if err != nil {
			return fmt.Errorf("failed to load config or setup logger: %w", err)
		}
		deps = bootstrap.BuildDependencies(cfg, stdout)
		return nil
	}

	app := &cli.App{
		Name:      "enroll",
		Usage:     "enroll a student in a course and record the fee",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML config file (optional)",
				EnvVars: []string{"ENROLL_CONFIG"},
			},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error or disabled"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "enrollments-file", Aliases: []string{"f"}, Usage: "append-only enrollment log"},
		},
		Before: setup,
		Action: func(c *cli.Context) error {
			outcome := deps.RunEnrollment(c.Context, stdin)
			logger.Debug().Str("outcome", string(outcome)).Msg("Application finished")
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "print every recorded enrollment",
				Action: func(c *cli.Context) error {
					return deps.PrintHistory(c.Context)
				},
			},
		},
	}

	return app.RunContext(ctx, args)
}
