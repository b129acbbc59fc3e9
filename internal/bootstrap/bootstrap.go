package bootstrap

import (
	"context"
	"io"
	"strings"

	"github.com/yigit/enrollment/internal/app/repositories"
	appServices "github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/cli"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/pkg/console"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// Overrides carries command-line values that take precedence over the
// config file and environment. Empty fields are ignored.
type Overrides struct {
	LogLevel        string
	LogFormat       string
	EnrollmentsFile string
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config            *config.Config
	Out               io.Writer
	Repository        *repositories.EnrollmentRepository
	Notifier          *appServices.Notifier
	EnrollmentService appServices.EnrollmentService
	Catalog           cli.Catalog
}

// LoadConfigAndSetupLogger loads configuration, applies overrides and
// initializes the logger. Diagnostics go to logOut.
func LoadConfigAndSetupLogger(configPath string, o Overrides, logOut io.Writer) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, err
	}

	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = o.LogFormat
	}
	if o.EnrollmentsFile != "" {
		cfg.Storage.EnrollmentsFile = o.EnrollmentsFile
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		Output: logOut,
	})

	logger.Debug().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Str("enrollmentsFile", cfg.Storage.EnrollmentsFile).
		Msg("Logger configured")
	return cfg, nil
}

// BuildDependencies wires repository, notifier and service. All user-facing
// output, including the background notifier, shares one serialized writer.
func BuildDependencies(cfg *config.Config, stdout io.Writer) *Dependencies {
	out := console.NewWriter(stdout)

	deps := &Dependencies{Config: cfg, Out: out}
	deps.Repository = repositories.NewEnrollmentRepository(cfg.Storage.EnrollmentsFile)
	deps.Notifier = appServices.NewNotifier(out, cfg.NotifierDelay(), cfg.Notifier.Mode)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repository, deps.Notifier, out)
	deps.Catalog = cli.NewCatalog(cfg.Catalog.Theory.Code, cfg.Catalog.Theory.FeePerCredit, cfg.Catalog.Lab.Code)

	logger.Debug().
		Str("notifierMode", cfg.Notifier.Mode).
		Dur("notifierDelay", cfg.NotifierDelay()).
		Msg("Dependencies built")
	return deps
}

// RunEnrollment runs one interactive session reading from stdin. When
// configured, pending notifications are drained before returning so the
// process does not cut them off.
func (d *Dependencies) RunEnrollment(ctx context.Context, stdin io.Reader) cli.Outcome {
	driver := cli.NewDriver(cli.NewInputReader(stdin), d.Out, d.EnrollmentService, d.Catalog, d.Repository.Path())
	outcome := driver.Run(ctx)

	if d.Config.Notifier.DrainOnExit {
		d.Notifier.Wait()
	}
	return outcome
}

// PrintHistory writes the enrollment log to the console
func (d *Dependencies) PrintHistory(ctx context.Context) error {
	lines, err := d.Repository.ReadAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read enrollment log")
		return err
	}
	cli.PrintHistory(d.Out, lines)
	return nil
}
