package command

import (
	"errors"
	"fmt"
	"io"
	"log"

	cli "gopkg.in/urfave/cli.v1"

	"bytematch/internal/config"
	"bytematch/internal/diagnostic"
	"bytematch/internal/load"
	"bytematch/internal/match"
	"bytematch/internal/report"
)

// Version is reported by --version.
var Version = "dev"

var (
	// ErrUsage marks errors caused by how the command was invoked.
	ErrUsage = errors.New("usage error")
	// ErrBelowThreshold marks a score under --min-score.
	ErrBelowThreshold = errors.New("score below threshold")
)

const (
	stdoutName = "<stdout>"
	stderrName = "<stderr>"
)

// OutputError reports a notice or report that could not be written.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output: %v", e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

const (
	flagFormat   = "format"
	flagMinScore = "min-score"
	flagConfig   = "config"
	flagVerbose  = "verbose"
)

type runner struct {
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

// Run executes the command with os.Args-style args and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) ExitCode {
	r := &runner{
		stdout: stdout,
		stderr: stderr,
		log:    log.New(stderr, "bytematch: ", 0),
	}

	err := r.newApp().Run(args)
	if err != nil {
		r.log.Print(err)
	}

	return exitCodeFor(err)
}

func (r *runner) newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bytematch"
	app.HelpName = "bytematch"
	app.Usage = "score how closely an actual file matches an expected reference, byte by byte"
	app.ArgsUsage = "<actual> <expected>"
	app.Version = Version
	app.Writer = r.stdout
	app.ErrWriter = r.stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  flagFormat,
			Value: string(report.FormatText),
			Usage: "report format: text, fixed or yaml",
		},
		cli.Float64Flag{
			Name:  flagMinScore,
			Usage: "exit with status 3 when the score is below this value",
		},
		cli.StringFlag{
			Name:  flagConfig,
			Usage: "load settings from a YAML `FILE`",
		},
		cli.BoolFlag{
			Name:  flagVerbose,
			Usage: "print every diagnostic to stderr",
		},
	}
	app.OnUsageError = func(_ *cli.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	app.Action = r.action

	return app
}

func (r *runner) action(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("%w: want <actual> <expected>, got %d arguments", ErrUsage, c.NArg())
	}

	cfg, err := settings(c)
	if err != nil {
		return err
	}

	pair, err := load.ReadPair(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	res := match.Compute(pair.Actual, pair.Expected)

	var diags diagnostic.Diagnostics
	diags.Merge(diagnostic.Inspect(res, pair.ActualPath, pair.ExpectedPath))

	// A YAML report must stay parseable, so its notices go to stderr.
	noticeW, noticeName := r.stdout, stdoutName
	if cfg.Format == report.FormatYAML {
		noticeW, noticeName = r.stderr, stderrName
	}

	if err := diagnostic.WriteNotices(noticeW, diags); err != nil {
		diags.AddError(diagnostic.CodeWriteFailed, err.Error(), noticeName)
	}

	if cfg.Verbose && !diags.HasErrors() {
		if err := diagnostic.WriteAll(r.stderr, diags); err != nil {
			diags.AddError(diagnostic.CodeWriteFailed, err.Error(), stderrName)
		}
	}

	if !diags.HasErrors() {
		rep := report.Report{Input: pair.ActualPath, Expected: pair.ExpectedPath, Result: res}
		if err := report.Write(r.stdout, cfg.Format, rep); err != nil {
			diags.AddError(diagnostic.CodeWriteFailed, err.Error(), stdoutName)
		}
	}

	if !diags.IsValid() {
		return &OutputError{Err: diags.Error()}
	}

	if !cfg.Passes(res.Score) {
		return fmt.Errorf("%w: %s < %s", ErrBelowThreshold,
			report.FormatScore(res.Score), report.FormatScore(*cfg.MinScore))
	}

	return nil
}

// settings layers flags over the config file over the defaults.
func settings(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if c.IsSet(flagConfig) {
		loaded, err := config.LoadFile(c.String(flagConfig))
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	if c.IsSet(flagFormat) {
		f, err := report.ParseFormat(c.String(flagFormat))
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
		}

		cfg.Format = f
	}

	if c.IsSet(flagMinScore) {
		v := c.Float64(flagMinScore)
		cfg.MinScore = &v
	}

	if c.Bool(flagVerbose) {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return cfg, nil
}

func exitCodeFor(err error) ExitCode {
	var (
		fileErr *load.FileAccessError
		outErr  *OutputError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBelowThreshold):
		return ExitBelowThreshold
	case errors.As(err, &fileErr), errors.As(err, &outErr):
		return ExitFileAccess
	default:
		// ErrUsage, *config.Error and flag parsing failures.
		return ExitUsage
	}
}
