package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/okian/advent/internal/adapters/dataset"
	service "github.com/okian/advent/internal/app"
	"github.com/okian/advent/internal/config"
	"github.com/okian/advent/internal/domain/puzzle"
	"github.com/okian/advent/pkg/logger"
	"github.com/okian/advent/pkg/metrics"
	"github.com/spf13/cobra"
)

// Flag names double as the config keys they override.
const (
	flagConfig      = "config"
	flagDataDir     = "data-dir"
	flagExampleDir  = "example-dir"
	flagLogLevel    = "log-level"
	flagLogJSON     = "log-json"
	flagPart        = "part"
	flagNoVerify    = "no-verify"
	flagMetricsFile = "metrics-file"
)

type cliFlags struct {
	configPath  string
	dataDir     string
	exampleDir  string
	logLevel    string
	logJSON     bool
	part        int
	noVerify    bool
	metricsFile string
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	root := &cobra.Command{
		Use:   "advent [day...]",
		Short: "Solve Advent of Code puzzles",
		Long: `Runs each requested day against its example input and your personal input,
printing one line per answer:

  [EXAMPLE] Answer pt.1: 15
  [TEST] Answer pt.1: 11449

Days may be given as 2, day2 or day-2. With no arguments every registered
day is solved. Personal inputs are read from <data-dir>/day-<N>/test.dat.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDays(cmd, f, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, flagConfig, "", "YAML config file (default $ADVENT_CONFIG)")
	pf.StringVar(&f.dataDir, flagDataDir, "", "directory holding personal inputs")
	pf.StringVar(&f.exampleDir, flagExampleDir, "", "directory overriding the embedded example inputs")
	pf.StringVar(&f.logLevel, flagLogLevel, "", "log level: debug, info, warn, error")
	pf.BoolVar(&f.logJSON, flagLogJSON, false, "write logs as JSON lines")
	pf.IntVar(&f.part, flagPart, 0, "solve only part 1 or 2 (0 solves both)")
	pf.BoolVar(&f.noVerify, flagNoVerify, false, "do not check example answers")
	pf.StringVar(&f.metricsFile, flagMetricsFile, "", "write run metrics to this file on exit")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range service.New().Solvers() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "day %d: %s\n", s.Day(), s.Title()); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return root
}

// loadConfig layers explicitly set flags over the file and env config.
func loadConfig(cmd *cobra.Command, f *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context(), f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagDataDir) {
		cfg.DataDir = f.dataDir
	}
	if flags.Changed(flagExampleDir) {
		cfg.ExampleDir = f.exampleDir
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed(flagLogJSON) {
		cfg.LogJSON = f.logJSON
	}
	if flags.Changed(flagPart) {
		cfg.Part = f.part
	}
	if flags.Changed(flagNoVerify) {
		cfg.VerifyExamples = !f.noVerify
	}
	if flags.Changed(flagMetricsFile) {
		cfg.MetricsFile = f.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDays(cmd *cobra.Command, f *cliFlags, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr()), logger.WithJSON(cfg.LogJSON)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	log := logger.Named("advent")

	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := puzzle.ParseDay(arg)
		if err != nil {
			return err
		}
		days = append(days, day)
	}

	examples := dataset.NewFSStore(dataset.Examples(), dataset.WithSource("embedded"))
	if cfg.ExampleDir != "" {
		examples = dataset.NewFSStore(os.DirFS(cfg.ExampleDir), dataset.WithSource(cfg.ExampleDir))
	}

	m := metrics.NewManager()
	svc := service.New(
		service.WithExamples(examples),
		service.WithInputs(dataset.NewFSStore(os.DirFS(cfg.DataDir), dataset.WithSource(cfg.DataDir))),
		service.WithOutput(cmd.OutOrStdout()),
		service.WithVerifyExamples(cfg.VerifyExamples),
		service.WithPart(cfg.Part),
		service.WithMetrics(m),
		service.WithLogger(log),
	)

	log.Debug(ctx, "starting run",
		logger.Any("days", days),
		logger.String("data_dir", cfg.DataDir),
		logger.Bool("verify_examples", cfg.VerifyExamples),
	)
	runErr := svc.Run(ctx, days...)

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}
