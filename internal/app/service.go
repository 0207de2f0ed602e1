// Package service runs the registered puzzle solvers over their datasets and
// writes the answers.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/okian/advent/internal/adapters/dataset"
	"github.com/okian/advent/internal/domain/model"
	"github.com/okian/advent/internal/domain/puzzle"
	"github.com/okian/advent/pkg/logger"
	"github.com/okian/advent/pkg/metrics"
)

const millisecondsPerSecond = 1e3

// Service solves days one after another. Every failure is terminal: the
// first error stops the run.
type Service struct {
	registry *puzzle.Registry
	examples dataset.Store
	inputs   dataset.Store
	out      io.Writer

	verify bool
	parts  []puzzle.Part

	metrics *metrics.Manager
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRegistry sets the solvers the service can run.
func WithRegistry(r *puzzle.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithExamples sets where EXAMPLE datasets are read from.
func WithExamples(store dataset.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.examples = store
		}
	}
}

// WithInputs sets where TEST datasets are read from.
func WithInputs(store dataset.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.inputs = store
		}
	}
}

// WithOutput sets where answers are written.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithVerifyExamples toggles checking example answers against the published
// ones.
func WithVerifyExamples(verify bool) Option {
	return func(s *Service) {
		s.verify = verify
	}
}

// WithPart restricts solving to part 1 or part 2. Zero solves both.
func WithPart(part int) Option {
	return func(s *Service) {
		switch part {
		case 1:
			s.parts = []puzzle.Part{puzzle.Part1}
		case 2:
			s.parts = []puzzle.Part{puzzle.Part2}
		default:
			s.parts = []puzzle.Part{puzzle.Part1, puzzle.Part2}
		}
	}
}

// WithMetrics sets the metrics manager answers and failures are recorded in.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. By default it runs every built-in solver,
// reads examples from the embedded tree and personal inputs from ./data.
func New(opts ...Option) *Service {
	s := &Service{
		registry: DefaultRegistry(),
		examples: dataset.NewFSStore(dataset.Examples(), dataset.WithSource("embedded")),
		inputs:   dataset.NewFSStore(os.DirFS("data"), dataset.WithSource("data")),
		out:      os.Stdout,
		verify:   true,
		parts:    []puzzle.Part{puzzle.Part1, puzzle.Part2},
		metrics:  metrics.Default(),
		logger:   logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solvers returns the registered solvers ordered by day.
func (s *Service) Solvers() []puzzle.Solver {
	days := s.registry.Days()
	solvers := make([]puzzle.Solver, 0, len(days))
	for _, d := range days {
		solver, err := s.registry.Lookup(d)
		if err != nil {
			continue
		}
		solvers = append(solvers, solver)
	}
	return solvers
}

// Run solves the given days in ascending order, or every registered day
// when none are given, writing one line per answer.
func (s *Service) Run(ctx context.Context, days ...int) error {
	if len(days) == 0 {
		days = s.registry.Days()
	} else {
		days = slices.Clone(days)
		slices.Sort(days)
		days = slices.Compact(days)
	}

	solvers := make([]puzzle.Solver, 0, len(days))
	for _, d := range days {
		solver, err := s.registry.Lookup(d)
		if err != nil {
			return err
		}
		solvers = append(solvers, solver)
	}

	for _, solver := range solvers {
		answers, err := s.SolveDay(ctx, solver)
		for _, a := range answers {
			if _, werr := fmt.Fprintln(s.out, a); werr != nil {
				log := s.logger.With(logger.Int("day", solver.Day()))
				return s.fail(ctx, log, &StageError{Day: solver.Day(), Stage: StageOutput, Label: a.Label, Part: a.Part, Err: werr})
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SolveDay loads both datasets for the solver's day and solves the enabled
// parts, EXAMPLE before TEST. It returns the answers computed before the
// first failure along with that failure.
func (s *Service) SolveDay(ctx context.Context, solver puzzle.Solver) ([]model.Answer, error) {
	day := solver.Day()
	log := s.logger.With(logger.Int("day", day), logger.String("title", solver.Title()))

	// Read everything up front so a missing input fails before any answer.
	datasets := make([]model.Dataset, 0, len(model.Labels))
	for _, label := range model.Labels {
		ds, err := s.store(label).Load(ctx, day, label)
		if err != nil {
			return nil, s.fail(ctx, log, &StageError{Day: day, Stage: StageLoad, Label: label, Err: err})
		}
		s.metrics.UpdateInputBytes(day, string(label), len(ds.Text))
		log.Debug(ctx, "loaded dataset", logger.String("label", string(label)), logger.Int("bytes", len(ds.Text)))
		datasets = append(datasets, ds)
	}

	expected, hasExpected := solver.Example()

	var answers []model.Answer
	for _, ds := range datasets {
		for _, part := range s.parts {
			if err := ctx.Err(); err != nil {
				return answers, s.fail(ctx, log, &StageError{Day: day, Stage: StageSolve, Label: ds.Label, Part: int(part), Err: err})
			}

			start := time.Now()
			v, err := puzzle.Solve(solver, part, ds.Text)
			elapsed := time.Since(start)
			s.metrics.RecordSolveDuration(day, int(part), elapsed.Seconds()*millisecondsPerSecond)
			if err != nil {
				return answers, s.fail(ctx, log, &StageError{Day: day, Stage: StageSolve, Label: ds.Label, Part: int(part), Err: err})
			}

			a := model.Answer{Day: day, Label: ds.Label, Part: int(part), Value: v}
			answers = append(answers, a)
			s.metrics.RecordAnswer(day, string(ds.Label), int(part))
			log.Debug(ctx, "solved",
				logger.String("label", string(ds.Label)),
				logger.Int("part", int(part)),
				logger.Int("answer", v),
				logger.Float64("elapsed_ms", elapsed.Seconds()*millisecondsPerSecond),
			)

			if s.verify && hasExpected && ds.Label == model.Example {
				if want := expected.For(part); v != want {
					s.metrics.RecordExampleMismatch(day, int(part))
					err := fmt.Errorf("%w: got %d, want %d", ErrExampleMismatch, v, want)
					return answers, s.fail(ctx, log, &StageError{Day: day, Stage: StageVerify, Label: ds.Label, Part: int(part), Err: err})
				}
			}
		}
	}

	log.Info(ctx, "day solved", logger.Int("answers", len(answers)))
	return answers, nil
}

func (s *Service) store(label model.Label) dataset.Store {
	if label == model.Example {
		return s.examples
	}
	return s.inputs
}

func (s *Service) fail(ctx context.Context, log logger.Logger, err *StageError) error {
	s.metrics.RecordError(err.Day, string(err.Stage))
	log.Error(ctx, "run failed",
		logger.String("stage", string(err.Stage)),
		logger.String("label", string(err.Label)),
		logger.Error(err.Err),
	)
	return err
}
