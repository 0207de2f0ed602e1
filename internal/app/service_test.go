package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/okian/advent/internal/adapters/dataset"
	"github.com/okian/advent/internal/domain/game"
	"github.com/okian/advent/internal/domain/model"
	"github.com/okian/advent/internal/domain/puzzle"
	"github.com/okian/advent/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

// inputs holds a personal dataset for each built-in day.
var inputs = fstest.MapFS{
	"day-1/test.dat": {Data: []byte("1\n2\n\n10\n\n4\n\n5\n")},
	"day-2/test.dat": {Data: []byte("A X\nA Y\nA Z\n")},
	"day-3/test.dat": {Data: []byte("aBcBaD\nxaYbZa\nqqaqqa\n")},
}

type fakeSolver struct {
	day  int
	p1   int
	err  error
	want puzzle.Expected
}

func (f fakeSolver) Day() int                         { return f.day }
func (f fakeSolver) Title() string                    { return "fake" }
func (f fakeSolver) Part1(string) (int, error)        { return f.p1, f.err }
func (f fakeSolver) Part2(string) (int, error)        { return f.p1 * 2, f.err }
func (f fakeSolver) Example() (puzzle.Expected, bool) { return f.want, f.want != puzzle.Expected{} }

// cancelSolver cancels the run from inside part 1.
type cancelSolver struct {
	fakeSolver
	cancel context.CancelFunc
}

func (c cancelSolver) Part1(text string) (int, error) {
	c.cancel()
	return c.fakeSolver.Part1(text)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func newTestService(out *bytes.Buffer, opts ...Option) (*Service, *metrics.Manager) {
	m := metrics.NewManager()
	base := []Option{
		WithInputs(dataset.NewFSStore(inputs, dataset.WithSource("memory"))),
		WithOutput(out),
		WithMetrics(m),
	}
	return New(append(base, opts...)...), m
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := New()

		Convey("Then it should have sensible defaults", func() {
			So(svc.verify, ShouldBeTrue)
			So(svc.parts, ShouldResemble, []puzzle.Part{puzzle.Part1, puzzle.Part2})
			So(svc.registry.Days(), ShouldResemble, []int{1, 2, 3})
			So(svc.metrics, ShouldPointTo, metrics.Default())
		})
	})

	Convey("Given nil options", t, func() {
		svc := New(WithRegistry(nil), WithExamples(nil), WithInputs(nil), WithOutput(nil), WithMetrics(nil), WithLogger(nil))

		Convey("Then defaults are kept", func() {
			So(svc.registry, ShouldNotBeNil)
			So(svc.examples, ShouldNotBeNil)
			So(svc.inputs, ShouldNotBeNil)
			So(svc.out, ShouldNotBeNil)
			So(svc.metrics, ShouldNotBeNil)
			So(svc.logger, ShouldNotBeNil)
		})
	})

	Convey("Given the part option", t, func() {
		So(New(WithPart(1)).parts, ShouldResemble, []puzzle.Part{puzzle.Part1})
		So(New(WithPart(2)).parts, ShouldResemble, []puzzle.Part{puzzle.Part2})
		So(New(WithPart(0)).parts, ShouldResemble, []puzzle.Part{puzzle.Part1, puzzle.Part2})
	})
}

func TestService_Run(t *testing.T) {
	Convey("Given a service over embedded examples and in-memory inputs", t, func() {
		var out bytes.Buffer
		svc, m := newTestService(&out)
		ctx := context.Background()

		Convey("When running day 2", func() {
			err := svc.Run(ctx, 2)

			Convey("Then four answer lines are written in order", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldEqual, strings.Join([]string{
					"[EXAMPLE] Answer pt.1: 15",
					"[EXAMPLE] Answer pt.2: 12",
					"[TEST] Answer pt.1: 15",
					"[TEST] Answer pt.2: 15",
					"",
				}, "\n"))
			})

			Convey("And the answers are counted", func() {
				So(testutil.CollectAndCount(m.Registry(), "advent_solver_answers_total"), ShouldEqual, 4)
			})
		})

		Convey("When running every day", func() {
			err := svc.Run(ctx)

			Convey("Then each day prints four lines", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(out.String()), "\n")
				So(lines, ShouldHaveLength, 12)
				So(lines[0], ShouldEqual, "[EXAMPLE] Answer pt.1: 24000")
				So(lines[2], ShouldEqual, "[TEST] Answer pt.1: 10")
				So(lines[3], ShouldEqual, "[TEST] Answer pt.2: 19")
				So(lines[8], ShouldEqual, "[EXAMPLE] Answer pt.1: 157")
			})
		})

		Convey("When days are given out of order and repeated", func() {
			err := svc.Run(ctx, 3, 1, 3)

			Convey("Then they run once each in ascending order", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(out.String()), "\n")
				So(lines, ShouldHaveLength, 8)
				So(lines[0], ShouldEqual, "[EXAMPLE] Answer pt.1: 24000")
				So(lines[4], ShouldEqual, "[EXAMPLE] Answer pt.1: 157")
			})
		})

		Convey("When running twice", func() {
			So(svc.Run(ctx, 1, 2, 3), ShouldBeNil)
			first := out.String()
			out.Reset()
			So(svc.Run(ctx, 1, 2, 3), ShouldBeNil)

			Convey("Then the output is identical", func() {
				So(out.String(), ShouldEqual, first)
			})
		})

		Convey("When an unknown day is requested", func() {
			err := svc.Run(ctx, 1, 9)

			Convey("Then nothing is solved", func() {
				So(errors.Is(err, puzzle.ErrUnknownDay), ShouldBeTrue)
				So(out.Len(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a service restricted to part 2", t, func() {
		var out bytes.Buffer
		svc, _ := newTestService(&out, WithPart(2))

		Convey("When running day 1", func() {
			err := svc.Run(context.Background(), 1)

			Convey("Then only part 2 answers are written", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldEqual, "[EXAMPLE] Answer pt.2: 45000\n[TEST] Answer pt.2: 19\n")
			})
		})
	})
}

func TestService_Failures(t *testing.T) {
	Convey("Given a service", t, func() {
		var out bytes.Buffer
		ctx := context.Background()

		Convey("When the personal input is missing", func() {
			svc, m := newTestService(&out, WithInputs(dataset.NewFSStore(fstest.MapFS{})))
			err := svc.Run(ctx, 2)

			Convey("Then the load stage fails before any answer is written", func() {
				var se *StageError
				So(errors.As(err, &se), ShouldBeTrue)
				So(se.Stage, ShouldEqual, StageLoad)
				So(se.Label, ShouldEqual, model.Test)
				So(errors.Is(err, dataset.ErrNotFound), ShouldBeTrue)
				So(err.Error(), ShouldStartWith, "day 2: load TEST: ")
				So(out.Len(), ShouldEqual, 0)
				So(testutil.CollectAndCount(m.Registry(), "advent_solver_errors_total"), ShouldEqual, 1)
			})
		})

		Convey("When the personal input is malformed", func() {
			bad := fstest.MapFS{"day-2/test.dat": {Data: []byte("A Y\nQ X\n")}}
			svc, _ := newTestService(&out, WithInputs(dataset.NewFSStore(bad)))
			err := svc.Run(ctx, 2)

			Convey("Then the example answers are written and the solve stage fails", func() {
				So(errors.Is(err, game.ErrInvalidToken), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "day 2: solve TEST pt.1: line 2")
				So(out.String(), ShouldEqual, "[EXAMPLE] Answer pt.1: 15\n[EXAMPLE] Answer pt.2: 12\n")
			})
		})

		Convey("When an example answer disagrees with the published one", func() {
			reg := puzzle.NewRegistry(fakeSolver{day: 2, p1: 7, want: puzzle.Expected{Part1: 8, Part2: 14}})
			svc, m := newTestService(&out, WithRegistry(reg))
			err := svc.Run(ctx, 2)

			Convey("Then the wrong answer is shown and verification fails", func() {
				So(errors.Is(err, ErrExampleMismatch), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "day 2: verify EXAMPLE pt.1")
				So(err.Error(), ShouldContainSubstring, "got 7, want 8")
				So(out.String(), ShouldEqual, "[EXAMPLE] Answer pt.1: 7\n")
				So(testutil.CollectAndCount(m.Registry(), "advent_solver_example_mismatches_total"), ShouldEqual, 1)
			})
		})

		Convey("When verification is disabled", func() {
			reg := puzzle.NewRegistry(fakeSolver{day: 2, p1: 7, want: puzzle.Expected{Part1: 8, Part2: 14}})
			svc, _ := newTestService(&out, WithRegistry(reg), WithVerifyExamples(false))
			err := svc.Run(ctx, 2)

			Convey("Then every answer is written", func() {
				So(err, ShouldBeNil)
				So(strings.Count(out.String(), "\n"), ShouldEqual, 4)
			})
		})

		Convey("When a solver fails", func() {
			boom := errors.New("boom")
			reg := puzzle.NewRegistry(fakeSolver{day: 1, err: boom})
			svc, _ := newTestService(&out, WithRegistry(reg))
			err := svc.Run(ctx, 1)

			Convey("Then the cause is preserved", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "day 1: solve EXAMPLE pt.1: boom")
			})
		})

		Convey("When the context is cancelled", func() {
			svc, _ := newTestService(&out)
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := svc.Run(cctx, 1)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("When the run is cancelled between parts", func() {
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			reg := puzzle.NewRegistry(cancelSolver{fakeSolver: fakeSolver{day: 1, p1: 3}, cancel: cancel})
			svc, m := newTestService(&out, WithRegistry(reg))
			err := svc.Run(cctx, 1)

			Convey("Then the cancellation carries its stage and is counted", func() {
				var se *StageError
				So(errors.As(err, &se), ShouldBeTrue)
				So(se.Stage, ShouldEqual, StageSolve)
				So(se.Label, ShouldEqual, model.Example)
				So(se.Part, ShouldEqual, 2)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(out.String(), ShouldEqual, "[EXAMPLE] Answer pt.1: 3\n")
				So(testutil.CollectAndCount(m.Registry(), "advent_solver_errors_total"), ShouldEqual, 1)
			})
		})

		Convey("When answers cannot be written", func() {
			werr := errors.New("disk full")
			svc, m := newTestService(&out, WithOutput(failingWriter{err: werr}))
			err := svc.Run(ctx, 2)

			Convey("Then the output stage fails and is counted", func() {
				var se *StageError
				So(errors.As(err, &se), ShouldBeTrue)
				So(se.Stage, ShouldEqual, StageOutput)
				So(errors.Is(err, werr), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "day 2: output EXAMPLE pt.1: disk full")
				So(testutil.CollectAndCount(m.Registry(), "advent_solver_errors_total"), ShouldEqual, 1)
			})
		})
	})
}

func TestService_Solvers(t *testing.T) {
	Convey("Given the default service", t, func() {
		solvers := New().Solvers()

		Convey("Then solvers are listed by day", func() {
			So(solvers, ShouldHaveLength, 3)
			for i, s := range solvers {
				So(s.Day(), ShouldEqual, i+1)
				So(s.Title(), ShouldNotBeEmpty)
			}
		})
	})
}

func TestStageError(t *testing.T) {
	Convey("Given stage errors", t, func() {
		cause := errors.New("cause")
		So((&StageError{Day: 1, Stage: StageOutput, Err: cause}).Error(), ShouldEqual, "day 1: output: cause")
		So((&StageError{Day: 1, Stage: StageLoad, Label: model.Example, Err: cause}).Error(), ShouldEqual, "day 1: load EXAMPLE: cause")
		So(errors.Unwrap(&StageError{Err: cause}), ShouldEqual, cause)
	})
}
