// Package solver chains the phases of the CARP heuristic: all-pairs shortest
// paths, Clarke-Wright construction, and local search improvement.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rhartert/carp-ls/carp"
	"github.com/rhartert/carp-ls/carp/routes"
	"github.com/rhartert/carp-ls/metrics"
	"go.uber.org/zap"
)

const (
	MethodFloydWarshall = "floyd-warshall"
	MethodDijkstra      = "dijkstra"
)

type Config struct {
	// ShortestPaths is the algorithm used to compute the all-pairs shortest
	// paths: MethodFloydWarshall or MethodDijkstra. Both yield the same
	// distances, Dijkstra is faster on large sparse networks.
	ShortestPaths string

	// MaxMoves bounds the number of moves accepted by each call to a local
	// search (one 2-opt call per route and one relocate call). Zero means no
	// limit.
	MaxMoves int

	// TimeLimit bounds the wall-clock time of the improvement phase. When the
	// limit is reached, the best routes found so far are returned. Zero means
	// no limit.
	TimeLimit time.Duration

	// SkipImprovement disables the local search phase.
	SkipImprovement bool
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{ShortestPaths: MethodFloydWarshall}
}

// Validate returns an error if the configuration is invalid.
func (c Config) Validate() error {
	switch c.ShortestPaths {
	case MethodFloydWarshall, MethodDijkstra:
	default:
		return fmt.Errorf("unknown shortest paths method %q", c.ShortestPaths)
	}
	if c.MaxMoves < 0 {
		return fmt.Errorf("max moves must be non-negative, got %d", c.MaxMoves)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("time limit must be non-negative, got %s", c.TimeLimit)
	}
	return nil
}

// Moves counts the moves accepted by each local search.
type Moves struct {
	TwoOpt   int
	Relocate int
}

// Result is the outcome of solving one instance.
type Result struct {
	RunID       string
	Paths       *carp.ShortestPaths
	Routes      []*routes.Sequence
	Solution    *carp.Solution
	InitialCost int
	Moves       Moves
	Clocks      carp.Clocks
}

type Solver struct {
	Cfg Config
	log *zap.Logger
}

// New returns a solver with the given configuration. Solvers hold no state
// between calls to Solve and can be used concurrently on distinct instances.
func New(cfg Config, log *zap.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	metrics.Register()
	return &Solver{Cfg: cfg, log: log}, nil
}

// Solve builds and improves routes for the instance. Cancelling ctx stops the
// improvement phase early, the routes found so far are still returned.
func (s *Solver) Solve(ctx context.Context, inst *carp.Instance) (*Result, error) {
	res, err := s.solve(ctx, inst)
	if err != nil {
		metrics.Solves.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.Solves.WithLabelValues("ok").Inc()
	metrics.SolutionCost.WithLabelValues(inst.Name).Set(float64(res.Solution.TotalCost))
	return res, nil
}

func (s *Solver) solve(ctx context.Context, inst *carp.Instance) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := s.log.With(zap.String("run_id", res.RunID), zap.String("instance", inst.Name))
	start := time.Now()

	p, err := s.compile(inst)
	if err != nil {
		return nil, fmt.Errorf("instance %q: %w", inst.Name, err)
	}
	res.Paths = p.Paths
	observe(log, "shortest_paths", start, zap.Int("vertices", p.Paths.Len()))

	phaseStart := time.Now()
	initial := carp.ClarkeWright(p)
	res.Routes = make([]*routes.Sequence, len(initial))
	for i, r := range initial {
		res.Routes[i] = r.Services
		res.InitialCost += p.Cost(r.Services.IDs())
	}
	bestAt := time.Since(start)
	observe(log, "construction", phaseStart,
		zap.Int("routes", len(res.Routes)),
		zap.Int("cost", res.InitialCost))

	if !s.Cfg.SkipImprovement {
		phaseStart = time.Now()
		if s.improve(ctx, p, res) {
			bestAt = time.Since(start)
		}
		observe(log, "improvement", phaseStart,
			zap.Int("routes", len(res.Routes)),
			zap.Int("two_opt_moves", res.Moves.TwoOpt),
			zap.Int("relocate_moves", res.Moves.Relocate))
	}

	if err := p.Check(res.Routes); err != nil {
		return nil, fmt.Errorf("instance %q: invalid routes: %w", inst.Name, err)
	}

	sol, err := carp.Encode(p, res.Routes)
	if err != nil {
		return nil, fmt.Errorf("instance %q: %w", inst.Name, err)
	}
	res.Solution = sol
	res.Clocks = carp.Clocks{
		Total: time.Since(start).Nanoseconds(),
		Best:  bestAt.Nanoseconds(),
	}

	log.Info("instance solved",
		zap.Int("cost", sol.TotalCost),
		zap.Int("vehicles", sol.Vehicles),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (s *Solver) compile(inst *carp.Instance) (*carp.Problem, error) {
	dg := carp.NewDigraph(carp.NewVertexIndex(inst.Vertices()), inst.Segments())

	var sp *carp.ShortestPaths
	switch s.Cfg.ShortestPaths {
	case MethodDijkstra:
		var err error
		if sp, err = carp.Dijkstra(dg); err != nil {
			return nil, err
		}
	default:
		sp = carp.FloydWarshall(dg)
	}

	return carp.NewProblem(inst, sp)
}

// improve runs 2-opt on every route followed by relocate. It returns true if
// the routes' total cost decreased.
func (s *Solver) improve(ctx context.Context, p *carp.Problem, res *Result) bool {
	if s.Cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Cfg.TimeLimit)
		defer cancel()
	}

	for i, seq := range res.Routes {
		improved, _, moves := carp.TwoOpt(ctx, p, seq, s.Cfg.MaxMoves)
		res.Routes[i] = improved
		res.Moves.TwoOpt += moves
	}
	metrics.Moves.WithLabelValues("two_opt").Add(float64(res.Moves.TwoOpt))

	res.Routes, res.Moves.Relocate = carp.Relocate(ctx, p, res.Routes, s.Cfg.MaxMoves)
	metrics.Moves.WithLabelValues("relocate").Add(float64(res.Moves.Relocate))

	return res.Moves.TwoOpt+res.Moves.Relocate > 0
}

func observe(log *zap.Logger, phase string, start time.Time, fields ...zap.Field) {
	elapsed := time.Since(start)
	metrics.PhaseDuration.WithLabelValues(phase).Observe(elapsed.Seconds())
	log.Debug("phase done", append(fields, zap.String("phase", phase), zap.Duration("elapsed", elapsed))...)
}
