package solver

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rhartert/carp-ls/carp"
	"github.com/rhartert/carp-ls/metrics"
	"go.uber.org/zap"
)

// gridInstance returns a 3x3 grid of unit edges with the depot in a corner and
// a mix of node, edge, and arc services.
func gridInstance(t *testing.T, capacity int) *carp.Instance {
	t.Helper()
	g := &carp.Graph{
		Depot: "a1",
		Edges: []carp.Link{
			{From: "a1", To: "a2", Cost: 1}, {From: "a2", To: "a3", Cost: 1},
			{From: "b1", To: "b2", Cost: 1}, {From: "b2", To: "b3", Cost: 1},
			{From: "c1", To: "c2", Cost: 1}, {From: "c2", To: "c3", Cost: 1},
			{From: "a1", To: "b1", Cost: 1}, {From: "b1", To: "c1", Cost: 1},
			{From: "a2", To: "b2", Cost: 1}, {From: "b2", To: "c2", Cost: 1},
			{From: "a3", To: "b3", Cost: 1}, {From: "b3", To: "c3", Cost: 1},
		},
	}
	services := []carp.Service{
		{ID: 1, Kind: carp.KindNode, From: "c3", To: "c3", Demand: 2},
		{ID: 2, Kind: carp.KindNode, From: "a3", To: "a3", Demand: 1},
		{ID: 3, Kind: carp.KindEdge, From: "b2", To: "c2", Demand: 3, Cost: 1, TravelCost: 1},
		{ID: 4, Kind: carp.KindArc, From: "c1", To: "c2", Demand: 2, Cost: 2, TravelCost: 1},
		{ID: 5, Kind: carp.KindNode, From: "b3", To: "b3", Demand: 1},
		{ID: 6, Kind: carp.KindEdge, From: "a2", To: "a3", Demand: 2, Cost: 1, TravelCost: 1},
	}
	inst, err := carp.NewInstance("grid", g, services, capacity)
	if err != nil {
		t.Fatalf("NewInstance(): want no error, got %s", err)
	}
	return inst
}

func mustSolver(t *testing.T, cfg Config) *Solver {
	t.Helper()
	s, err := New(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("New(): want no error, got %s", err)
	}
	return s
}

func mustSolve(t *testing.T, ctx context.Context, s *Solver, inst *carp.Instance) *Result {
	t.Helper()
	res, err := s.Solve(ctx, inst)
	if err != nil {
		t.Fatalf("Solve(): want no error, got %s", err)
	}
	return res
}

// servedIDs returns the sorted IDs of the services performed by the solution.
func servedIDs(sol *carp.Solution) []int {
	var ids []int
	for _, trip := range sol.Trips {
		for _, leg := range trip.Legs {
			if leg.Kind == carp.LegService {
				ids = append(ids, leg.Service)
			}
		}
	}
	slices.Sort(ids)
	return ids
}

var allServices = []int{1, 2, 3, 4, 5, 6}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		desc    string
		cfg     Config
		wantErr bool
	}{
		{desc: "default", cfg: DefaultConfig()},
		{desc: "dijkstra", cfg: Config{ShortestPaths: MethodDijkstra, MaxMoves: 10, TimeLimit: time.Second}},
		{desc: "unknown method", cfg: Config{ShortestPaths: "bellman-ford"}, wantErr: true},
		{desc: "empty method", cfg: Config{}, wantErr: true},
		{desc: "negative moves", cfg: Config{ShortestPaths: MethodFloydWarshall, MaxMoves: -1}, wantErr: true},
		{desc: "negative time limit", cfg: Config{ShortestPaths: MethodFloydWarshall, TimeLimit: -time.Second}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.cfg.Validate()
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("Validate(): want error %t, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNew_invalidConfig(t *testing.T) {
	if _, err := New(Config{ShortestPaths: "unknown"}, zap.NewNop()); err == nil {
		t.Errorf("New(): want error, got none")
	}
}

func TestSolver_Solve(t *testing.T) {
	inst := gridInstance(t, 5)
	res := mustSolve(t, context.Background(), mustSolver(t, DefaultConfig()), inst)

	if res.RunID == "" {
		t.Errorf("RunID: want non-empty")
	}
	if diff := cmp.Diff(allServices, servedIDs(res.Solution)); diff != "" {
		t.Errorf("served services: mismatch (-want +got):\n%s", diff)
	}
	if got, want := res.Solution.Vehicles, len(res.Routes); got != want {
		t.Errorf("Vehicles: want %d, got %d", want, got)
	}
	if res.Solution.TotalCost > res.InitialCost {
		t.Errorf("TotalCost: want at most %d, got %d", res.InitialCost, res.Solution.TotalCost)
	}
	if res.Clocks.Best > res.Clocks.Total {
		t.Errorf("Clocks: best %d after total %d", res.Clocks.Best, res.Clocks.Total)
	}

	sum := 0
	for i, trip := range res.Solution.Trips {
		if trip.Load > inst.Capacity {
			t.Errorf("trip %d: load %d > capacity %d", i, trip.Load, inst.Capacity)
		}
		sum += trip.Cost
	}
	if sum != res.Solution.TotalCost {
		t.Errorf("sum of trip costs: want %d, got %d", res.Solution.TotalCost, sum)
	}
}

func TestSolver_Solve_dijkstraMatchesFloydWarshall(t *testing.T) {
	inst := gridInstance(t, 6)

	want := mustSolve(t, context.Background(), mustSolver(t, Config{ShortestPaths: MethodFloydWarshall}), inst)
	got := mustSolve(t, context.Background(), mustSolver(t, Config{ShortestPaths: MethodDijkstra}), inst)

	if got.InitialCost != want.InitialCost {
		t.Errorf("InitialCost: want %d, got %d", want.InitialCost, got.InitialCost)
	}
	if got.Solution.TotalCost != want.Solution.TotalCost {
		t.Errorf("TotalCost: want %d, got %d", want.Solution.TotalCost, got.Solution.TotalCost)
	}
}

func TestSolver_Solve_skipImprovement(t *testing.T) {
	cfg := Config{ShortestPaths: MethodFloydWarshall, SkipImprovement: true}
	res := mustSolve(t, context.Background(), mustSolver(t, cfg), gridInstance(t, 5))

	if diff := cmp.Diff(Moves{}, res.Moves); diff != "" {
		t.Errorf("Moves: mismatch (-want +got):\n%s", diff)
	}
	if res.Solution.TotalCost != res.InitialCost {
		t.Errorf("TotalCost: want %d, got %d", res.InitialCost, res.Solution.TotalCost)
	}
}

func TestSolver_Solve_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := mustSolve(t, ctx, mustSolver(t, DefaultConfig()), gridInstance(t, 5))

	if diff := cmp.Diff(Moves{}, res.Moves); diff != "" {
		t.Errorf("Moves: mismatch (-want +got):\n%s", diff)
	}
	if res.Solution.TotalCost != res.InitialCost {
		t.Errorf("TotalCost: want %d, got %d", res.InitialCost, res.Solution.TotalCost)
	}
	if diff := cmp.Diff(allServices, servedIDs(res.Solution)); diff != "" {
		t.Errorf("served services: mismatch (-want +got):\n%s", diff)
	}
}

func TestSolver_Solve_metrics(t *testing.T) {
	s := mustSolver(t, DefaultConfig())

	before := testutil.ToFloat64(metrics.Solves.WithLabelValues("ok"))
	res := mustSolve(t, context.Background(), s, gridInstance(t, 5))

	if got := testutil.ToFloat64(metrics.Solves.WithLabelValues("ok")); got != before+1 {
		t.Errorf("carp_solves_total{status=ok}: want %v, got %v", before+1, got)
	}
	want := float64(res.Solution.TotalCost)
	if got := testutil.ToFloat64(metrics.SolutionCost.WithLabelValues("grid")); got != want {
		t.Errorf("carp_solution_cost{instance=grid}: want %v, got %v", want, got)
	}
}
