// Package metrics exposes the Prometheus collectors of the solver.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry of the solver.
	Registry = prometheus.NewRegistry()

	// Solves counts solved instances by outcome ("ok" or "error").
	Solves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "carp_solves_total", Help: "Solved instances by status."},
		[]string{"status"},
	)
	// PhaseDuration records the duration of each pipeline phase in seconds.
	PhaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "carp_phase_duration_seconds", Help: "Pipeline phase duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"phase"},
	)
	// Moves counts the local search moves accepted by move type.
	Moves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "carp_local_search_moves_total", Help: "Accepted local search moves."},
		[]string{"move"},
	)
	// SolutionCost is the cost of the last solution found for each instance.
	SolutionCost = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "carp_solution_cost", Help: "Cost of the last solution by instance."},
		[]string{"instance"},
	)
)

var regOnce sync.Once

// Register registers the collectors to Registry. It is safe to call it
// several times.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(Solves)
		Registry.MustRegister(PhaseDuration)
		Registry.MustRegister(Moves)
		Registry.MustRegister(SolutionCost)
		Registry.MustRegister(collectors.NewGoCollector())
	})
}

// WriteTextfile writes the content of Registry to the given file in the
// Prometheus text format (e.g. for the node exporter's textfile collector).
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
