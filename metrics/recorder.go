// Package metrics exposes run progress as Prometheus metrics
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/bitga/optimizer"
	"github.com/lixenwraith/bitga/report"
)

// Recorder holds the run metrics registered on one registry
type Recorder struct {
	generation       prometheus.Gauge
	generationBest   prometheus.Gauge
	generationMean   prometheus.Gauge
	bestFitness      prometheus.Gauge
	generationsTotal prometheus.Counter
	runsTotal        *prometheus.CounterVec
}

// NewRecorder creates the metrics and registers them on reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitga_generation",
			Help: "Generation most recently evaluated (1-indexed).",
		}),
		generationBest: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitga_generation_best_fitness",
			Help: "Best fitness in the current generation.",
		}),
		generationMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitga_generation_mean_fitness",
			Help: "Mean fitness of the current generation.",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitga_best_fitness",
			Help: "Best fitness seen so far in the current run.",
		}),
		generationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bitga_generations_total",
			Help: "Generations evaluated across all runs.",
		}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitga_runs_total",
			Help: "Completed runs by verdict.",
		}, []string{"verdict"}),
	}

	for _, c := range []prometheus.Collector{
		r.generation, r.generationBest, r.generationMean,
		r.bestFitness, r.generationsTotal, r.runsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe records one generation; usable as an optimizer observer
func (r *Recorder) Observe(rep optimizer.GenerationReport) {
	r.generation.Set(float64(rep.Generation))
	r.generationBest.Set(float64(rep.Stats.BestScore))
	r.generationMean.Set(rep.Stats.Mean)
	r.bestFitness.Set(float64(rep.BestEver))
	r.generationsTotal.Inc()
}

// RunFinished counts a completed run
func (r *Recorder) RunFinished(v report.Verdict) {
	r.runsTotal.With(prometheus.Labels{"verdict": string(v)}).Inc()
}

// Handler serves the metrics gathered from g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
