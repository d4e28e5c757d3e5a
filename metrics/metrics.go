package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SketchesGenerated counts every PRR-sketch sampled across the
// adaptive loop's rounds, labeled by which family generated it.
var SketchesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "c2boost",
	Subsystem: "sampling",
	Name:      "sketches_generated_total",
	Help:      "Total PRR-sketches sampled.",
}, []string{"algo"})

// SampleLoopIteration tracks the current doubling round of the
// adaptive martingale controller; RunPRStatic sets it to the index of
// the current schedule step instead.
var SampleLoopIteration = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "c2boost",
	Subsystem: "sampling",
	Name:      "loop_iteration",
	Help:      "Current iteration of the adaptive sample-size doubling loop.",
})

// WorkerPoolActive tracks how many worker goroutines are currently
// generating samples.
var WorkerPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "c2boost",
	Subsystem: "sampling",
	Name:      "worker_pool_active",
	Help:      "Number of worker goroutines currently sampling.",
})

// SelectionDuration tracks end-to-end wall time of one selection run,
// labeled by the algorithm that ran.
var SelectionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "c2boost",
	Subsystem: "selection",
	Name:      "duration_seconds",
	Help:      "Wall-clock duration of one boosted-set selection run.",
	Buckets:   prometheus.DefBuckets,
}, []string{"algo"})

// SampleLimitHit counts how often the sample-limit resource cap cut a
// run short: logged as a warning, with the best-so-far selection
// returned rather than a fatal error.
var SampleLimitHit = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "c2boost",
	Subsystem: "sampling",
	Name:      "sample_limit_hit_total",
	Help:      "Total runs that terminated early because sample-limit was reached.",
}, []string{"algo"})

// Serve starts an HTTP server exposing /metrics on addr. It blocks
// until the server exits (it is expected to run in its own goroutine,
// same as tutu's API server's metrics route); the returned error is
// always non-nil once the listener stops.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
