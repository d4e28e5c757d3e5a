// Package metrics instruments the adaptive sampling loop and CLI with
// Prometheus counters, gauges, and a histogram, in the style of tutu's
// observability package: package-level promauto collectors, served on
// an optional /metrics endpoint.
package metrics
