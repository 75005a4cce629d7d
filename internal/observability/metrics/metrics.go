package metrics

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "bim_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	assemblyRuns    *prometheus.CounterVec
	assemblyLatency *prometheus.HistogramVec
	stageLatency    *prometheus.HistogramVec

	assemblyElements      prometheus.Histogram
	assemblyConflicts     prometheus.Histogram
	assemblyRelationships prometheus.Histogram

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec
)

// Init registers observability metrics and DB-backed gauges.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		assemblyRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "assembly_runs_total",
				Help: "Total assembly pipeline runs by result",
			},
			[]string{"result"},
		)
		assemblyLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assembly_run_latency_seconds",
				Help:    "Assembly run latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		stageLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assembly_stage_latency_seconds",
				Help:    "Assembly stage latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		)

		assemblyElements = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assembly_elements",
				Help:    "Elements produced per assembly run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		)
		assemblyConflicts = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assembly_conflicts",
				Help:    "Conflicts detected per assembly run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		)
		assemblyRelationships = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assembly_relationships",
				Help:    "Relationships derived per assembly run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "result_export_total",
				Help: "Total result export operations by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "result_export_latency_seconds",
				Help:    "Result export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			assemblyRuns,
			assemblyLatency,
			stageLatency,
			assemblyElements,
			assemblyConflicts,
			assemblyRelationships,
			exportTotal,
			exportLatency,
		)

		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// ObserveAssemblyRun records the duration and result of one pipeline run.
func ObserveAssemblyRun(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if assemblyRuns != nil {
		assemblyRuns.WithLabelValues(result).Inc()
	}
	if assemblyLatency != nil {
		assemblyLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveStage records the duration of one pipeline stage.
func ObserveStage(stage string, duration time.Duration) {
	if stage == "" {
		stage = "unknown"
	}
	if stageLatency != nil {
		stageLatency.WithLabelValues(stage).Observe(duration.Seconds())
	}
}

// ObserveAssemblyOutput records the collection sizes of a finished run.
func ObserveAssemblyOutput(elements, conflicts, relationships int) {
	if assemblyElements != nil {
		assemblyElements.Observe(float64(elements))
	}
	if assemblyConflicts != nil {
		assemblyConflicts.Observe(float64(conflicts))
	}
	if assemblyRelationships != nil {
		assemblyRelationships.Observe(float64(relationships))
	}
}

// ObserveExport records export latency and result.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
