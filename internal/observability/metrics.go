package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	entryPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "planner_service",
		Subsystem: "persistence",
		Name:      "last_entry_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent day entry persisted to Postgres.",
	})
	entryDeleteCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "planner_service",
		Subsystem: "persistence",
		Name:      "entries_deleted_total",
		Help:      "Number of day entries deleted.",
	})
	exportCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "planner_service",
		Subsystem: "export",
		Name:      "documents_generated_total",
		Help:      "Number of month export documents rendered.",
	})
)

func init() {
	prometheus.MustRegister(entryPersistGauge, entryDeleteCounter, exportCounter)
}

// RecordEntryPersisted updates the persistence watermark gauge.
func RecordEntryPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	entryPersistGauge.Set(float64(ts.Unix()))
}

// RecordEntryDeleted counts a successful delete.
func RecordEntryDeleted() {
	entryDeleteCounter.Inc()
}

// RecordExportGenerated counts a rendered month export.
func RecordExportGenerated() {
	exportCounter.Inc()
}
