// file: internals/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "presensiku"

var (
	// outcome: created | fetched | backfilled | raced
	SessionMaterialize = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_materialize_total",
		Help:      "Hasil create-or-fetch sesi presensi.",
	}, []string{"outcome"})

	// outcome: skipped | ok | failed
	JournalReconcile = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_reconcile_total",
		Help:      "Hasil sinkron sesi presensi ke jurnal mengajar.",
	}, []string{"outcome"})

	// action: updated | inserted
	JournalHour = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_hour_total",
		Help:      "Baris jurnal per jam yang ditulis oleh rekonsiliasi.",
	}, []string{"action"})

	JournalConflict = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_conflict_total",
		Help:      "Slot jurnal dengan lebih dari satu baris kandidat.",
	})

	JournalReconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "journal_reconcile_duration_seconds",
		Help:      "Durasi satu kali rekonsiliasi sesi.",
		Buckets:   prometheus.DefBuckets,
	})
)
