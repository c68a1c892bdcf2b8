package metrics

import "github.com/prometheus/client_golang/prometheus"

// Manager holds the market's Prometheus counters on a private registry so
// tests can run several instances in one process.
type Manager struct {
	Registry *prometheus.Registry

	TradesRequested      prometheus.Counter
	TradesCompleted      prometheus.Counter
	TradesCancelled      prometheus.Counter
	EvaluationsRecorded  prometheus.Counter
	ReportsFiled         prometheus.Counter
	SnapshotSaves        prometheus.Counter
	SnapshotSaveFailures prometheus.Counter
}

func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	m := &Manager{
		Registry: registry,
		TradesRequested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_requested_total",
			Help:      "Total number of trade requests created.",
		}),
		TradesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_completed_total",
			Help:      "Total number of trades that reached the completed status.",
		}),
		TradesCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_cancelled_total",
			Help:      "Total number of trades that were cancelled.",
		}),
		EvaluationsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_recorded_total",
			Help:      "Total number of reputation evaluations recorded.",
		}),
		ReportsFiled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_filed_total",
			Help:      "Total number of abuse reports filed.",
		}),
		SnapshotSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_saves_total",
			Help:      "Total number of successful snapshot writes.",
		}),
		SnapshotSaveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_save_failures_total",
			Help:      "Total number of failed snapshot writes.",
		}),
	}

	registry.MustRegister(
		m.TradesRequested,
		m.TradesCompleted,
		m.TradesCancelled,
		m.EvaluationsRecorded,
		m.ReportsFiled,
		m.SnapshotSaves,
		m.SnapshotSaveFailures,
	)
	return m
}
