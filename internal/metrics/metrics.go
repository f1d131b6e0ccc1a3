// Package metrics exports hierarchy engine outcomes as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/specialistvlad/orgchart/internal/engine"
)

// Collector implements engine.Observer on top of Prometheus collectors.
type Collector struct {
	moves          *prometheus.CounterVec
	undos          *prometheus.CounterVec
	redos          *prometheus.CounterVec
	historyEntries prometheus.Gauge
	historyCursor  prometheus.Gauge
}

var _ engine.Observer = (*Collector)(nil)

// New registers the engine metrics with reg. Pass a fresh
// prometheus.NewRegistry() per engine in tests to avoid duplicate
// registration panics.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orgchart",
			Name:      "moves_total",
			Help:      "Move requests by outcome.",
		}, []string{"outcome"}),
		undos: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orgchart",
			Name:      "undo_total",
			Help:      "Undo requests by outcome.",
		}, []string{"outcome"}),
		redos: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orgchart",
			Name:      "redo_total",
			Help:      "Redo requests by outcome.",
		}, []string{"outcome"}),
		historyEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "orgchart",
			Name:      "history_entries",
			Help:      "Entries retained in the undo/redo log.",
		}),
		historyCursor: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "orgchart",
			Name:      "history_cursor",
			Help:      "Entries currently applied to the hierarchy.",
		}),
	}
}

func (c *Collector) ObserveMove(o engine.MoveOutcome) {
	c.moves.WithLabelValues(o.String()).Inc()
}

func (c *Collector) ObserveUndo(o engine.UndoOutcome) {
	c.undos.WithLabelValues(o.String()).Inc()
}

func (c *Collector) ObserveRedo(o engine.RedoOutcome) {
	c.redos.WithLabelValues(o.String()).Inc()
}

func (c *Collector) ObserveHistory(entries, cursor int) {
	c.historyEntries.Set(float64(entries))
	c.historyCursor.Set(float64(cursor))
}
