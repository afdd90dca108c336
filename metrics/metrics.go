//go:build !solution

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grocer"

// Metrics собирает статистику одного запуска. Процесс интерактивный и живёт
// недолго, поэтому метрики не отдаются по HTTP, а пишутся в textfile при выходе.
type Metrics struct {
	registry *prometheus.Registry

	actions       *prometheus.CounterVec
	lookups       *prometheus.CounterVec
	invalidChoice prometheus.Counter
	uniqueItems   prometheus.Gauge
	totalItems    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_actions_total",
			Help:      "Menu actions selected by the user.",
		}, []string{"action"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Item searches by result.",
		}, []string{"result"}),
		invalidChoice: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_choices_total",
			Help:      "Menu inputs outside of 1..4.",
		}),
		uniqueItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unique_items",
			Help:      "Distinct items in the frequency table.",
		}),
		totalItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "purchases",
			Help:      "Sum of all item counts.",
		}),
	}
	m.registry.MustRegister(m.actions, m.lookups, m.invalidChoice, m.uniqueItems, m.totalItems)
	return m
}

func (m *Metrics) Action(name string) {
	m.actions.WithLabelValues(name).Inc()
}

func (m *Metrics) Lookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookups.WithLabelValues(result).Inc()
}

func (m *Metrics) InvalidChoice() {
	m.invalidChoice.Inc()
}

// SetTable запоминает размер загруженной таблицы.
func (m *Metrics) SetTable(unique, total int) {
	m.uniqueItems.Set(float64(unique))
	m.totalItems.Set(float64(total))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile пишет все метрики в формате textfile-коллектора node_exporter.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
