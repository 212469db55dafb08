package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the roll metrics of one session.
type Collector struct {
	EventsPublished    *prometheus.CounterVec
	EventHandlerErrors *prometheus.CounterVec

	RollsTotal           *prometheus.CounterVec
	RaritiesRolled       *prometheus.CounterVec
	DowngradesSuppressed prometheus.Counter
	NameFallbacks        prometheus.Counter
	ItemLevel            *prometheus.GaugeVec
}

// NewCollector creates the session metrics and registers them with reg.
// Pass a fresh prometheus.NewRegistry() per session or test.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameEventsPublished,
				Help: HelpTextEventsPublished,
			},
			[]string{LabelType},
		),
		EventHandlerErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameEventHandlerErrors,
				Help: HelpTextEventHandlerErrors,
			},
			[]string{LabelType},
		),
		RollsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameRollsTotal,
				Help: HelpTextRollsTotal,
			},
			[]string{LabelSlot},
		),
		RaritiesRolled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameRaritiesRolled,
				Help: HelpTextRaritiesRolled,
			},
			[]string{LabelRarity},
		),
		DowngradesSuppressed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricNameDowngradesSuppressed,
				Help: HelpTextDowngradesSuppressed,
			},
		),
		NameFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricNameNameFallbacks,
				Help: HelpTextNameFallbacks,
			},
		),
		ItemLevel: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricNameItemLevel,
				Help: HelpTextItemLevel,
			},
			[]string{LabelSlot},
		),
	}
}

// Totals reduces each gathered metric family to one value for the
// end-of-session summary. Counter samples are summed; gauge families report
// their highest sample, since per-slot levels do not add up to anything.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(families))
	for _, mf := range families {
		var value float64
		for i, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				value += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				if v := m.GetGauge().GetValue(); i == 0 || v > value {
					value = v
				}
			}
		}
		totals[mf.GetName()] = value
	}
	return totals, nil
}
