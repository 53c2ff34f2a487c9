package bigbigint

// This file provides optional Prometheus instrumentation. Collection is
// disabled until a Collector is installed, costing a single nil check per
// counted event.

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the engine's operation counters.
type Collector struct {
	Grows           prometheus.Counter
	Divisions       prometheus.Counter
	DivisionsByZero prometheus.Counter
}

// NewCollector creates the counters and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Grows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bigbigint_buffer_grows_total",
			Help: "Number of magnitude buffer reallocations.",
		}),
		Divisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bigbigint_divisions_total",
			Help: "Number of division operations attempted.",
		}),
		DivisionsByZero: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bigbigint_divisions_by_zero_total",
			Help: "Number of divisions rejected for a zero divisor.",
		}),
	}
	for _, col := range []prometheus.Collector{c.Grows, c.Divisions, c.DivisionsByZero} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// collector is the installed instrumentation, nil when disabled.
var collector *Collector

// SetCollector installs (or, with nil, removes) the instrumentation.
// Like SetLogger, installation belongs at setup time.
func SetCollector(c *Collector) {
	collector = c
}

func countGrow() {
	if collector != nil {
		collector.Grows.Inc()
	}
}

func countDiv() {
	if collector != nil {
		collector.Divisions.Inc()
	}
}

func countDivByZero() {
	if collector != nil {
		collector.DivisionsByZero.Inc()
	}
}
