// Package metrics exposes Prometheus instrumentation for pattern
// compilation and matching.
//
// A Collector is handed to thompson.CompileWith through Options.Metrics:
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.New(reg)
//	if err != nil {
//	    return err
//	}
//	re, err := thompson.CompileWith("(ab)+", thompson.Options{Metrics: m})
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector holds the Prometheus metrics. A nil *Collector is valid and
// records nothing, so callers need not check whether metrics are enabled.
type Collector struct {
	compiles        *prometheus.CounterVec
	automatonStates prometheus.Histogram
	matches         *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		compiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thompson_compile_total",
				Help: "Total number of pattern compilations",
			},
			[]string{"result"},
		),
		automatonStates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "thompson_automaton_states",
				Help:    "Number of states in compiled automata",
				Buckets: prometheus.ExponentialBuckets(4, 2, 12), // 4 to 8192
			},
		),
		matches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thompson_match_total",
				Help: "Total number of whole-input match queries",
			},
			[]string{"result"},
		),
	}

	for _, col := range []prometheus.Collector{c.compiles, c.automatonStates, c.matches} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return c, nil
}

// RecordCompile records a compilation. states is ignored when err is set.
func (c *Collector) RecordCompile(states int, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.compiles.WithLabelValues("error").Inc()
		return
	}
	c.compiles.WithLabelValues("ok").Inc()
	c.automatonStates.Observe(float64(states))
}

// RecordMatch records the outcome of one match query.
func (c *Collector) RecordMatch(accepted bool) {
	if c == nil {
		return
	}
	if accepted {
		c.matches.WithLabelValues("accept").Inc()
	} else {
		c.matches.WithLabelValues("reject").Inc()
	}
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
