package mainctx

import (
	"errors"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/prometheus/client_golang/prometheus"
)

type loopMetrics struct {
	posted   prometheus.Counter
	executed prometheus.Counter
	dropped  prometheus.Counter
	panics   prometheus.Counter
	pending  prometheus.Gauge
}

func newLoopMetrics(reg prometheus.Registerer, loop string) *loopMetrics {
	posted := counterVec(reg, "tasks_posted_total", "Tasks accepted by the loop.")
	executed := counterVec(reg, "tasks_executed_total", "Tasks run to completion or recovered from a panic.")
	dropped := counterVec(reg, "tasks_dropped_total", "Tasks rejected or abandoned by the loop.")
	panics := counterVec(reg, "task_panics_total", "Tasks that panicked.")

	pending := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: constants.DefaultMetricsNamespace,
		Subsystem: constants.DefaultLoopMetricsSubsys,
		Name:      "tasks_pending",
		Help:      "Tasks waiting to run.",
	}, []string{"loop"})
	pending = register(reg, pending)

	return &loopMetrics{
		posted:   posted.WithLabelValues(loop),
		executed: executed.WithLabelValues(loop),
		dropped:  dropped.WithLabelValues(loop),
		panics:   panics.WithLabelValues(loop),
		pending:  pending.WithLabelValues(loop),
	}
}

func counterVec(reg prometheus.Registerer, name, help string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: constants.DefaultMetricsNamespace,
		Subsystem: constants.DefaultLoopMetricsSubsys,
		Name:      name,
		Help:      help,
	}, []string{"loop"})
	return register(reg, vec)
}

// register adds c to reg, reusing the collector already registered under the
// same descriptor so several loops can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}
