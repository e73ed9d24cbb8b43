package perf

import (
	"expvar"
	"log/slog"

	"github.com/encodeous/metric"
)

var (
	ConvergenceLatency  = metric.NewHistogram("1m1s")
	SwitchesVisited     = metric.NewCounter("1m1s")
	SwitchesUnreachable = metric.NewCounter("1m1s")
)

func init() {
	expvar.Publish("stp:ConvergenceLatency (µs)", ConvergenceLatency)
	expvar.Publish("stp:SwitchesVisited", SwitchesVisited)
	expvar.Publish("stp:SwitchesUnreachable", SwitchesUnreachable)
}

// Dump logs the current value of every stp metric.
func Dump(log *slog.Logger) {
	log.Debug("metrics",
		"convergence_latency_us", ConvergenceLatency.String(),
		"switches_visited", SwitchesVisited.String(),
		"switches_unreachable", SwitchesUnreachable.String())
}
