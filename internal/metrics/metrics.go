package metrics

import (
	"fmt"
	"time"

	"github.com/kievzenit/ylogo/internal/interpreter"
	"github.com/kievzenit/ylogo/internal/logo_errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records run metrics into its own registry. It implements
// interpreter.Observer.
type Collector struct {
	registry *prometheus.Registry

	statements *prometheus.CounterVec
	runs       *prometheus.CounterVec
	segments   prometheus.Counter
	iterations prometheus.Counter
	duration   prometheus.Histogram
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ylogo_statements_executed_total",
			Help: "Statements executed, by statement kind",
		}, []string{"kind"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ylogo_runs_total",
			Help: "Finished runs, by outcome",
		}, []string{"result"}),
		segments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ylogo_segments_drawn_total",
			Help: "Line segments emitted to the sink",
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ylogo_loop_iterations_total",
			Help: "Loop body iterations of REPEAT and WHILE",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ylogo_run_duration_seconds",
			Help:    "Run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	c.registry.MustRegister(c.statements, c.runs, c.segments, c.iterations, c.duration)
	return c
}

func (c *Collector) StatementExecuted(kind string) {
	c.statements.WithLabelValues(kind).Inc()
}

func (c *Collector) RunFinished(result *interpreter.Result, err error, elapsed time.Duration) {
	c.runs.WithLabelValues(outcome(err)).Inc()
	c.duration.Observe(elapsed.Seconds())

	if result != nil {
		c.segments.Add(float64(result.Segments))
		c.iterations.Add(float64(result.Iterations))
	}
}

// outcome is "ok" or the phase that failed: "lex", "parse" or "run".
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return logo_errors.FromError(err, nil).Phase.String()
}

// WriteFile writes the text exposition of every metric to path.
func (c *Collector) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
