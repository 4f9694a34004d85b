// Package metrics exports simulation counters to Prometheus. The collector
// is an ordinary event listener; the simulation never calls it directly.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-radar-scope/internal/event"

	"github.com/prometheus/client_golang/prometheus"
)

// Escape outcomes used as the "outcome" label.
const (
	OutcomeRecalled = "recalled"
	OutcomeEvaded   = "evaded"
	OutcomeMissed   = "missed" // authorized aircraft got away
)

// Collector bundles the scope metrics.
type Collector struct {
	AircraftSpawned       prometheus.Counter
	AircraftEscaped       *prometheus.CounterVec
	AircraftDestroyed     *prometheus.CounterVec
	InterceptorsLaunched  prometheus.Counter
	InterceptorsDetonated prometheus.Counter
	Detections            prometheus.Counter
	Score                 prometheus.Gauge
	RulesActive           prometheus.Gauge
	UpdateDuration        prometheus.Histogram
}

// NewCollector registers the scope metrics against reg, defaulting to the
// global registry when nil. Registering twice returns the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{}
	var err error

	if c.AircraftSpawned, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scope_aircraft_spawned_total",
		Help: "Aircraft that entered the scope.",
	}), "scope_aircraft_spawned_total"); err != nil {
		return nil, err
	}
	if c.AircraftEscaped, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scope_aircraft_escaped_total",
		Help: "Aircraft that left the play area, labeled by outcome.",
	}, []string{"outcome"}), "scope_aircraft_escaped_total"); err != nil {
		return nil, err
	}
	if c.AircraftDestroyed, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scope_aircraft_destroyed_total",
		Help: "Aircraft destroyed by blasts, labeled by purpose and authorization.",
	}, []string{"purpose", "authorized"}), "scope_aircraft_destroyed_total"); err != nil {
		return nil, err
	}
	if c.InterceptorsLaunched, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scope_interceptors_launched_total",
		Help: "Interceptors fired from the scope centre.",
	}), "scope_interceptors_launched_total"); err != nil {
		return nil, err
	}
	if c.InterceptorsDetonated, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scope_interceptors_detonated_total",
		Help: "Interceptor detonations, manual and automatic.",
	}), "scope_interceptors_detonated_total"); err != nil {
		return nil, err
	}
	if c.Detections, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scope_detections_total",
		Help: "First radar contacts.",
	}), "scope_detections_total"); err != nil {
		return nil, err
	}
	if c.Score, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scope_score",
		Help: "Current score.",
	}), "scope_score"); err != nil {
		return nil, err
	}
	if c.RulesActive, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scope_rules_active",
		Help: "Number of active no-fly rules.",
	}), "scope_rules_active"); err != nil {
		return nil, err
	}
	if c.UpdateDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scope_update_duration_seconds",
		Help:    "Wall time spent in one simulation update.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	}), "scope_update_duration_seconds"); err != nil {
		return nil, err
	}
	return c, nil
}

// Subscribe attaches the collector to every event it counts.
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.AircraftSpawned,
		event.AircraftEscaped,
		event.AircraftDestroyed,
		event.InterceptorLaunched,
		event.InterceptorDetonated,
		event.Detection,
		event.ScoreChanged,
		event.RuleChanged,
	)
}

// ObserveUpdate records how long one simulation update took.
func (c *Collector) ObserveUpdate(d time.Duration) {
	c.UpdateDuration.Observe(d.Seconds())
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.AircraftSpawned:
		c.AircraftSpawned.Inc()
	case event.AircraftEscaped:
		if info, ok := e.Data.(event.AircraftInfo); ok {
			c.AircraftEscaped.WithLabelValues(escapeOutcome(info)).Inc()
		}
	case event.AircraftDestroyed:
		if info, ok := e.Data.(event.AircraftInfo); ok {
			c.AircraftDestroyed.WithLabelValues(string(info.Purpose), strconv.FormatBool(info.Authorized)).Inc()
		}
	case event.InterceptorLaunched:
		c.InterceptorsLaunched.Inc()
	case event.InterceptorDetonated:
		c.InterceptorsDetonated.Inc()
	case event.Detection:
		c.Detections.Inc()
	case event.ScoreChanged:
		if d, ok := e.Data.(event.ScoreDelta); ok {
			c.Score.Set(float64(d.Total))
		}
	case event.RuleChanged:
		if rc, ok := e.Data.(event.RuleChange); ok {
			c.RulesActive.Set(float64(rc.Active))
		}
	}
}

func escapeOutcome(info event.AircraftInfo) string {
	switch {
	case info.Recalled:
		return OutcomeRecalled
	case info.Authorized:
		return OutcomeMissed
	default:
		return OutcomeEvaded
	}
}

// register adds c to reg. If an equal collector is already registered the
// existing one is returned instead, so building the collector twice is safe.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var zero T
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return zero, err
	}
	return c, nil
}
