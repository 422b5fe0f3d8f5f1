package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported on /metrics.
// All methods are safe on a nil receiver.
type Metrics struct {
	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Admissions      *prometheus.CounterVec
	OTPIssued       *prometheus.CounterVec
	AdDecisions     *prometheus.CounterVec
	ControllerCalls *prometheus.CounterVec
	BreakerState    *prometheus.GaugeVec
	EventsAppended  *prometheus.CounterVec
	RadiusRequests  *prometheus.CounterVec
}

// NewMetrics registers the collectors under namespace. Calling it twice with
// the same namespace returns the already registered collectors.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RequestCount: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, "method", "route", "status"),
		RequestDuration: registerHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, "method", "route"),
		Admissions: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "portal",
			Name:      "admissions_total",
			Help:      "Guest admissions by method and result",
		}, "method", "result"),
		OTPIssued: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "portal",
			Name:      "otp_issued_total",
			Help:      "OTP issue attempts by result",
		}, "result"),
		AdDecisions: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ads",
			Name:      "decisions_total",
			Help:      "Ad decisions by reason",
		}, "reason"),
		ControllerCalls: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "controller",
			Name:      "calls_total",
			Help:      "Vendor controller calls by type, operation and result",
		}, "type", "op", "result"),
		BreakerState: registerGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "controller",
			Name:      "breaker_open",
			Help:      "1 while the circuit breaker for a controller is open",
		}, "name"),
		EventsAppended: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "appended_total",
			Help:      "Analytics events appended by type and result",
		}, "type", "result"),
		RadiusRequests: registerCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "radius",
			Name:      "requests_total",
			Help:      "RADIUS access requests by result",
		}, "result"),
	}
}

func registerCounter(opts prometheus.CounterOpts, labels ...string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogram(opts prometheus.HistogramOpts, labels ...string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}

func registerGauge(opts prometheus.GaugeOpts, labels ...string) *prometheus.GaugeVec {
	g := prometheus.NewGaugeVec(opts, labels)
	if err := prometheus.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.GaugeVec)
		}
		panic(err)
	}
	return g
}

// Handler serves the default registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// EchoMiddleware records request count and latency per route template.
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RequestCount.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

// Admission counts an admission attempt.
func (m *Metrics) Admission(method string, ok bool) {
	if m == nil {
		return
	}
	m.Admissions.WithLabelValues(method, result(ok)).Inc()
}

// OTP counts an OTP issue attempt; outcome is "ok", "rate_limited" or "error".
func (m *Metrics) OTP(outcome string) {
	if m == nil {
		return
	}
	m.OTPIssued.WithLabelValues(outcome).Inc()
}

// AdDecision counts a decision by reason.
func (m *Metrics) AdDecision(reason string) {
	if m == nil {
		return
	}
	m.AdDecisions.WithLabelValues(reason).Inc()
}

// ControllerCall counts a vendor controller call.
func (m *Metrics) ControllerCall(controllerType, op string, ok bool) {
	if m == nil {
		return
	}
	m.ControllerCalls.WithLabelValues(controllerType, op, result(ok)).Inc()
}

// SetBreakerOpen flags a breaker as open or closed.
func (m *Metrics) SetBreakerOpen(name string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.BreakerState.WithLabelValues(name).Set(v)
}

// EventAppended counts an event log append.
func (m *Metrics) EventAppended(eventType string, ok bool) {
	if m == nil {
		return
	}
	m.EventsAppended.WithLabelValues(eventType, result(ok)).Inc()
}

// RadiusRequest counts a RADIUS decision; outcome is "accept", "reject" or "error".
func (m *Metrics) RadiusRequest(outcome string) {
	if m == nil {
		return
	}
	m.RadiusRequests.WithLabelValues(outcome).Inc()
}
