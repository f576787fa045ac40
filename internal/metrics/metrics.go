// Package metrics records Prometheus metrics for a report run and exports them
// in the text format read by node_exporter's textfile collector.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
)

// CodeNone is the code label of a request that got no HTTP response.
const CodeNone = "none"

// Recorder owns a private registry with all clusterinfo metrics.
// It satisfies sdk.RequestObserver.
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	runsTotal       *prometheus.CounterVec
	runDuration     prometheus.Gauge
	lastSuccess     prometheus.Gauge
}

// NewRecorder creates a Recorder with every collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clusterinfo_api_requests_total",
				Help: "Total number of Prism API requests by resource, HTTP status code and outcome",
			},
			[]string{"resource", "code", "outcome"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "clusterinfo_api_request_duration_seconds",
				Help: "Prism API request duration in seconds",
				// Prism answers in tens of milliseconds; timeouts sit at 5-30s
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"resource", "outcome"},
		),

		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clusterinfo_report_runs_total",
				Help: "Total number of report runs by result",
			},
			[]string{"result"},
		),

		runDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "clusterinfo_report_run_duration_seconds",
				Help: "Duration of the last report run in seconds",
			},
		),

		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "clusterinfo_report_last_success_timestamp_seconds",
				Help: "Unix time of the last successful report run",
			},
		),
	}

	r.registry.MustRegister(
		r.requestsTotal,
		r.requestDuration,
		r.runsTotal,
		r.runDuration,
		r.lastSuccess,
	)

	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRequest records one Prism API request.
func (r *Recorder) ObserveRequest(resource string, statusCode int, duration time.Duration, err error) {
	outcome := Outcome(err)
	r.requestsTotal.WithLabelValues(resource, statusLabel(statusCode), outcome).Inc()
	r.requestDuration.WithLabelValues(resource, outcome).Observe(duration.Seconds())
}

// ObserveRun records the result of a whole report run finishing at end.
func (r *Recorder) ObserveRun(err error, duration time.Duration, end time.Time) {
	outcome := Outcome(err)
	r.runsTotal.WithLabelValues(outcome).Inc()
	r.runDuration.Set(duration.Seconds())
	if err == nil {
		r.lastSuccess.Set(float64(end.Unix()))
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Outcome maps an error to a label value: "success", or the snake_case error kind.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	return snakeCase(models.KindOf(err).String())
}

func statusLabel(code int) string {
	if code == 0 {
		return CodeNone
	}
	return strconv.Itoa(code)
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
