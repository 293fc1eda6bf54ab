package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio. Se registra en un Registry propio
// (no el global) para que cada router de test tenga el suyo.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	VetsRegistered       prometheus.Counter
	CowsRegistered       prometheus.Counter
	VaccinationsRecorded prometheus.Counter
	MedicalEntriesAdded  prometheus.Counter
	RegionDenials        prometheus.Counter
	AuthFailures         *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cowinspect_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cowinspect_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		VetsRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "cowinspect_vets_registered_total",
			Help: "Vet accounts created",
		}),
		CowsRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "cowinspect_cows_registered_total",
			Help: "Cows registered",
		}),
		VaccinationsRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "cowinspect_vaccinations_recorded_total",
			Help: "Vaccination entries appended",
		}),
		MedicalEntriesAdded: f.NewCounter(prometheus.CounterOpts{
			Name: "cowinspect_medical_history_entries_total",
			Help: "Medical history entries appended",
		}),
		RegionDenials: f.NewCounter(prometheus.CounterOpts{
			Name: "cowinspect_region_denials_total",
			Help: "Requests rejected because the cow belongs to another region",
		}),
		AuthFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cowinspect_auth_failures_total",
			Help: "Authentication failures by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler expone /metrics para este registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
