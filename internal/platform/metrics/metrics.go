package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultBuckets en segundos para latencias HTTP.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5} //nolint: gochecknoglobals

// Metrics tiene su propio registry para poder crear varios routers (tests) sin
// chocar con prometheus.DefaultRegisterer. Todos los métodos aceptan receiver nil.
type Metrics struct {
	Registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	logins            *prometheus.CounterVec
	petsListed        prometheus.Counter
	petModerations    *prometheus.CounterVec
	appsSubmitted     prometheus.Counter
	appStatusChanges  *prometheus.CounterVec
	messagesDelivered prometheus.Counter

	users     prometheus.Gauge
	pets      prometheus.Gauge
	snapshots *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: DefaultBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petadoption_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		petsListed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petadoption_pets_listed_total",
			Help: "Pets listed by shelters.",
		}),
		petModerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petadoption_pet_moderations_total",
			Help: "Pet listing moderation decisions.",
		}, []string{"approval"}),
		appsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petadoption_applications_submitted_total",
			Help: "Adoption applications submitted.",
		}),
		appStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petadoption_application_status_changes_total",
			Help: "Adoption application status changes by new status.",
		}, []string{"status"}),
		messagesDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petadoption_messages_sent_total",
			Help: "Messages sent between users.",
		}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "petadoption_users",
			Help: "Registered users at the last snapshot.",
		}),
		pets: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "petadoption_pets",
			Help: "Pets on the platform at the last snapshot.",
		}),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petadoption_snapshots_total",
			Help: "Periodic data snapshots by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.logins,
		m.petsListed,
		m.petModerations,
		m.appsSubmitted,
		m.appStatusChanges,
		m.messagesDelivered,
		m.users,
		m.pets,
		m.snapshots,
	)
	return m
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func (m *Metrics) Login(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) PetListed() {
	if m == nil {
		return
	}
	m.petsListed.Inc()
}

func (m *Metrics) PetModerated(approval string) {
	if m == nil {
		return
	}
	m.petModerations.WithLabelValues(approval).Inc()
}

func (m *Metrics) ApplicationSubmitted() {
	if m == nil {
		return
	}
	m.appsSubmitted.Inc()
}

func (m *Metrics) ApplicationStatusChanged(status string) {
	if m == nil {
		return
	}
	m.appStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) MessageSent() {
	if m == nil {
		return
	}
	m.messagesDelivered.Inc()
}

// Snapshot registra los conteos del último respaldo periódico.
func (m *Metrics) Snapshot(users, pets int) {
	if m == nil {
		return
	}
	m.users.Set(float64(users))
	m.pets.Set(float64(pets))
	m.snapshots.WithLabelValues("success").Inc()
}

func (m *Metrics) SnapshotFailed() {
	if m == nil {
		return
	}
	m.snapshots.WithLabelValues("failure").Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Instrument mide requests por ruta de chi (patrón, no path real, para no
// explotar la cardinalidad con ids).
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
