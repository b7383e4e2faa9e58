package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts load, render and cache events in a private Prometheus
// registry. It implements [LoadHooks], [RenderHooks] and [CacheHooks].
type Metrics struct {
	registry *prometheus.Registry

	SentencesLoaded  prometheus.Counter
	SentencesSkipped prometheus.Counter
	TokensLoaded     prometheus.Counter
	LoadDuration     prometheus.Histogram

	Renders        *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	RenderBytes    *prometheus.CounterVec

	CacheEvents *prometheus.CounterVec
}

// NewMetrics creates the collectors under namespace and registers them.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SentencesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentences_loaded_total",
			Help:      "Sentences built into graphs.",
		}),
		SentencesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentences_skipped_total",
			Help:      "Sentences that failed to parse or build.",
		}),
		TokensLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_loaded_total",
			Help:      "Tokens in loaded sentences.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Treebank load duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "DOT to SVG renders by backend and outcome.",
		}, []string{"backend", "status"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "DOT to SVG render duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend"}),
		RenderBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_bytes_total",
			Help:      "SVG bytes produced by backend.",
		}, []string{"backend"}),
		CacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Render cache events by key kind and event.",
		}, []string{"kind", "event"}),
	}

	m.registry.MustRegister(
		m.SentencesLoaded,
		m.SentencesSkipped,
		m.TokensLoaded,
		m.LoadDuration,
		m.Renders,
		m.RenderDuration,
		m.RenderBytes,
		m.CacheEvents,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current values in the Prometheus text format,
// as read by the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) OnSentenceLoaded(index, tokens int) {
	m.SentencesLoaded.Inc()
	m.TokensLoaded.Add(float64(tokens))
}

func (m *Metrics) OnSentenceSkipped(index int, err error) {
	m.SentencesSkipped.Inc()
}

func (m *Metrics) OnLoadComplete(loaded, skipped int, duration time.Duration, err error) {
	m.LoadDuration.Observe(duration.Seconds())
}

func (m *Metrics) OnRenderStart(backend string) {}

func (m *Metrics) OnRenderComplete(backend string, size int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Renders.WithLabelValues(backend, status).Inc()
	m.RenderDuration.WithLabelValues(backend).Observe(duration.Seconds())
	m.RenderBytes.WithLabelValues(backend).Add(float64(size))
}

func (m *Metrics) OnCacheHit(ctx context.Context, keyType string) {
	m.CacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(ctx context.Context, keyType string) {
	m.CacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(ctx context.Context, keyType string, size int) {
	m.CacheEvents.WithLabelValues(keyType, "set").Inc()
}
