// Package metrics exposes Prometheus metrics for the HTTP surface and the
// media uploader on a private registry.
package metrics

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"academy-api/internal/apperr"
	"academy-api/internal/media"
)

// Upload results.
const (
	UploadOK       = "ok"
	UploadRejected = "rejected"
	UploadFailed   = "failed"
)

type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	uploads  *prometheus.CounterVec
}

// New creates a registry with the Go and process collectors plus the
// academy metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "academy_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "academy_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "academy_media_uploads_total",
				Help: "Total number of photo uploads by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(m.requests, m.duration, m.uploads)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Middleware records one observation per request. Routes are the gin route
// template so ids do not explode cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Uploader counts the outcome of every upload made through u.
func (m *Metrics) Uploader(u media.Uploader) media.Uploader {
	return &countingUploader{next: u, uploads: m.uploads}
}

type countingUploader struct {
	next    media.Uploader
	uploads *prometheus.CounterVec
}

func (u *countingUploader) Upload(ctx context.Context, r io.Reader, filename string) (media.Asset, error) {
	asset, err := u.next.Upload(ctx, r, filename)
	switch {
	case err == nil:
		u.uploads.WithLabelValues(UploadOK).Inc()
	case apperr.Code(err) == apperr.CodeBadRequest:
		u.uploads.WithLabelValues(UploadRejected).Inc()
	default:
		u.uploads.WithLabelValues(UploadFailed).Inc()
	}
	return asset, err
}

func (u *countingUploader) Destroy(ctx context.Context, publicID string) error {
	return u.next.Destroy(ctx, publicID)
}
