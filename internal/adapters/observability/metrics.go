package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel_compare/internal/domain"
)

const namespace = "hotelcmp"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	QueueEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "queue_events_total", Help: "Broker publishes and deliveries."},
		[]string{"queue", "event"}, // event: published|publish_error|acked|rejected
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	SearchHotels = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_hotels",
			Help:    "Hotels returned per search.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
	OffersAggregated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "offers_aggregated_total", Help: "Partner offers returned by searches."},
	)
	PartnerClicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "partner_clicks_total", Help: "Redirects to partner sites."},
		[]string{"partner"},
	)
	ClicksStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "clicks_stored_total", Help: "Click events persisted by the worker."},
		[]string{"partner"},
	)
)

// Serve exposes reg on addr/metrics in the background; an empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, QueueEvents, CacheEvents,
		SearchHotels, OffersAggregated, PartnerClicks, ClicksStored)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveQueue(queue, event string) {
	QueueEvents.WithLabelValues(queue, event).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveSearch(hotels, offers int) {
	SearchHotels.Observe(float64(hotels))
	OffersAggregated.Add(float64(offers))
}

// OtherPartner labels clicks for ids outside the partner catalogue; the id
// comes from the URL, so it must not become a label value.
const OtherPartner = "other"

func PartnerLabel(id string) string {
	for _, p := range domain.Partners {
		if p.ID == id {
			return id
		}
	}
	return OtherPartner
}

func ObserveClick(partner string)       { PartnerClicks.WithLabelValues(PartnerLabel(partner)).Inc() }
func ObserveStoredClick(partner string) { ClicksStored.WithLabelValues(PartnerLabel(partner)).Inc() }

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
