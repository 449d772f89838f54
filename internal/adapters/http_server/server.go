package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

type options struct {
	trustProxy bool
	timeout    time.Duration
}

type Option func(*options)

// WithTrustedProxy lets chi's RealIP rewrite RemoteAddr from
// X-Forwarded-For / X-Real-IP. Only enable it behind a proxy that
// overwrites those headers; otherwise clients choose their own address.
func WithTrustedProxy() Option { return func(o *options) { o.trustProxy = true } }

func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

func New(opts ...Option) *Server {
	o := options{timeout: 15 * time.Second}
	for _, fn := range opts {
		fn(&o)
	}
	m := chi.NewRouter()

	// all middlewares before any routes are added
	if o.trustProxy {
		m.Use(chimw.RealIP)
	}
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(o.timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
