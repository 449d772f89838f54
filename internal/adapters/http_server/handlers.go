// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/app"
	"hotel_compare/internal/domain"
)

type Handlers struct {
	Search   *app.SearchService
	Quotes   *app.QuoteService
	Catalog  *app.CatalogService
	Redirect *app.RedirectService

	// RedirectLimit throttles the click endpoint per client IP; nil disables it.
	RedirectLimit *IPLimiter
	// Ready reports dependency health for /healthz; nil means always healthy.
	Ready func(ctx context.Context) error
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", h.healthz)
	s.mux.Get("/v1/hotels/search", h.searchHotels)
	s.mux.Get("/v1/hotels/{id}/quotes", h.hotelQuotes)
	s.mux.Get("/v1/partners", h.listPartners)
	s.mux.Get("/v1/destinations", h.destinations)
	s.mux.With(h.RedirectLimit.Middleware).
		Get("/v1/partners/{partnerId}/redirect/{hotelId}", h.redirect)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeProblem(w, http.StatusBadRequest, "Invalid Query", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

// writeCachedJSON serves catalogue data with a weak ETag.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	if h.Ready != nil {
		if err := h.Ready(r.Context()); err != nil {
			writeProblem(w, http.StatusServiceUnavailable, "Unavailable", err.Error())
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := domain.SearchQuery{City: qs.Get("city")}
	if q.City == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "city parameter is required")
		return
	}

	var err error
	if q.Checkin, err = app.ParseDate(qs.Get("checkin")); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "checkin must be YYYY-MM-DD or RFC3339")
		return
	}
	if q.Checkout, err = app.ParseDate(qs.Get("checkout")); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "checkout must be YYYY-MM-DD or RFC3339")
		return
	}
	if gs := qs.Get("guests"); gs != "" {
		g, err := strconv.Atoi(gs)
		if err != nil || g <= 0 || g > 30 {
			writeProblem(w, http.StatusBadRequest, "Invalid Query", "guests must be an integer between 1 and 30")
			return
		}
		q.Guests = g
	}

	resp, err := h.Search.Search(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	// offers are priced per request; never let intermediaries cache them
	writeJSON(w, resp)
}

func (h *Handlers) hotelQuotes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	resp, err := h.Quotes.Quotes(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handlers) listPartners(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Catalog.ListPartners(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCachedJSON(w, r, ps)
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Catalog.Destinations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCachedJSON(w, r, ds)
}

// redirect never fails towards the user: bad or unknown hotels land on the
// generic search fallback, since this server has no page of its own to send
// them to.
func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "partnerId")
	hotelID, err := strconv.ParseInt(chi.URLParam(r, "hotelId"), 10, 64)
	if err != nil || hotelID <= 0 {
		http.Redirect(w, r, app.FallbackRedirectURL, http.StatusFound)
		return
	}

	observability.ObserveClick(partnerID)
	target, err := h.Redirect.Resolve(r.Context(), app.RedirectRequest{
		PartnerID: partnerID,
		HotelID:   hotelID,
		IP:        remoteIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error().Err(err).Int64("hotel_id", hotelID).Msg("redirect lookup failed")
		}
		http.Redirect(w, r, app.FallbackRedirectURL, http.StatusFound)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusFound)
}
