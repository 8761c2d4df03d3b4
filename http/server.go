// Package http provides the proxy API server that fronts the place
// provider. Browser clients call it instead of the provider directly, so
// the API key never leaves the backend.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/petdex"
)

// DefaultRadiusMeters is the search radius used when the request omits one.
const DefaultRadiusMeters = 5000

// Server serves the proxy API.
type Server struct {
	searcher petdex.NearbySearcher
	geocoder petdex.Geocoder
	logger   *slog.Logger

	server *http.Server
}

// Config holds the collaborators a Server is built from.
type Config struct {
	Searcher petdex.NearbySearcher
	Geocoder petdex.Geocoder
	Logger   *slog.Logger
}

// NewServer creates a new Server. A nil Logger discards request logs.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		searcher: cfg.Searcher,
		geocoder: cfg.Geocoder,
		logger:   logger,
	}
}

// Handler returns the server's HTTP handler, with request logging attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ping", s.handlePing)
	mux.HandleFunc("GET /api/places", s.handlePlaces)
	mux.HandleFunc("GET /api/geocode", s.handleGeocode)
	return s.logRequests(mux)
}

// ListenAndServe serves the API on addr until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves the API on the given listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// placesResponse is the proxy payload for a page of search results.
type placesResponse struct {
	Results       []petdex.Place `json:"results"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// A page token identifies the whole follow-up request by itself.
	if token := q.Get("pagetoken"); token != "" {
		page, err := s.searcher.NextPage(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}
		writePage(w, page)
		return
	}

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, petdex.Errorf(petdex.EINVALID, "lat is required"))
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		writeError(w, petdex.Errorf(petdex.EINVALID, "lng is required"))
		return
	}

	category := petdex.Category(q.Get("type"))
	if err := category.Validate(); err != nil {
		writeError(w, err)
		return
	}

	radius := DefaultRadiusMeters
	if v := q.Get("radius"); v != "" {
		radius, err = strconv.Atoi(v)
		if err != nil || radius <= 0 {
			writeError(w, petdex.Errorf(petdex.EINVALID, "radius must be a positive integer"))
			return
		}
	}

	page, err := s.searcher.Search(r.Context(), petdex.SearchRequest{
		Origin:       petdex.LatLng{Lat: lat, Lng: lng},
		Category:     category,
		RadiusMeters: radius,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, page)
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, petdex.Errorf(petdex.EINVALID, "q is required"))
		return
	}

	pos, err := s.geocoder.Geocode(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"lat": pos.Lat, "lng": pos.Lng})
}

func writePage(w http.ResponseWriter, page *petdex.Page) {
	resp := placesResponse{Results: page.Places, NextPageToken: page.NextPageToken}
	if resp.Results == nil {
		// An empty page serializes as an empty array, not null.
		resp.Results = []petdex.Place{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeError renders an application error as a JSON error payload.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch petdex.ErrorCode(err) {
	case petdex.EINVALID:
		status = http.StatusBadRequest
	case petdex.ENOTFOUND:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": petdex.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
