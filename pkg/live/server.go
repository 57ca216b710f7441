package live

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/dom"
	"github.com/vango-dev/flux/pkg/flux"
	"github.com/vango-dev/flux/pkg/render"
)

// Config configures a Server.
type Config struct {
	// Document is rendered on GET / and pushed to clients after every change.
	Document render.PageDocument

	// Dispatcher receives posted actions. Its bound store backs /state.
	Dispatcher *flux.Dispatcher

	// Title is the page title.
	Title string

	// Renderer serialises the document. Defaults to a compact renderer.
	Renderer *render.Renderer

	// Logger is used for request and dispatch logging. Defaults to slog.Default().
	Logger *slog.Logger

	// Gatherer, if set, is exposed on /metrics.
	Gatherer prometheus.Gatherer
}

// Server is an http.Handler exposing a store-backed document.
type Server struct {
	config   Config
	router   chi.Router
	hub      *Hub
	renderer *render.Renderer
	logger   *slog.Logger

	// mu serialises document mutation (dispatch, SetState) against rendering.
	mu      sync.RWMutex
	actions map[string]flux.Transform
}

// New creates a server. The server subscribes to the dispatcher's store so
// every state change is pushed to clients; subscribe components first so the
// document is up to date by the time the push happens.
func New(config Config) *Server {
	s := &Server{
		config:   config,
		hub:      NewHub(),
		renderer: config.Renderer,
		logger:   config.Logger,
		actions:  make(map[string]flux.Transform),
	}
	if s.renderer == nil {
		s.renderer = render.NewRenderer(render.RendererConfig{})
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if store := s.store(); store != nil {
		store.Subscribe(pusher{s})
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/state", s.handleState)
	r.Post("/actions/{name}", s.handleAction)
	r.Handle("/_live", s.hub)
	if s.config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Router exposes the underlying router so callers can mount extra routes.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the WebSocket hub.
func (s *Server) Hub() *Hub { return s.hub }

// Handle registers fn under name for POST /actions/{name}. A later Handle
// with the same name replaces the earlier one.
func (s *Server) Handle(name string, fn flux.Transform) *Server {
	s.mu.Lock()
	s.actions[name] = fn
	s.mu.Unlock()
	return s
}

// Dispatch runs a named action with payload. It is the entry point used by
// the HTTP handler. A panicking transform is reported as an E403 error.
func (s *Server) Dispatch(name string, payload flux.State) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("E403").WithDetail(fmt.Sprintf("Action %q panicked: %v", name, r))
		}
	}()

	fn, ok := s.actions[name]
	if !ok {
		return errors.New("E401").WithDetail(fmt.Sprintf("No action is registered as %q.", name))
	}
	if s.config.Dispatcher == nil {
		return nil
	}
	s.config.Dispatcher.Dispatch(flux.NewNamedAction(name, fn, payload))
	return nil
}

// SetState replaces the store state, for example after the state file on
// disk changed.
func (s *Server) SetState(next flux.State) {
	store := s.store()
	if store == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store.SetState(next)
}

// Close disconnects all live clients.
func (s *Server) Close() {
	s.hub.Close()
}

func (s *Server) store() *flux.Store {
	if s.config.Dispatcher == nil {
		return nil
	}
	return s.config.Dispatcher.Store()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	html, err := s.renderer.RenderPageToString(render.PageData{
		Document: s.config.Document,
		Title:    s.config.Title,
		Scripts:  []string{ClientScript},
	})
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	state := flux.State{}
	if store := s.store(); store != nil {
		state = store.GetState()
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	payload, err := decodePayload(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("E402").Wrap(err))
		return
	}

	if err := s.Dispatch(name, payload); err != nil {
		s.logger.Warn("action failed", "action", name, "error", err)
		writeError(w, statusFor(err), errors.FromError(err, "E403"))
		return
	}

	s.logger.Debug("action dispatched",
		"action", name,
		"request_id", middleware.GetReqID(r.Context()),
	)
	s.handleState(w, r)
}

// decodePayload reads an optional JSON object. An empty body is a nil payload.
func decodePayload(body io.Reader) (flux.State, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var payload flux.State
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// statusFor maps an error code to the HTTP status reported for it.
func statusFor(err error) int {
	switch errors.Code(err) {
	case "E401":
		return http.StatusNotFound
	case "E402":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err *errors.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, err.FormatJSON())
}

// pusher subscribes the server to its store. It runs after the components
// subscribed before it and broadcasts the resulting body.
type pusher struct {
	s *Server
}

func (p pusher) MergeProps(flux.State) {}

func (p pusher) Render() dom.Node {
	if p.s.hub.ClientCount() == 0 {
		return nil
	}
	var b strings.Builder
	if err := p.s.renderer.RenderChildren(&b, p.s.config.Document.Body()); err != nil {
		p.s.hub.Broadcast(Message{Type: MessageError, Error: err.Error()})
		return nil
	}
	p.s.hub.Broadcast(Message{Type: MessageRender, HTML: b.String(), State: p.s.store().GetState()})
	return nil
}
