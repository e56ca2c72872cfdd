package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/http/middleware"
	"github.com/switchyard-web/switchyard/http/route"
	"github.com/switchyard-web/switchyard/logger"
)

const (
	assetsPath       = "/assets/"
	assetsPublicPath = "client/public/"
)

// A Server adapts net/http to the dispatch pipeline:
// it funnels every request not answered by the asset mounts into a
// [*route.Dispatcher] and translates the pipeline's errors into HTTP statuses.
type Server struct {
	env           switchyard.Environment
	everyReqStack []middleware.Adapter
	d             *route.Dispatcher
	l             logger.Logger
	r             *mux.Router
}

// New constructs a *Server for the given environment,
// mounting the static asset directory before anything else.
func New(env switchyard.Environment, d *route.Dispatcher, ls logger.Logger) *Server {
	r := mux.NewRouter()

	// NOTE: direct reqs for assets to the public path
	assetsServer := http.FileServer(http.Dir(assetsPublicPath))
	r.PathPrefix(assetsPath).Handler(middleware.Chain(
		http.StripPrefix(assetsPath, assetsServer),
		cacheControlMiddleware(),
		middleware.LogRequest(ls),
	))

	return &Server{env: env, d: d, l: ls, r: r}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the *Server will apply to every dispatched request.
//
// Call before Mount.
func (s *Server) OnEveryRequest(middlewares ...middleware.Adapter) {
	s.everyReqStack = append(s.everyReqStack, middlewares...)
}

// Mount registers the dispatch funnel as the catch-all handler,
// wrapped in panic reporting and the every-request middleware stack.
func (s *Server) Mount() {
	s.r.PathPrefix("/").Handler(middleware.Chain(
		middleware.ReportPanic(s.env.String())(s.dispatch),
		s.everyReqStack...,
	))
}

// ServeHTTP responds to an HTTP request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// dispatch translates r for the Dispatcher and its result back into HTTP:
// ErrNoMatch is a 404; bad or missing arguments are a 400;
// any other failure is a 500, logged with its request.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	out, err := s.d.Call(newRequest(r))
	switch {
	case errors.Is(err, switchyard.ErrNoMatch):
		http.NotFound(w, r)
	case errors.Is(err, switchyard.ErrMissingArgument), errors.Is(err, switchyard.ErrBadPathArgument):
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	case err != nil:
		s.l.Error("dispatch failed", &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
	}
}

// newRequest flattens r into a route.Request:
// the path plus query string and form body merged into a single-valued map.
func newRequest(r *http.Request) route.Request {
	params := make(route.Params)
	r.ParseForm()
	for k, vals := range r.Form {
		if len(vals) > 0 {
			params[k] = vals[0]
		}
	}

	return route.Request{Path: r.URL.Path, Params: params}
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
