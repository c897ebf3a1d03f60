// Package fakeapi serves an in-memory posts REST api shaped like
// jsonplaceholder. It backs the client tests and local development.
package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/postclient/internal/middleware"
	"github.com/2beens/postclient/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// Request is one request as the server received it.
type Request struct {
	Method      string
	Path        string
	ContentType string
}

type Server struct {
	store      *Store
	router     *mux.Router
	httpServer *http.Server

	mutex    sync.Mutex
	requests []Request
	failures map[string]int
}

// NewServer wires the posts routes on store. A nil metricsManager gets a
// private registry.
func NewServer(store *Store, metricsManager *metrics.Manager) *Server {
	if metricsManager == nil {
		metricsManager = metrics.NewManager("fakeapi", "server", prometheus.NewRegistry())
	}

	s := &Server{
		store:    store,
		router:   mux.NewRouter(),
		failures: make(map[string]int),
	}

	s.router.Use(otelmux.Middleware("fakeapi-router"))
	s.router.Use(middleware.PanicRecovery(metricsManager))
	s.router.Use(middleware.LogRequest())
	s.router.Use(middleware.RequestMetrics(metricsManager))
	s.router.Use(s.recordRequest())
	s.router.Use(s.injectFailures())
	s.router.Use(middleware.DrainAndCloseRequest())
	NewHandler(store).SetupRoutes(s.router)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Store() *Store {
	return s.store
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	requests := make([]Request, len(s.requests))
	copy(requests, s.requests)
	return requests
}

// RequestsWith returns the received requests matching method and path.
func (s *Server) RequestsWith(method, path string) []Request {
	var matching []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			matching = append(matching, r)
		}
	}
	return matching
}

// FailWith makes every following request with the given method answer
// with statusCode. A zero status clears the failure.
func (s *Server) FailWith(method string, statusCode int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if statusCode == 0 {
		delete(s.failures, method)
		return
	}
	s.failures[method] = statusCode
}

func (s *Server) recordRequest() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.mutex.Lock()
			s.requests = append(s.requests, Request{
				Method:      r.Method,
				Path:        r.URL.Path,
				ContentType: r.Header.Get("Content-Type"),
			})
			s.mutex.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) injectFailures() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.mutex.Lock()
			statusCode, fail := s.failures[r.Method]
			s.mutex.Unlock()

			if fail {
				http.Error(w, http.StatusText(statusCode), statusCode)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Serve starts listening in the background; GracefulShutdown stops it.
func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))

	s.httpServer = &http.Server{
		Handler:      s.router,
		Addr:         ipAndPort,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		log.Infof(" > fake posts api listening on: [%s]", ipAndPort)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("fake posts api: %s", err)
		}
	}()
}

func (s *Server) GracefulShutdown() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown fake posts api: %w", err)
	}
	log.Debugln("fake posts api shut down")
	return nil
}
