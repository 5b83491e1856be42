// Package server hosts the interactive wheel page on a local HTTP address.
// Every request rebuilds the score set from its query string; nothing is kept
// between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/perfwheel/internal/render"
	"github.com/dshills/perfwheel/internal/wheel"
)

const shutdownTimeout = 5 * time.Second

// Server serves the wheel page and its report encodings.
type Server struct {
	addr          string
	logger        *zap.Logger
	questionnaire *wheel.Questionnaire
	now           func() time.Time
	tool          string
	version       string
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Port 0 picks a free port.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithQuestionnaire sets the questionnaire every page is built from.
func WithQuestionnaire(q *wheel.Questionnaire) Option {
	return func(s *Server) { s.questionnaire = q }
}

// WithClock overrides time.Now for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithVersion sets the tool name and version stamped on reports.
func WithVersion(tool, version string) Option {
	return func(s *Server) {
		s.tool = tool
		s.version = version
	}
}

// New builds a Server. A questionnaire is required.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		addr:    "127.0.0.1:8080",
		logger:  zap.NewNop(),
		now:     time.Now,
		tool:    "perfwheel",
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.questionnaire == nil {
		return nil, errors.New("server.New: questionnaire is required")
	}
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/report.md", s.handleReport(render.FormatMarkdown))
	r.Get("/report.json", s.handleReport(render.FormatJSON))
	r.Get("/report.txt", s.handleReport(render.FormatText))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return r
}

// Run listens on the configured address and serves until ctx is cancelled.
// ready, when non-nil, is called with the base URL once the listener is open.
func (s *Server) Run(ctx context.Context, ready func(url string)) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server.Run: %w", err)
	}
	url := "http://" + ln.Addr().String()
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("starting HTTP server", zap.String("addr", url), zap.String("questionnaire", s.questionnaire.Name))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	})

	if ready != nil {
		ready(url)
	}
	return g.Wait()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	rep := s.buildReport(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, rep, render.HTMLOptions{Interactive: true, Action: "/"}); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *Server) handleReport(f render.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep := s.buildReport(r)
		w.Header().Set("Content-Type", contentType(f))
		if err := render.Write(w, rep, f); err != nil {
			s.logger.Error("failed to render report", zap.String("format", string(f)), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

// buildReport applies every question id present in the query to a fresh store.
// Rejected values keep the default rating and are listed on the report.
func (s *Server) buildReport(r *http.Request) *render.Report {
	store := wheel.NewStore(s.questionnaire)
	query := r.URL.Query()

	var rejected []string
	for _, id := range s.questionnaire.IDs() {
		if !query.Has(id) {
			continue
		}
		if err := store.SetRatingText(id, query.Get(id)); err != nil {
			rejected = append(rejected, err.Error())
			s.logger.Debug("rating rejected", zap.String("id", id), zap.Error(err))
		}
	}

	rep := render.NewReport(s.questionnaire, store.Scores(), s.now())
	rep.Tool = s.tool
	rep.Version = s.version
	rep.Rejected = rejected
	return rep
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func contentType(f render.Format) string {
	switch f {
	case render.FormatJSON:
		return "application/json"
	case render.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case render.FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
