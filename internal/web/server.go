package web

import (
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/vbonduro/menuscan/internal/domain"
	"github.com/vbonduro/menuscan/internal/i18n"
	"github.com/vbonduro/menuscan/internal/service"
	"github.com/vbonduro/menuscan/internal/session"
)

type Server struct {
	service   *service.OrderService
	templates fs.FS
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(svc *service.OrderService, tmpl fs.FS, logger *slog.Logger) *Server {
	s := &Server{
		service:   svc,
		templates: tmpl,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"t":      func(code, key string) string { return i18n.T(code, i18n.Key(key)) },
			"notice": i18n.T,
			"price":  i18n.FormatPrice,
			"qty":    func(quantities map[string]int, id string) int { return quantities[id] },
			"inc":    func(i int) int { return i + 1 },
			"controls": func(v session.View, item domain.MenuItem) cartUpdate {
				return cartUpdate{View: v, Item: item}
			},
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /language", s.handleSelectLanguage)
	s.mux.HandleFunc("POST /back", s.handleBack)
	s.mux.HandleFunc("POST /pages", s.handleAddPages)
	s.mux.HandleFunc("GET /pages/{key}", s.handleGetPage)
	s.mux.HandleFunc("DELETE /pages/{key}", s.handleDeletePage)
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /processing", s.handleProcessing)
	s.mux.HandleFunc("POST /cart/{id}/increment", s.handleIncrement)
	s.mux.HandleFunc("POST /cart/{id}/decrement", s.handleDecrement)
	s.mux.HandleFunc("POST /order", s.handleOrder)
	s.mux.HandleFunc("POST /reset", s.handleReset)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"font-src https://fonts.gstatic.com; "+
				"img-src 'self' blob: data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		level := slog.LevelInfo
		if r.URL.Path == "/processing" || r.URL.Path == "/healthz" {
			level = slog.LevelDebug
		}
		logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses files and executes the template defined as name.
func (s *Server) renderPartial(w http.ResponseWriter, name string, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, name, data)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// redirectHome sends the browser back to the current screen.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// fail maps a service error onto a response. A stale screen (the action does
// not fit the current state) is answered with a redirect so the browser
// re-renders where the session actually is.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, session.ErrNotFound):
		redirectHome(w, r)
	case errors.Is(err, session.ErrUnknownLanguage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, session.ErrUnknownItem), errors.Is(err, session.ErrUnknownPage):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrNoPages), errors.Is(err, session.ErrEmptyCart), errors.Is(err, session.ErrTooManyPages):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, msg, http.StatusInternalServerError)
		s.logger.Error(msg, "path", r.URL.Path, "error", err)
	}
}
