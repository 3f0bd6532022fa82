package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"txtcleaner/internal/config"
	"txtcleaner/internal/numwords"
	"txtcleaner/internal/pipeline"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Dictionary stores user words that are never corrected.
type Dictionary interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

type options struct {
	maxTextBytes int64
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes: 1 << 20,
		logger:       slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes caps the request body size.
func WithMaxTextBytes(n int64) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Handler serves the cleaning API. The pipeline in use is an immutable
// snapshot: base plus the custom words, rebuilt after every dictionary change.
type Handler struct {
	base    *pipeline.Pipeline
	current atomic.Pointer[pipeline.Pipeline]
	dict    Dictionary
	rebuild sync.Mutex
	opts    options
	log     *slog.Logger
	mux     *http.ServeMux
}

// NewHandler builds the handler and loads the initial snapshot. dict may be
// nil, in which case the custom-word endpoints answer 503.
func NewHandler(ctx context.Context, base *pipeline.Pipeline, dict Dictionary, optFns ...Option) (*Handler, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &Handler{
		base: base,
		dict: dict,
		opts: opts,
		log:  opts.logger,
		mux:  http.NewServeMux(),
	}
	if err := h.Refresh(ctx); err != nil {
		return nil, err
	}

	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("POST /api/v1/clean", h.handleClean)
	h.mux.HandleFunc("POST /api/v1/custom-word", h.handleAddWord)
	h.mux.HandleFunc("DELETE /api/v1/custom-word/{word}", h.handleRemoveWord)
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Refresh rereads the dictionary and swaps in a new pipeline snapshot.
func (h *Handler) Refresh(ctx context.Context) error {
	h.rebuild.Lock()
	defer h.rebuild.Unlock()

	if h.dict == nil {
		h.current.Store(h.base)
		return nil
	}
	words, err := h.dict.All(ctx)
	if err != nil {
		return fmt.Errorf("load custom words: %w", err)
	}
	h.current.Store(h.base.WithKnown(words...))
	h.log.Debug("pipeline snapshot rebuilt", slog.Int("custom_words", len(words)))
	return nil
}

// Pipeline returns the snapshot currently serving requests.
func (h *Handler) Pipeline() *pipeline.Pipeline {
	return h.current.Load()
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type cleanRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleClean(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return
	}

	start := time.Now()
	res, err := h.Pipeline().Run(req.Text)
	durationMS := time.Since(start).Milliseconds()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, numwords.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		h.log.WarnContext(r.Context(), "clean failed",
			slog.Int("text_len", len(req.Text)),
			slog.String("error", err.Error()),
		)
		writeError(w, status, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "clean complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("tokens", res.Stats.Tokens),
		slog.Int("corrected", res.Stats.Corrected),
		slog.Int("unresolved", res.Stats.Unresolved),
		slog.Int64("duration_ms", durationMS),
	)
	writeJSON(w, http.StatusOK, res)
}

type wordRequest struct {
	Word string `json:"word"`
}

func (h *Handler) handleAddWord(w http.ResponseWriter, r *http.Request) {
	if h.dict == nil {
		writeError(w, http.StatusServiceUnavailable, "custom dictionary disabled")
		return
	}
	var req wordRequest
	if !h.decode(w, r, &req) {
		return
	}
	word := strings.TrimSpace(req.Word)
	if word == "" {
		writeError(w, http.StatusBadRequest, "word field is required")
		return
	}
	if err := h.dict.Add(r.Context(), word); err != nil {
		h.log.ErrorContext(r.Context(), "add custom word", slog.String("word", word), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *Handler) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	if h.dict == nil {
		writeError(w, http.StatusServiceUnavailable, "custom dictionary disabled")
		return
	}
	word := strings.TrimSpace(r.PathValue("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := h.dict.Remove(r.Context(), word); err != nil {
		h.log.ErrorContext(r.Context(), "remove custom word", slog.String("word", word), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a size-capped JSON body into v, answering the error itself
// when it fails.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.maxTextBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("body exceeds maximum size of %d bytes", h.opts.maxTextBytes))
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Server wires the handler into a net/http.Server with graceful shutdown.
type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
}

func New(cfg config.ServerConfig, h http.Handler) *Server {
	return &Server{
		addr:            cfg.ListenAddr,
		handler:         h,
		shutdownTimeout: time.Duration(cfg.ShutdownTimeout) * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	slog.Info("listening", slog.String("addr", s.addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}
