package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/madsen/postscript-graph/pkg/cache"
	pserrors "github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/observability"
)

// serveCommand creates the HTTP render server command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, redisURL, redisScope string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server that renders charts on demand",
		Long: `Run an HTTP render server. POST delimited data to /render/bar or
/render/xy and receive the PostScript artifact. Rendered output is
cached; point --redis at a shared instance to share the cache across
replicas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := serveCache(cmd.Context(), noCache, redisURL, redisScope)
			if err != nil {
				return err
			}
			defer store.Close()
			return c.runServer(cmd.Context(), addr, store)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared artifact cache")
	cmd.Flags().StringVar(&redisScope, "redis-scope", "", "key prefix inside Redis")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")
	return cmd
}

// serveCache picks the server cache backend: Redis when configured,
// otherwise the local file cache.
func serveCache(ctx context.Context, noCache bool, redisURL, scope string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		rc, err := cache.NewRedisCache(redisURL, scope)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return rc, nil
	}
	return newCache(false), nil
}

func (c *CLI) runServer(ctx context.Context, addr string, store cache.Cache) error {
	srv := &server{logger: c.Logger, store: store}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// server holds the render server's handler state.
type server struct {
	logger *log.Logger
	store  cache.Cache
}

// routes builds the HTTP handler tree.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLog)
	r.Get("/healthz", s.health)
	r.Post("/render/{kind}", s.render)
	return r
}

// renderRequest is the JSON body for /render/{kind}.
type renderRequest struct {
	Data   string `json:"data"`             // CSV payload, required
	Header bool   `json:"header,omitempty"` // first row names the series
	Config string `json:"config,omitempty"` // TOML chart configuration
}

// requestLog tags every request with an ID, attaches a request-scoped
// logger to the context, and reports through the server hooks.
func (s *server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		r = r.WithContext(withLogger(r.Context(), s.logger.With("request", id)))

		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, elapsed)
		s.logger.Debugf("%s %s %d %s id=%s", r.Method, r.URL.Path, sw.status, elapsed.Round(time.Millisecond), id)
	})
}

// statusWriter records the response code for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *server) render(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind != kindBar && kind != kindXY {
		http.Error(w, fmt.Sprintf("unknown chart kind %q", kind), http.StatusNotFound)
		return
	}

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Data == "" {
		http.Error(w, "missing data", http.StatusBadRequest)
		return
	}

	var fc fileConfig
	if req.Config != "" {
		if err := toml.Unmarshal([]byte(req.Config), &fc); err != nil {
			http.Error(w, fmt.Sprintf("invalid config: %v", err), http.StatusBadRequest)
			return
		}
	}

	params := renderParams{Kind: kind, Header: req.Header, Config: fc}
	artifact, cached, err := render(r.Context(), s.store, params, []byte(req.Data))
	if err != nil {
		code := pserrors.GetCode(err)
		if pserrors.IsConfiguration(err) || code == pserrors.ErrCodeBadData || code == pserrors.ErrCodeMissingData {
			http.Error(w, pserrors.UserMessage(err), http.StatusBadRequest)
			return
		}
		loggerFromContext(r.Context()).Errorf("render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/postscript")
	if cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	_, _ = w.Write(artifact)
}
