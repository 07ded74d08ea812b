// Command calcudoku-web serves the JSON API for solving, validating and
// storing puzzles.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadapter "svw.info/calcudoku/internal/adapters/http"
	"svw.info/calcudoku/internal/config"
	"svw.info/calcudoku/internal/hint"
	"svw.info/calcudoku/internal/infrastructure/storage"
	"svw.info/calcudoku/internal/solver"
	"svw.info/calcudoku/internal/usecase"
	"svw.info/calcudoku/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Int("bytes", sw.bytes).
			Dur("dur", time.Since(start)).
			Msg("http")
	})
}

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	st, err := storage.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("open puzzle store")
	}
	defer st.Close()

	// Wire providers → use cases → HTTP adapter.
	uc := usecase.NewService(solver.NewBacktracker(), validator.New(), hint.NewSingles(), st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(log.Logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
