// internal/logger/logger.go
package logger

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New monta o logger estruturado da aplicação. Nível vem de LOG_LEVEL
// (debug/info/warn/error, padrão info); LOG_PRETTY=true troca JSON por
// saída de console.
func New() zerolog.Logger {
	nivel := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		nivel = zerolog.DebugLevel
	case "warn":
		nivel = zerolog.WarnLevel
	case "error":
		nivel = zerolog.ErrorLevel
	}

	var log zerolog.Logger
	if os.Getenv("LOG_PRETTY") == "true" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stdout)
	}
	return log.Level(nivel).With().Timestamp().Logger()
}

// MiddlewareRequisicao anota cada requisição com um request-id e registra
// método, rota, status e duração.
func MiddlewareRequisicao(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			reqID := uuid.NewString()
			w.Header().Set("X-Request-Id", reqID)

			gravador := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(gravador, r)

			log.Info().
				Str("requestId", reqID).
				Str("metodo", r.Method).
				Str("rota", r.URL.Path).
				Int("status", gravador.status).
				Dur("duracao", time.Since(inicio)).
				Msg("requisição atendida")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
