package server

import (
	"net/http"

	"github.com/l6131a-ai/LLM/internal/config"
	"github.com/l6131a-ai/LLM/internal/service"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, services *service.Service, log *zap.Logger) (*http.ServeMux, error) {
	page, err := NewPageHandler(cfg.UI, log)
	if err != nil {
		return nil, err
	}
	translation := NewTranslationHandler(services, cfg.App.Timeout, log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", WithLogging(log, page.Index))
	mux.HandleFunc("POST /v1/process-ai-request", WithLogging(log, translation.ProcessAIRequest))

	return mux, nil
}
