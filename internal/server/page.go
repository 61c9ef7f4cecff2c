package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/l6131a-ai/LLM/internal/config"
	"github.com/l6131a-ai/LLM/internal/models"
	"go.uber.org/zap"
)

//go:embed web/index.html
var webFS embed.FS

type PageHandler struct {
	tmpl         *template.Template
	clearOnError bool
	log          *zap.Logger
}

type pageData struct {
	Languages    []string
	ClearOnError bool
}

func NewPageHandler(cfg config.UIConfig, log *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(webFS, "web/index.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		tmpl:         tmpl,
		clearOnError: cfg.ClearOnError,
		log:          log,
	}, nil
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := pageData{
		Languages:    models.TargetLanguages,
		ClearOnError: h.clearOnError,
	}
	if err := h.tmpl.Execute(w, data); err != nil {
		h.log.Error("failed to render index page", zap.Error(err))
	}
}
