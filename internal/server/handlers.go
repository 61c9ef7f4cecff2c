package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/l6131a-ai/LLM/internal/client"
	"github.com/l6131a-ai/LLM/internal/models"
	"github.com/l6131a-ai/LLM/pkg/validator"
	"go.uber.org/zap"
)

type TranslatorSI interface {
	Translate(ctx context.Context, req models.TranslationRequest) (models.TranslationResult, error)
}

type TranslationHandler struct {
	service TranslatorSI
	timeout time.Duration
	log     *zap.Logger
}

func NewTranslationHandler(service TranslatorSI, timeout time.Duration, log *zap.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		timeout: timeout,
		log:     log,
	}
}

// ProcessAIRequest handles POST /v1/process-ai-request.
func (h *TranslationHandler) ProcessAIRequest(w http.ResponseWriter, r *http.Request) {
	var req models.TranslationRequest
	if err := parseJSONBody(r, &req); err != nil {
		errorResponse(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.OriginalText = strings.TrimSpace(req.OriginalText)
	if req.OriginalText == "" {
		errorResponse(h.log, w, http.StatusBadRequest, "original_text is required")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		errorResponse(h.log, w, http.StatusBadRequest, "unsupported target_language")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.service.Translate(ctx, req)
	if err != nil {
		if errors.Is(err, client.ErrUpstream) {
			errorResponse(h.log, w, http.StatusBadGateway, "Сервер не смог обработать запрос")
			return
		}
		h.log.Error("translation failed", zap.Error(err))
		errorResponse(h.log, w, http.StatusInternalServerError, "Неожиданная ошибка")
		return
	}

	jsonResponse(h.log, w, http.StatusOK, result)
}
