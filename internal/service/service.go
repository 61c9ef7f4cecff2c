package service

import (
	"context"

	"github.com/l6131a-ai/LLM/internal/config"
	"github.com/l6131a-ai/LLM/internal/storage/cache"
	"go.uber.org/zap"
)

type CompleterI interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

type Service struct {
	*TranslatorS
}

func InitServices(api CompleterI, cache *cache.Cache, cfg config.APIConfig, log *zap.Logger) *Service {
	return &Service{
		TranslatorS: NewTranslatorService(api, cache, cfg, log),
	}
}
