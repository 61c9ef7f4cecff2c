package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/l6131a-ai/LLM/internal/config"
	"github.com/l6131a-ai/LLM/internal/metrics"
	"github.com/l6131a-ai/LLM/internal/models"
	"github.com/l6131a-ai/LLM/internal/storage/cache"
	"go.uber.org/zap"
)

type TranslatorS struct {
	api   CompleterI
	cache *cache.Cache
	cfg   config.APIConfig
	log   *zap.Logger
}

func NewTranslatorService(api CompleterI, cache *cache.Cache, cfg config.APIConfig, log *zap.Logger) *TranslatorS {
	return &TranslatorS{
		api:   api,
		cache: cache,
		cfg:   cfg,
		log:   log,
	}
}

// Translate runs the two-step pipeline: one call translates the text, a
// second LLM-as-a-Judge call scores the result. A failed judge call degrades
// to locally computed estimates; a failed translation call aborts.
func (s *TranslatorS) Translate(ctx context.Context, req models.TranslationRequest) (models.TranslationResult, error) {
	if cached, ok := s.cache.Result(req.OriginalText, req.TargetLanguage); ok {
		s.log.Debug("translation served from cache", zap.String("target_language", req.TargetLanguage))
		return cached, nil
	}

	translation, err := s.api.Complete(ctx, s.cfg.TranslationModel, translationPrompt(req))
	if err != nil {
		s.log.Error("translation request failed", zap.String("target_language", req.TargetLanguage), zap.Error(err))
		return models.TranslationResult{}, err
	}
	translation = strings.TrimSpace(translation)

	m := models.MetricSet{
		LengthRatio: metrics.LengthRatio(req.OriginalText, translation),
	}

	var (
		verdict string
		scored  bool
	)

	raw, err := s.api.Complete(ctx, s.cfg.JudgeModel, judgePrompt(req, translation))
	if err != nil {
		s.log.Warn("judge request failed, using local metrics", zap.Error(err))
	} else if report, perr := parseJudgeReport(raw); perr != nil {
		s.log.Warn("judge report unparseable, using local metrics", zap.Error(perr))
	} else {
		m.BLEU = clamp01(report.BLEU)
		m.BERTScore = clamp01(report.BERTScore)
		verdict = strings.TrimSpace(report.Verdict)
		scored = true
	}

	if !scored {
		m.BLEU = metrics.BLEU(req.OriginalText, translation)
		m.BERTScore = metrics.LexicalSimilarity(req.OriginalText, translation)
	}
	if verdict == "" {
		verdict = metrics.Classify(m)
	}

	result := models.TranslationResult{
		Translation: translation,
		Metrics:     m,
		Verdict:     verdict,
	}

	s.cache.SetResult(req.OriginalText, req.TargetLanguage, result)

	return result, nil
}

func translationPrompt(req models.TranslationRequest) string {
	return fmt.Sprintf(`Переведи следующий текст на %s.
Возвращай ТОЛЬКО перевод без комментариев и объяснений.

Исходный текст:
%s`, req.TargetLanguage, req.OriginalText)
}

func judgePrompt(req models.TranslationRequest, translation string) string {
	return fmt.Sprintf(`Оцени качество следующего перевода.

Исходный текст:
%s

Перевод на %s:
%s

Учитывай точность передачи смысла, грамматическую корректность,
естественность звучания и сохранение стиля оригинала.

Верни ТОЛЬКО JSON без пояснений, строго в формате:
{"bleu": <число от 0 до 1>, "bert_score": <число от 0 до 1>, "verdict": "<краткий вердикт на английском>"}`,
		req.OriginalText, req.TargetLanguage, translation)
}

// parseJudgeReport accepts the strict JSON we asked for, a fenced code
// block around it, or a JSON object embedded in surrounding prose.
func parseJudgeReport(raw string) (models.JudgeReport, error) {
	s := strings.TrimSpace(raw)

	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = strings.TrimSpace(rest[:j])
		}
	}

	var report models.JudgeReport
	if err := json.Unmarshal([]byte(s), &report); err == nil && report.Verdict != "" {
		return report, nil
	}

	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			if err := json.Unmarshal([]byte(s[i:j+1]), &report); err == nil && report.Verdict != "" {
				return report, nil
			}
		}
	}

	return models.JudgeReport{}, fmt.Errorf("no judge report found in %q", abbreviate(s, 200))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
