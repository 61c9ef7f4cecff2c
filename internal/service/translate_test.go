package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/l6131a-ai/LLM/internal/config"
	"github.com/l6131a-ai/LLM/internal/metrics"
	"github.com/l6131a-ai/LLM/internal/models"
	mock_service "github.com/l6131a-ai/LLM/internal/service/mock"
	"github.com/l6131a-ai/LLM/internal/storage/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testTranslationModel = "test-translator"
	testJudgeModel       = "test-judge"
)

func newTranslatorMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockCompleterI)) *TranslatorS {
	api := mock_service.NewMockCompleterI(ctrl)
	if setupMock != nil {
		setupMock(api)
	}

	cfg := config.APIConfig{
		TranslationModel: testTranslationModel,
		JudgeModel:       testJudgeModel,
	}

	return NewTranslatorService(api, cache.NewCache(), cfg, zap.NewNop())
}

func TestTranslatorS_Translate(t *testing.T) {
	t.Parallel()

	req := models.TranslationRequest{
		OriginalText:   "Hello world",
		TargetLanguage: "French",
	}

	tests := []struct {
		name       string
		f          func(*mock_service.MockCompleterI)
		assertFunc func(t *testing.T, result models.TranslationResult, err error)
		wantErr    bool
	}{
		{
			name: "success: judge returns strict JSON",
			f: func(ma *mock_service.MockCompleterI) {
				ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).Return("Bonjour le monde", nil)
				ma.EXPECT().Complete(gomock.Any(), testJudgeModel, gomock.Any()).
					Return(`{"bleu": 0.32, "bert_score": 0.82, "verdict": "Translation acceptable"}`, nil)
			},
			assertFunc: func(t *testing.T, result models.TranslationResult, err error) {
				assert.Equal(t, "Bonjour le monde", result.Translation)
				assert.Equal(t, 0.32, result.Metrics.BLEU)
				assert.Equal(t, 0.82, result.Metrics.BERTScore)
				assert.Equal(t, 1.5, result.Metrics.LengthRatio)
				assert.Equal(t, "Translation acceptable", result.Verdict)
			},
		},
		{
			name: "success: judge JSON inside fenced block",
			f: func(ma *mock_service.MockCompleterI) {
				ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).Return("Bonjour le monde", nil)
				ma.EXPECT().Complete(gomock.Any(), testJudgeModel, gomock.Any()).
					Return("Вот оценка:\n```json\n{\"bleu\": 0.10, \"bert_score\": 0.30, \"verdict\": \"Poor quality\"}\n```", nil)
			},
			assertFunc: func(t *testing.T, result models.TranslationResult, err error) {
				assert.Equal(t, 0.10, result.Metrics.BLEU)
				assert.Equal(t, 0.30, result.Metrics.BERTScore)
				assert.Equal(t, "Poor quality", result.Verdict)
			},
		},
		{
			name: "success: out-of-range judge scores are clamped",
			f: func(ma *mock_service.MockCompleterI) {
				ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).Return("Bonjour le monde", nil)
				ma.EXPECT().Complete(gomock.Any(), testJudgeModel, gomock.Any()).
					Return(`{"bleu": 7, "bert_score": -0.5, "verdict": "odd scale"}`, nil)
			},
			assertFunc: func(t *testing.T, result models.TranslationResult, err error) {
				assert.Equal(t, 1.0, result.Metrics.BLEU)
				assert.Equal(t, 0.0, result.Metrics.BERTScore)
				assert.Equal(t, "odd scale", result.Verdict)
			},
		},
		{
			name: "success: judge garbage falls back to local metrics",
			f: func(ma *mock_service.MockCompleterI) {
				ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).Return("Hello world", nil)
				ma.EXPECT().Complete(gomock.Any(), testJudgeModel, gomock.Any()).
					Return("не могу оценить этот перевод", nil)
			},
			assertFunc: func(t *testing.T, result models.TranslationResult, err error) {
				assert.Equal(t, "Hello world", result.Translation)
				// Local estimates: translation identical to the source text.
				assert.Equal(t, 1.0, result.Metrics.BLEU)
				assert.Equal(t, 1.0, result.Metrics.BERTScore)
				assert.Equal(t, 1.0, result.Metrics.LengthRatio)
				assert.Equal(t, metrics.VerdictAcceptable, result.Verdict)
			},
		},
		{
			name: "success: judge call error falls back to local metrics",
			f: func(ma *mock_service.MockCompleterI) {
				ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).Return("Bonjour le monde", nil)
				ma.EXPECT().Complete(gomock.Any(), testJudgeModel, gomock.Any()).
					Return("", errors.New("judge down"))
			},
			assertFunc: func(t *testing.T, result models.TranslationResult, err error) {
				assert.Equal(t, "Bonjour le monde", result.Translation)
				assert.NotEmpty(t, result.Verdict)
			},
		},
		{
			name: "error: translation call fails",
			f: func(ma *mock_service.MockCompleterI) {
				ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).
					Return("", errors.New("provider down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newTranslatorMock(t, ctrl, tt.f)

			result, err := s.Translate(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.assertFunc(t, result, err)
		})
	}
}

func TestTranslatorS_Translate_cached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTranslatorMock(t, ctrl, func(ma *mock_service.MockCompleterI) {
		ma.EXPECT().Complete(gomock.Any(), testTranslationModel, gomock.Any()).Return("Bonjour le monde", nil).Times(1)
		ma.EXPECT().Complete(gomock.Any(), testJudgeModel, gomock.Any()).
			Return(`{"bleu": 0.32, "bert_score": 0.82, "verdict": "Translation acceptable"}`, nil).Times(1)
	})

	req := models.TranslationRequest{OriginalText: "Hello world", TargetLanguage: "French"}

	first, err := s.Translate(context.Background(), req)
	require.NoError(t, err)

	// Second identical request must be served from the cache: the mock
	// would fail the test on any extra provider call.
	second, err := s.Translate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseJudgeReport(t *testing.T) {
	t.Parallel()

	report, err := parseJudgeReport(`Оценка готова. {"bleu": 0.5, "bert_score": 0.9, "verdict": "good"} Надеюсь, помог.`)
	require.NoError(t, err)
	assert.Equal(t, 0.5, report.BLEU)
	assert.Equal(t, "good", report.Verdict)

	_, err = parseJudgeReport(`{"bleu": 0.5}`)
	assert.Error(t, err)

	_, err = parseJudgeReport("")
	assert.Error(t, err)
}
