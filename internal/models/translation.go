package models

type TranslationRequest struct {
	OriginalText   string `json:"original_text" validate:"required"`
	TargetLanguage string `json:"target_language" validate:"required,oneof=English French German Spanish Russian"`
}

// TargetLanguages is the fixed list offered by the page selector. Keep in
// sync with the oneof tag on TranslationRequest.
var TargetLanguages = []string{"English", "French", "German", "Spanish", "Russian"}

type MetricSet struct {
	BLEU        float64 `json:"BLEU"`
	BERTScore   float64 `json:"BERTScore"`
	LengthRatio float64 `json:"LengthRatio"`
}

type TranslationResult struct {
	Translation string    `json:"translation"`
	Metrics     MetricSet `json:"metrics"`
	Verdict     string    `json:"verdict"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MentorpieceRequest is the wire format of api.mentorpiece.org.
type MentorpieceRequest struct {
	ModelName string `json:"model_name"`
	Prompt    string `json:"prompt"`
}

type MentorpieceResponse struct {
	Response string `json:"response"`
}

// JudgeReport is the strict-JSON payload requested from the judge model.
// Scores outside [0,1] are clamped by the service before use.
type JudgeReport struct {
	BLEU      float64 `json:"bleu"`
	BERTScore float64 `json:"bert_score"`
	Verdict   string  `json:"verdict"`
}
