package metrics

import (
	"math"
	"strings"

	"github.com/l6131a-ai/LLM/internal/models"
)

// Quality thresholds for the local verdict. The judge model's verdict is
// authoritative when present; these only back the fallback classification.
const (
	BLEUThreshold      = 0.30
	BERTScoreThreshold = 0.80
)

const (
	VerdictAcceptable = "Translation acceptable"
	VerdictPoor       = "Poor quality"
)

// BLEU is a simplified BLEU-like score: unigram precision with a brevity
// penalty. Deterministic and dependency-free, not sacreBLEU.
func BLEU(reference, hypothesis string) float64 {
	refTokens := tokenize(reference)
	hypTokens := tokenize(hypothesis)
	if len(hypTokens) == 0 {
		return 0
	}

	refSet := make(map[string]bool, len(refTokens))
	for _, t := range refTokens {
		refSet[t] = true
	}

	matches := 0
	for _, t := range hypTokens {
		if refSet[t] {
			matches++
		}
	}
	precision := float64(matches) / float64(len(hypTokens))

	bp := 1.0
	if len(hypTokens) < len(refTokens) {
		bp = math.Exp(1 - float64(len(refTokens))/float64(len(hypTokens)))
	}

	return precision * bp
}

// LexicalSimilarity is a token-set Jaccard similarity. It stands in for an
// embedding-based score when the judge model does not supply one.
func LexicalSimilarity(a, b string) float64 {
	as := tokenSet(a)
	bs := tokenSet(b)
	if len(as) == 0 && len(bs) == 0 {
		return 1
	}
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}

	inter := 0
	for t := range as {
		if bs[t] {
			inter++
		}
	}
	union := len(as) + len(bs) - inter

	return float64(inter) / float64(union)
}

// LengthRatio is translated word count over source word count, a sanity
// signal for truncated or padded translations.
func LengthRatio(source, translation string) float64 {
	src := tokenize(source)
	if len(src) == 0 {
		return 0
	}
	return float64(len(tokenize(translation))) / float64(len(src))
}

// Classify maps a metric set to a verdict using the local thresholds.
func Classify(m models.MetricSet) string {
	if m.BLEU >= BLEUThreshold && m.BERTScore >= BERTScoreThreshold {
		return VerdictAcceptable
	}
	return VerdictPoor
}

func tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokenize(s) {
		set[t] = true
	}
	return set
}
