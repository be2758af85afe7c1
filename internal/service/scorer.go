package service

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/nlp"
)

// Scorer convierte una respuesta libre en puntaje numérico y etiqueta de sentimiento.
type Scorer struct {
	oracle nlp.Oracle
	logger *zap.Logger
}

func NewScorer(oracle nlp.Oracle, logger *zap.Logger) *Scorer {
	return &Scorer{oracle: oracle, logger: logger}
}

// Score puntúa el texto para una categoría. El puntaje es el promedio entre el
// bucket de polaridad (1-5) y el puntaje de keywords (1-5), redondeado a 2
// decimales. Si el oráculo falla se degrada a polaridad neutra; nunca aborta
// el turno.
func (s *Scorer) Score(ctx context.Context, text string, cat domain.Category) (float64, domain.Sentiment) {
	polarity, err := s.oracle.Polarity(ctx, text)
	if err != nil {
		s.logger.Warn("polarity oracle failed", zap.Error(err), zap.String("category", string(cat.ID)))
		polarity = 0
	}

	bucket := polarityBucket(polarity)
	kScore := keywordScore(text, cat.Keywords)
	score := round2(float64(bucket+kScore) / 2)
	return score, sentimentLabel(polarity)
}

// polarityBucket mapea polaridad [-1,1] a un bucket 1-5 con umbrales fijos.
func polarityBucket(polarity float64) int {
	switch {
	case polarity <= -0.6:
		return 1
	case polarity <= -0.2:
		return 2
	case polarity <= 0.2:
		return 3
	case polarity <= 0.6:
		return 4
	default:
		return 5
	}
}

// keywordScore cuenta keywords de la categoría presentes como tokens exactos
// del texto en minúsculas. El +1 garantiza mínimo 1; el tope es 5.
func keywordScore(text string, keywords []string) int {
	words := strings.Fields(strings.ToLower(text))
	present := make(map[string]struct{}, len(words))
	for _, w := range words {
		present[w] = struct{}{}
	}

	matches := 0
	for _, k := range keywords {
		if _, ok := present[k]; ok {
			matches++
		}
	}
	if matches+1 > 5 {
		return 5
	}
	return matches + 1
}

// sentimentLabel es la señal gruesa independiente del puntaje.
func sentimentLabel(polarity float64) domain.Sentiment {
	switch {
	case polarity > 0.1:
		return domain.SentimentPositive
	case polarity < -0.1:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
