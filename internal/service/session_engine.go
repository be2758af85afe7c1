package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/translate"
)

// ErrMissingSession indica un turno sin estado de sesión.
var ErrMissingSession = errors.New("missing session state")

// TurnInput es la forma lógica de una petición de turno. La sesión viaja
// completa desde el cliente; el servidor no guarda nada entre turnos.
type TurnInput struct {
	Session  *domain.SessionState
	Answer   string
	Category domain.CategoryID
}

// TurnResult es la respuesta de un turno. Done=true omite Question/Category
// y puede incluir References; la sesión no se devuelve en el cierre.
type TurnResult struct {
	BotReply   string
	Question   string
	Category   domain.CategoryID
	Session    *domain.SessionState
	Done       bool
	Message    string
	References []domain.Reference
}

// Question es la próxima pregunta ya localizada al idioma del usuario.
type Question struct {
	Category domain.CategoryID
	Text     string
}

// turnEngine implementa la mecánica de turno compartida por ambos flujos:
// registrar la respuesta anterior y elegir la próxima pregunta.
type turnEngine struct {
	scorer     *Scorer
	selector   *CategorySelector
	translator translate.Translator
	logger     *zap.Logger
}

// recordAnswer normaliza, puntúa y registra la respuesta del turno anterior y
// devuelve el acuse de recibo. Respuesta sin categoría (o categoría sin
// respuesta) no registra nada: no es fatal. Re-responder una categoría ya
// puntuada devuelve domain.ErrCategoryAnswered; los puntajes son write-once.
func (e *turnEngine) recordAnswer(ctx context.Context, st *domain.SessionState, sets []domain.CategorySet, answer string, catID domain.CategoryID) (string, error) {
	if answer == "" || catID == "" {
		return "", nil
	}

	var (
		set   domain.CategorySet
		cat   domain.Category
		found bool
	)
	for _, s := range sets {
		if c, ok := s.Category(catID); ok {
			set, cat, found = s, c, true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("unknown category: %s", catID)
	}
	if score, ok := st.ScoreFor(set.Name, catID); ok && score != nil {
		return "", domain.ErrCategoryAnswered
	}

	text := e.toCanonical(ctx, st, answer)
	score, sentiment := e.scorer.Score(ctx, text, cat)

	if err := st.RecordScore(set.Name, catID, score); err != nil {
		return "", err
	}
	st.History = append(st.History, domain.AnswerRecord{
		Category:  catID,
		Answer:    answer,
		Score:     score,
		Sentiment: sentiment,
	})

	return replyFor(catID, sentiment, e.selector.intn), nil
}

// toCanonical detecta el idioma del usuario y traduce la respuesta al idioma
// canónico. Un fallo del traductor degrada a usar el texto tal cual; nunca
// aborta la sesión.
func (e *turnEngine) toCanonical(ctx context.Context, st *domain.SessionState, answer string) string {
	lang, err := e.translator.DetectLanguage(ctx, answer)
	if err != nil {
		e.logger.Warn("language detection failed", zap.Error(err), zap.String("session_id", st.ID))
		return answer
	}
	st.UserLang = lang
	if lang == translate.CanonicalLang {
		return answer
	}

	translated, err := e.translator.Translate(ctx, answer, lang, translate.CanonicalLang)
	if err != nil {
		e.logger.Warn("answer translation failed", zap.Error(err), zap.String("lang", lang))
		return answer
	}
	return translated
}

// nextQuestion elige una categoría pendiente probando los sets en su orden de
// prioridad fijo y localiza el prompt. Devuelve false con todos los sets
// completos; el llamador lo usa para detectar fin de fase.
func (e *turnEngine) nextQuestion(ctx context.Context, st *domain.SessionState, sets []domain.CategorySet) (Question, bool) {
	for _, set := range sets {
		cat, ok := e.selector.Next(set, st.SetScores[set.Name])
		if !ok {
			continue
		}

		text := cat.Prompt
		if st.UserLang != translate.CanonicalLang {
			translated, err := e.translator.Translate(ctx, cat.Prompt, translate.CanonicalLang, st.UserLang)
			if err != nil {
				e.logger.Warn("prompt translation failed", zap.Error(err), zap.String("lang", st.UserLang))
			} else {
				text = translated
			}
		}
		return Question{Category: cat.ID, Text: text}, true
	}
	return Question{}, false
}

// setMean promedia los puntajes respondidos de un set; las categorías sin
// responder se excluyen (no cuentan como cero) igual que las freeform. Un set
// sin respuestas puntuadas promedia 0 por definición.
func setMean(set domain.CategorySet, scores map[domain.CategoryID]*float64) float64 {
	var sum float64
	var n int
	for _, c := range set.Categories {
		if c.Freeform {
			continue
		}
		if v := scores[c.ID]; v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

// dominantSentiment devuelve la etiqueta más frecuente entre los registros del
// set, con desempate en el orden fijo positive → neutral → negative.
func dominantSentiment(history []domain.AnswerRecord, set domain.CategorySet) domain.Sentiment {
	counts := make(map[domain.Sentiment]int, len(domain.SentimentOrder))
	for _, rec := range history {
		if set.Contains(rec.Category) {
			counts[rec.Sentiment]++
		}
	}

	best := domain.SentimentOrder[0]
	for _, s := range domain.SentimentOrder[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}
