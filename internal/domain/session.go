package domain

import "errors"

// Sentiment es la etiqueta gruesa de sentimiento de una respuesta.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// SentimentOrder fija el orden de desempate para el sentimiento dominante.
var SentimentOrder = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// Flow identifica la variante de cuestionario.
type Flow string

const (
	FlowDistrict Flow = "district"
	FlowJustice  Flow = "justice"
)

// ErrCategoryAnswered se devuelve al intentar re-responder una categoría ya puntuada.
var ErrCategoryAnswered = errors.New("category already answered")

// AnswerRecord es el registro inmutable de una respuesta puntuada.
type AnswerRecord struct {
	Category  CategoryID `json:"category"`
	Answer    string     `json:"answer"`
	Score     float64    `json:"score"`
	Sentiment Sentiment  `json:"sentiment"`
}

// SessionState viaja completo entre cliente y servidor en cada turno; el
// servidor no guarda sesiones.
type SessionState struct {
	ID            string                             `json:"id"`
	District      string                             `json:"district"`
	Flow          Flow                               `json:"flow"`
	SetScores     map[string]map[CategoryID]*float64 `json:"set_scores"`
	History       []AnswerRecord                     `json:"chat_history"`
	UserLang      string                             `json:"user_lang"`
	QuestionCount int                                `json:"question_count"`
	MaxQuestions  int                                `json:"max_questions,omitempty"`
}

// NewSessionState crea una sesión con todas las categorías sin responder.
// maxQuestions 0 significa flujo exhaustivo (termina al responder todo).
func NewSessionState(id, district string, flow Flow, sets []CategorySet, maxQuestions int) SessionState {
	scores := make(map[string]map[CategoryID]*float64, len(sets))
	for _, set := range sets {
		pending := make(map[CategoryID]*float64, len(set.Categories))
		for _, c := range set.Categories {
			pending[c.ID] = nil
		}
		scores[set.Name] = pending
	}
	return SessionState{
		ID:           id,
		District:     district,
		Flow:         flow,
		SetScores:    scores,
		History:      []AnswerRecord{},
		UserLang:     "en",
		MaxQuestions: maxQuestions,
	}
}

// ScoreFor devuelve el puntaje de una categoría dentro de un set.
// El segundo booleano indica si la categoría pertenece al set en la sesión.
func (s *SessionState) ScoreFor(setName string, id CategoryID) (*float64, bool) {
	set, ok := s.SetScores[setName]
	if !ok {
		return nil, false
	}
	score, ok := set[id]
	return score, ok
}

// RecordScore fija el puntaje de una categoría, una sola vez.
func (s *SessionState) RecordScore(setName string, id CategoryID, score float64) error {
	set, ok := s.SetScores[setName]
	if !ok {
		return errors.New("unknown category set: " + setName)
	}
	current, ok := set[id]
	if !ok {
		return errors.New("category not in set: " + string(id))
	}
	if current != nil {
		return ErrCategoryAnswered
	}
	set[id] = &score
	return nil
}

// Answered indica si la categoría ya fue respondida en cualquiera de los sets.
func (s *SessionState) Answered(id CategoryID) bool {
	for _, set := range s.SetScores {
		if score, ok := set[id]; ok && score != nil {
			return true
		}
	}
	return false
}

// AllAnswered indica si todos los sets activos están completos.
func (s *SessionState) AllAnswered() bool {
	for _, set := range s.SetScores {
		for _, score := range set {
			if score == nil {
				return false
			}
		}
	}
	return true
}
