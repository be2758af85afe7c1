package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/repository"
	"civic-feedback/internal/translate"
)

// JusticeFlowService orquesta el flujo de justicia: exhaustivo, termina sólo
// cuando las 11 categorías del set quedaron respondidas.
type JusticeFlowService struct {
	engine turnEngine
	repo   repository.FeedbackRepository
	guard  FinalizeGuard
	sets   []domain.CategorySet
	logger *zap.Logger
}

func NewJusticeFlowService(
	scorer *Scorer,
	selector *CategorySelector,
	translator translate.Translator,
	repo repository.FeedbackRepository,
	guard FinalizeGuard,
	logger *zap.Logger,
) *JusticeFlowService {
	return &JusticeFlowService{
		engine: turnEngine{
			scorer:     scorer,
			selector:   selector,
			translator: translator,
			logger:     logger,
		},
		repo:   repo,
		guard:  guard,
		sets:   []domain.CategorySet{domain.JusticeSet},
		logger: logger,
	}
}

// Start crea la sesión y devuelve de inmediato la primera pregunta.
func (s *JusticeFlowService) Start(ctx context.Context, district string) StartResult {
	st := domain.NewSessionState(uuid.NewString(), district, domain.FlowJustice, s.sets, 0)
	q, _ := s.engine.nextQuestion(ctx, &st, s.sets)
	return StartResult{
		Message:  fmt.Sprintf("Hello! Let's start your justice feedback for %s.", district),
		Question: q.Text,
		Category: q.Category,
		Session:  &st,
	}
}

// Turn avanza la sesión un turno; al agotar las categorías agrega, persiste y
// devuelve las lecturas sugeridas.
func (s *JusticeFlowService) Turn(ctx context.Context, in TurnInput) (TurnResult, error) {
	st := in.Session
	if st == nil {
		return TurnResult{}, ErrMissingSession
	}

	reply, err := s.engine.recordAnswer(ctx, st, s.sets, in.Answer, in.Category)
	if err != nil {
		return TurnResult{}, err
	}

	st.QuestionCount++

	q, ok := s.engine.nextQuestion(ctx, st, s.sets)
	if !ok {
		return s.finalize(ctx, st, reply)
	}

	return TurnResult{
		BotReply: reply,
		Question: q.Text,
		Category: q.Category,
		Session:  st,
	}, nil
}

func (s *JusticeFlowService) finalize(ctx context.Context, st *domain.SessionState, reply string) (TurnResult, error) {
	done := TurnResult{
		BotReply:   reply,
		Done:       true,
		Message:    "Justice feedback session completed.",
		References: domain.JusticeReferences,
	}

	acquired, err := s.guard.Acquire(ctx, st.ID)
	if err != nil {
		s.logger.Warn("finalize guard unavailable", zap.Error(err), zap.String("session_id", st.ID))
	} else if !acquired {
		s.logger.Info("session already finalized", zap.String("session_id", st.ID))
		return done, nil
	}

	record := s.BuildFeedback(st)
	if err := s.repo.SaveJustice(ctx, record); err != nil {
		if rerr := s.guard.Release(ctx, st.ID); rerr != nil {
			s.logger.Warn("finalize guard release failed", zap.Error(rerr), zap.String("session_id", st.ID))
		}
		return TurnResult{}, fmt.Errorf("save justice feedback: %w", err)
	}

	s.logger.Info("justice session completed",
		zap.String("session_id", st.ID),
		zap.String("district", st.District),
		zap.Float64("overall_score", record.OverallScore),
	)
	return done, nil
}

// BuildFeedback agrega la sesión a su registro final. Las sugerencias pasan
// textuales, sin puntuar; el puntaje global promedia las categorías puntuadas.
func (s *JusticeFlowService) BuildFeedback(st *domain.SessionState) domain.JusticeFeedback {
	scores := st.SetScores[domain.SetJustice]

	var suggestions string
	for _, rec := range st.History {
		if rec.Category == domain.CategoryJusticeSuggestions {
			suggestions = rec.Answer
		}
	}

	return domain.JusticeFeedback{
		ID:                    st.ID,
		District:              st.District,
		TrustScore:            scores[domain.CategoryTrust],
		ResponsivenessScore:   scores[domain.CategoryResponsiveness],
		FairnessScore:         scores[domain.CategoryFairness],
		AccessibilityScore:    scores[domain.CategoryAccessibility],
		CorruptionScore:       scores[domain.CategoryCorruption],
		CommunityJusticeScore: scores[domain.CategoryCommunityJustice],
		Suggestions:           suggestions,
		JusticeSentiment:      dominantSentiment(st.History, domain.JusticeSet),
		OverallScore:          setMean(domain.JusticeSet, scores),
	}
}
