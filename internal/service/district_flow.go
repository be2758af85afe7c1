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

// StartResult abre una sesión: saludo, sesión inicial y, según el flujo, la
// primera pregunta.
type StartResult struct {
	Message  string
	Question string
	Category domain.CategoryID
	Session  *domain.SessionState
}

// DistrictFlowService orquesta el flujo distrital: sesión de largo fijo sobre
// el set de gobernanza y luego el de justicia.
type DistrictFlowService struct {
	engine       turnEngine
	repo         repository.FeedbackRepository
	guard        FinalizeGuard
	sets         []domain.CategorySet
	maxQuestions int
	logger       *zap.Logger
}

func NewDistrictFlowService(
	scorer *Scorer,
	selector *CategorySelector,
	translator translate.Translator,
	repo repository.FeedbackRepository,
	guard FinalizeGuard,
	maxQuestions int,
	logger *zap.Logger,
) *DistrictFlowService {
	if maxQuestions <= 0 {
		maxQuestions = 5
	}
	return &DistrictFlowService{
		engine: turnEngine{
			scorer:     scorer,
			selector:   selector,
			translator: translator,
			logger:     logger,
		},
		repo:  repo,
		guard: guard,
		// Orden de prioridad fijo: gobernanza antes que justicia.
		sets:         []domain.CategorySet{domain.GovernanceSet, domain.DistrictJusticeSet},
		maxQuestions: maxQuestions,
		logger:       logger,
	}
}

// Start crea la sesión con todas las categorías sin responder. La primera
// pregunta llega en el primer turno.
func (s *DistrictFlowService) Start(district string) StartResult {
	st := domain.NewSessionState(uuid.NewString(), district, domain.FlowDistrict, s.sets, s.maxQuestions)
	return StartResult{
		Message: fmt.Sprintf("Hello! Let's start your feedback for %s.", district),
		Session: &st,
	}
}

// Turn avanza la sesión un turno. Completa al alcanzar el máximo de turnos
// aunque queden categorías sin responder, o antes si se respondió todo.
func (s *DistrictFlowService) Turn(ctx context.Context, in TurnInput) (TurnResult, error) {
	st := in.Session
	if st == nil {
		return TurnResult{}, ErrMissingSession
	}

	reply, err := s.engine.recordAnswer(ctx, st, s.sets, in.Answer, in.Category)
	if err != nil {
		return TurnResult{}, err
	}

	st.QuestionCount++
	if st.QuestionCount >= st.MaxQuestions {
		return s.finalize(ctx, st, reply)
	}

	q, ok := s.engine.nextQuestion(ctx, st, s.sets)
	if !ok {
		// Todo respondido antes del límite: cerrar la sesión igualmente.
		return s.finalize(ctx, st, reply)
	}

	return TurnResult{
		BotReply: reply,
		Question: q.Text,
		Category: q.Category,
		Session:  st,
	}, nil
}

func (s *DistrictFlowService) finalize(ctx context.Context, st *domain.SessionState, reply string) (TurnResult, error) {
	done := TurnResult{
		BotReply: reply,
		Done:     true,
		Message:  "Feedback session completed.",
	}

	acquired, err := s.guard.Acquire(ctx, st.ID)
	if err != nil {
		// Guard caído no bloquea el cierre.
		s.logger.Warn("finalize guard unavailable", zap.Error(err), zap.String("session_id", st.ID))
	} else if !acquired {
		s.logger.Info("session already finalized", zap.String("session_id", st.ID))
		return done, nil
	}

	record := s.BuildFeedback(st)
	if err := s.repo.SaveDistrict(ctx, record); err != nil {
		if rerr := s.guard.Release(ctx, st.ID); rerr != nil {
			s.logger.Warn("finalize guard release failed", zap.Error(rerr), zap.String("session_id", st.ID))
		}
		return TurnResult{}, fmt.Errorf("save district feedback: %w", err)
	}

	s.logger.Info("district session completed",
		zap.String("session_id", st.ID),
		zap.String("district", st.District),
		zap.Float64("overall_score", record.OverallScore),
	)
	return done, nil
}

// BuildFeedback agrega la sesión a su registro final. Es una función pura del
// estado: el ID del registro es el de la sesión y created_at lo fija la base,
// así el cierre puede reintentarse sin producir registros distintos.
func (s *DistrictFlowService) BuildFeedback(st *domain.SessionState) domain.DistrictFeedback {
	gov := st.SetScores[domain.SetGovernance]
	jus := st.SetScores[domain.SetJustice]

	govScore := setMean(domain.GovernanceSet, gov)
	jusScore := setMean(domain.DistrictJusticeSet, jus)

	return domain.DistrictFeedback{
		ID:                  st.ID,
		District:            st.District,
		TrustScore:          gov[domain.CategoryTrust],
		ResponsivenessScore: gov[domain.CategoryResponsiveness],
		InfrastructureScore: gov[domain.CategoryInfrastructure],
		PublicServicesScore: gov[domain.CategoryPublicServices],
		SafetyScore:         gov[domain.CategorySafety],
		EnvironmentScore:    gov[domain.CategoryEnvironment],
		TransportScore:      gov[domain.CategoryTransport],
		CommunityScore:      gov[domain.CategoryCommunity],
		EconomicScore:       gov[domain.CategoryEconomic],
		GovernanceScore:     govScore,
		JusticeScore:        jusScore,
		JusticeSentiment:    dominantSentiment(st.History, domain.DistrictJusticeSet),
		OverallScore:        round2((govScore + jusScore) / 2),
	}
}
