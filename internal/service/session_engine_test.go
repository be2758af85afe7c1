package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/nlp"
	"civic-feedback/internal/translate"
)

func newEngine(oracle nlp.Oracle, translator translate.Translator) turnEngine {
	logger := zap.NewNop()
	return turnEngine{
		scorer:     NewScorer(oracle, logger),
		selector:   NewCategorySelectorWithRand(rand.New(rand.NewSource(7))),
		translator: translator,
		logger:     logger,
	}
}

func TestRecordAnswerKeepsRawAnswerInHistory(t *testing.T) {
	engine := newEngine(&nlp.MockOracle{Value: 0.5}, &translate.MockTranslator{
		Lang:       "es",
		Translated: "the service is good",
	})
	st := domain.NewSessionState("s1", "Riverside", domain.FlowDistrict, []domain.CategorySet{domain.GovernanceSet}, 5)

	reply, err := engine.recordAnswer(context.Background(), &st, []domain.CategorySet{domain.GovernanceSet}, "el servicio es bueno", domain.CategoryTrust)
	if err != nil {
		t.Fatalf("recordAnswer: %v", err)
	}
	if reply == "" {
		t.Error("expected acknowledgment reply")
	}
	if st.UserLang != "es" {
		t.Errorf("user lang = %q, want es", st.UserLang)
	}
	if len(st.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(st.History))
	}
	// La respuesta se guarda tal cual el usuario la escribió; sólo el puntaje
	// usa el texto traducido.
	if st.History[0].Answer != "el servicio es bueno" {
		t.Errorf("history answer = %q, want original text", st.History[0].Answer)
	}
	if !st.Answered(domain.CategoryTrust) {
		t.Error("category should be scored")
	}
}

func TestRecordAnswerSkipsEmptyTurn(t *testing.T) {
	engine := newEngine(&nlp.MockOracle{}, &translate.MockTranslator{})
	st := domain.NewSessionState("s1", "Riverside", domain.FlowDistrict, []domain.CategorySet{domain.GovernanceSet}, 5)

	reply, err := engine.recordAnswer(context.Background(), &st, []domain.CategorySet{domain.GovernanceSet}, "", "")
	if err != nil {
		t.Fatalf("recordAnswer: %v", err)
	}
	if reply != "" || len(st.History) != 0 {
		t.Errorf("empty turn should record nothing, got reply %q history %d", reply, len(st.History))
	}
}

func TestRecordAnswerDegradesOnTranslatorFailure(t *testing.T) {
	engine := newEngine(&nlp.MockOracle{Value: 0.5}, &translate.MockTranslator{
		DetectErr: errors.New("translator down"),
	})
	st := domain.NewSessionState("s1", "Riverside", domain.FlowDistrict, []domain.CategorySet{domain.GovernanceSet}, 5)

	_, err := engine.recordAnswer(context.Background(), &st, []domain.CategorySet{domain.GovernanceSet}, "decent service", domain.CategoryTrust)
	if err != nil {
		t.Fatalf("recordAnswer should degrade, got %v", err)
	}
	if !st.Answered(domain.CategoryTrust) {
		t.Error("answer should still be scored from the raw text")
	}
	if st.UserLang != "en" {
		t.Errorf("user lang = %q, want unchanged default", st.UserLang)
	}
}

func TestNextQuestionFollowsSetPriority(t *testing.T) {
	engine := newEngine(&nlp.MockOracle{}, &translate.MockTranslator{})
	sets := []domain.CategorySet{domain.GovernanceSet, domain.DistrictJusticeSet}
	st := domain.NewSessionState("s1", "Riverside", domain.FlowDistrict, sets, 5)

	// Mientras queden categorías de gobernanza, la pregunta sale de ese set.
	q, ok := engine.nextQuestion(context.Background(), &st, sets)
	if !ok {
		t.Fatal("expected a question")
	}
	if !domain.GovernanceSet.Contains(q.Category) {
		t.Errorf("category %s should come from the governance set first", q.Category)
	}

	for _, c := range domain.GovernanceSet.Categories {
		if err := st.RecordScore(domain.SetGovernance, c.ID, 3.0); err != nil {
			t.Fatalf("record %s: %v", c.ID, err)
		}
	}

	q, ok = engine.nextQuestion(context.Background(), &st, sets)
	if !ok {
		t.Fatal("expected a justice question")
	}
	if !domain.DistrictJusticeSet.Contains(q.Category) {
		t.Errorf("category %s should come from the justice set", q.Category)
	}
}

func TestNextQuestionLocalizesPrompt(t *testing.T) {
	engine := newEngine(&nlp.MockOracle{}, &translate.MockTranslator{
		Lang:       "es",
		Translated: "¿Pregunta traducida?",
	})
	sets := []domain.CategorySet{domain.GovernanceSet}
	st := domain.NewSessionState("s1", "Riverside", domain.FlowDistrict, sets, 5)
	st.UserLang = "es"

	q, ok := engine.nextQuestion(context.Background(), &st, sets)
	if !ok {
		t.Fatal("expected a question")
	}
	if q.Text != "¿Pregunta traducida?" {
		t.Errorf("question = %q, want localized prompt", q.Text)
	}
}

func TestSetMeanExcludesUnansweredAndFreeform(t *testing.T) {
	scores := map[domain.CategoryID]*float64{}
	for _, c := range domain.JusticeSet.Categories {
		scores[c.ID] = nil
	}
	four, two, five := 4.0, 2.0, 5.0
	scores[domain.CategoryTrust] = &four
	scores[domain.CategoryFairness] = &two
	scores[domain.CategoryJusticeSuggestions] = &five

	if got := setMean(domain.JusticeSet, scores); got != 3.0 {
		t.Errorf("setMean = %v, want 3.0", got)
	}
}

func TestSetMeanEmptyIsZero(t *testing.T) {
	if got := setMean(domain.GovernanceSet, nil); got != 0 {
		t.Errorf("setMean = %v, want 0", got)
	}
}
