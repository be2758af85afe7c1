package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewSessionStateStartsUnanswered(t *testing.T) {
	st := NewSessionState("s1", "Riverside", FlowDistrict, []CategorySet{GovernanceSet, DistrictJusticeSet}, 5)

	if st.QuestionCount != 0 || st.MaxQuestions != 5 {
		t.Errorf("unexpected counters %+v", st)
	}
	if st.UserLang != "en" {
		t.Errorf("user lang = %q, want en", st.UserLang)
	}
	if len(st.SetScores[SetGovernance]) != len(GovernanceSet.Categories) {
		t.Errorf("governance scores = %d entries", len(st.SetScores[SetGovernance]))
	}
	if st.AllAnswered() {
		t.Error("fresh session should not be all answered")
	}
}

func TestRecordScoreIsWriteOnce(t *testing.T) {
	st := NewSessionState("s1", "Riverside", FlowDistrict, []CategorySet{GovernanceSet}, 5)

	if err := st.RecordScore(SetGovernance, CategoryTrust, 4.5); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if !st.Answered(CategoryTrust) {
		t.Error("category should be answered")
	}

	err := st.RecordScore(SetGovernance, CategoryTrust, 1.0)
	if !errors.Is(err, ErrCategoryAnswered) {
		t.Errorf("err = %v, want ErrCategoryAnswered", err)
	}
	if score, _ := st.ScoreFor(SetGovernance, CategoryTrust); score == nil || *score != 4.5 {
		t.Errorf("score = %v, want original 4.5", score)
	}
}

func TestRecordScoreUnknownTargets(t *testing.T) {
	st := NewSessionState("s1", "Riverside", FlowDistrict, []CategorySet{GovernanceSet}, 5)

	if err := st.RecordScore("nope", CategoryTrust, 3.0); err == nil {
		t.Error("unknown set should fail")
	}
	if err := st.RecordScore(SetGovernance, CategoryFairness, 3.0); err == nil {
		t.Error("category outside the set should fail")
	}
}

func TestAllAnswered(t *testing.T) {
	st := NewSessionState("s1", "Riverside", FlowJustice, []CategorySet{JusticeSet}, 0)

	for _, c := range JusticeSet.Categories {
		if err := st.RecordScore(SetJustice, c.ID, 3.0); err != nil {
			t.Fatalf("record %s: %v", c.ID, err)
		}
	}
	if !st.AllAnswered() {
		t.Error("expected all answered")
	}
}

func TestSessionStateJSONRoundTrip(t *testing.T) {
	st := NewSessionState("s1", "Riverside", FlowDistrict, []CategorySet{GovernanceSet, DistrictJusticeSet}, 5)
	if err := st.RecordScore(SetGovernance, CategoryTrust, 4.0); err != nil {
		t.Fatal(err)
	}
	st.History = append(st.History, AnswerRecord{
		Category:  CategoryTrust,
		Answer:    "quite good",
		Score:     4.0,
		Sentiment: SentimentPositive,
	})
	st.QuestionCount = 2

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded SessionState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.QuestionCount != 2 || decoded.District != "Riverside" {
		t.Errorf("decoded %+v", decoded)
	}
	score, ok := decoded.ScoreFor(SetGovernance, CategoryTrust)
	if !ok || score == nil || *score != 4.0 {
		t.Errorf("decoded trust score = %v", score)
	}
	if len(decoded.History) != 1 || decoded.History[0].Answer != "quite good" {
		t.Errorf("decoded history %+v", decoded.History)
	}
}
