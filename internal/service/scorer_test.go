package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/nlp"
)

func TestPolarityBucket(t *testing.T) {
	cases := []struct {
		polarity float64
		want     int
	}{
		{-1.0, 1},
		{-0.6, 1},
		{-0.59, 2},
		{-0.2, 2},
		{-0.1, 3},
		{0.0, 3},
		{0.2, 3},
		{0.21, 4},
		{0.6, 4},
		{0.61, 5},
		{1.0, 5},
	}
	for _, tc := range cases {
		if got := polarityBucket(tc.polarity); got != tc.want {
			t.Errorf("polarityBucket(%v) = %d, want %d", tc.polarity, got, tc.want)
		}
	}
}

func TestKeywordScoreCountsDistinctTokens(t *testing.T) {
	keywords := []string{"trust", "honest", "transparent", "reliable"}

	if got := keywordScore("nothing relevant here", keywords); got != 1 {
		t.Errorf("no matches: got %d, want 1", got)
	}
	if got := keywordScore("honest honest honest", keywords); got != 2 {
		t.Errorf("repeated token should count once: got %d, want 2", got)
	}
	if got := keywordScore("trust honest transparent reliable", keywords); got != 5 {
		t.Errorf("all matches: got %d, want 5", got)
	}
}

func TestKeywordScoreCapsAtFive(t *testing.T) {
	keywords := []string{"a", "b", "c", "d", "e", "f", "g"}
	if got := keywordScore("a b c d e f g", keywords); got != 5 {
		t.Errorf("got %d, want cap of 5", got)
	}
}

func TestScorePositiveAnswer(t *testing.T) {
	scorer := NewScorer(nlp.NewLexiconOracle(), zap.NewNop())
	cat, _ := domain.GovernanceSet.Category(domain.CategoryTrust)

	score, sentiment := scorer.Score(context.Background(), "The roads are great and the police are very helpful and honest", cat)

	// Avg polarity (0.8+0.6+0.6)/3 cae en el bucket 5; "honest" aporta un match.
	if score != 3.5 {
		t.Errorf("score = %v, want 3.5", score)
	}
	if sentiment != domain.SentimentPositive {
		t.Errorf("sentiment = %s, want positive", sentiment)
	}
}

func TestScoreEmptyAnswerIsNeutral(t *testing.T) {
	scorer := NewScorer(nlp.NewLexiconOracle(), zap.NewNop())
	cat, _ := domain.GovernanceSet.Category(domain.CategoryTrust)

	score, sentiment := scorer.Score(context.Background(), "", cat)

	if score != 2.0 {
		t.Errorf("score = %v, want 2.0", score)
	}
	if sentiment != domain.SentimentNeutral {
		t.Errorf("sentiment = %s, want neutral", sentiment)
	}
}

func TestScoreDegradesOnOracleFailure(t *testing.T) {
	scorer := NewScorer(&nlp.MockOracle{Err: errors.New("oracle down")}, zap.NewNop())
	cat, _ := domain.GovernanceSet.Category(domain.CategoryTrust)

	score, sentiment := scorer.Score(context.Background(), "honest administration", cat)

	// Polaridad degradada a 0: bucket 3 y un match de keyword.
	if score != 2.5 {
		t.Errorf("score = %v, want 2.5", score)
	}
	if sentiment != domain.SentimentNeutral {
		t.Errorf("sentiment = %s, want neutral", sentiment)
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	cat, _ := domain.JusticeSet.Category(domain.CategoryFairness)
	texts := []string{
		"",
		"fair fair fair unfair bias impartial justice",
		"terrible horrible worst corrupt bribe fraud",
		"excellent great good helpful honest fair clean safe",
	}
	for _, polarity := range []float64{-1, -0.5, 0, 0.5, 1} {
		scorer := NewScorer(&nlp.MockOracle{Value: polarity}, zap.NewNop())
		for _, text := range texts {
			score, _ := scorer.Score(context.Background(), text, cat)
			if score < 1 || score > 5 {
				t.Errorf("score %v out of range for polarity %v text %q", score, polarity, text)
			}
		}
	}
}
