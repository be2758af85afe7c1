package service

import (
	"strings"
	"testing"

	"civic-feedback/internal/domain"
)

func firstTemplate(n int) int { return 0 }

func TestReplyForSubstitutesSentimentWord(t *testing.T) {
	cases := []struct {
		sentiment domain.Sentiment
		word      string
	}{
		{domain.SentimentPositive, "good"},
		{domain.SentimentNeutral, "okay"},
		{domain.SentimentNegative, "poor"},
	}
	for _, tc := range cases {
		reply := replyFor(domain.CategoryTrust, tc.sentiment, firstTemplate)
		if !strings.Contains(reply, tc.word) {
			t.Errorf("reply %q does not contain %q", reply, tc.word)
		}
		if strings.Contains(reply, "{sentiment}") {
			t.Errorf("placeholder left in reply %q", reply)
		}
	}
}

func TestReplyForUnknownCategoryFallsBack(t *testing.T) {
	reply := replyFor(domain.CategoryID("unknown"), domain.SentimentNeutral, firstTemplate)
	if reply != "Thanks for your feedback." {
		t.Errorf("unexpected fallback reply %q", reply)
	}
}
