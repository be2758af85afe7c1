package service

import (
	"strings"

	"civic-feedback/internal/domain"
)

// responseTemplates son los acuses de recibo por categoría; {sentiment} se
// sustituye por la palabra derivada de la etiqueta de sentimiento.
var responseTemplates = map[domain.CategoryID][]string{
	domain.CategoryTrust:              {"Trust is {sentiment}.", "I see that trust is {sentiment}."},
	domain.CategoryResponsiveness:     {"Responsiveness is {sentiment}.", "Services responsiveness feels {sentiment}."},
	domain.CategoryInfrastructure:     {"Infrastructure seems {sentiment}.", "Noted, infrastructure is {sentiment}."},
	domain.CategoryPublicServices:     {"Public services are {sentiment}."},
	domain.CategorySafety:             {"Safety is {sentiment}."},
	domain.CategoryEnvironment:        {"Environmental quality is {sentiment}."},
	domain.CategoryTransport:          {"Transport is {sentiment}."},
	domain.CategoryCommunity:          {"Community participation is {sentiment}."},
	domain.CategoryEconomic:           {"Economic opportunities appear {sentiment}."},
	domain.CategoryJustice:            {"Justice seems {sentiment}."},
	domain.CategoryFairness:           {"Fairness is {sentiment}."},
	domain.CategoryAccessibility:      {"Legal accessibility is {sentiment}."},
	domain.CategoryCorruption:         {"Corruption perception is {sentiment}."},
	domain.CategoryCommunityJustice:   {"Community justice seems {sentiment}."},
	domain.CategoryJusticeSuggestions: {"Suggestions noted."},
}

var sentimentWords = map[domain.Sentiment]string{
	domain.SentimentPositive: "good",
	domain.SentimentNeutral:  "okay",
	domain.SentimentNegative: "poor",
}

// replyFor elige una plantilla al azar para la categoría y la parametriza con
// el sentimiento detectado.
func replyFor(id domain.CategoryID, sentiment domain.Sentiment, intn func(int) int) string {
	templates, ok := responseTemplates[id]
	if !ok || len(templates) == 0 {
		templates = []string{"Thanks for your feedback."}
	}
	word, ok := sentimentWords[sentiment]
	if !ok {
		word = "okay"
	}
	return strings.ReplaceAll(templates[intn(len(templates))], "{sentiment}", word)
}
