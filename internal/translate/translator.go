package translate

import "context"

// CanonicalLang es el idioma de trabajo interno: las respuestas se normalizan
// a inglés antes de puntuar y las preguntas se localizan al idioma detectado.
const CanonicalLang = "en"

// Translator define el contrato de detección y traducción de idioma.
type Translator interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, fromLang, toLang string) (string, error)
}

// NoopTranslator asume que todo texto ya está en el idioma canónico.
// Se usa cuando no hay servicio de traducción configurado y en el CLI.
type NoopTranslator struct{}

func NewNoopTranslator() *NoopTranslator {
	return &NoopTranslator{}
}

func (t *NoopTranslator) DetectLanguage(_ context.Context, _ string) (string, error) {
	return CanonicalLang, nil
}

func (t *NoopTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
