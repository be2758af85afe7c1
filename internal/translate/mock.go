package translate

import "context"

// MockTranslator permite tests sin servicio de traducción real.
type MockTranslator struct {
	Lang       string
	Translated string
	DetectErr  error
	Err        error
}

func (m *MockTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	if m.Lang == "" {
		return CanonicalLang, m.DetectErr
	}
	return m.Lang, m.DetectErr
}

func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if fromLang == toLang || m.Translated == "" {
		return text, nil
	}
	return m.Translated, nil
}
