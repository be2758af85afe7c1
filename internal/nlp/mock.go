package nlp

import "context"

// MockOracle permite tests sin llamar a un servicio de sentimiento real.
type MockOracle struct {
	Value float64
	Err   error
}

func (m *MockOracle) Polarity(ctx context.Context, text string) (float64, error) {
	return m.Value, m.Err
}
