package nlp

import (
	"context"
	"strings"
)

// lexicon asigna polaridad por palabra, estilo AFINN reducido al vocabulario
// típico de feedback ciudadano.
var lexicon = map[string]float64{
	"excellent":   1.0,
	"great":       0.8,
	"good":        0.7,
	"helpful":     0.6,
	"honest":      0.6,
	"fair":        0.6,
	"clean":       0.5,
	"safe":        0.5,
	"quick":       0.4,
	"fast":        0.4,
	"responsive":  0.4,
	"reliable":    0.5,
	"transparent": 0.5,
	"easy":        0.4,
	"available":   0.3,
	"efficient":   0.5,
	"timely":      0.4,
	"improved":    0.4,
	"okay":        0.1,
	"fine":        0.2,
	"average":     0.0,
	"slow":        -0.4,
	"delay":       -0.4,
	"delayed":     -0.4,
	"poor":        -0.6,
	"bad":         -0.7,
	"unfair":      -0.6,
	"unsafe":      -0.6,
	"dirty":       -0.5,
	"corrupt":     -0.8,
	"bribe":       -0.8,
	"fraud":       -0.8,
	"illegal":     -0.6,
	"broken":      -0.5,
	"terrible":    -0.9,
	"horrible":    -0.9,
	"worst":       -1.0,
	"useless":     -0.7,
	"never":       -0.3,
	"not":         -0.2,
	"no":          -0.2,
}

// LexiconOracle calcula polaridad localmente, sin servicio externo.
// Se usa como oráculo por defecto cuando no hay API configurada y en el CLI.
type LexiconOracle struct{}

func NewLexiconOracle() *LexiconOracle {
	return &LexiconOracle{}
}

func (o *LexiconOracle) Polarity(_ context.Context, text string) (float64, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0, nil
	}

	var sum float64
	var hits int
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:\"'()")
		if v, ok := lexicon[w]; ok {
			sum += v
			hits++
		}
	}
	if hits == 0 {
		return 0, nil
	}
	return clampPolarity(sum / float64(hits)), nil
}
