package service

import (
	"math/rand"
	"sync"
	"time"

	"civic-feedback/internal/domain"
)

// CategorySelector elige al azar la próxima categoría sin responder de un set.
// El orden aleatorio evita sesgo de priming en las respuestas; la fuente de
// aleatoriedad es inyectable para tests deterministas.
type CategorySelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCategorySelector() *CategorySelector {
	return NewCategorySelectorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewCategorySelectorWithRand(rnd *rand.Rand) *CategorySelector {
	return &CategorySelector{rnd: rnd}
}

// Next devuelve una categoría pendiente del set, o false si el set está
// completo. Nunca devuelve una categoría ya respondida.
func (s *CategorySelector) Next(set domain.CategorySet, scores map[domain.CategoryID]*float64) (domain.Category, bool) {
	pending := make([]domain.Category, 0, len(set.Categories))
	for _, c := range set.Categories {
		if score, ok := scores[c.ID]; ok && score == nil {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return domain.Category{}, false
	}
	return pending[s.intn(len(pending))], true
}

// intn protege la fuente compartida; rand.Rand no es seguro para uso concurrente.
func (s *CategorySelector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
