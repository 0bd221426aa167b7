package domain

import "math/rand/v2"

// Chooser picks an index in [0, n). n is always > 0.
type Chooser interface {
	IntN(n int) int
}

// ChooserFunc adapts a function to the Chooser interface
type ChooserFunc func(n int) int

func (f ChooserFunc) IntN(n int) int { return f(n) }

// DefaultChooser draws from the runtime's goroutine-safe random source.
var DefaultChooser Chooser = ChooserFunc(rand.IntN)

// QuizSelector picks the next unseen question for a quiz session. It keeps no
// per-session state; the caller supplies the served ids on every call.
type QuizSelector struct {
	chooser Chooser
}

// NewQuizSelector creates a selector. A nil chooser falls back to DefaultChooser.
func NewQuizSelector(chooser Chooser) *QuizSelector {
	if chooser == nil {
		chooser = DefaultChooser
	}
	return &QuizSelector{chooser: chooser}
}

// NextQuestion returns a random question from pool that belongs to categoryID (or any
// category for AllCategories) and whose id is not in previouslyServed. It returns
// nil, nil once every candidate has been served. An unknown category is rejected before
// the pool is looked at.
func (s *QuizSelector) NextQuestion(pool []Question, categories []Category, categoryID int64, previouslyServed []int64) (*Question, error) {
	if categoryID != AllCategories && !CategoryExists(categories, categoryID) {
		return nil, NewInvalidCategoryError(categoryID)
	}

	served := make(map[int64]struct{}, len(previouslyServed))
	for _, id := range previouslyServed {
		served[id] = struct{}{}
	}

	candidates := make([]int, 0, len(pool))
	for i := range pool {
		if categoryID != AllCategories && pool[i].CategoryID != categoryID {
			continue
		}
		if _, seen := served[pool[i].ID]; seen {
			continue
		}
		candidates = append(candidates, i)
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	picked := pool[candidates[s.chooser.IntN(len(candidates))]]
	return &picked, nil
}
