package domain

import "strings"

const (
	MinDifficulty = 1
	MaxDifficulty = 4

	// AllCategories is the category sentinel meaning "no category filter".
	AllCategories int64 = 0
)

// Category groups trivia questions
type Category struct {
	ID   int64
	Type string
}

// Question represents a trivia question
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Difficulty int
	CategoryID int64
}

// NewQuestion creates a new Question instance. The ID is assigned by storage.
func NewQuestion(question, answer string, difficulty int, categoryID int64) *Question {
	return &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Difficulty: difficulty,
		CategoryID: categoryID,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.Question == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if q.Answer == "" {
		errs = append(errs, NewMissingFieldError("answer"))
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		errs = append(errs, NewOutOfRangeError("difficulty", q.Difficulty, MinDifficulty, MaxDifficulty))
	}
	if q.CategoryID <= 0 {
		errs = append(errs, NewMissingFieldError("category"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuestionPatch is an immutable set of changes applied to a stored question in one update.
// Nil fields are left untouched.
type QuestionPatch struct {
	Question   *string
	Answer     *string
	Difficulty *int
	CategoryID *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p QuestionPatch) IsEmpty() bool {
	return p.Question == nil && p.Answer == nil && p.Difficulty == nil && p.CategoryID == nil
}

// CategoryExists reports whether id is present in categories.
func CategoryExists(categories []Category, id int64) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
