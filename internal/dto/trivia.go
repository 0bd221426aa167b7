package dto

import (
	"strings"

	"showcase/internal/domain"
)

// QuestionResponse represents a trivia question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// CategoriesResponse maps category ids to their type
// @Description All categories keyed by id
type CategoriesResponse struct {
	Categories map[int64]string `json:"categories"`
	Count      int              `json:"count"`
}

// QuestionPageResponse is one page of questions
// @Description Paginated questions
type QuestionPageResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Page            int                `json:"page"`
	Categories      map[int64]string   `json:"categories"`
	CurrentCategory *int64             `json:"current_category"`
}

// QuestionListResponse is an unpaginated list of questions
type QuestionListResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	Count           int                `json:"count"`
	CurrentCategory *int64             `json:"current_category,omitempty"`
}

// CreateQuestionRequest is the request body for creating a question
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// UpdateQuestionRequest is the request body for patching a question; absent fields are kept
type UpdateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *int64  `json:"category"`
}

// Patch converts the request into a validated domain patch
func (r UpdateQuestionRequest) Patch() (domain.QuestionPatch, error) {
	var errs domain.ValidationErrors
	if r.Question != nil && strings.TrimSpace(*r.Question) == "" {
		errs = append(errs, domain.NewMissingFieldError("question"))
	}
	if r.Answer != nil && strings.TrimSpace(*r.Answer) == "" {
		errs = append(errs, domain.NewMissingFieldError("answer"))
	}
	if r.Difficulty != nil && (*r.Difficulty < domain.MinDifficulty || *r.Difficulty > domain.MaxDifficulty) {
		errs = append(errs, domain.NewOutOfRangeError("difficulty", *r.Difficulty, domain.MinDifficulty, domain.MaxDifficulty))
	}
	if r.Category != nil && *r.Category <= 0 {
		errs = append(errs, domain.NewMissingFieldError("category"))
	}
	if len(errs) > 0 {
		return domain.QuestionPatch{}, errs
	}
	return domain.QuestionPatch{
		Question:   trimPtr(r.Question),
		Answer:     trimPtr(r.Answer),
		Difficulty: r.Difficulty,
		CategoryID: r.Category,
	}, nil
}

// SearchQuestionsRequest is the body of a question search
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory identifies the category a quiz is played in; id 0 means all categories
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type,omitempty"`
}

// QuizRequest asks for the next quiz question
// @Description Request body for the next quiz question
type QuizRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []int64      `json:"previous_questions"`
}

// QuizResponse carries the next question, or null once the quiz is exhausted
type QuizResponse struct {
	Question *QuestionResponse `json:"question"`
}

// ToQuestionResponse converts a domain question
func ToQuestionResponse(q domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}

// ToQuestionResponses converts a list of domain questions; the result is never nil
func ToQuestionResponses(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = ToQuestionResponse(q)
	}
	return out
}

// CategoryMap keys category types by id
func CategoryMap(categories []domain.Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
