package service

import (
	"context"

	"showcase/internal/domain"
	"showcase/internal/dto"
)

// QuizService serves quiz questions one at a time
type QuizService interface {
	// NextQuestion returns a question not in req.PreviousQuestions, or a response with a
	// nil question once the category is exhausted.
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	selector   *domain.QuizSelector
}

// NewQuizService creates a quiz service drawing with selector
func NewQuizService(repo domain.QuestionRepository, categories CategoryService, selector *domain.QuizSelector) QuizService {
	return &quizService{repo: repo, categories: categories, selector: selector}
}

func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	categoryID := req.QuizCategory.ID

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID != domain.AllCategories && !domain.CategoryExists(categories, categoryID) {
		return nil, domain.NewInvalidCategoryError(categoryID)
	}

	var pool []domain.Question
	if categoryID == domain.AllCategories {
		pool, err = s.repo.ListQuestions(ctx)
	} else {
		pool, err = s.repo.ListQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz questions", err)
	}

	next, err := s.selector.NextQuestion(pool, categories, categoryID, req.PreviousQuestions)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return &dto.QuizResponse{}, nil
	}
	q := dto.ToQuestionResponse(*next)
	return &dto.QuizResponse{Question: &q}, nil
}
