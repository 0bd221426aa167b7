package service

import (
	"context"

	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/logger"

	"go.uber.org/zap"
)

// QuestionService defines the trivia question operations
type QuestionService interface {
	GetQuestionsPage(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	// ListQuestionsByCategory rejects unknown categories with INVALID_CATEGORY
	ListQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error)
	// FilterQuestions returns the questions of a category, or all of them for AllCategories
	FilterQuestions(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id int64, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

type questionService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	publisher  domain.EventPublisher
	pageSize   int
}

// NewQuestionService creates a new question service
func NewQuestionService(repo domain.QuestionRepository, categories CategoryService, publisher domain.EventPublisher, pageSize int) QuestionService {
	return &questionService{
		repo:       repo,
		categories: categories,
		publisher:  publisher,
		pageSize:   pageSize,
	}
}

func (s *questionService) GetQuestionsPage(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	current, err := domain.Paginate(questions, page, s.pageSize)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionPageResponse{
		Questions:      dto.ToQuestionResponses(current.Items),
		TotalQuestions: current.Total,
		Page:           current.Number,
		Categories:     dto.CategoryMap(categories),
	}, nil
}

func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if !domain.CategoryExists(categories, categoryID) {
		return nil, domain.NewInvalidCategoryError(categoryID)
	}
	questions, err := s.repo.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions by category", err)
	}
	return &dto.QuestionListResponse{
		Questions:       dto.ToQuestionResponses(questions),
		Count:           len(questions),
		CurrentCategory: &categoryID,
	}, nil
}

func (s *questionService) FilterQuestions(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
	if categoryID != domain.AllCategories {
		return s.ListQuestionsByCategory(ctx, categoryID)
	}
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}
	return &dto.QuestionListResponse{
		Questions: dto.ToQuestionResponses(questions),
		Count:     len(questions),
	}, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error) {
	questions, err := s.repo.SearchQuestions(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}
	return &dto.QuestionListResponse{
		Questions: dto.ToQuestionResponses(questions),
		Count:     len(questions),
	}, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	q, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	resp := dto.ToQuestionResponse(*q)
	return &resp, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	q := domain.NewQuestion(req.Question, req.Answer, req.Difficulty, req.Category)
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, q.CategoryID); err != nil {
		return nil, err
	}

	if err := s.repo.CreateQuestion(ctx, q); err != nil {
		return nil, domain.NewInternalError("Failed to create question", err)
	}

	logger.Get().Info("Question created", zap.Int64("question_id", q.ID), zap.Int64("category_id", q.CategoryID))
	publishEvent(ctx, s.publisher, domain.EventQuestionCreated, dto.ToQuestionResponse(*q))

	resp := dto.ToQuestionResponse(*q)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id int64, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	patch, err := req.Patch()
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetQuestion(ctx, id)
	}
	if patch.CategoryID != nil {
		if err := s.ensureCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateQuestion(ctx, id, patch)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update question", err)
	}
	if !updated {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	resp, err := s.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, domain.EventQuestionUpdated, resp)
	return resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to delete question", err)
	}
	if !deleted {
		return domain.NewQuestionNotFoundError(id)
	}
	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	publishEvent(ctx, s.publisher, domain.EventQuestionDeleted, map[string]int64{"id": id})
	return nil
}

func (s *questionService) ensureCategory(ctx context.Context, categoryID int64) error {
	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewInvalidCategoryError(categoryID)
	}
	return nil
}
