package handler

import (
	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/middleware"
	"showcase/internal/service"
	"showcase/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles category, question and quiz HTTP requests
type TriviaHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
	quiz       service.QuizService
	validator  *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(categories service.CategoryService, questions service.QuestionService, quiz service.QuizService) *TriviaHandler {
	return &TriviaHandler{
		categories: categories,
		questions:  questions,
		quiz:       quiz,
		validator:  validation.NewValidator(),
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category keyed by id
// @Tags trivia
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.categories.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCategoryQuestions godoc
// @Summary List the questions of a category
// @Tags trivia
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.ListQuestionsByCategory(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions a page at a time
// @Description Ten questions per page, with the category map
// @Tags trivia
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.GetQuestionsPage(c.UserContext(), middleware.ValidatedPage(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags trivia
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *TriviaHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.questions.GetQuestion(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.questions.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuestion godoc
// @Summary Patch a question
// @Description Absent fields are left unchanged
// @Tags trivia
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Changes"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /questions/{id} [patch]
func (h *TriviaHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.questions.UpdateQuestion(c.UserContext(), middleware.ValidatedID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags trivia
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.questions.DeleteQuestion(c.UserContext(), middleware.ValidatedID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.QuestionListResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSearchTerm("searchTerm", req.SearchTerm); len(errs) > 0 {
		return errs
	}
	resp, err := h.questions.SearchQuestions(c.UserContext(), req.SearchTerm)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// FilterQuestions godoc
// @Summary Filter questions by category
// @Tags trivia
// @Produce json
// @Description Category 0 or no category lists every question
// @Param category query int false "Category ID" default(0)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions/filter [get]
func (h *TriviaHandler) FilterQuestions(c *fiber.Ctx) error {
	categoryID, errs := h.validator.ParseCategory(c.Query("category"), domain.AllCategories)
	if len(errs) > 0 {
		return errs
	}
	resp, err := h.questions.FilterQuestions(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Returns a random question not yet served, or null once the category is exhausted. Category id 0 means all categories.
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.QuizCategory.ID < 0 {
		return domain.ValidationErrors{domain.NewInvalidFormatError("quiz_category.id", req.QuizCategory.ID)}
	}
	resp, err := h.quiz.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
