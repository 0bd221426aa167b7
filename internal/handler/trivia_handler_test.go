package handler_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriviaHandler_GetCategories(t *testing.T) {
	s := newTestServices()
	s.categories.GetCategoriesFunc = func(ctx context.Context) (*dto.CategoriesResponse, error) {
		return &dto.CategoriesResponse{Categories: map[int64]string{1: "Science", 2: "Art"}, Count: 2}, nil
	}
	app := newTestApp(s)

	resp := doRequest(t, app, httptest.NewRequest("GET", "/api/categories", nil))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, map[string]interface{}{"1": "Science", "2": "Art"}, body["categories"])
	assert.Equal(t, float64(2), body["count"])
}

func TestTriviaHandler_GetQuestions(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		serviceErr     error
		expectedPage   int
		expectedStatus int
	}{
		{name: "default page", target: "/api/questions", expectedPage: 1, expectedStatus: fiber.StatusOK},
		{name: "explicit page", target: "/api/questions?page=2", expectedPage: 2, expectedStatus: fiber.StatusOK},
		{name: "page out of range", target: "/api/questions?page=1000", expectedPage: 1000,
			serviceErr: domain.NewPageOutOfRangeError(1000, "Page is out of bound"), expectedStatus: fiber.StatusUnprocessableEntity},
		{name: "non-integer page", target: "/api/questions?page=abc", expectedStatus: fiber.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServices()
			called := false
			s.questions.GetQuestionsPageFunc = func(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
				called = true
				assert.Equal(t, tc.expectedPage, page)
				if tc.serviceErr != nil {
					return nil, tc.serviceErr
				}
				return &dto.QuestionPageResponse{Questions: []dto.QuestionResponse{}, Page: page, Categories: map[int64]string{}}, nil
			}
			app := newTestApp(s)

			resp := doRequest(t, app, httptest.NewRequest("GET", tc.target, nil))

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			assert.Equal(t, tc.expectedPage != 0, called)
		})
	}
}

func TestTriviaHandler_GetCategoryQuestions(t *testing.T) {
	s := newTestServices()
	s.questions.ListQuestionsByCategoryFunc = func(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
		if categoryID == 1000 {
			return nil, domain.NewInvalidCategoryError(categoryID)
		}
		return &dto.QuestionListResponse{Questions: []dto.QuestionResponse{{ID: 1, Category: categoryID}}, Count: 1, CurrentCategory: &categoryID}, nil
	}
	app := newTestApp(s)

	resp := doRequest(t, app, httptest.NewRequest("GET", "/api/categories/2/questions", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.QuestionListResponse
	decodeBody(t, resp, &list)
	require.NotNil(t, list.CurrentCategory)
	assert.Equal(t, int64(2), *list.CurrentCategory)

	resp = doRequest(t, app, httptest.NewRequest("GET", "/api/categories/1000/questions", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var errBody middleware.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "INVALID_CATEGORY", errBody.Code)

	resp = doRequest(t, app, httptest.NewRequest("GET", "/api/categories/abc/questions", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTriviaHandler_CreateQuestion(t *testing.T) {
	s := newTestServices()
	s.questions.CreateQuestionFunc = func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
		if req.Difficulty > 4 {
			return nil, domain.ValidationErrors{domain.NewOutOfRangeError("difficulty", req.Difficulty, 1, 4)}
		}
		return &dto.QuestionResponse{ID: 24, Question: req.Question, Answer: req.Answer, Difficulty: req.Difficulty, Category: req.Category}, nil
	}
	app := newTestApp(s)

	resp := doRequest(t, app, newJSONRequest(t, "POST", "/api/questions", dto.CreateQuestionRequest{
		Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Difficulty: 1, Category: 2,
	}))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.QuestionResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, int64(24), created.ID)

	resp = doRequest(t, app, newJSONRequest(t, "POST", "/api/questions", dto.CreateQuestionRequest{
		Question: "q", Answer: "a", Difficulty: 9, Category: 2,
	}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = doRequest(t, app, newRawRequest("POST", "/api/questions", `{"question": `))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var malformed middleware.ErrorResponse
	decodeBody(t, resp, &malformed)
	assert.Equal(t, string(domain.CodeInvalidInput), malformed.Code)
	assert.Equal(t, "Request body is not valid JSON", malformed.Message)
}

func TestTriviaHandler_QuestionByID(t *testing.T) {
	s := newTestServices()
	s.questions.GetQuestionFunc = func(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	s.questions.UpdateQuestionFunc = func(ctx context.Context, id int64, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
		require.NotNil(t, req.Difficulty)
		assert.Nil(t, req.Answer)
		return &dto.QuestionResponse{ID: id, Difficulty: *req.Difficulty}, nil
	}
	var deleted int64
	s.questions.DeleteQuestionFunc = func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}
	app := newTestApp(s)

	resp := doRequest(t, app, httptest.NewRequest("GET", "/api/questions/404", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, newRawRequest("PATCH", "/api/questions/5", `{"difficulty": 3}`))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated dto.QuestionResponse
	decodeBody(t, resp, &updated)
	assert.Equal(t, 3, updated.Difficulty)

	resp = doRequest(t, app, httptest.NewRequest("DELETE", "/api/questions/7", nil))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(7), deleted)

	resp = doRequest(t, app, httptest.NewRequest("DELETE", "/api/questions/-1", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTriviaHandler_SearchAndFilter(t *testing.T) {
	s := newTestServices()
	s.questions.SearchQuestionsFunc = func(ctx context.Context, term string) (*dto.QuestionListResponse, error) {
		assert.Equal(t, "title", term)
		return &dto.QuestionListResponse{Questions: []dto.QuestionResponse{{ID: 5}, {ID: 6}}, Count: 2}, nil
	}
	var filtered int64
	s.questions.FilterQuestionsFunc = func(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
		filtered = categoryID
		return &dto.QuestionListResponse{Questions: []dto.QuestionResponse{}, CurrentCategory: &categoryID}, nil
	}
	app := newTestApp(s)

	resp := doRequest(t, app, newJSONRequest(t, "POST", "/api/questions/search", dto.SearchQuestionsRequest{SearchTerm: "title"}))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found dto.QuestionListResponse
	decodeBody(t, resp, &found)
	assert.Equal(t, 2, found.Count)

	resp = doRequest(t, app, httptest.NewRequest("GET", "/api/questions/filter", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.AllCategories, filtered)

	resp = doRequest(t, app, httptest.NewRequest("GET", "/api/questions/filter?category=3", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), filtered)

	resp = doRequest(t, app, httptest.NewRequest("GET", "/api/questions/filter?category=x", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	s.questions.FilterQuestionsFunc = func(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
		return nil, domain.NewInvalidCategoryError(categoryID)
	}
	resp = doRequest(t, app, httptest.NewRequest("GET", "/api/questions/filter?category=99", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestTriviaHandler_PlayQuiz(t *testing.T) {
	s := newTestServices()
	s.quiz.NextQuestionFunc = func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
		switch req.QuizCategory.ID {
		case 1:
			return &dto.QuizResponse{Question: &dto.QuestionResponse{ID: 9, Category: 1}}, nil
		case 2:
			return &dto.QuizResponse{}, nil
		default:
			return nil, domain.NewInvalidCategoryError(req.QuizCategory.ID)
		}
	}
	app := newTestApp(s)

	resp := doRequest(t, app, newRawRequest("POST", "/api/quizzes", `{"quiz_category": {"id": 1, "type": "Science"}, "previous_questions": [3, 4]}`))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var next dto.QuizResponse
	decodeBody(t, resp, &next)
	require.NotNil(t, next.Question)
	assert.Equal(t, int64(9), next.Question.ID)

	resp = doRequest(t, app, newRawRequest("POST", "/api/quizzes", `{"quiz_category": {"id": 2}, "previous_questions": [10]}`))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var exhausted map[string]interface{}
	decodeBody(t, resp, &exhausted)
	assert.Contains(t, exhausted, "question")
	assert.Nil(t, exhausted["question"])

	resp = doRequest(t, app, newRawRequest("POST", "/api/quizzes", `{"quiz_category": {"id": 99}}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
