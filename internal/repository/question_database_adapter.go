package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"showcase/internal/domain"
	"showcase/internal/repository/models"
	"showcase/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = "id, question, answer, difficulty, category_id"

// QuestionDatabaseAdapter implements domain.QuestionRepository on Oracle
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new question repository
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (r *QuestionDatabaseAdapter) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions ORDER BY id"
	return r.selectQuestions(ctx, query)
}

func (r *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions WHERE category_id = :1 ORDER BY id"
	return r.selectQuestions(ctx, query, categoryID)
}

func (r *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	query := "SELECT " + questionColumns + ` FROM questions WHERE LOWER(question) LIKE :1 ESCAPE '\' ORDER BY id`
	return r.selectQuestions(ctx, query, likePattern(term))
}

func (r *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, query string, args ...interface{}) ([]domain.Question, error) {
	var rows []models.Question
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select questions: %w", err)
	}

	questions := make([]domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(rows[i])
	}
	return questions, nil
}

func (r *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	query := "SELECT " + questionColumns + " FROM questions WHERE id = :1"
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	q := toDomainQuestion(row)
	return &q, nil
}

func (r *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, q *domain.Question) error {
	exec := GetExecutor(ctx, r.db)

	var id int64
	if err := exec.GetContext(ctx, &id, "SELECT questions_seq.NEXTVAL FROM dual"); err != nil {
		return fmt.Errorf("failed to allocate question id: %w", err)
	}

	query := `INSERT INTO questions (id, question, answer, difficulty, category_id) VALUES (:1, :2, :3, :4, :5)`
	if _, err := exec.ExecContext(ctx, query, id, q.Question, q.Answer, q.Difficulty, q.CategoryID); err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	q.ID = id
	return nil
}

// UpdateQuestion writes every patched column in one statement; COALESCE keeps the stored
// value for columns the patch leaves nil.
func (r *QuestionDatabaseAdapter) UpdateQuestion(ctx context.Context, id int64, patch domain.QuestionPatch) (bool, error) {
	query := `UPDATE questions SET
		question = COALESCE(:1, question),
		answer = COALESCE(:2, answer),
		difficulty = COALESCE(:3, difficulty),
		category_id = COALESCE(:4, category_id)
		WHERE id = :5`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		util.StringPtrToNullString(patch.Question),
		util.StringPtrToNullString(patch.Answer),
		util.IntPtrToNullInt64(patch.Difficulty),
		util.Int64PtrToNullInt64(patch.CategoryID),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update question %d: %w", id, err)
	}
	return affected(result)
}

func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM questions WHERE id = :1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return affected(result)
}

func toDomainQuestion(m models.Question) domain.Question {
	return domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Difficulty: m.Difficulty,
		CategoryID: m.CategoryID,
	}
}
