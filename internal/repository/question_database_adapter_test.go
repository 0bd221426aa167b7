package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"showcase/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a sqlx.DB backed by sqlmock with regexp query matching.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var questionRowColumns = []string{"ID", "QUESTION", "ANSWER", "DIFFICULTY", "CATEGORY_ID"}

func TestListQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(1, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2, 4).
		AddRow(2, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 1, 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, question, answer, difficulty, category_id FROM questions ORDER BY id")).
		WillReturnRows(rows)

	questions, err := repo.ListQuestions(context.Background())

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, domain.Question{ID: 2, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Difficulty: 1, CategoryID: 4}, questions[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestions_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery("FROM questions ORDER BY id").WillReturnRows(sqlmock.NewRows(questionRowColumns))

	questions, err := repo.ListQuestions(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestionsByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).AddRow(5, "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3, 6)
	mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE category_id = :1 ORDER BY id")).
		WithArgs(int64(6)).
		WillReturnRows(rows)

	questions, err := repo.ListQuestionsByCategory(context.Background(), 6)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, int64(6), questions[0].CategoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQuestions_EscapesWildcards(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(question) LIKE :1 ESCAPE")).
		WithArgs(`%100\% title%`).
		WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(3, "The 100% Title", "yes", 1, 1))

	questions, err := repo.SearchQuestions(context.Background(), "100% TITLE")

	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE id = :1")).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(9, "q", "a", 4, 2))

		q, err := repo.GetQuestionByID(context.Background(), 9)

		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 4, q.Difficulty)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE id = :1")).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns))

		q, err := repo.GetQuestionByID(context.Background(), 404)

		assert.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE id = :1")).
			WithArgs(int64(1)).
			WillReturnError(errors.New("ORA-03113: end-of-file on communication channel"))

		q, err := repo.GetQuestionByID(context.Background(), 1)

		assert.Error(t, err)
		assert.Nil(t, q)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT questions_seq.NEXTVAL FROM dual")).
		WillReturnRows(sqlmock.NewRows([]string{"NEXTVAL"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO questions (id, question, answer, difficulty, category_id)")).
		WithArgs(int64(42), "What is the heaviest organ?", "The Liver", 4, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	q := domain.NewQuestion("What is the heaviest organ?", "The Liver", 4, 1)
	err := repo.CreateQuestion(context.Background(), q)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuestion_PartialPatch(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	answer := " Apollo 13 "
	difficulty := 2
	mock.ExpectExec(regexp.QuoteMeta("UPDATE questions SET")).
		WithArgs(nil, "Apollo 13", int64(2), nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateQuestion(context.Background(), 7, domain.QuestionPatch{Answer: &answer, Difficulty: &difficulty})

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuestion_Missing(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE questions SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	text := "x"
	updated, err := repo.UpdateQuestion(context.Background(), 1000, domain.QuestionPatch{Question: &text})

	assert.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = :1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = :1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteQuestion(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteQuestion(context.Background(), 3)
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%title%", likePattern("Title"))
	assert.Equal(t, `%a\_b\\c%`, likePattern(`a_b\c`))
	assert.Equal(t, "%%", likePattern(""))
}
