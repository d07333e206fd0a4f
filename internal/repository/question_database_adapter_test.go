package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupQuestionTestDB creates a new sqlx.DB instance and sqlmock for
// question repository testing.
func setupQuestionTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func questionRows(questions ...models.Question) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "question", "answer", "category", "difficulty"})
	for _, q := range questions {
		rows.AddRow(q.ID, q.Question, q.Answer, q.Category, q.Difficulty)
	}
	return rows
}

func TestGetAllQuestions(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := []models.Question{
		{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	}

	query := "SELECT id, question, answer, category, difficulty FROM questions ORDER BY id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(questionRows(expected...))

	result, err := repo.GetAllQuestions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, len(expected))
	for i, q := range result {
		assert.Equal(t, expected[i].ID, q.ID)
		assert.Equal(t, expected[i].Question, q.Question)
		assert.Equal(t, expected[i].Answer, q.Answer)
		assert.Equal(t, expected[i].Category, q.Category)
		assert.Equal(t, expected[i].Difficulty, q.Difficulty)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllQuestions_Empty(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := "SELECT id, question, answer, category, difficulty FROM questions ORDER BY id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(questionRows())

	result, err := repo.GetAllQuestions(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionsByCategory(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := []models.Question{
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
	}

	query := "SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(3)).WillReturnRows(questionRows(expected...))

	result, err := repo.GetQuestionsByCategory(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, result, len(expected))
	for _, q := range result {
		assert.Equal(t, int64(3), q.Category)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQuestions(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := []models.Question{
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
	}

	query := "SELECT id, question, answer, category, difficulty FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("autobiography").WillReturnRows(questionRows(expected...))

	result, err := repo.SearchQuestions(context.Background(), "autobiography")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, expected[0].Question, result[0].Question)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQuestions_NoMatches(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := "SELECT id, question, answer, category, difficulty FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("xylophone").WillReturnRows(questionRows())

	result, err := repo.SearchQuestions(context.Background(), "xylophone")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountQuestions(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := "SELECT COUNT(*) FROM questions"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	count, err := repo.CountQuestions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(19), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	question := domain.NewQuestion("Which country hosted the 2018 World Cup?", "Russia", 6, 2)

	query := "INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(question.Question, question.Answer, question.Category, question.Difficulty).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))

	err := repo.SaveQuestion(context.Background(), question)

	assert.NoError(t, err)
	assert.Equal(t, int64(20), question.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion_Error(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	question := domain.NewQuestion("Which country hosted the 2018 World Cup?", "Russia", 6, 2)

	query := "INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(question.Question, question.Answer, question.Category, question.Difficulty).
		WillReturnError(errors.New("constraint violation"))

	err := repo.SaveQuestion(context.Background(), question)

	assert.Error(t, err)
	assert.Zero(t, question.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := "DELETE FROM questions WHERE id = $1"
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteQuestion(context.Background(), 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := "DELETE FROM questions WHERE id = $1"
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteQuestion(context.Background(), 9999)

	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertToDomainQuestion(t *testing.T) {
	model := &models.Question{
		ID:         1,
		Question:   "What is the heaviest organ in the human body?",
		Answer:     "The Liver",
		Category:   1,
		Difficulty: 4,
	}

	domainQuestion := convertToDomainQuestion(model)

	assert.NotNil(t, domainQuestion)
	assert.Equal(t, model.ID, domainQuestion.ID)
	assert.Equal(t, model.Question, domainQuestion.Question)
	assert.Equal(t, model.Answer, domainQuestion.Answer)
	assert.Equal(t, model.Category, domainQuestion.Category)
	assert.Equal(t, model.Difficulty, domainQuestion.Difficulty)

	assert.Nil(t, convertToDomainQuestion(nil))
}

func TestConvertToModelQuestion(t *testing.T) {
	domainQuestion := &domain.Question{
		ID:         1,
		Question:   "What is the heaviest organ in the human body?",
		Answer:     "The Liver",
		Category:   1,
		Difficulty: 4,
	}

	model := convertToModelQuestion(domainQuestion)

	assert.NotNil(t, model)
	assert.Equal(t, domainQuestion.ID, model.ID)
	assert.Equal(t, domainQuestion.Question, model.Question)
	assert.Equal(t, domainQuestion.Answer, model.Answer)
	assert.Equal(t, domainQuestion.Category, model.Category)
	assert.Equal(t, domainQuestion.Difficulty, model.Difficulty)

	assert.Nil(t, convertToModelQuestion(nil))
}
