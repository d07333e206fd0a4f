package repository

import (
	"context"
	"database/sql"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetAllQuestions returns every question ordered by id
func (r *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]domain.Question, error) {
	var questions []models.Question
	query := "SELECT id, question, answer, category, difficulty FROM questions ORDER BY id"
	if err := r.db.SelectContext(ctx, &questions, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Question{}, nil
		}
		return nil, err
	}
	return convertToDomainQuestions(questions), nil
}

// GetQuestionsByCategory returns the questions in one category ordered by id
func (r *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	var questions []models.Question
	query := "SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id"
	if err := r.db.SelectContext(ctx, &questions, query, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Question{}, nil
		}
		return nil, err
	}
	return convertToDomainQuestions(questions), nil
}

// SearchQuestions returns questions containing the term, matched
// case-insensitively. Wildcards in the term are passed through as the
// callers expect plain substring semantics for ordinary input.
func (r *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	var questions []models.Question
	query := "SELECT id, question, answer, category, difficulty FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id"
	if err := r.db.SelectContext(ctx, &questions, query, term); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Question{}, nil
		}
		return nil, err
	}
	return convertToDomainQuestions(questions), nil
}

// CountQuestions returns the total number of questions
func (r *QuestionDatabaseAdapter) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	query := "SELECT COUNT(*) FROM questions"
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

// SaveQuestion persists a new question and fills in the assigned id
func (r *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	model := convertToModelQuestion(question)
	query := "INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id"
	if err := r.db.GetContext(ctx, &model.ID, query, model.Question, model.Answer, model.Category, model.Difficulty); err != nil {
		return err
	}
	question.ID = model.ID
	return nil
}

// DeleteQuestion removes a question by id
func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	query := "DELETE FROM questions WHERE id = $1"
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// Helper functions for converting between domain and model types
func convertToDomainQuestion(question *models.Question) *domain.Question {
	if question == nil {
		return nil
	}
	return &domain.Question{
		ID:         question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
}

func convertToDomainQuestions(questions []models.Question) []domain.Question {
	domainQuestions := make([]domain.Question, len(questions))
	for i := range questions {
		domainQuestions[i] = *convertToDomainQuestion(&questions[i])
	}
	return domainQuestions
}

func convertToModelQuestion(question *domain.Question) *models.Question {
	if question == nil {
		return nil
	}
	return &models.Question{
		ID:         question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
}
