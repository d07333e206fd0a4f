package domain

import "context"

// Question represents a single trivia question
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// Category represents a trivia category. Categories are read-only from
// this API; they are managed through migrations.
type Category struct {
	ID   int64
	Type string
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// GetAllQuestions returns every question ordered by id
	GetAllQuestions(ctx context.Context) ([]Question, error)

	// GetQuestionsByCategory returns the questions in one category ordered by id
	GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)

	// SearchQuestions returns questions whose text contains the term,
	// case-insensitively, ordered by id
	SearchQuestions(ctx context.Context, term string) ([]Question, error)

	// CountQuestions returns the total number of questions
	CountQuestions(ctx context.Context) (int64, error)

	// SaveQuestion persists a new question and fills in its assigned id
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes a question by id; reports ErrQuestionNotFound
	// when no row matches
	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by id
	GetAllCategories(ctx context.Context) ([]Category, error)

	// GetCategoryByID retrieves a category by id; returns (nil, nil) when
	// the category does not exist
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
}
