package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	deleteConfirmation = "Question is deleted successfully"
	createConfirmation = "Question is created successfully"
)

// TriviaService defines the core business operations for trivia
// questions and categories
type TriviaService interface {
	// GetAllCategories returns the id-to-type mapping of every category
	GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error)

	// GetQuestions returns one page of all questions with the total
	// count and the category mapping
	GetQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)

	// DeleteQuestion removes a question by id
	DeleteQuestion(ctx context.Context, id int64) (*dto.MessageResponse, error)

	// CreateQuestion persists a validated new question
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.MessageResponse, error)

	// SearchQuestions returns the page of questions matching a
	// case-insensitive substring
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)

	// GetQuestionsByCategory returns one page of a single category's questions
	GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)

	// NextQuizQuestion picks a random question not yet served in this
	// quiz round; the response carries a null question once the pool is
	// exhausted
	NextQuizQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizQuestionResponse, error)
}

// triviaService implements TriviaService
type triviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository) TriviaService {
	return &triviaService{
		questions:  questions,
		categories: categories,
	}
}

// GetAllCategories implements TriviaService
func (s *triviaService) GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		logger.Get().Error("Failed to list categories", zap.Error(err))
		return nil, domain.NewInternalError("Failed to list categories", err)
	}

	return &dto.CategoryListResponse{
		Success:    true,
		Categories: formatCategories(categories),
	}, nil
}

// GetQuestions implements TriviaService. The question list and the
// category mapping are independent reads, so they run concurrently.
func (s *triviaService) GetQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	var (
		questions  []domain.Question
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.GetAllQuestions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to list questions", zap.Error(err))
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	pageItems := paginateQuestions(formatQuestions(questions), page)
	if len(pageItems) == 0 {
		return nil, domain.NewNotFoundError("No questions for the requested page")
	}

	return &dto.QuestionListResponse{
		Success:        true,
		TotalQuestions: int64(len(questions)),
		Categories:     formatCategories(categories),
		Questions:      pageItems,
	}, nil
}

// DeleteQuestion implements TriviaService. Every failure of the delete
// path, a missing row included, reports as unprocessable.
func (s *triviaService) DeleteQuestion(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return nil, domain.NewUnprocessableError("Failed to delete question", err)
	}

	return &dto.MessageResponse{
		Success: true,
		Message: deleteConfirmation,
	}, nil
}

// CreateQuestion implements TriviaService
func (s *triviaService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.MessageResponse, error) {
	question := domain.NewQuestion(req.Question, req.Answer, *req.Category, *req.Difficulty)
	if err := s.questions.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewUnprocessableError("Failed to create question", err)
	}

	return &dto.MessageResponse{
		Success: true,
		Message: createConfirmation,
	}, nil
}

// SearchQuestions implements TriviaService. The reported total is the
// store-wide question count; only a term with zero matches is a
// not-found condition, a page beyond the matches is an empty page.
func (s *triviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	matches, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, domain.NewError(domain.ErrNotFound, "Failed to search questions", err)
	}
	if len(matches) == 0 {
		return nil, domain.NewNotFoundError("No questions match the search term")
	}

	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return nil, domain.NewError(domain.ErrNotFound, "Failed to count questions", err)
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      paginateQuestions(formatQuestions(matches), page),
		TotalQuestions: total,
	}, nil
}

// GetQuestionsByCategory implements TriviaService. A category with no
// questions is a valid empty listing, not an error.
func (s *triviaService) GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		logger.Get().Error("Failed to load category", zap.Int64("category_id", categoryID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewUnprocessableError("Unknown category", nil)
	}

	questions, err := s.questions.GetQuestionsByCategory(ctx, categoryID)
	if err != nil {
		logger.Get().Error("Failed to list category questions", zap.Int64("category_id", categoryID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to list category questions", err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       paginateQuestions(formatQuestions(questions), page),
		TotalQuestions:  int64(len(questions)),
		CurrentCategory: category.Type,
	}, nil
}
