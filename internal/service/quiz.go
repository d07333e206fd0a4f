package service

import (
	"context"
	"math/rand"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// NextQuizQuestion implements TriviaService. The candidate pool is
// either every question or one category's questions; the pick excludes
// everything already served this round.
func (s *triviaService) NextQuizQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizQuestionResponse, error) {
	var (
		pool []domain.Question
		err  error
	)
	if req.QuizCategory.ID == 0 {
		pool, err = s.questions.GetAllQuestions(ctx)
	} else {
		pool, err = s.questions.GetQuestionsByCategory(ctx, req.QuizCategory.ID)
	}
	if err != nil {
		logger.Get().Error("Failed to load quiz pool",
			zap.Int64("category_id", req.QuizCategory.ID),
			zap.Error(err),
		)
		return nil, domain.NewInternalError("Failed to load quiz pool", err)
	}

	picked := pickUnseenQuestion(pool, req.PreviousQuestions)
	if picked == nil {
		// Pool exhausted: a defined end-of-quiz outcome, not an error.
		return &dto.QuizQuestionResponse{Success: true, Question: nil}, nil
	}

	formatted := formatQuestion(picked)
	return &dto.QuizQuestionResponse{
		Success:  true,
		Question: &formatted,
	}, nil
}

// pickUnseenQuestion draws uniformly from the pool members whose ids
// are not in served. Returns nil when no unseen candidate remains.
func pickUnseenQuestion(pool []domain.Question, served []int64) *domain.Question {
	seen := make(map[int64]struct{}, len(served))
	for _, id := range served {
		seen[id] = struct{}{}
	}

	unseen := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return nil
	}

	picked := unseen[rand.Intn(len(unseen))]
	return &picked
}
