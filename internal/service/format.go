package service

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// questionsPerPage is the fixed page size for every paginated listing.
const questionsPerPage = 10

// paginateQuestions slices one 1-based page out of the formatted
// question list. Pages outside the data, including page numbers below
// one, come back empty; callers decide whether an empty page is an
// error. The result is never nil so it serializes as [].
func paginateQuestions(questions []dto.QuestionResponse, page int) []dto.QuestionResponse {
	if page < 1 {
		return []dto.QuestionResponse{}
	}
	start := (page - 1) * questionsPerPage
	if start >= len(questions) {
		return []dto.QuestionResponse{}
	}
	end := min(start+questionsPerPage, len(questions))
	return questions[start:end]
}

// formatQuestion converts a domain question into its wire representation
func formatQuestion(question *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
}

func formatQuestions(questions []domain.Question) []dto.QuestionResponse {
	formatted := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		formatted[i] = formatQuestion(&questions[i])
	}
	return formatted
}

// formatCategories builds the id-to-type mapping; ids are unique by
// store contract so entries never collide.
func formatCategories(categories []domain.Category) map[int64]string {
	formatted := make(map[int64]string, len(categories))
	for _, category := range categories {
		formatted[category.ID] = category.Type
	}
	return formatted
}
