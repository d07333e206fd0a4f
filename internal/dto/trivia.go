package dto

// QuestionResponse is the formatted question representation sent to callers
// @Description Trivia question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryListResponse represents the category listing response
// @Description Mapping from category id to display name
type CategoryListResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionListResponse represents one page of the question listing
// @Description Paginated questions with the total count and all categories
type QuestionListResponse struct {
	Success        bool               `json:"success"`
	TotalQuestions int64              `json:"total_questions"`
	Categories     map[int64]string   `json:"categories"`
	Questions      []QuestionResponse `json:"questions"`
}

// MessageResponse confirms a mutation (create/delete)
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateQuestionRequest represents the payload for creating a question.
// Difficulty and category are pointers so an absent field is
// distinguishable from a zero value.
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty *int   `json:"difficulty" validate:"required,gt=0"`
	Category   *int64 `json:"category" validate:"required,gt=0"`
}

// SearchQuestionsRequest represents a substring search request
// @Description Request body for searching questions
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

// SearchQuestionsResponse represents the matches for a search term.
// TotalQuestions is the store-wide question count, not the match count.
type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// CategoryQuestionsResponse represents the questions of a single category
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// QuizCategory identifies the candidate pool for a quiz round; id 0
// means all categories.
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuizRequest represents one quiz round request. Both fields are
// required at the top level; PreviousQuestions may be empty but must be
// present, which is why absence is detected via nil rather than a
// validator tag.
// @Description Request body for the next quiz question
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizQuestionResponse carries the next unseen question for a quiz
// round; Question is null once the pool is exhausted.
type QuizQuestionResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// ErrorResponse is the fixed error envelope for every failure status
// @Description Error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
