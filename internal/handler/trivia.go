package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles the trivia HTTP surface
type TriviaHandler struct {
	service  service.TriviaService
	validate *validator.Validate
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service:  service,
		validate: validator.New(),
	}
}

// GetAllCategories godoc
// @Summary List all categories
// @Description Returns the mapping of category ids to display names
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetAllCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetAllCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of questions (10 per page) with the total count and all categories
// @Tags questions
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	resp, err := h.service.GetQuestions(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes the question with the given id
// @Tags questions
// @Produce json
// @Param id path int true "Question id"
// @Success 200 {object} dto.MessageResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewUnprocessableError("Invalid question id", err)
	}

	resp, err := h.service.DeleteQuestion(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Creates a new question; all four fields are required and non-empty
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question to create"
// @Success 201 {object} dto.MessageResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("Invalid question payload", err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return domain.NewUnprocessableError("Incomplete question payload", err)
	}

	resp, err := h.service.CreateQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Returns the questions containing the search term, case-insensitively
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("Invalid search payload", err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return domain.NewUnprocessableError("Search term must not be empty", err)
	}
	page := c.QueryInt("page", 1)

	resp, err := h.service.SearchQuestions(c.Context(), req.SearchTerm, page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List a category's questions
// @Description Returns one page of the questions belonging to the category
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewUnprocessableError("Invalid category id", err)
	}
	page := c.QueryInt("page", 1)

	resp, err := h.service.GetQuestionsByCategory(c.Context(), int64(id), page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// NextQuizQuestion godoc
// @Summary Next quiz question
// @Description Returns one random question not yet served this round; question is null once the pool is exhausted
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Previous question ids and quiz category (category id 0 plays all)"
// @Success 200 {object} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) NextQuizQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("Invalid quiz payload")
	}
	// Both fields must be present; an empty previous_questions array is
	// valid, a missing one is not.
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		return domain.NewBadRequestError("previous_questions and quiz_category are required")
	}

	resp, err := h.service.NextQuizQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
