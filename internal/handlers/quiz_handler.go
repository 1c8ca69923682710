package handlers

import (
	"net/http"

	"quizapi/internal/models"
	"quizapi/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
	Results *service.ResultService
}

func NewQuizHandler(s *service.QuizService, results *service.ResultService) *QuizHandler {
	return &QuizHandler{Service: s, Results: results}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.ListQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, quiz)
}

type createQuizRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Quiz title is required")
		return
	}
	quiz, err := h.Service.CreateQuiz(c.Request.Context(), service.QuizInput{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, quiz)
}

type updateQuizRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Questions   *[]string `json:"questions"`
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req updateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	quiz, err := h.Service.UpdateQuiz(c.Request.Context(), c.Param("id"), service.QuizUpdate{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.Service.DeleteQuiz(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Quiz deleted successfully")
}

type addQuestionRequest struct {
	QuestionID string `json:"questionId"`
}

func (h *QuizHandler) AddQuestion(c *gin.Context) {
	var req addQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QuestionID == "" {
		respondBadRequest(c, "Question ID is required")
		return
	}
	quiz, err := h.Service.AddQuestion(c.Request.Context(), c.Param("id"), req.QuestionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, quiz)
}

func (h *QuizHandler) RemoveQuestion(c *gin.Context) {
	quiz, err := h.Service.RemoveQuestion(c.Request.Context(), c.Param("id"), c.Param("questionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, quiz)
}

func (h *QuizHandler) RandomQuiz(c *gin.Context) {
	quiz, err := h.Service.RandomQuiz(c.Request.Context(), c.Query("quizId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, quiz)
}

type submitResultRequest struct {
	PlayerName  string              `json:"playerName"`
	Score       int                 `json:"score"`
	UserAnswers []models.UserAnswer `json:"userAnswers"`
}

func (h *QuizHandler) SubmitResult(c *gin.Context) {
	var req submitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	result := &models.Result{
		PlayerName:  req.PlayerName,
		Score:       req.Score,
		UserAnswers: req.UserAnswers,
	}
	if err := h.Results.SubmitResult(c.Request.Context(), result); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}
