package handlers

import (
	"net/http"

	"quizapi/internal/models"
	"quizapi/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

// questionRow is the flattened shape the list endpoint has always returned:
// discrete option fields plus the correct-answer set under "ans".
type questionRow struct {
	ID       primitive.ObjectID  `json:"id"`
	Question string              `json:"question"`
	Option1  string              `json:"option1"`
	Option2  string              `json:"option2"`
	Option3  string              `json:"option3"`
	Option4  string              `json:"option4"`
	Ans      []int               `json:"ans"`
	QuizID   *primitive.ObjectID `json:"quizId"`
}

// questionDetail is the canonical single-question shape.
type questionDetail struct {
	ID            primitive.ObjectID `json:"id"`
	Question      string             `json:"question"`
	Options       []string           `json:"options"`
	CorrectAnswer []int              `json:"correctAnswer"`
}

func flattenQuestion(q models.Question) questionRow {
	row := questionRow{
		ID:       q.ID,
		Question: q.Question,
		Ans:      q.CorrectAnswer,
		QuizID:   q.QuizID,
	}
	opts := make([]string, models.OptionCount)
	copy(opts, q.Options)
	row.Option1, row.Option2, row.Option3, row.Option4 = opts[0], opts[1], opts[2], opts[3]
	return row
}

func detailQuestion(q *models.Question) questionDetail {
	return questionDetail{
		ID:            q.ID,
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
	}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.Service.ListQuestions(c.Request.Context(), c.Query("quizId"))
	if err != nil {
		respondError(c, err)
		return
	}
	rows := make([]questionRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, flattenQuestion(q))
	}
	respondData(c, http.StatusOK, rows)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.Service.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, detailQuestion(question))
}

type createQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer []int    `json:"correctAnswer"`
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Question, four options, and array of correct answers are required")
		return
	}
	question, err := h.Service.CreateQuestion(c.Request.Context(), service.QuestionInput{
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, detailQuestion(question))
}

type updateQuestionRequest struct {
	Question      *string  `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer []int    `json:"correctAnswer"`
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	question, err := h.Service.UpdateQuestion(c.Request.Context(), c.Param("id"), service.QuestionUpdate{
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, detailQuestion(question))
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Service.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Question deleted successfully")
}
