package handlers

import (
	"errors"
	"net/http"

	"quizapi/internal/models"

	"github.com/gin-gonic/gin"
)

// Every response carries the envelope the API has always used:
// {data?, success: 1|0, message?, error?}.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data, "success": 1})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message, "success": 1})
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": 1})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": 0, "message": message})
}

func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		respondBadRequest(c, verr.Message)
		return
	}
	if msg, ok := notFoundMessage(err); ok {
		c.JSON(http.StatusNotFound, gin.H{"success": 0, "message": msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "message": err.Error()})
}

func notFoundMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, models.ErrQuestionNotFound):
		return "Question not found", true
	case errors.Is(err, models.ErrQuizNotFound):
		return "Quiz not found", true
	case errors.Is(err, models.ErrNoQuizzes):
		return "No quizzes found", true
	case errors.Is(err, models.ErrNoOtherQuizzes):
		return "No other quizzes found", true
	}
	return "", false
}
