package router

import (
	"time"

	"quizapi/internal/event"
	"quizapi/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with the full API surface. publisher may be nil,
// in which case lifecycle events are skipped.
func New(questionHandler *handlers.QuestionHandler, quizHandler *handlers.QuizHandler, publisher *event.Publisher) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	questions := r.Group("/api/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.GET("/:id", questionHandler.GetQuestion)
		questions.POST("", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			emit(publisher, c, "question.created", nil)
		})
		questions.PUT("/:id", func(c *gin.Context) {
			questionHandler.UpdateQuestion(c)
			emit(publisher, c, "question.updated", gin.H{"id": c.Param("id")})
		})
		questions.DELETE("/:id", func(c *gin.Context) {
			questionHandler.DeleteQuestion(c)
			emit(publisher, c, "question.deleted", gin.H{"id": c.Param("id")})
		})
	}

	quizzes := r.Group("/api/quizzes")
	{
		quizzes.GET("", quizHandler.ListQuizzes)
		quizzes.GET("/random", quizHandler.RandomQuiz)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.POST("", func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			emit(publisher, c, "quiz.created", nil)
		})
		quizzes.PUT("/:id", func(c *gin.Context) {
			quizHandler.UpdateQuiz(c)
			emit(publisher, c, "quiz.updated", gin.H{"id": c.Param("id")})
		})
		quizzes.DELETE("/:id", func(c *gin.Context) {
			quizHandler.DeleteQuiz(c)
			emit(publisher, c, "quiz.deleted", gin.H{"id": c.Param("id")})
		})
		quizzes.POST("/:id/questions", func(c *gin.Context) {
			quizHandler.AddQuestion(c)
			emit(publisher, c, "quiz.question_added", gin.H{"id": c.Param("id")})
		})
		quizzes.DELETE("/:id/questions/:questionId", func(c *gin.Context) {
			quizHandler.RemoveQuestion(c)
			emit(publisher, c, "quiz.question_removed", gin.H{
				"id":         c.Param("id"),
				"questionId": c.Param("questionId"),
			})
		})
		quizzes.POST("/submit", func(c *gin.Context) {
			quizHandler.SubmitResult(c)
			emit(publisher, c, "result.submitted", nil)
		})
	}

	return r
}

func emit(publisher *event.Publisher, c *gin.Context, eventType string, payload any) {
	if publisher == nil || c.Writer.Status() >= 400 {
		return
	}
	publisher.Publish(eventType, payload)
}
