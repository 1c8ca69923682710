package client_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"quizapi/internal/client"
	"quizapi/internal/handlers"
	"quizapi/internal/memory"
	"quizapi/internal/models"
	"quizapi/internal/router"
	"quizapi/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	questionRepo := memory.NewQuestionRepository()
	quizRepo := memory.NewQuizRepository()
	resultRepo := memory.NewResultRepository()

	r := router.New(
		handlers.NewQuestionHandler(service.NewQuestionService(questionRepo, quizRepo)),
		handlers.NewQuizHandler(service.NewQuizService(quizRepo, questionRepo), service.NewResultService(resultRepo)),
		nil,
	)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestClientQuizLifecycle(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	quiz, err := api.CreateQuiz(ctx, client.QuizInput{Title: "T"})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	question, err := api.CreateQuestion(ctx, client.QuestionInput{
		Question:      "Q1",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: []int{0},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if err := api.AddQuestionToQuiz(ctx, quiz.ID, question.ID); err != nil {
		t.Fatalf("AddQuestionToQuiz: %v", err)
	}

	populated, err := api.GetQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	if len(populated.Questions) != 1 || populated.Questions[0].Question != "Q1" {
		t.Fatalf("expected one populated question, got %+v", populated.Questions)
	}

	rows, err := api.ListQuestions(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	// The owning-quiz filter matches the quizId field, which the membership
	// list does not set.
	if len(rows) != 0 {
		t.Errorf("expected no owned questions, got %d", len(rows))
	}
	rows, err = api.ListQuestions(ctx, "")
	if err != nil {
		t.Fatalf("ListQuestions all: %v", err)
	}
	if len(rows) != 1 || rows[0].Option1 != "a" || len(rows[0].Ans) != 1 {
		t.Fatalf("unexpected flattened rows %+v", rows)
	}

	err = api.SubmitResult(ctx, "Bao", 1, []models.UserAnswer{
		{Question: "Q1", Selected: []int{1}, UserAnswer: "a", Correct: "1", IsCorrect: true},
	})
	if err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
}

func TestClientSurfacesServerMessages(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	if _, err := api.RandomQuiz(ctx, ""); err == nil || !strings.Contains(err.Error(), "No quizzes found") {
		t.Errorf("expected the server message to surface, got %v", err)
	}

	quiz, err := api.CreateQuiz(ctx, client.QuizInput{Title: "only"})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if _, err := api.RandomQuiz(ctx, quiz.ID); err == nil || !strings.Contains(err.Error(), "No other quizzes found") {
		t.Errorf("expected the exclusion message to surface, got %v", err)
	}

	if _, err := api.GetQuestion(ctx, "ffffffffffffffffffffffff"); err == nil || !strings.Contains(err.Error(), "Question not found") {
		t.Errorf("expected not-found message, got %v", err)
	}
}
