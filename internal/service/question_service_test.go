package service

import (
	"context"
	"errors"
	"testing"

	"quizapi/internal/memory"
	"quizapi/internal/models"
)

func newQuestionFixture() (*QuestionService, *QuizService) {
	questionRepo := memory.NewQuestionRepository()
	quizRepo := memory.NewQuizRepository()
	return NewQuestionService(questionRepo, quizRepo), NewQuizService(quizRepo, questionRepo)
}

func TestCreateQuestionRoundTrip(t *testing.T) {
	svc, _ := newQuestionFixture()
	ctx := context.Background()

	created, err := svc.CreateQuestion(ctx, QuestionInput{
		Question:      "Q1",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: []int{0, 2},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected a generated id")
	}

	got, err := svc.GetQuestion(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if got.Question != "Q1" {
		t.Errorf("expected text Q1, got %q", got.Question)
	}
	if len(got.Options) != 4 || got.Options[3] != "d" {
		t.Errorf("options did not round-trip: %v", got.Options)
	}
	if len(got.CorrectAnswer) != 2 || got.CorrectAnswer[0] != 0 || got.CorrectAnswer[1] != 2 {
		t.Errorf("correct answers did not round-trip: %v", got.CorrectAnswer)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	svc, _ := newQuestionFixture()
	ctx := context.Background()

	testCases := []struct {
		name string
		in   QuestionInput
	}{
		{"missing text", QuestionInput{Options: []string{"a", "b", "c", "d"}, CorrectAnswer: []int{0}}},
		{"three options", QuestionInput{Question: "Q", Options: []string{"a", "b", "c"}, CorrectAnswer: []int{0}}},
		{"five options", QuestionInput{Question: "Q", Options: []string{"a", "b", "c", "d", "e"}, CorrectAnswer: []int{0}}},
		{"empty correct set", QuestionInput{Question: "Q", Options: []string{"a", "b", "c", "d"}}},
		{"negative index", QuestionInput{Question: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: []int{-1}}},
		{"index out of range", QuestionInput{Question: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: []int{4}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateQuestion(ctx, tc.in)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestUpdateQuestionStoresGivenFields(t *testing.T) {
	svc, _ := newQuestionFixture()
	ctx := context.Background()

	created, err := svc.CreateQuestion(ctx, QuestionInput{
		Question:      "before",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: []int{1},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	text := "after"
	updated, err := svc.UpdateQuestion(ctx, created.ID.Hex(), QuestionUpdate{Question: &text})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.Question != "after" {
		t.Errorf("expected updated text, got %q", updated.Question)
	}
	if len(updated.Options) != 4 || updated.Options[0] != "a" {
		t.Errorf("untouched options should survive, got %v", updated.Options)
	}
	if len(updated.CorrectAnswer) != 1 || updated.CorrectAnswer[0] != 1 {
		t.Errorf("untouched correct set should survive, got %v", updated.CorrectAnswer)
	}
}

func TestUpdateQuestionNotFound(t *testing.T) {
	svc, _ := newQuestionFixture()

	_, err := svc.UpdateQuestion(context.Background(), "ffffffffffffffffffffffff", QuestionUpdate{})
	if !errors.Is(err, models.ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestDeleteQuestionCascadesReferences(t *testing.T) {
	svc, quizSvc := newQuestionFixture()
	ctx := context.Background()

	question, err := svc.CreateQuestion(ctx, QuestionInput{
		Question:      "Q1",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: []int{0},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	quiz, err := quizSvc.CreateQuiz(ctx, QuizInput{Title: "T", Questions: []string{question.ID.Hex()}})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	if err := svc.DeleteQuestion(ctx, question.ID.Hex()); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	populated, err := quizSvc.GetQuiz(ctx, quiz.ID.Hex())
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	if len(populated.Questions) != 0 {
		t.Errorf("expected the reference to be removed, got %d questions", len(populated.Questions))
	}

	if err := svc.DeleteQuestion(ctx, question.ID.Hex()); !errors.Is(err, models.ErrQuestionNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}
