package player

import (
	"context"
	"errors"
	"testing"

	"quizapi/internal/client"
	"quizapi/internal/models"
)

type fakeAPI struct {
	quiz       *client.Quiz
	err        error
	submitted  int
	lastName   string
	lastScore  int
	lastReview []models.UserAnswer
}

func (f *fakeAPI) GetQuiz(_ context.Context, _ string) (*client.Quiz, error) {
	return f.quiz, f.err
}

func (f *fakeAPI) RandomQuiz(_ context.Context, _ string) (*client.Quiz, error) {
	return f.quiz, f.err
}

func (f *fakeAPI) SubmitResult(_ context.Context, playerName string, score int, answers []models.UserAnswer) error {
	f.submitted++
	f.lastName = playerName
	f.lastScore = score
	f.lastReview = answers
	return nil
}

func twoQuestionQuiz() *client.Quiz {
	return &client.Quiz{
		ID:    "quiz-1",
		Title: "T",
		Questions: []client.Question{
			{
				Question:      "single",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: []int{1},
			},
			{
				Question:      "multi",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: []int{0, 2},
			},
		},
	}
}

func TestStartEmptyQuiz(t *testing.T) {
	api := &fakeAPI{quiz: &client.Quiz{ID: "empty"}}
	runner := New(api, "Bao")

	if err := runner.Start(context.Background(), ""); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
}

func TestDefaultPlayerName(t *testing.T) {
	runner := New(&fakeAPI{quiz: twoQuestionQuiz()}, "")
	if runner.PlayerName() != "Guest" {
		t.Errorf("expected Guest fallback, got %q", runner.PlayerName())
	}
}

func TestFullPlayThrough(t *testing.T) {
	api := &fakeAPI{quiz: twoQuestionQuiz()}
	runner := New(api, "Bao")
	ctx := context.Background()

	if err := runner.Start(ctx, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if runner.State() != StateAnswering {
		t.Fatalf("expected answering after start, got %q", runner.State())
	}

	// Question 1: single answer, correct option is 2 (1-indexed).
	if runner.MultipleChoice() {
		t.Error("first question should be single-answer")
	}
	if _, err := runner.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("submit with no selection should fail, got %v", err)
	}
	if err := runner.Toggle(1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := runner.Toggle(2); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got := runner.Selected(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("single-answer toggle should replace, got %v", got)
	}
	correct, err := runner.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !correct {
		t.Error("expected a correct answer")
	}
	if runner.CanReveal() {
		t.Error("no reveal should be offered after a correct answer")
	}
	if err := runner.Toggle(3); !errors.Is(err, ErrLocked) {
		t.Errorf("toggle while locked should fail, got %v", err)
	}
	if err := runner.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	// Question 2: multi answer, correct set {1,3} (1-indexed).
	if !runner.MultipleChoice() {
		t.Error("second question should be multi-answer")
	}
	if len(runner.Selected()) != 0 {
		t.Error("selection should be cleared on next")
	}
	for _, n := range []int{1, 2} {
		if err := runner.Toggle(n); err != nil {
			t.Fatalf("Toggle(%d): %v", n, err)
		}
	}
	correct, err = runner.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if correct {
		t.Error("expected a wrong answer")
	}
	if !runner.CanReveal() {
		t.Fatal("a reveal should be offered after a wrong answer")
	}
	positions := runner.RevealCorrect()
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 3 {
		t.Errorf("expected 1-indexed positions [1 3], got %v", positions)
	}
	if runner.RevealCorrect() != nil {
		t.Error("reveal should only be offered once")
	}
	if runner.Score() != 1 {
		t.Errorf("reveal must not change the score, got %d", runner.Score())
	}

	if err := runner.Next(ctx); err != nil {
		t.Fatalf("final Next: %v", err)
	}
	if runner.State() != StateFinished {
		t.Fatalf("expected finished, got %q", runner.State())
	}
	if api.submitted != 1 {
		t.Fatalf("expected exactly one submitted result, got %d", api.submitted)
	}
	if api.lastName != "Bao" || api.lastScore != 1 {
		t.Errorf("unexpected result %s/%d", api.lastName, api.lastScore)
	}
	if len(api.lastReview) != 2 {
		t.Fatalf("expected two answer-log entries, got %d", len(api.lastReview))
	}
	if !api.lastReview[0].IsCorrect || api.lastReview[1].IsCorrect {
		t.Errorf("unexpected correctness flags: %+v", api.lastReview)
	}
	if api.lastReview[1].UserAnswer != "a, b" {
		t.Errorf("expected joined option texts \"a, b\", got %q", api.lastReview[1].UserAnswer)
	}
}

func TestToggleValidation(t *testing.T) {
	api := &fakeAPI{quiz: twoQuestionQuiz()}
	runner := New(api, "Bao")
	if err := runner.Start(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := runner.Toggle(0); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for 0, got %v", err)
	}
	if err := runner.Toggle(5); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for 5, got %v", err)
	}
}

func TestNextBeforeSubmit(t *testing.T) {
	api := &fakeAPI{quiz: twoQuestionQuiz()}
	runner := New(api, "Bao")
	ctx := context.Background()
	if err := runner.Start(ctx, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := runner.Next(ctx); !errors.Is(err, ErrNotLocked) {
		t.Errorf("expected ErrNotLocked, got %v", err)
	}
}
