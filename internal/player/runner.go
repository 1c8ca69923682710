// Package player drives a play-through of one quiz, one question at a time.
// It mirrors the web runner: answering is open until the answer is submitted
// and graded, then the question locks until the player moves on.
package player

import (
	"context"
	"errors"
	"fmt"

	"quizapi/internal/client"
	"quizapi/internal/grading"
	"quizapi/internal/models"
)

type State string

const (
	StateLoading   State = "loading"
	StateAnswering State = "answering"
	StateLocked    State = "locked"
	StateFinished  State = "finished"
)

var (
	// ErrEmptyQuiz is returned when the fetched quiz has no questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrLocked is returned when a selection is changed after submitting.
	ErrLocked = errors.New("answer already submitted")
	// ErrNoSelection is returned by Submit with no option chosen.
	ErrNoSelection = errors.New("no option selected")
	// ErrNotLocked is returned by Next before the answer is submitted.
	ErrNotLocked = errors.New("answer not submitted yet")
	// ErrInvalidOption is returned for option numbers outside 1..4.
	ErrInvalidOption = errors.New("invalid option number")
)

// QuizAPI is the slice of the HTTP client the runner needs.
type QuizAPI interface {
	GetQuiz(ctx context.Context, id string) (*client.Quiz, error)
	RandomQuiz(ctx context.Context, excludeID string) (*client.Quiz, error)
	SubmitResult(ctx context.Context, playerName string, score int, answers []models.UserAnswer) error
}

type Runner struct {
	api        QuizAPI
	playerName string

	state       State
	quiz        *client.Quiz
	index       int
	selected    []int
	score       int
	answers     []models.UserAnswer
	showCorrect bool
}

// New returns a runner for one play-through. The player name is held for
// this run only and never persisted.
func New(api QuizAPI, playerName string) *Runner {
	if playerName == "" {
		playerName = "Guest"
	}
	return &Runner{api: api, playerName: playerName, state: StateLoading}
}

// Start fetches the quiz, by id when given, otherwise a random one.
func (r *Runner) Start(ctx context.Context, quizID string) error {
	if r.state != StateLoading {
		return fmt.Errorf("cannot start in state %q", r.state)
	}
	var (
		quiz *client.Quiz
		err  error
	)
	if quizID != "" {
		quiz, err = r.api.GetQuiz(ctx, quizID)
	} else {
		quiz, err = r.api.RandomQuiz(ctx, "")
	}
	if err != nil {
		return err
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return ErrEmptyQuiz
	}
	r.quiz = quiz
	r.state = StateAnswering
	return nil
}

func (r *Runner) State() State       { return r.state }
func (r *Runner) PlayerName() string { return r.playerName }
func (r *Runner) Score() int         { return r.score }
func (r *Runner) Index() int         { return r.index }

func (r *Runner) Total() int {
	if r.quiz == nil {
		return 0
	}
	return len(r.quiz.Questions)
}

// Question returns the current question.
func (r *Runner) Question() client.Question {
	if r.quiz == nil {
		return client.Question{}
	}
	return r.quiz.Questions[r.index]
}

// Selected returns the player's current 1-indexed selections.
func (r *Runner) Selected() []int {
	out := make([]int, len(r.selected))
	copy(out, r.selected)
	return out
}

// MultipleChoice reports whether the current question takes several answers.
func (r *Runner) MultipleChoice() bool {
	return grading.IsMultipleChoice(r.Question().CorrectAnswer)
}

// Toggle flips option (1-indexed). Multi-answer questions accumulate
// selections; single-answer questions replace the previous one.
func (r *Runner) Toggle(option int) error {
	if r.state != StateAnswering {
		return ErrLocked
	}
	if option < 1 || option > len(r.Question().Options) {
		return ErrInvalidOption
	}
	if !r.MultipleChoice() {
		r.selected = []int{option}
		return nil
	}
	for i, n := range r.selected {
		if n == option {
			r.selected = append(r.selected[:i], r.selected[i+1:]...)
			return nil
		}
	}
	r.selected = append(r.selected, option)
	return nil
}

// Submit grades the current selection, records the answer, and locks the
// question. It reports whether the answer was correct.
func (r *Runner) Submit() (bool, error) {
	if r.state != StateAnswering {
		return false, ErrLocked
	}
	if len(r.selected) == 0 {
		return false, ErrNoSelection
	}
	q := r.Question()
	isCorrect := grading.Grade(r.selected, q.CorrectAnswer)
	r.answers = append(r.answers, grading.Review(models.Question{
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
	}, r.Selected(), isCorrect))
	if isCorrect {
		r.score++
		r.showCorrect = false
	} else {
		r.showCorrect = true
	}
	r.state = StateLocked
	return isCorrect, nil
}

// CanReveal reports whether a reveal is on offer: only after an incorrect
// answer, and only once.
func (r *Runner) CanReveal() bool {
	return r.state == StateLocked && r.showCorrect
}

// RevealCorrect returns the 1-indexed correct positions without changing the
// score. Nil when no reveal is on offer.
func (r *Runner) RevealCorrect() []int {
	if !r.CanReveal() {
		return nil
	}
	r.showCorrect = false
	positions := make([]int, 0, len(r.Question().CorrectAnswer))
	for _, idx := range r.Question().CorrectAnswer {
		positions = append(positions, idx+1)
	}
	return positions
}

// Next advances to the next question, or, on the last one, submits the
// accumulated result and finishes. The runner finishes even if the submit
// fails; the error is returned for the caller to surface.
func (r *Runner) Next(ctx context.Context) error {
	if r.state != StateLocked {
		return ErrNotLocked
	}
	if r.index == len(r.quiz.Questions)-1 {
		r.state = StateFinished
		return r.api.SubmitResult(ctx, r.playerName, r.score, r.answers)
	}
	r.index++
	r.selected = nil
	r.showCorrect = false
	r.state = StateAnswering
	return nil
}

// Answers returns the answer log recorded so far.
func (r *Runner) Answers() []models.UserAnswer {
	out := make([]models.UserAnswer, len(r.answers))
	copy(out, r.answers)
	return out
}
