package service

import (
	"context"
	"fmt"
	"time"

	"quizapi/internal/models"
)

type QuestionService struct {
	Repo    QuestionRepository
	Quizzes QuizRepository
}

func NewQuestionService(repo QuestionRepository, quizzes QuizRepository) *QuestionService {
	return &QuestionService{Repo: repo, Quizzes: quizzes}
}

// QuestionInput is the create payload.
type QuestionInput struct {
	Question      string
	Options       []string
	CorrectAnswer []int
}

// QuestionUpdate carries the fields present in an update payload; nil fields
// are left untouched.
type QuestionUpdate struct {
	Question      *string
	Options       []string
	CorrectAnswer []int
}

func (s *QuestionService) ListQuestions(ctx context.Context, quizID string) ([]models.Question, error) {
	if quizID == "" {
		return s.Repo.FindAll(ctx)
	}
	return s.Repo.FindByQuiz(ctx, quizID)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, in QuestionInput) (*models.Question, error) {
	if in.Question == "" || len(in.Options) != models.OptionCount || len(in.CorrectAnswer) == 0 {
		return nil, models.NewValidationError("Question, four options, and array of correct answers are required")
	}
	if err := validateAnswerIndexes(in.CorrectAnswer, len(in.Options)); err != nil {
		return nil, err
	}
	question := &models.Question{
		Question:      in.Question,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
	}
	if err := s.Repo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, in QuestionUpdate) (*models.Question, error) {
	question, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Question != nil {
		question.Question = *in.Question
	}
	if in.Options != nil {
		if len(in.Options) != models.OptionCount {
			return nil, models.NewValidationError("Question, four options, and array of correct answers are required")
		}
		question.Options = in.Options
	}
	if in.CorrectAnswer != nil {
		if err := validateAnswerIndexes(in.CorrectAnswer, len(question.Options)); err != nil {
			return nil, err
		}
		question.CorrectAnswer = in.CorrectAnswer
	}
	if err := s.Repo.Replace(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion removes the record and cascade-removes its id from every
// quiz reference list, so no quiz is left pointing at a missing question.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	question, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Quizzes.PullQuestion(ctx, question.ID, time.Now())
}

func validateAnswerIndexes(answers []int, optionCount int) error {
	for _, ans := range answers {
		if ans < 0 || ans >= optionCount {
			return models.NewValidationError(fmt.Sprintf(
				"All correct answer indexes must be valid integers between 0 and %d", optionCount-1))
		}
	}
	return nil
}
