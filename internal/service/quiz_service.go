package service

import (
	"context"
	"time"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizService struct {
	Repo      QuizRepository
	Questions QuestionRepository
}

func NewQuizService(repo QuizRepository, questions QuestionRepository) *QuizService {
	return &QuizService{Repo: repo, Questions: questions}
}

// QuizInput is the create payload. Questions holds hex question ids.
type QuizInput struct {
	Title       string
	Description string
	Questions   []string
}

// QuizUpdate carries the fields present in an update payload; nil fields are
// left untouched.
type QuizUpdate struct {
	Title       *string
	Description *string
	Questions   *[]string
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.PopulatedQuiz, error) {
	quizzes, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	populated := make([]models.PopulatedQuiz, 0, len(quizzes))
	for i := range quizzes {
		p, err := s.populate(ctx, &quizzes[i])
		if err != nil {
			return nil, err
		}
		populated = append(populated, *p)
	}
	return populated, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.PopulatedQuiz, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, quiz)
}

func (s *QuizService) CreateQuiz(ctx context.Context, in QuizInput) (*models.Quiz, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Quiz title is required")
	}
	refs, err := parseQuestionRefs(in.Questions)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	quiz := &models.Quiz{
		Title:       in.Title,
		Description: in.Description,
		Questions:   refs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id string, in QuizUpdate) (*models.Quiz, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Quiz title is required")
		}
		quiz.Title = *in.Title
	}
	if in.Description != nil {
		quiz.Description = *in.Description
	}
	if in.Questions != nil {
		refs, err := parseQuestionRefs(*in.Questions)
		if err != nil {
			return nil, err
		}
		quiz.Questions = refs
	}
	quiz.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// AddQuestion appends a question reference unless already present. Both the
// question and the quiz must exist.
func (s *QuizService) AddQuestion(ctx context.Context, quizID, questionID string) (*models.Quiz, error) {
	if questionID == "" {
		return nil, models.NewValidationError("Question ID is required")
	}
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.Repo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.HasQuestion(question.ID) {
		quiz.Questions = append(quiz.Questions, question.ID)
		quiz.UpdatedAt = time.Now()
		if err := s.Repo.Replace(ctx, quiz); err != nil {
			return nil, err
		}
	}
	return quiz, nil
}

// RemoveQuestion filters a question reference out of the quiz. Removing an
// absent id still succeeds.
func (s *QuizService) RemoveQuestion(ctx context.Context, quizID, questionID string) (*models.Quiz, error) {
	quiz, err := s.Repo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	// An unparseable id cannot be in the list; the zero ObjectID matches no
	// reference, so removing it stays a no-op.
	objID, _ := primitive.ObjectIDFromHex(questionID)
	kept := quiz.Questions[:0:0]
	for _, ref := range quiz.Questions {
		if ref != objID {
			kept = append(kept, ref)
		}
	}
	quiz.Questions = kept
	quiz.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// RandomQuiz draws one quiz uniformly at random, excluding excludeID when
// set. The two empty cases report distinct errors so a player can tell an
// empty store from having already seen the only quiz.
func (s *QuizService) RandomQuiz(ctx context.Context, excludeID string) (*models.PopulatedQuiz, error) {
	count, err := s.Repo.Count(ctx, excludeID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if excludeID != "" {
			return nil, models.ErrNoOtherQuizzes
		}
		return nil, models.ErrNoQuizzes
	}
	quiz, err := s.Repo.FindRandom(ctx, excludeID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, quiz)
}

func (s *QuizService) populate(ctx context.Context, quiz *models.Quiz) (*models.PopulatedQuiz, error) {
	questions, err := s.Questions.FindByIDs(ctx, quiz.Questions)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return &models.PopulatedQuiz{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}, nil
}

// parseQuestionRefs parses hex ids, dropping duplicates while keeping order.
func parseQuestionRefs(ids []string) ([]primitive.ObjectID, error) {
	refs := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		if seen[objID] {
			continue
		}
		seen[objID] = true
		refs = append(refs, objID)
	}
	return refs, nil
}
