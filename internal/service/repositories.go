package service

import (
	"context"
	"time"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionRepository abstracts how questions are stored (MongoDB, in-memory).
type QuestionRepository interface {
	FindAll(ctx context.Context) ([]models.Question, error)
	FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Question, error)
	Create(ctx context.Context, question *models.Question) error
	Replace(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id string) error
}

// QuizRepository abstracts how quizzes are stored.
type QuizRepository interface {
	FindAll(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Replace(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, excludeID string) (int64, error)
	FindRandom(ctx context.Context, excludeID string) (*models.Quiz, error)
	PullQuestion(ctx context.Context, questionID primitive.ObjectID, now time.Time) error
}

// ResultRepository is the append-only result log.
type ResultRepository interface {
	Create(ctx context.Context, result *models.Result) error
}
