package repository

import (
	"context"
	"time"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var quiz models.Quiz
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) Replace(ctx context.Context, quiz *models.Quiz) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": quiz.ID}, quiz)
	return err
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrQuizNotFound
	}
	return nil
}

// Count counts quizzes, excluding excludeID when set.
func (r *QuizRepository) Count(ctx context.Context, excludeID string) (int64, error) {
	filter, err := excludeFilter(excludeID)
	if err != nil {
		return 0, err
	}
	return r.Col.CountDocuments(ctx, filter)
}

// FindRandom draws one quiz uniformly at random, excluding excludeID when
// set. $sample is atomic, so unlike a count-then-skip pair it cannot race
// with concurrent writes between two reads.
func (r *QuizRepository) FindRandom(ctx context.Context, excludeID string) (*models.Quiz, error) {
	filter, err := excludeFilter(excludeID)
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, models.ErrQuizNotFound
	}
	var quiz models.Quiz
	if err := cur.Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// PullQuestion removes a question reference from every quiz holding it and
// refreshes updatedAt on the quizzes touched.
func (r *QuizRepository) PullQuestion(ctx context.Context, questionID primitive.ObjectID, now time.Time) error {
	_, err := r.Col.UpdateMany(ctx,
		bson.M{"questions": questionID},
		bson.M{
			"$pull": bson.M{"questions": questionID},
			"$set":  bson.M{"updatedAt": now},
		},
	)
	return err
}

func excludeFilter(excludeID string) (bson.M, error) {
	if excludeID == "" {
		return bson.M{}, nil
	}
	objID, err := primitive.ObjectIDFromHex(excludeID)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": bson.M{"$ne": objID}}, nil
}
