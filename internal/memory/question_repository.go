// Package memory provides in-memory repository implementations, used when no
// MongoDB is configured and as the stores behind the service tests.
package memory

import (
	"context"
	"sync"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[primitive.ObjectID]models.Question
	order     []primitive.ObjectID
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{questions: make(map[primitive.ObjectID]models.Question)}
}

func (r *QuestionRepository) FindAll(_ context.Context) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Question, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.questions[id])
	}
	return out, nil
}

func (r *QuestionRepository) FindByQuiz(_ context.Context, quizID string) ([]models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Question
	for _, id := range r.order {
		q := r.questions[id]
		if q.QuizID != nil && *q.QuizID == objID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuestionRepository) FindByID(_ context.Context, id string) (*models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.questions[objID]
	if !ok {
		return nil, models.ErrQuestionNotFound
	}
	return &q, nil
}

func (r *QuestionRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ordered := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func (r *QuestionRepository) Create(_ context.Context, question *models.Question) error {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.questions[question.ID]; !exists {
		r.order = append(r.order, question.ID)
	}
	r.questions[question.ID] = *question
	return nil
}

func (r *QuestionRepository) Replace(_ context.Context, question *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[question.ID]; !ok {
		return models.ErrQuestionNotFound
	}
	r.questions[question.ID] = *question
	return nil
}

func (r *QuestionRepository) Delete(_ context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[objID]; !ok {
		return models.ErrQuestionNotFound
	}
	delete(r.questions, objID)
	for i, oid := range r.order {
		if oid == objID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
