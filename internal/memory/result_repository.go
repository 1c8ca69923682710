package memory

import (
	"context"
	"sync"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResultRepository struct {
	mu      sync.Mutex
	results []models.Result
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

func (r *ResultRepository) Create(_ context.Context, result *models.Result) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, *result)
	return nil
}

// All returns a snapshot of the recorded results.
func (r *ResultRepository) All() []models.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Result, len(r.results))
	copy(out, r.results)
	return out
}
