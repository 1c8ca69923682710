package service

import (
	"context"
	"time"

	"quizapi/internal/models"
)

type ResultService struct {
	Repo ResultRepository
}

func NewResultService(repo ResultRepository) *ResultService {
	return &ResultService{Repo: repo}
}

// SubmitResult appends a play-through to the result log. The score is
// recorded as reported; results are write-once and never validated against
// the answers.
func (s *ResultService) SubmitResult(ctx context.Context, result *models.Result) error {
	result.CreatedAt = time.Now()
	return s.Repo.Create(ctx, result)
}
