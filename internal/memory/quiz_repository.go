package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[primitive.ObjectID]models.Quiz
	order   []primitive.ObjectID
	rnd     *rand.Rand
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{
		quizzes: make(map[primitive.ObjectID]models.Quiz),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuizRepository) FindAll(_ context.Context) ([]models.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Quiz, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.quizzes[id])
	}
	return out, nil
}

func (r *QuizRepository) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quizzes[objID]
	if !ok {
		return nil, models.ErrQuizNotFound
	}
	return &q, nil
}

func (r *QuizRepository) Create(_ context.Context, quiz *models.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.quizzes[quiz.ID]; !exists {
		r.order = append(r.order, quiz.ID)
	}
	r.quizzes[quiz.ID] = *quiz
	return nil
}

func (r *QuizRepository) Replace(_ context.Context, quiz *models.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[quiz.ID]; !ok {
		return models.ErrQuizNotFound
	}
	r.quizzes[quiz.ID] = *quiz
	return nil
}

func (r *QuizRepository) Delete(_ context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[objID]; !ok {
		return models.ErrQuizNotFound
	}
	delete(r.quizzes, objID)
	for i, oid := range r.order {
		if oid == objID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *QuizRepository) Count(_ context.Context, excludeID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matching, err := r.matching(excludeID)
	if err != nil {
		return 0, err
	}
	return int64(len(matching)), nil
}

func (r *QuizRepository) FindRandom(_ context.Context, excludeID string) (*models.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matching, err := r.matching(excludeID)
	if err != nil {
		return nil, err
	}
	if len(matching) == 0 {
		return nil, models.ErrQuizNotFound
	}
	quiz := matching[r.rnd.Intn(len(matching))]
	return &quiz, nil
}

func (r *QuizRepository) PullQuestion(_ context.Context, questionID primitive.ObjectID, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, quiz := range r.quizzes {
		if !quiz.HasQuestion(questionID) {
			continue
		}
		kept := quiz.Questions[:0:0]
		for _, ref := range quiz.Questions {
			if ref != questionID {
				kept = append(kept, ref)
			}
		}
		quiz.Questions = kept
		quiz.UpdatedAt = now
		r.quizzes[id] = quiz
	}
	return nil
}

// matching snapshots the quizzes passing the exclude filter, in insertion
// order. Callers must hold at least a read lock.
func (r *QuizRepository) matching(excludeID string) ([]models.Quiz, error) {
	var exclude primitive.ObjectID
	if excludeID != "" {
		var err error
		exclude, err = primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return nil, err
		}
	}
	var out []models.Quiz
	for _, id := range r.order {
		if excludeID != "" && id == exclude {
			continue
		}
		out = append(out, r.quizzes[id])
	}
	return out, nil
}
