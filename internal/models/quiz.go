package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz groups an ordered, duplicate-free list of question references.
type Quiz struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Questions   []primitive.ObjectID `bson:"questions" json:"questions"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedQuiz is a Quiz with each question reference expanded to the full record.
type PopulatedQuiz struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Questions   []Question         `json:"questions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// HasQuestion reports whether id is already in the reference list.
func (q *Quiz) HasQuestion(id primitive.ObjectID) bool {
	for _, ref := range q.Questions {
		if ref == id {
			return true
		}
	}
	return false
}
