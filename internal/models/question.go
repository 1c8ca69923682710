package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OptionCount is the fixed number of options on every question.
const OptionCount = 4

type Question struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Question      string              `bson:"question" json:"question"`
	Options       []string            `bson:"options" json:"options"`
	CorrectAnswer []int               `bson:"correctAnswer" json:"correctAnswer"`
	QuizID        *primitive.ObjectID `bson:"quizId,omitempty" json:"quizId,omitempty"`
}
