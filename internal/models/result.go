package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAnswer is one graded answer in a play-through. Selected holds the
// player's 1-indexed option numbers; Correct holds the 1-indexed correct
// positions joined for display.
type UserAnswer struct {
	Question   string `bson:"question" json:"question"`
	Selected   []int  `bson:"selected" json:"selected"`
	UserAnswer string `bson:"userAnswer" json:"userAnswer"`
	Correct    string `bson:"correct" json:"correct"`
	IsCorrect  bool   `bson:"isCorrect" json:"isCorrect"`
}

// Result is the write-once record of a completed play-through.
type Result struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlayerName  string             `bson:"playerName" json:"playerName"`
	Score       int                `bson:"score" json:"score"`
	UserAnswers []UserAnswer       `bson:"userAnswers" json:"userAnswers"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
