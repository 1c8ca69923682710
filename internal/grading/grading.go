// Package grading holds the pure answer-checking logic shared by the quiz
// runner. Player selections are 1-indexed option numbers; the correct-answer
// set is 0-indexed.
package grading

import (
	"strconv"
	"strings"

	"quizapi/internal/models"
)

// IsMultipleChoice reports whether the correct-answer set has more than one
// member. All single-vs-multi branching goes through this predicate.
func IsMultipleChoice(correct []int) bool {
	return len(correct) > 1
}

// Grade checks 1-indexed selections against the 0-indexed correct set.
// Multi-answer questions require an exact set match; single-answer questions
// check only the first selection.
func Grade(selected, correct []int) bool {
	if len(selected) == 0 || len(correct) == 0 {
		return false
	}
	if !IsMultipleChoice(correct) {
		return contains(correct, selected[0]-1)
	}
	chosen := make(map[int]bool, len(selected))
	for _, n := range selected {
		chosen[n-1] = true
	}
	if len(chosen) != len(correct) {
		return false
	}
	for _, idx := range correct {
		if !chosen[idx] {
			return false
		}
	}
	return true
}

// Review builds the answer-log entry for one graded question: the raw
// selection, the selected option texts joined, and the 1-indexed correct
// positions joined for display.
func Review(question models.Question, selected []int, isCorrect bool) models.UserAnswer {
	texts := make([]string, 0, len(selected))
	for _, n := range selected {
		if n >= 1 && n <= len(question.Options) {
			texts = append(texts, question.Options[n-1])
		}
	}
	positions := make([]string, 0, len(question.CorrectAnswer))
	for _, idx := range question.CorrectAnswer {
		positions = append(positions, strconv.Itoa(idx+1))
	}
	return models.UserAnswer{
		Question:   question.Question,
		Selected:   selected,
		UserAnswer: strings.Join(texts, ", "),
		Correct:    strings.Join(positions, ", "),
		IsCorrect:  isCorrect,
	}
}

func contains(set []int, v int) bool {
	for _, m := range set {
		if m == v {
			return true
		}
	}
	return false
}
