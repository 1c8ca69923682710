package grading

import (
	"testing"

	"quizapi/internal/models"
)

func TestIsMultipleChoice(t *testing.T) {
	if IsMultipleChoice([]int{1}) {
		t.Error("single-member set should not be multiple choice")
	}
	if !IsMultipleChoice([]int{0, 2}) {
		t.Error("two-member set should be multiple choice")
	}
	if IsMultipleChoice(nil) {
		t.Error("empty set should not be multiple choice")
	}
}

func TestGradeSingleAnswer(t *testing.T) {
	testCases := []struct {
		name     string
		selected []int
		correct  []int
		want     bool
	}{
		{"matching selection", []int{2}, []int{1}, true},
		{"wrong selection", []int{1}, []int{1}, false},
		{"only first selection checked", []int{2, 3}, []int{1}, true},
		{"no selection", nil, []int{1}, false},
		{"no correct set", []int{1}, nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Grade(tc.selected, tc.correct); got != tc.want {
				t.Errorf("Grade(%v, %v) = %v, want %v", tc.selected, tc.correct, got, tc.want)
			}
		})
	}
}

func TestGradeMultiAnswer(t *testing.T) {
	testCases := []struct {
		name     string
		selected []int
		correct  []int
		want     bool
	}{
		{"exact set match", []int{1, 3}, []int{0, 2}, true},
		{"order does not matter", []int{3, 1}, []int{0, 2}, true},
		{"subset is wrong", []int{1}, []int{0, 2}, false},
		{"superset is wrong", []int{1, 2, 3}, []int{0, 2}, false},
		{"disjoint is wrong", []int{2, 4}, []int{0, 2}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Grade(tc.selected, tc.correct); got != tc.want {
				t.Errorf("Grade(%v, %v) = %v, want %v", tc.selected, tc.correct, got, tc.want)
			}
		})
	}
}

func TestReview(t *testing.T) {
	question := models.Question{
		Question:      "Pick b and d",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: []int{1, 3},
	}

	entry := Review(question, []int{2, 4}, true)

	if entry.Question != "Pick b and d" {
		t.Errorf("unexpected question text %q", entry.Question)
	}
	if entry.UserAnswer != "b, d" {
		t.Errorf("expected joined option texts \"b, d\", got %q", entry.UserAnswer)
	}
	if entry.Correct != "2, 4" {
		t.Errorf("expected 1-indexed correct positions \"2, 4\", got %q", entry.Correct)
	}
	if !entry.IsCorrect {
		t.Error("expected IsCorrect to be recorded")
	}
	if len(entry.Selected) != 2 || entry.Selected[0] != 2 || entry.Selected[1] != 4 {
		t.Errorf("expected raw selection [2 4], got %v", entry.Selected)
	}
}
