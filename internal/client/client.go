// Package client is a Go client for the quiz HTTP API. It speaks the same
// envelope the server emits and turns failure envelopes into errors carrying
// the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"quizapi/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Question is the canonical single-question wire shape.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer []int    `json:"correctAnswer"`
	QuizID        string   `json:"quizId,omitempty"`
}

// QuestionRow is the flattened shape of the list endpoint.
type QuestionRow struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Option1  string `json:"option1"`
	Option2  string `json:"option2"`
	Option3  string `json:"option3"`
	Option4  string `json:"option4"`
	Ans      []int  `json:"ans"`
	QuizID   string `json:"quizId,omitempty"`
}

// Quiz is a populated quiz: references expanded to full question records.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// QuizRecord is the unpopulated quiz shape the write endpoints return:
// questions are hex id references, not full records.
type QuizRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Questions   []string  `json:"questions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type QuestionInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer []int    `json:"correctAnswer"`
}

type QuestionUpdate struct {
	Question      *string  `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer []int    `json:"correctAnswer,omitempty"`
}

type QuizInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Questions   []string `json:"questions,omitempty"`
}

type QuizUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Questions   *[]string `json:"questions,omitempty"`
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success int             `json:"success"`
	Message string          `json:"message"`
	Err     string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if env.Success != 1 {
		msg := env.Message
		if msg == "" {
			msg = env.Err
		}
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("api: %s", msg)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("unmarshal data: %w", err)
		}
	}
	return nil
}

func (c *Client) ListQuestions(ctx context.Context, quizID string) ([]QuestionRow, error) {
	path := "/api/questions"
	if quizID != "" {
		path += "?quizId=" + url.QueryEscape(quizID)
	}
	var rows []QuestionRow
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetQuestion(ctx context.Context, id string) (*Question, error) {
	var q Question
	if err := c.do(ctx, http.MethodGet, "/api/questions/"+id, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) CreateQuestion(ctx context.Context, in QuestionInput) (*Question, error) {
	var q Question
	if err := c.do(ctx, http.MethodPost, "/api/questions", in, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) UpdateQuestion(ctx context.Context, id string, in QuestionUpdate) (*Question, error) {
	var q Question
	if err := c.do(ctx, http.MethodPut, "/api/questions/"+id, in, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/questions/"+id, nil, nil)
}

func (c *Client) ListQuizzes(ctx context.Context) ([]Quiz, error) {
	var quizzes []Quiz
	if err := c.do(ctx, http.MethodGet, "/api/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *Client) GetQuiz(ctx context.Context, id string) (*Quiz, error) {
	var q Quiz
	if err := c.do(ctx, http.MethodGet, "/api/quizzes/"+id, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// RandomQuiz fetches a random quiz, excluding excludeID when non-empty.
func (c *Client) RandomQuiz(ctx context.Context, excludeID string) (*Quiz, error) {
	path := "/api/quizzes/random"
	if excludeID != "" {
		path += "?quizId=" + url.QueryEscape(excludeID)
	}
	var q Quiz
	if err := c.do(ctx, http.MethodGet, path, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) CreateQuiz(ctx context.Context, in QuizInput) (*QuizRecord, error) {
	var q QuizRecord
	if err := c.do(ctx, http.MethodPost, "/api/quizzes", in, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) UpdateQuiz(ctx context.Context, id string, in QuizUpdate) (*QuizRecord, error) {
	var q QuizRecord
	if err := c.do(ctx, http.MethodPut, "/api/quizzes/"+id, in, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/quizzes/"+id, nil, nil)
}

func (c *Client) AddQuestionToQuiz(ctx context.Context, quizID, questionID string) error {
	payload := map[string]string{"questionId": questionID}
	return c.do(ctx, http.MethodPost, "/api/quizzes/"+quizID+"/questions", payload, nil)
}

func (c *Client) RemoveQuestionFromQuiz(ctx context.Context, quizID, questionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/quizzes/"+quizID+"/questions/"+questionID, nil, nil)
}

func (c *Client) SubmitResult(ctx context.Context, playerName string, score int, answers []models.UserAnswer) error {
	payload := map[string]any{
		"playerName":  playerName,
		"score":       score,
		"userAnswers": answers,
	}
	return c.do(ctx, http.MethodPost, "/api/quizzes/submit", payload, nil)
}
