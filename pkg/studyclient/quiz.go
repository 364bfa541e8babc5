package studyclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// QuizState is the lifecycle of one quiz round.
type QuizState string

const (
	QuizIdle      QuizState = "idle"
	QuizGenerated QuizState = "generated"
	QuizSubmitted QuizState = "submitted"
)

// QuizFlow drives one quiz round: generate, answer, submit, analyze.
// Selection is only possible between generation and submission; submission
// is irreversible and triggers exactly one analyze call. Generating again
// discards the previous round entirely.
type QuizFlow struct {
	mu sync.Mutex

	client    *Client
	sessionID uuid.UUID

	state     QuizState
	questions []QuizQuestion
	warning   string
	answers   map[int]string
	analysis  *QuizAnalysis
}

func NewQuizFlow(client *Client, sessionID uuid.UUID) *QuizFlow {
	return &QuizFlow{
		client:    client,
		sessionID: sessionID,
		state:     QuizIdle,
		answers:   make(map[int]string),
	}
}

func (q *QuizFlow) State() QuizState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Generate starts a new round. Any previous questions, answers and analysis
// are cleared, whatever state the flow was in. An empty or "general" topic
// quizzes the whole session.
func (q *QuizFlow) Generate(ctx context.Context, topic, difficulty string, numQuestions int) (*GeneratedQuiz, error) {
	quiz, err := q.client.GenerateQuiz(ctx, q.sessionID, topic, difficulty, numQuestions)
	if err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.questions = quiz.Questions
	q.warning = quiz.Warning
	q.answers = make(map[int]string)
	q.analysis = nil
	if len(quiz.Questions) == 0 {
		q.state = QuizIdle
	} else {
		q.state = QuizGenerated
	}
	return quiz, nil
}

func (q *QuizFlow) Questions() []QuizQuestion {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]QuizQuestion, len(q.questions))
	copy(out, q.questions)
	return out
}

func (q *QuizFlow) Warning() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.warning
}

// Select records an answer. Re-selecting the same question overwrites the
// previous choice; it never duplicates.
func (q *QuizFlow) Select(index int, option string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != QuizGenerated {
		return fmt.Errorf("cannot answer in state %s", q.state)
	}
	if index < 0 || index >= len(q.questions) {
		return fmt.Errorf("question index %d out of range", index)
	}
	q.answers[index] = option
	return nil
}

func (q *QuizFlow) Answer(index int) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	a, ok := q.answers[index]
	return a, ok
}

func (q *QuizFlow) AllAnswered() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.answers) == len(q.questions) && len(q.questions) > 0
}

// Results builds the per-question outcome list from the current answers.
// Scoring is pure and independent of answer order.
func (q *QuizFlow) Results() []QuizResult {
	q.mu.Lock()
	defer q.mu.Unlock()
	return buildResults(q.questions, q.answers)
}

func buildResults(questions []QuizQuestion, answers map[int]string) []QuizResult {
	results := make([]QuizResult, 0, len(questions))
	for i, question := range questions {
		selected := answers[i]
		results = append(results, QuizResult{
			Question:      question.Question,
			Topic:         question.Topic,
			SelectedValue: selected,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     selected == question.CorrectAnswer,
		})
	}
	return results
}

// Submit locks in the answers and runs the single analyze call. It fails
// when not every question has an answer, and cannot be repeated.
func (q *QuizFlow) Submit(ctx context.Context) (*QuizAnalysis, error) {
	q.mu.Lock()
	if q.state == QuizSubmitted {
		q.mu.Unlock()
		return nil, fmt.Errorf("quiz already submitted")
	}
	if q.state != QuizGenerated {
		q.mu.Unlock()
		return nil, fmt.Errorf("no quiz to submit")
	}
	if len(q.answers) != len(q.questions) {
		missing := len(q.questions) - len(q.answers)
		q.mu.Unlock()
		return nil, fmt.Errorf("%d question(s) still unanswered", missing)
	}
	results := buildResults(q.questions, q.answers)
	q.state = QuizSubmitted
	q.mu.Unlock()

	analysis, err := q.client.AnalyzeQuiz(ctx, q.sessionID, results)

	q.mu.Lock()
	defer q.mu.Unlock()
	if err != nil {
		// Submission stands; only the analysis is missing.
		return nil, err
	}
	q.analysis = analysis
	return analysis, nil
}

func (q *QuizFlow) Analysis() *QuizAnalysis {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.analysis
}
