package studyclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizServer(t *testing.T, analyzeCalls *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/quiz/generate":
			writeEnvelope(w, 200, true, "Quiz generated", map[string]interface{}{
				"quiz_id": uuid.New().String(),
				"questions": []map[string]interface{}{
					{"question": "2+2?", "options": []string{"3", "4"}, "correct_answer": "4", "topic": "Math"},
					{"question": "Capital of France?", "options": []string{"Paris", "Lyon"}, "correct_answer": "Paris", "topic": "Geography"},
				},
			})
		case "/api/quiz/analyze":
			atomic.AddInt64(analyzeCalls, 1)
			writeEnvelope(w, 200, true, "Analysis complete", map[string]interface{}{
				"score": 1, "total": 2, "percentage": 50.0,
				"weak_topics":    []string{"Math"},
				"recommendation": "Focus on reviewing: Math",
			})
		default:
			t.Errorf("unexpected call to %s", r.URL.Path)
		}
	}))
}

func TestQuizFlowHappyPath(t *testing.T) {
	var analyzeCalls int64
	srv := newQuizServer(t, &analyzeCalls)
	defer srv.Close()

	flow := NewQuizFlow(NewClient(srv.URL), uuid.New())
	assert.Equal(t, QuizIdle, flow.State())

	_, err := flow.Generate(context.Background(), "", "medium", 2)
	require.NoError(t, err)
	assert.Equal(t, QuizGenerated, flow.State())
	assert.False(t, flow.AllAnswered())

	require.NoError(t, flow.Select(0, "3"))
	require.NoError(t, flow.Select(1, "Paris"))
	assert.True(t, flow.AllAnswered())

	analysis, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, QuizSubmitted, flow.State())
	assert.Equal(t, 1, analysis.Score)
	assert.Equal(t, []string{"Math"}, analysis.WeakTopics)
	assert.EqualValues(t, 1, atomic.LoadInt64(&analyzeCalls))
}

func TestQuizFlowSelectBeforeGenerate(t *testing.T) {
	flow := NewQuizFlow(NewClient("http://unused"), uuid.New())
	assert.Error(t, flow.Select(0, "A"))
}

func TestQuizFlowReselectionOverwrites(t *testing.T) {
	var analyzeCalls int64
	srv := newQuizServer(t, &analyzeCalls)
	defer srv.Close()

	flow := NewQuizFlow(NewClient(srv.URL), uuid.New())
	_, err := flow.Generate(context.Background(), "", "easy", 2)
	require.NoError(t, err)

	require.NoError(t, flow.Select(0, "3"))
	require.NoError(t, flow.Select(0, "4"))

	answer, ok := flow.Answer(0)
	require.True(t, ok)
	assert.Equal(t, "4", answer)

	results := flow.Results()
	assert.True(t, results[0].IsCorrect)
}

func TestQuizFlowSubmitRequiresAllAnswers(t *testing.T) {
	var analyzeCalls int64
	srv := newQuizServer(t, &analyzeCalls)
	defer srv.Close()

	flow := NewQuizFlow(NewClient(srv.URL), uuid.New())
	_, err := flow.Generate(context.Background(), "", "medium", 2)
	require.NoError(t, err)
	require.NoError(t, flow.Select(0, "4"))

	_, err = flow.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, QuizGenerated, flow.State(), "partial submit must not advance state")
	assert.EqualValues(t, 0, atomic.LoadInt64(&analyzeCalls))
}

func TestQuizFlowSubmitIsIrreversible(t *testing.T) {
	var analyzeCalls int64
	srv := newQuizServer(t, &analyzeCalls)
	defer srv.Close()

	flow := NewQuizFlow(NewClient(srv.URL), uuid.New())
	_, err := flow.Generate(context.Background(), "", "medium", 2)
	require.NoError(t, err)
	require.NoError(t, flow.Select(0, "4"))
	require.NoError(t, flow.Select(1, "Lyon"))

	_, err = flow.Submit(context.Background())
	require.NoError(t, err)

	assert.Error(t, flow.Select(0, "3"), "answers are frozen after submit")
	_, err = flow.Submit(context.Background())
	assert.Error(t, err, "second submit is rejected")
	assert.EqualValues(t, 1, atomic.LoadInt64(&analyzeCalls), "exactly one analyze call")
}

func TestQuizFlowRegenerateClearsRound(t *testing.T) {
	var analyzeCalls int64
	srv := newQuizServer(t, &analyzeCalls)
	defer srv.Close()

	flow := NewQuizFlow(NewClient(srv.URL), uuid.New())
	_, err := flow.Generate(context.Background(), "", "medium", 2)
	require.NoError(t, err)
	require.NoError(t, flow.Select(0, "4"))
	require.NoError(t, flow.Select(1, "Paris"))
	_, err = flow.Submit(context.Background())
	require.NoError(t, err)

	// A fresh round resets everything, including the submitted lock.
	_, err = flow.Generate(context.Background(), "", "hard", 2)
	require.NoError(t, err)
	assert.Equal(t, QuizGenerated, flow.State())
	assert.False(t, flow.AllAnswered())
	assert.Nil(t, flow.Analysis())
}

func TestBuildResultsOrderIndependent(t *testing.T) {
	questions := []QuizQuestion{
		{Question: "q1", CorrectAnswer: "A", Topic: "T1"},
		{Question: "q2", CorrectAnswer: "B", Topic: "T2"},
		{Question: "q3", CorrectAnswer: "C", Topic: "T3"},
	}
	forward := buildResults(questions, map[int]string{0: "A", 1: "x", 2: "C"})
	backward := buildResults(questions, map[int]string{2: "C", 1: "x", 0: "A"})
	assert.Equal(t, forward, backward)

	correct := 0
	for _, r := range forward {
		if r.IsCorrect {
			correct++
		}
	}
	assert.Equal(t, 2, correct)
}
