package studyclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"code":    status,
		"message": message,
		"data":    data,
	})
}

func TestClientCreateSession(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/create", r.URL.Path)
		writeEnvelope(w, 200, true, "Session created", map[string]interface{}{
			"session_id": id.String(),
			"created_at": "2026-01-02T15:04:05Z",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	info, err := client.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, info.SessionId)
}

func TestClientServerErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, false, "This feature requires a Pro plan.", nil)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GenerateImage(context.Background(), "mitosis", "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "This feature requires a Pro plan.", apiErr.Message)
}

func TestClientUploadRejectsEmptyRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Upload(context.Background(), uuid.New(), nil, "")
	require.Error(t, err)
	assert.Equal(t, 0, calls, "no request may be issued for an empty upload")
}

func TestClientUploadSendsMultipart(t *testing.T) {
	sessionID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, sessionID.String(), r.FormValue("session_id"))
		assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", r.FormValue("youtube_url"))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 1)
		assert.Equal(t, "notes.txt", files[0].Filename)

		writeEnvelope(w, 200, true, "ok", map[string]interface{}{
			"status":         "processing",
			"message":        "Processing 2 item(s). Documents will appear once indexed.",
			"files_received": []string{"notes.txt"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.Upload(context.Background(), sessionID,
		[]File{{Name: "notes.txt", Content: []byte("cells divide by mitosis")}},
		"https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "processing", res.Status)
	assert.Equal(t, []string{"notes.txt"}, res.FilesReceived)
}

func TestClientTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		writeEnvelope(w, 200, true, "Plan status", map[string]interface{}{
			"plan":     "pro",
			"status":   "active",
			"entitled": true,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("sekrit"))
	status, err := client.PlanStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pro", status.Plan)
	assert.True(t, status.Entitled)
}

func TestClientGenerateQuizSendsTopic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quiz/generate", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "photosynthesis", payload["topic"])
		assert.Equal(t, "hard", payload["difficulty"])

		writeEnvelope(w, 200, true, "Quiz generated", map[string]interface{}{
			"quiz_id":   uuid.New().String(),
			"questions": []map[string]interface{}{},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GenerateQuiz(context.Background(), uuid.New(), "photosynthesis", "hard", 5)
	require.NoError(t, err)
}

func TestClientGeneratePaperSendsReference(t *testing.T) {
	sessionID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quiz/pyq-generator", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, sessionID.String(), r.FormValue("session_id"))
		assert.Equal(t, "biology", r.FormValue("subject"))

		files := r.MultipartForm.File["file"]
		require.Len(t, files, 1)
		assert.Equal(t, "midterm_2024.txt", files[0].Filename)

		writeEnvelope(w, 200, true, "Sample paper generated", map[string]interface{}{
			"paper": map[string]interface{}{
				"exam_name":   "Biology Midterm",
				"total_marks": 100,
				"sections": []map[string]interface{}{
					{"title": "Section A", "marks": 40, "questions": []string{"Define osmosis."}},
				},
			},
			"original_pattern": map[string]interface{}{
				"exam_name":   "Biology Midterm",
				"total_marks": 100,
				"sections": []map[string]interface{}{
					{"title": "Section A", "marks": 40, "count": 5},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.GeneratePaper(context.Background(), sessionID, "biology",
		&File{Name: "midterm_2024.txt", Content: []byte("Q1. Define osmosis. (5 marks)")})
	require.NoError(t, err)
	assert.Equal(t, "Biology Midterm", res.Paper.ExamName)
	require.Len(t, res.OriginalPattern.Sections, 1)
	assert.Equal(t, 5, res.OriginalPattern.Sections[0].Count)
}

func TestClientGeneratePaperWithoutReference(t *testing.T) {
	sessionID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, sessionID.String(), r.FormValue("session_id"))
		assert.Empty(t, r.MultipartForm.File["file"])

		writeEnvelope(w, 200, true, "Sample paper generated", map[string]interface{}{
			"paper": map[string]interface{}{"exam_name": "Practice Exam"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.GeneratePaper(context.Background(), sessionID, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Practice Exam", res.Paper.ExamName)
}

func TestClientGenerateImageFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "mitosis", payload["topic"])
		assert.Equal(t, "flowchart", payload["style"])

		writeEnvelope(w, 200, true, "Image generated", map[string]interface{}{
			"image_data":     "aGVsbG8=",
			"original_topic": "mitosis",
			"prompt_used":    "educational illustration of mitosis, flowchart style",
			"note":           "Image generated with dall-e-3",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.GenerateImage(context.Background(), "mitosis", "flowchart")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", res.ImageData)
	assert.Equal(t, "mitosis", res.OriginalTopic)
	assert.Equal(t, "Image generated with dall-e-3", res.Note)
}

func TestClientListDocuments(t *testing.T) {
	sessionID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/quiz/documents/%s", sessionID), r.URL.Path)
		writeEnvelope(w, 200, true, "ok", map[string]interface{}{
			"documents": []string{"notes.txt", "lecture.md"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	docs, err := client.ListDocuments(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt", "lecture.md"}, docs)
}
