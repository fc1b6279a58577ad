package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/patowari/tapuze-backend/evalsrvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubmissionEvaluationFlow walks the whole lecturer/student story:
// signup, classroom, assignment, a student submission, an AI-proposed
// evaluation and a committed one, persisted to the remote API.
func TestSubmissionEvaluationFlow(t *testing.T) {
	var remotePuts []string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remotePuts = append(remotePuts, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer remote.Close()

	handler := setupHttpHandler(t, evalsrvc.NewHTTPPersister(remote.URL))

	signupLecturer(t, handler)
	classroom := createClassroom(t, handler, "Math 101", "ABC123")
	classroomID := classroom["id"].(string)

	w := doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/classrooms/%s/assignments", classroomID),
		map[string]interface{}{
			"title":    "Homework 1",
			"due_date": time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		})
	assignment := successData(t, w)
	assignmentID := assignment["id"].(string)

	// the student takes over the session and submits
	successData(t, signup(t, handler, map[string]interface{}{
		"email":    "ann@example.com",
		"password": "password123",
		"name":     "Ann",
		"role":     "student",
	}))

	w = doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/assignments/%s/submissions", assignmentID),
		map[string]interface{}{
			"files": []map[string]interface{}{
				{"name": "hw.txt", "type": "text/plain", "content": []byte("my answers")},
			},
		})
	subm := successData(t, w)
	submissionID := subm["id"].(string)
	assert.Equal(t, "submitted", subm["status"])

	// the assignment counter moved by exactly one
	assignment = successData(t, doJson(t, handler, http.MethodGet,
		fmt.Sprintf("/assignments/%s", assignmentID), nil))
	assert.Equal(t, float64(1), assignment["submissions"])

	// no evaluation yet: success with empty data, not an error
	w = doJson(t, handler, http.MethodGet,
		fmt.Sprintf("/submissions/%s/evaluation", submissionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var emptyEval struct {
		Status string           `json:"status"`
		Data   *json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &emptyEval))
	assert.Nil(t, emptyEval.Data)

	// the AI proposal is returned but never stored
	w = doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/submissions/%s/ai-evaluation", submissionID), nil)
	proposal := successData(t, w)
	assert.NotEmpty(t, proposal["problem_breakdown"])
	subm = successData(t, doJson(t, handler, http.MethodGet,
		fmt.Sprintf("/submissions/%s", submissionID), nil))
	assert.Equal(t, "submitted", subm["status"])

	// the lecturer commits an evaluation
	w = doJson(t, handler, http.MethodPut,
		fmt.Sprintf("/submissions/%s/evaluation", submissionID),
		map[string]interface{}{
			"overall_score": 80,
			"problem_breakdown": []map[string]interface{}{
				{
					"problem_description": map[string]string{"en": "Derivatives", "he": "נגזרות"},
					"score":               8,
					"max_score":           10,
					"errors": []map[string]interface{}{
						{
							"error_type":  "sign_error",
							"explanation": map[string]string{"en": "Sign flipped", "he": "הסימן התהפך"},
							"hint":        map[string]string{"en": "Recheck step 2", "he": "בדקו שוב את שלב 2"},
							"deduction":   2,
						},
					},
				},
			},
		})
	saved := successData(t, w)
	assert.Equal(t, float64(80), saved["overall_score"])

	require.Len(t, remotePuts, 1)
	assert.Equal(t, fmt.Sprintf("PUT /classrooms/%s/assignments/%s/submissions/%s/evaluation",
		classroomID, assignmentID, submissionID), remotePuts[0])

	// the committed evaluation is now readable and the status moved
	stored := successData(t, doJson(t, handler, http.MethodGet,
		fmt.Sprintf("/submissions/%s/evaluation", submissionID), nil))
	assert.Equal(t, float64(80), stored["overall_score"])
	subm = successData(t, doJson(t, handler, http.MethodGet,
		fmt.Sprintf("/submissions/%s", submissionID), nil))
	assert.Equal(t, "evaluated", subm["status"])
}

func TestPutEvaluationHttpRemoteFailure(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer remote.Close()

	handler := setupHttpHandler(t, evalsrvc.NewHTTPPersister(remote.URL))
	submissionID := createSubmissionForTest(t, handler)

	w := doJson(t, handler, http.MethodPut,
		fmt.Sprintf("/submissions/%s/evaluation", submissionID),
		map[string]interface{}{
			"overall_score":     100,
			"problem_breakdown": []map[string]interface{}{},
		})
	assertErrorInHttpResponse(t, w, evalsrvc.ErrCodeEvalSaveFailed)

	// the local copy survived the remote failure
	stored := successData(t, doJson(t, handler, http.MethodGet,
		fmt.Sprintf("/submissions/%s/evaluation", submissionID), nil))
	assert.Equal(t, float64(100), stored["overall_score"])
}

func TestPutEvaluationHttpUnknownSubmission(t *testing.T) {
	handler := setupHttpHandler(t, nil)

	w := doJson(t, handler, http.MethodPut,
		"/submissions/00000000-0000-0000-0000-000000000001/evaluation",
		map[string]interface{}{
			"overall_score":     50,
			"problem_breakdown": []map[string]interface{}{},
		})
	assertErrorInHttpResponse(t, w, "submission_not_found")
}

func TestCreateSubmissionHttpRequiresFiles(t *testing.T) {
	handler := setupHttpHandler(t, nil)
	signupLecturer(t, handler)
	classroom := createClassroom(t, handler, "Math 101", "ABC123")

	w := doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/classrooms/%s/assignments", classroom["id"].(string)),
		map[string]interface{}{
			"title":    "Homework 1",
			"due_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
	assignment := successData(t, w)

	w = doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/assignments/%s/submissions", assignment["id"].(string)),
		map[string]interface{}{"files": []map[string]interface{}{}})
	assertErrorInHttpResponse(t, w, "invalid_request")
}

// createSubmissionForTest sets up a classroom, assignment and one
// submission, returning the submission id.
func createSubmissionForTest(t *testing.T, handler http.Handler) string {
	t.Helper()

	signupLecturer(t, handler)
	classroom := createClassroom(t, handler, "Math 101", "ABC123")

	w := doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/classrooms/%s/assignments", classroom["id"].(string)),
		map[string]interface{}{
			"title":    "Homework 1",
			"due_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
	assignment := successData(t, w)

	w = doJson(t, handler, http.MethodPost,
		fmt.Sprintf("/assignments/%s/submissions", assignment["id"].(string)),
		map[string]interface{}{
			"files": []map[string]interface{}{
				{"name": "hw.txt", "type": "text/plain", "content": []byte("answers")},
			},
		})
	return successData(t, w)["id"].(string)
}
