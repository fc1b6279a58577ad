package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/patowari/tapuze-backend/classroomsrvc"
	"github.com/patowari/tapuze-backend/evalsrvc"
	tapuzehttp "github.com/patowari/tapuze-backend/http"
	"github.com/patowari/tapuze-backend/submsrvc"
	"github.com/patowari/tapuze-backend/usersrvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHttpHandler(t *testing.T, persister evalsrvc.RemotePersister) http.Handler {
	t.Helper()

	userSrvc := usersrvc.NewUserSrvc()
	classroomSrvc := classroomsrvc.NewClassroomSrvc()
	submSrvc := submsrvc.NewSubmissionSrvc(classroomSrvc)
	classroomSrvc.SetSubmissionCascader(submSrvc)

	grader := &evalsrvc.MockAIGrader{Delay: time.Millisecond}

	server := tapuzehttp.NewHttpServer(userSrvc, classroomSrvc, submSrvc,
		grader, persister, []byte("test"), []string{"*"})
	return server.Handler()
}

func newJsonReq(t *testing.T, method, path string, body map[string]interface{}) *http.Request {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doJson(t *testing.T, handler http.Handler, method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = newJsonReq(t, method, path, body)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// successData asserts the envelope is a success and returns its data object.
func successData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")
	assert.Equal(t, "success", responseWrapper.Status)
	return responseWrapper.Data
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}

func signup(t *testing.T, handler http.Handler, userData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJson(t, handler, http.MethodPost, "/auth/signup", userData)
}

func signupLecturer(t *testing.T, handler http.Handler) map[string]interface{} {
	t.Helper()
	w := signup(t, handler, map[string]interface{}{
		"email":    "lect@uni.edu",
		"password": "password123",
		"name":     "Prof. Levy",
		"role":     "lecturer",
	})
	return successData(t, w)
}

func createClassroom(t *testing.T, handler http.Handler, name, code string) map[string]interface{} {
	t.Helper()
	w := doJson(t, handler, http.MethodPost, "/classrooms", map[string]interface{}{
		"name": name,
		"code": code,
	})
	return successData(t, w)
}
