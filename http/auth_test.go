package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupHttp(t *testing.T) {
	handler := setupHttpHandler(t, nil)

	data := successData(t, signup(t, handler, map[string]interface{}{
		"email":    "ann@example.com",
		"password": "password123",
		"name":     "Ann",
		"role":     "student",
	}))

	assert.NotEmpty(t, data["token"])
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok, "expected user object in response")
	assert.Equal(t, "ann@example.com", user["email"])
	assert.Equal(t, "student", user["role"])
	assert.Regexp(t, `^S\d{5}$`, user["public_id"])
}

func TestSignupHttpDuplicateEmail(t *testing.T) {
	handler := setupHttpHandler(t, nil)

	w := signup(t, handler, map[string]interface{}{
		"email":    "ann@example.com",
		"password": "password123",
		"name":     "Ann",
		"role":     "student",
	})
	require.Equal(t, http.StatusOK, w.Code, "First signup failed: %s", w.Body.String())

	w = signup(t, handler, map[string]interface{}{
		"email":    "ann@example.com",
		"password": "different456",
		"name":     "Another Ann",
		"role":     "lecturer",
	})
	assertErrorInHttpResponse(t, w, "email_exists")
}

func TestSignupHttpInvalidBody(t *testing.T) {
	handler := setupHttpHandler(t, nil)

	// missing password and a role outside student/lecturer
	w := signup(t, handler, map[string]interface{}{
		"email": "ann@example.com",
		"name":  "Ann",
		"role":  "admin",
	})
	assertErrorInHttpResponse(t, w, "invalid_request")
}

func TestLoginHttpUnknownEmailStillSucceeds(t *testing.T) {
	handler := setupHttpHandler(t, nil)

	w := doJson(t, handler, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "ghost@example.com",
		"password": "whatever",
		"role":     "lecturer",
	})
	data := successData(t, w)

	assert.NotEmpty(t, data["token"])
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Lecturer User", user["name"])
}

func TestLogoutHttpEndsSession(t *testing.T) {
	handler := setupHttpHandler(t, nil)
	signupLecturer(t, handler)

	w := doJson(t, handler, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJson(t, handler, http.MethodGet, "/users/me", nil)
	assertErrorInHttpResponse(t, w, "not_logged_in")
}

func TestUpdateProfileHttp(t *testing.T) {
	handler := setupHttpHandler(t, nil)
	signupLecturer(t, handler)

	w := doJson(t, handler, http.MethodPatch, "/users/me", map[string]interface{}{
		"bio":   "teaches calculus",
		"phone": "055-1234567",
	})
	data := successData(t, w)
	assert.Equal(t, "teaches calculus", data["bio"])

	data = successData(t, doJson(t, handler, http.MethodGet, "/users/me", nil))
	assert.Equal(t, "teaches calculus", data["bio"])
	assert.Equal(t, "055-1234567", data["phone"])
}
