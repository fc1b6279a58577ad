package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/auth"
	"github.com/patowari/tapuze-backend/httpjson"
	"github.com/patowari/tapuze-backend/usersrvc"
)

func (httpserver *HttpServer) authSignup(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type signupRequest struct {
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Role       string `json:"role" validate:"required,oneof=student lecturer"`
		Bio        string `json:"bio"`
		Phone      string `json:"phone"`
		Department string `json:"department"`
	}

	var request signupRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	logger.Info("received signup request", "email", request.Email, "role", request.Role)

	user, err := httpserver.userSrvc.Signup(r.Context(), usersrvc.SignupParams{
		Email:      request.Email,
		Password:   request.Password,
		Name:       request.Name,
		Role:       usersrvc.Role(request.Role),
		Bio:        request.Bio,
		Phone:      request.Phone,
		Department: request.Department,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	token, err := auth.GenerateJWT(user.Name, user.Email, string(user.Role),
		user.PublicID, user.UUID, httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		httpjson.WriteErrorJson(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError, "")
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"user":  user,
		"token": token,
	})
}
