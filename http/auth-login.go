package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/auth"
	"github.com/patowari/tapuze-backend/httpjson"
	"github.com/patowari/tapuze-backend/usersrvc"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=student lecturer"`
	}

	var request loginRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	logger.Info("received login request", "email", request.Email)

	user, err := httpserver.userSrvc.Login(r.Context(), usersrvc.LoginParams{
		Email:    request.Email,
		Password: request.Password,
		Role:     usersrvc.Role(request.Role),
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

func (httpserver *HttpServer) authLogout(w http.ResponseWriter, r *http.Request) {
	httpserver.userSrvc.Logout(r.Context())
	httpjson.WriteSuccessJson(w, nil)
}
