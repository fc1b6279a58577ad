package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
	"github.com/patowari/tapuze-backend/usersrvc"
)

func (httpserver *HttpServer) getActiveUser(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	user, err := httpserver.userSrvc.ActiveUser(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, user)
}

func (httpserver *HttpServer) updateProfile(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type updateProfileRequest struct {
		Name       *string `json:"name"`
		Bio        *string `json:"bio"`
		Phone      *string `json:"phone"`
		Department *string `json:"department"`
	}

	var request updateProfileRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	user, err := httpserver.userSrvc.UpdateProfile(r.Context(), usersrvc.UpdateProfileParams{
		Name:       request.Name,
		Bio:        request.Bio,
		Phone:      request.Phone,
		Department: request.Department,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, user)
}
