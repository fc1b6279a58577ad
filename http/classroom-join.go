package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) joinClassroom(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type joinClassroomRequest struct {
		Code string `json:"code" validate:"required"`
	}

	var request joinClassroomRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	// resolve the code first so joining a nonexistent classroom fails
	classroom, err := httpserver.classroomSrvc.ClassroomByCode(r.Context(), request.Code)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	user, err := httpserver.userSrvc.JoinClassroom(r.Context(), request.Code)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"user":      user,
		"classroom": classroom,
	})
}
