package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/classroomsrvc"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) createClassroom(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type createClassroomRequest struct {
		Name        string `json:"name" validate:"required"`
		Code        string `json:"code" validate:"required"`
		Description string `json:"description"`
		Students    int    `json:"students" validate:"gte=0"`
	}

	var request createClassroomRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	createdBy := ""
	if user, err := httpserver.userSrvc.ActiveUser(r.Context()); err == nil {
		createdBy = user.PublicID
	}

	classroom, err := httpserver.classroomSrvc.CreateClassroom(r.Context(), classroomsrvc.CreateClassroomParams{
		Name:        request.Name,
		Code:        request.Code,
		Description: request.Description,
		Students:    request.Students,
		CreatedBy:   createdBy,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, classroom)
}
