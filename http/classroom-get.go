package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) getClassroom(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := urlUUID(r, "classroomId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	classroom, err := httpserver.classroomSrvc.GetClassroom(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, classroom)
}

func (httpserver *HttpServer) listClassrooms(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	classrooms, err := httpserver.classroomSrvc.ListClassrooms(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, classrooms)
}
