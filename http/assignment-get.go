package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) getAssignment(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := urlUUID(r, "assignmentId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	assignment, err := httpserver.classroomSrvc.GetAssignment(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, assignment)
}

func (httpserver *HttpServer) listAssignments(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	classroomID, err := urlUUID(r, "classroomId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	assignments, err := httpserver.classroomSrvc.ListAssignments(r.Context(), classroomID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, assignments)
}

func (httpserver *HttpServer) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := urlUUID(r, "assignmentId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	if err := httpserver.classroomSrvc.DeleteAssignment(r.Context(), id); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}
