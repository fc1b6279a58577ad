package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) deleteClassroom(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := urlUUID(r, "classroomId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	if err := httpserver.classroomSrvc.DeleteClassroom(r.Context(), id); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}
