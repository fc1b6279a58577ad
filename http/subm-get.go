package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) getSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := urlUUID(r, "submissionId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	subm, err := httpserver.submSrvc.GetSubmission(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, subm)
}

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	assignmentID, err := urlUUID(r, "assignmentId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	subms, err := httpserver.submSrvc.ListForAssignment(r.Context(), assignmentID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, subms)
}
