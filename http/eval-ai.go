package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
)

// aiEvaluation runs the (mocked) AI grading flow over the submission's
// first attached file and returns the proposed evaluation. Nothing is
// stored; the lecturer reviews and commits it separately.
func (httpserver *HttpServer) aiEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	submissionID, err := urlUUID(r, "submissionId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	subm, err := httpserver.submSrvc.GetSubmission(r.Context(), submissionID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	var content []byte
	if len(subm.Files) > 0 {
		content, err = httpserver.submSrvc.FileContent(r.Context(), subm.ID, subm.Files[0].Name)
		if err != nil {
			// URI-only attachments have no stored content; grade anyway
			content = nil
		}
	}

	logger.Info("running AI evaluation", "submission_id", subm.ID)

	eval, err := httpserver.grader.Grade(r.Context(), content)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, eval)
}
