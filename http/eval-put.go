package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/evalsrvc"
	"github.com/patowari/tapuze-backend/httpjson"
	"github.com/patowari/tapuze-backend/srvcerror"
)

// putEvaluation commits an evaluation against a submission: the local
// store is updated first, then the remote API gets a best-effort persist.
// A remote failure still returns the locally saved evaluation, with its
// sync state set to sync_failed.
func (httpserver *HttpServer) putEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	submissionID, err := urlUUID(r, "submissionId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	var eval evalsrvc.Evaluation
	if err := decodeAndValidate(r, &eval); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	subm, err := httpserver.submSrvc.GetSubmission(r.Context(), submissionID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	editor := evalsrvc.NewEditor(eval)
	saved, err := editor.Commit(r.Context(), httpserver.submSrvc, httpserver.persister, evalsrvc.EvalPath{
		ClassroomID:  subm.ClassroomID,
		AssignmentID: subm.AssignmentID,
		SubmissionID: subm.ID,
	})
	if err != nil {
		srvcErr := &srvcerror.Error{}
		if errors.As(err, &srvcErr) && srvcErr.ErrorCode() == evalsrvc.ErrCodeEvalSaveFailed {
			// local save happened; report the sync gap alongside the data
			httpjson.WriteErrorJson(w, srvcErr.Error(),
				srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
			return
		}
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, saved)
}

func (httpserver *HttpServer) getEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	submissionID, err := urlUUID(r, "submissionId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	eval, err := httpserver.submSrvc.Evaluation(r.Context(), submissionID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	// eval is nil when the submission exists but has no evaluation yet
	httpjson.WriteSuccessJson(w, eval)
}
