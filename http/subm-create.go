package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/httpjson"
	"github.com/patowari/tapuze-backend/submsrvc"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	assignmentID, err := urlUUID(r, "assignmentId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type fileUpload struct {
		Name    string `json:"name" validate:"required"`
		Type    string `json:"type"`
		URI     string `json:"uri"`
		Content []byte `json:"content"` // base64 in transit
	}
	type createSubmissionRequest struct {
		Files []fileUpload `json:"files" validate:"required,min=1,dive"`
	}

	var request createSubmissionRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	student, err := httpserver.userSrvc.ActiveUser(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	files := make([]submsrvc.FileUpload, 0, len(request.Files))
	for _, f := range request.Files {
		files = append(files, submsrvc.FileUpload{
			Name:    f.Name,
			Type:    f.Type,
			URI:     f.URI,
			Content: f.Content,
		})
	}

	subm, err := httpserver.submSrvc.CreateSubmission(r.Context(), submsrvc.CreateSubmissionParams{
		AssignmentID: assignmentID,
		StudentID:    student.PublicID,
		StudentName:  student.Name,
		Files:        files,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, subm)
}
