package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/classroomsrvc"
	"github.com/patowari/tapuze-backend/httpjson"
)

func (httpserver *HttpServer) createAssignment(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	classroomID, err := urlUUID(r, "classroomId")
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	type createAssignmentRequest struct {
		Title         string    `json:"title" validate:"required"`
		Description   string    `json:"description"`
		DueDate       time.Time `json:"due_date" validate:"required"`
		TotalStudents int       `json:"total_students" validate:"gte=0"`
	}

	var request createAssignmentRequest
	if err := decodeAndValidate(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	assignment, err := httpserver.classroomSrvc.CreateAssignment(r.Context(), classroomsrvc.CreateAssignmentParams{
		ClassroomID:   classroomID,
		Title:         request.Title,
		Description:   request.Description,
		DueDate:       request.DueDate,
		TotalStudents: request.TotalStudents,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, assignment)
}
