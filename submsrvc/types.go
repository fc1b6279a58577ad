package submsrvc

import (
	"time"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/evalsrvc"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusEvaluated Status = "evaluated"
)

type Submission struct {
	ID           uuid.UUID            `json:"id"`
	AssignmentID uuid.UUID            `json:"assignment_id"`
	ClassroomID  uuid.UUID            `json:"classroom_id"`
	StudentID    string               `json:"student_id"` // public id, e.g. S12345
	StudentName  string               `json:"student_name,omitempty"`
	Files        []SubmittedFile      `json:"files"`
	SubmittedAt  time.Time            `json:"submitted_at"`
	Status       Status               `json:"status"`
	Evaluation   *evalsrvc.Evaluation `json:"evaluation,omitempty"`
}

type SubmittedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"` // original (uncompressed) size in bytes
	Type string `json:"type"` // MIME type, sniffed when the client sent none
	URI  string `json:"uri,omitempty"`

	content   []byte // zstd-compressed; nil for URI-only attachments
	thumbnail []byte // JPEG preview for image attachments
}

// FileUpload is one attachment handed in by the client.
type FileUpload struct {
	Name    string
	Type    string
	URI     string
	Content []byte
}
