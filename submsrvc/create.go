package submsrvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/logger"
	"github.com/wailsapp/mimetype"
)

type CreateSubmissionParams struct {
	AssignmentID uuid.UUID
	StudentID    string
	StudentName  string
	Files        []FileUpload
}

// CreateSubmission records a student's delivery against an assignment.
// It stamps the submission time, starts the status at "submitted" and
// bumps the owning assignment's counter by exactly one. File content is
// sniffed for its MIME type when the client sent none, stored compressed,
// and image attachments get a preview thumbnail.
func (s *SubmissionSrvc) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (*Submission, error) {
	if len(p.Files) == 0 {
		return nil, ErrNoFilesAttached()
	}

	classroomID, err := s.assignments.AssignmentClassroom(ctx, p.AssignmentID)
	if err != nil {
		return nil, err
	}

	files := make([]SubmittedFile, 0, len(p.Files))
	for _, up := range p.Files {
		f, err := s.intakeFile(up)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	subm := Submission{
		ID:           uuid.New(),
		AssignmentID: p.AssignmentID,
		ClassroomID:  classroomID,
		StudentID:    p.StudentID,
		StudentName:  p.StudentName,
		Files:        files,
		SubmittedAt:  time.Now(),
		Status:       StatusSubmitted,
	}

	s.mu.Lock()
	s.subms = append(s.subms, subm)
	s.mu.Unlock()

	if err := s.assignments.IncrementSubmissions(ctx, p.AssignmentID); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("submission created",
		"id", subm.ID, "assignment_id", subm.AssignmentID,
		"student_id", subm.StudentID, "files", len(subm.Files))

	cp := subm
	return &cp, nil
}

func (s *SubmissionSrvc) intakeFile(up FileUpload) (SubmittedFile, error) {
	f := SubmittedFile{
		Name: up.Name,
		Type: up.Type,
		URI:  up.URI,
	}

	if len(up.Content) == 0 {
		return f, nil
	}

	f.Size = int64(len(up.Content))

	if f.Type == "" {
		detected := mimetype.Detect(up.Content)
		if detected != nil {
			f.Type = detected.String()
		}
	}

	if f.Type == "image/jpeg" || f.Type == "image/png" {
		thumb, err := makeThumbnail(up.Content, f.Type)
		if err == nil {
			f.thumbnail = thumb
		}
		// an undecodable image is stored as-is, just without a preview
	}

	f.content = s.zstdEnc.EncodeAll(up.Content, make([]byte, 0, len(up.Content)))
	return f, nil
}

// FileContent returns the decompressed content of an attached file.
func (s *SubmissionSrvc) FileContent(ctx context.Context, submissionID uuid.UUID, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.subms {
		if s.subms[i].ID != submissionID {
			continue
		}
		for _, f := range s.subms[i].Files {
			if f.Name == name {
				if f.content == nil {
					return nil, ErrFileNotFound()
				}
				raw, err := s.zstdDec.DecodeAll(f.content, nil)
				if err != nil {
					return nil, ErrInternal(err)
				}
				return raw, nil
			}
		}
		return nil, ErrFileNotFound()
	}
	return nil, ErrSubmissionNotFound()
}

// FileThumbnail returns the JPEG preview of an image attachment, or a
// not-found error when the file has none.
func (s *SubmissionSrvc) FileThumbnail(ctx context.Context, submissionID uuid.UUID, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.subms {
		if s.subms[i].ID != submissionID {
			continue
		}
		for _, f := range s.subms[i].Files {
			if f.Name == name && f.thumbnail != nil {
				return f.thumbnail, nil
			}
		}
		return nil, ErrFileNotFound()
	}
	return nil, ErrSubmissionNotFound()
}
