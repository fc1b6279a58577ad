package submsrvc

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// AssignmentDirectory is the slice of the classroom store that submissions
// need: resolving an assignment to its owning classroom and bumping the
// received-submission counter.
type AssignmentDirectory interface {
	AssignmentClassroom(ctx context.Context, assignmentID uuid.UUID) (uuid.UUID, error)
	IncrementSubmissions(ctx context.Context, assignmentID uuid.UUID) error
}

// SubmissionSrvc holds every submission in memory, in insertion order.
// Attached file content is kept zstd-compressed.
type SubmissionSrvc struct {
	mu    sync.RWMutex
	subms []Submission

	assignments AssignmentDirectory

	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
}

func NewSubmissionSrvc(assignments AssignmentDirectory) *SubmissionSrvc {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err) // only fails on invalid encoder options
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	return &SubmissionSrvc{
		assignments: assignments,
		zstdEnc:     enc,
		zstdDec:     dec,
	}
}

func (s *SubmissionSrvc) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.subms {
		if s.subms[i].ID == id {
			cp := s.subms[i]
			return &cp, nil
		}
	}
	return nil, ErrSubmissionNotFound()
}

// ListForAssignment returns the assignment's submissions in the order they
// arrived.
func (s *SubmissionSrvc) ListForAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []Submission
	for i := range s.subms {
		if s.subms[i].AssignmentID == assignmentID {
			res = append(res, s.subms[i])
		}
	}
	return res, nil
}

// DeleteForAssignment removes every submission of the assignment and
// reports how many were removed. Part of the assignment-delete cascade.
func (s *SubmissionSrvc) DeleteForAssignment(ctx context.Context, assignmentID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subms[:0]
	removed := 0
	for _, sub := range s.subms {
		if sub.AssignmentID == assignmentID {
			removed++
			continue
		}
		kept = append(kept, sub)
	}
	s.subms = kept
	return removed
}

// DeleteForClassroom removes every submission of the classroom. Part of
// the classroom-delete cascade.
func (s *SubmissionSrvc) DeleteForClassroom(ctx context.Context, classroomID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subms[:0]
	removed := 0
	for _, sub := range s.subms {
		if sub.ClassroomID == classroomID {
			removed++
			continue
		}
		kept = append(kept, sub)
	}
	s.subms = kept
	return removed
}
