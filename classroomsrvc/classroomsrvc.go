package classroomsrvc

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SubmissionCascader is the slice of the submission store that cascading
// deletes need. Implemented by submsrvc; the returned counts are the
// number of submissions removed.
type SubmissionCascader interface {
	DeleteForClassroom(ctx context.Context, classroomID uuid.UUID) int
	DeleteForAssignment(ctx context.Context, assignmentID uuid.UUID) int
}

// ClassroomSrvc holds classrooms and their assignments in memory.
// Deleting a classroom or assignment cascades to every dependent record so
// no orphans are ever observable.
type ClassroomSrvc struct {
	mu          sync.RWMutex
	classrooms  []Classroom // insertion order
	assignments []Assignment

	subms SubmissionCascader
}

func NewClassroomSrvc() *ClassroomSrvc {
	return &ClassroomSrvc{}
}

// SetSubmissionCascader wires the submission store in after construction;
// the two services reference each other so one side is set late.
func (s *ClassroomSrvc) SetSubmissionCascader(c SubmissionCascader) {
	s.subms = c
}

func (s *ClassroomSrvc) GetClassroom(ctx context.Context, id uuid.UUID) (*Classroom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.classrooms {
		if s.classrooms[i].ID == id {
			cp := s.classrooms[i]
			return &cp, nil
		}
	}
	return nil, ErrClassroomNotFound()
}

// ClassroomByCode resolves a join code to its classroom.
func (s *ClassroomSrvc) ClassroomByCode(ctx context.Context, code string) (*Classroom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.classrooms {
		if s.classrooms[i].Code == code {
			cp := s.classrooms[i]
			return &cp, nil
		}
	}
	return nil, ErrClassroomNotFound()
}

func (s *ClassroomSrvc) ListClassrooms(ctx context.Context) ([]Classroom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Classroom, len(s.classrooms))
	copy(res, s.classrooms)
	return res, nil
}

func (s *ClassroomSrvc) GetAssignment(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			cp := s.assignments[i]
			return &cp, nil
		}
	}
	return nil, ErrAssignmentNotFound()
}

func (s *ClassroomSrvc) ListAssignments(ctx context.Context, classroomID uuid.UUID) ([]Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []Assignment
	for i := range s.assignments {
		if s.assignments[i].ClassroomID == classroomID {
			res = append(res, s.assignments[i])
		}
	}
	return res, nil
}

// AssignmentClassroom resolves an assignment to its owning classroom id.
func (s *ClassroomSrvc) AssignmentClassroom(ctx context.Context, assignmentID uuid.UUID) (uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.assignments {
		if s.assignments[i].ID == assignmentID {
			return s.assignments[i].ClassroomID, nil
		}
	}
	return uuid.Nil, ErrAssignmentNotFound()
}

// IncrementSubmissions bumps an assignment's received-submission counter
// by one. Returns an explicit error when the assignment is gone.
func (s *ClassroomSrvc) IncrementSubmissions(ctx context.Context, assignmentID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID == assignmentID {
			s.assignments[i].Submissions++
			return nil
		}
	}
	return ErrAssignmentNotFound()
}
