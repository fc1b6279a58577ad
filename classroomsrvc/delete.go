package classroomsrvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/logger"
)

// DeleteClassroom removes the classroom together with every assignment and
// submission that references it. Assignments go under this service's lock;
// the submission cascade runs right after, before any caller can observe
// the gap, since there is exactly one logical writer.
func (s *ClassroomSrvc) DeleteClassroom(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()

	idx := -1
	for i := range s.classrooms {
		if s.classrooms[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrClassroomNotFound()
	}

	s.classrooms = append(s.classrooms[:idx], s.classrooms[idx+1:]...)

	kept := s.assignments[:0]
	removedAssignments := 0
	for _, a := range s.assignments {
		if a.ClassroomID == id {
			removedAssignments++
			continue
		}
		kept = append(kept, a)
	}
	s.assignments = kept
	s.mu.Unlock()

	removedSubms := 0
	if s.subms != nil {
		removedSubms = s.subms.DeleteForClassroom(ctx, id)
	}

	logger.FromContext(ctx).Info("classroom deleted",
		"id", id, "assignments_removed", removedAssignments,
		"submissions_removed", removedSubms)

	return nil
}

// DeleteAssignment removes the assignment and cascades to its submissions.
func (s *ClassroomSrvc) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()

	idx := -1
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrAssignmentNotFound()
	}

	s.assignments = append(s.assignments[:idx], s.assignments[idx+1:]...)
	s.mu.Unlock()

	removedSubms := 0
	if s.subms != nil {
		removedSubms = s.subms.DeleteForAssignment(ctx, id)
	}

	logger.FromContext(ctx).Info("assignment deleted",
		"id", id, "submissions_removed", removedSubms)

	return nil
}
