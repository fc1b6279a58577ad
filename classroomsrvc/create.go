package classroomsrvc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/logger"
)

type CreateClassroomParams struct {
	Name        string
	Code        string
	Description string
	Students    int
	CreatedBy   string
}

// CreateClassroom adds a classroom. Name (case-insensitive) and join code
// must both be unique across all classrooms; a violating call fails before
// anything is appended.
func (s *ClassroomSrvc) CreateClassroom(ctx context.Context, p CreateClassroomParams) (*Classroom, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrClassroomNameEmpty()
	}
	if strings.TrimSpace(p.Code) == "" {
		return nil, ErrClassroomCodeEmpty()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.classrooms {
		if strings.EqualFold(s.classrooms[i].Name, p.Name) {
			return nil, ErrClassroomNameExists()
		}
		if s.classrooms[i].Code == p.Code {
			return nil, ErrClassroomCodeExists()
		}
	}

	classroom := Classroom{
		ID:          uuid.New(),
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Students:    p.Students,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   time.Now(),
	}
	s.classrooms = append(s.classrooms, classroom)

	logger.FromContext(ctx).Info("classroom created",
		"id", classroom.ID, "name", classroom.Name, "code", classroom.Code)

	return &classroom, nil
}

type CreateAssignmentParams struct {
	ClassroomID   uuid.UUID
	Title         string
	Description   string
	DueDate       time.Time
	TotalStudents int
}

// CreateAssignment adds an assignment inside an existing classroom. The
// received-submission counter starts at zero.
func (s *ClassroomSrvc) CreateAssignment(ctx context.Context, p CreateAssignmentParams) (*Assignment, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrAssignmentTitleEmpty()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.classrooms {
		if s.classrooms[i].ID == p.ClassroomID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrClassroomNotFound()
	}

	assignment := Assignment{
		ID:            uuid.New(),
		ClassroomID:   p.ClassroomID,
		Title:         p.Title,
		Description:   p.Description,
		DueDate:       p.DueDate,
		Submissions:   0,
		TotalStudents: p.TotalStudents,
		CreatedAt:     time.Now(),
	}
	s.assignments = append(s.assignments, assignment)

	logger.FromContext(ctx).Info("assignment created",
		"id", assignment.ID, "classroom_id", assignment.ClassroomID, "title", assignment.Title)

	return &assignment, nil
}
