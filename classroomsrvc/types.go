package classroomsrvc

import (
	"time"

	"github.com/google/uuid"
)

type Classroom struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // unique among classrooms, case-insensitive
	Code        string    `json:"code"` // unique join code
	Description string    `json:"description,omitempty"`
	Students    int       `json:"students"` // student count estimate
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Assignment struct {
	ID            uuid.UUID `json:"id"`
	ClassroomID   uuid.UUID `json:"classroom_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DueDate       time.Time `json:"due_date"`
	Submissions   int       `json:"submissions"`    // received submission counter
	TotalStudents int       `json:"total_students"` // expected submitter estimate
	CreatedAt     time.Time `json:"created_at"`
}
