package usersrvc

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleLecturer:
		return RoleLecturer, nil
	}
	return "", ErrInvalidRole(s)
}

type User struct {
	UUID             uuid.UUID `json:"uuid"`
	PublicID         string    `json:"public_id"` // S##### for students, L#### for lecturers
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             Role      `json:"role"`
	JoinedClassrooms []string  `json:"joined_classrooms"` // classroom join codes
	Bio              string    `json:"bio,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Department       string    `json:"department,omitempty"` // lecturers only
	CreatedAt        time.Time `json:"created_at"`
}

// storedUser is the in-memory record; the password hash never leaves the
// service.
type storedUser struct {
	User
	BcryptPwd []byte
}
