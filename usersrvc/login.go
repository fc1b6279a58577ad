package usersrvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/logger"
)

type LoginParams struct {
	Email    string
	Password string
	Role     Role
}

// Login sets the active session user. A registered email logs in as that
// user; an unknown email gets a freshly synthesized placeholder user with
// a default name, mimicking a backend that always succeeds. No credential
// verification happens here on purpose.
//
// Placeholder users are session-only: they are not appended to the
// registered user list.
func (s *UserSrvc) Login(ctx context.Context, p LoginParams) (*User, error) {
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	role, err := ParseRole(string(p.Role))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == p.Email {
			active := s.users[i].User
			s.active = &active
			logger.FromContext(ctx).Info("user logged in", "public_id", active.PublicID)
			res := s.users[i].User
			return &res, nil
		}
	}

	name := "Student User"
	if role == RoleLecturer {
		name = "Lecturer User"
	}
	placeholder := User{
		UUID:             uuid.New(),
		PublicID:         s.newPublicID(role),
		Email:            p.Email,
		Name:             name,
		Role:             role,
		JoinedClassrooms: []string{},
		CreatedAt:        time.Now(),
	}
	active := placeholder
	s.active = &active

	logger.FromContext(ctx).Info("placeholder user logged in",
		"public_id", placeholder.PublicID, "role", role)

	return &placeholder, nil
}
