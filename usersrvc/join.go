package usersrvc

import (
	"context"
	"slices"

	"github.com/patowari/tapuze-backend/logger"
)

// JoinClassroom appends the classroom join code to the active user's
// joined list. Repeat joins with the same code are no-ops; the updated
// user is returned either way.
func (s *UserSrvc) JoinClassroom(ctx context.Context, code string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNotLoggedIn()
	}

	if !slices.Contains(s.active.JoinedClassrooms, code) {
		s.active.JoinedClassrooms = append(s.active.JoinedClassrooms, code)
		// mirror into the registered list; placeholder session users
		// have no entry there
		for i := range s.users {
			if s.users[i].UUID == s.active.UUID {
				s.users[i].JoinedClassrooms = slices.Clone(s.active.JoinedClassrooms)
				break
			}
		}
		logger.FromContext(ctx).Info("user joined classroom",
			"public_id", s.active.PublicID, "code", code)
	}

	cp := *s.active
	return &cp, nil
}
