package usersrvc

import (
	"context"
	"strings"
)

// UpdateProfileParams carries profile edits. Nil fields are left as-is.
type UpdateProfileParams struct {
	Name       *string
	Bio        *string
	Phone      *string
	Department *string
}

// UpdateProfile edits the active user's profile fields.
func (s *UserSrvc) UpdateProfile(ctx context.Context, p UpdateProfileParams) (*User, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, ErrNameEmpty()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNotLoggedIn()
	}

	if p.Name != nil {
		s.active.Name = *p.Name
	}
	if p.Bio != nil {
		s.active.Bio = *p.Bio
	}
	if p.Phone != nil {
		s.active.Phone = *p.Phone
	}
	if p.Department != nil && s.active.Role == RoleLecturer {
		s.active.Department = *p.Department
	}

	for i := range s.users {
		if s.users[i].UUID == s.active.UUID {
			s.users[i].User = *s.active
			break
		}
	}

	cp := *s.active
	return &cp, nil
}
