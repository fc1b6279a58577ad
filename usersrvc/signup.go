package usersrvc

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/logger"
	"golang.org/x/crypto/bcrypt"
)

type SignupParams struct {
	Email    string
	Password string
	Name     string
	Role     Role
	// optional profile fields
	Bio        string
	Phone      string
	Department string // lecturers only
}

// Signup registers a new user and makes them the active session user. The
// email must not already be registered; a failed signup leaves the store
// unchanged.
func (s *UserSrvc) Signup(ctx context.Context, p SignupParams) (*User, error) {
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrNameEmpty()
	}
	if p.Password == "" {
		return nil, ErrPasswordEmpty()
	}
	if _, err := ParseRole(string(p.Role)); err != nil {
		return nil, err
	}

	// The password is stored hashed but never verified at login; real
	// credential checks belong to a future backend.
	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrInternal(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, p.Email) {
			return nil, ErrEmailExists()
		}
	}

	row := storedUser{
		User: User{
			UUID:             uuid.New(),
			PublicID:         s.newPublicID(p.Role),
			Email:            p.Email,
			Name:             p.Name,
			Role:             p.Role,
			JoinedClassrooms: []string{},
			Bio:              p.Bio,
			Phone:            p.Phone,
			Department:       p.Department,
			CreatedAt:        time.Now(),
		},
		BcryptPwd: bcryptPwd,
	}

	s.users = append(s.users, row)
	active := row.User
	s.active = &active

	logger.FromContext(ctx).Info("user signed up",
		"public_id", row.PublicID, "role", row.Role)

	res := row.User
	return &res, nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailInvalid()
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid()
	}
	return nil
}
