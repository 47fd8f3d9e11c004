package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/session"
)

// AdminService handles admin authentication and account management.
type AdminService interface {
	Login(ctx context.Context, in LoginInput) (*session.Session, error)
	Logout(ctx context.Context, token string) error
	// Resolve maps a session token to its session. Unknown, expired or empty
	// tokens yield a nil session and no error.
	Resolve(ctx context.Context, token string) (*session.Session, error)
	List(ctx context.Context, sess *session.Session) ([]domain.Admin, error)
	Create(ctx context.Context, in AdminInput) (int64, error)
	SetPassword(ctx context.Context, id int64, password string) error
}

type adminService struct {
	admins   repository.AdminRepository
	sessions session.Store
}

func NewAdminService(admins repository.AdminRepository, sessions session.Store) AdminService {
	return &adminService{
		admins:   admins,
		sessions: sessions,
	}
}

func (s *adminService) Login(ctx context.Context, in LoginInput) (*session.Session, error) {
	if in.Username == nil || in.Password == nil {
		return nil, invalid("Username and password are required")
	}
	username := strings.TrimSpace(*in.Username)
	password := *in.Password

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !passwordMatches(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, admin.ID, admin.Username, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *adminService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *adminService) Resolve(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

func (s *adminService) List(ctx context.Context, sess *session.Session) ([]domain.Admin, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthorized
	}
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i] = sanitizeAdmin(admins[i])
	}
	return admins, nil
}

func (s *adminService) Create(ctx context.Context, in AdminInput) (int64, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || in.Password == "" || email == "" {
		return 0, invalid("Username, password and email are required")
	}
	if !validEmail(email) {
		return 0, invalid("Invalid email format")
	}
	return s.admins.Create(ctx, username, in.Password, email)
}

func (s *adminService) SetPassword(ctx context.Context, id int64, password string) error {
	if password == "" {
		return invalid("Password is required")
	}
	affected, err := s.admins.UpdatePassword(ctx, id, password)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Admin"}
	}
	return nil
}

// passwordMatches is the only place stored credentials are compared. Passwords
// are kept as given, so this is an exact, case-sensitive match.
func passwordMatches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func sanitizeAdmin(admin domain.Admin) domain.Admin {
	admin.Password = ""
	return admin
}
