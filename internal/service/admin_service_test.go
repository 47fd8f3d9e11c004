package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/session"
)

func newAdminFixture() (AdminService, *fakeAdminRepo, *session.MemoryStore) {
	repo := &fakeAdminRepo{admins: []domain.Admin{
		{ID: 1, Username: "admin", Password: "admin123", Email: "admin@project.com"},
	}}
	sessions := session.NewMemoryStore(time.Hour)
	return NewAdminService(repo, sessions), repo, sessions
}

func TestAdminServiceLogin(t *testing.T) {
	tests := []struct {
		name     string
		input    LoginInput
		wantErr  error
		wantText string
	}{
		{name: "missing password", input: LoginInput{Username: strPtr("admin")}, wantText: "Username and password are required"},
		{name: "missing username", input: LoginInput{Password: strPtr("admin123")}, wantText: "Username and password are required"},
		{name: "wrong password", input: LoginInput{Username: strPtr("admin"), Password: strPtr("nope")}, wantErr: ErrInvalidCredentials},
		{name: "password case matters", input: LoginInput{Username: strPtr("admin"), Password: strPtr("ADMIN123")}, wantErr: ErrInvalidCredentials},
		{name: "password is not trimmed", input: LoginInput{Username: strPtr("admin"), Password: strPtr(" admin123")}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", input: LoginInput{Username: strPtr("root"), Password: strPtr("admin123")}, wantErr: ErrInvalidCredentials},
		{name: "username is trimmed", input: LoginInput{Username: strPtr("  admin "), Password: strPtr("admin123")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAdminFixture()
			sess, err := svc.Login(context.Background(), tt.input)

			switch {
			case tt.wantText != "":
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Message != tt.wantText {
					t.Fatalf("expected validation error %q, got %v", tt.wantText, err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !sess.Authenticated() || sess.Username != "admin" || sess.Email != "admin@project.com" {
					t.Errorf("unexpected session: %+v", sess)
				}
			}
		})
	}
}

func TestAdminServiceSessionLifecycle(t *testing.T) {
	svc, _, _ := newAdminFixture()
	ctx := context.Background()

	if sess, err := svc.Resolve(ctx, ""); err != nil || sess != nil {
		t.Fatalf("empty token should be anonymous, got %+v, %v", sess, err)
	}

	sess, err := svc.Login(ctx, LoginInput{Username: strPtr("admin"), Password: strPtr("admin123")})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resolved, err := svc.Resolve(ctx, sess.Token)
	if err != nil || !resolved.Authenticated() {
		t.Fatalf("expected authenticated session, got %+v, %v", resolved, err)
	}

	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	resolved, err = svc.Resolve(ctx, sess.Token)
	if err != nil || resolved != nil {
		t.Errorf("expected anonymous after logout, got %+v, %v", resolved, err)
	}
}

func TestAdminServiceListRequiresSessionAndHidesPasswords(t *testing.T) {
	svc, _, _ := newAdminFixture()
	ctx := context.Background()

	if _, err := svc.List(ctx, nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	admins, err := svc.List(ctx, admin)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(admins) != 1 || admins[0].Password != "" {
		t.Errorf("expected sanitized admins, got %+v", admins)
	}
}

func TestAdminServiceCreateAndSetPassword(t *testing.T) {
	svc, repo, _ := newAdminFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, AdminInput{Username: "ops", Password: "pw", Email: "ops"}); err == nil {
		t.Error("expected invalid email to be rejected")
	}
	if _, err := svc.Create(ctx, AdminInput{Username: " ", Password: "pw", Email: "ops@example.com"}); err == nil {
		t.Error("expected blank username to be rejected")
	}

	id, err := svc.Create(ctx, AdminInput{Username: " ops ", Password: " pw ", Email: "ops@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created := repo.admins[len(repo.admins)-1]
	if created.Username != "ops" || created.Password != " pw " {
		t.Errorf("expected trimmed username and verbatim password, got %+v", created)
	}

	if err := svc.SetPassword(ctx, id, "new"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Username: strPtr("ops"), Password: strPtr("new")}); err != nil {
		t.Errorf("expected login with new password, got %v", err)
	}

	if err := svc.SetPassword(ctx, 99, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.SetPassword(ctx, id, ""); err == nil {
		t.Error("expected empty password to be rejected")
	}
}
