package service

import (
	"errors"
	"testing"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *auth.JWTService) {
	t.Helper()
	userRepo := newFakeUserRepo()
	jwtService := auth.NewJWTService("auth-test-secret")
	return NewAuthService(userRepo, jwtService), userRepo, jwtService
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)

	err := svc.Register(dto.RegisterDTO{Username: "carol", Email: "carol@example.com", Password: "plaintext1"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, err := userRepo.FindByEmail("carol@example.com")
	if err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Errorf("Role = %q, want %q; registration never grants admin", user.Role, model.RoleUser)
	}
	if user.Password == "plaintext1" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(user.Password, "plaintext1") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if err := svc.Register(dto.RegisterDTO{Username: "carol", Email: "carol@example.com", Password: "plaintext1"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := svc.Register(dto.RegisterDTO{Username: "carol2", Email: "carol@example.com", Password: "plaintext2"})
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _, jwtService := newAuthFixture(t)

	if err := svc.Register(dto.RegisterDTO{Username: "carol", Email: "carol@example.com", Password: "plaintext1"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	resp, err := svc.Login(dto.LoginDTO{Email: "carol@example.com", Password: "plaintext1"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login response has no token")
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token UserID = %d, want %d", claims.UserID, resp.User.ID)
	}
	if claims.Role != model.RoleUser {
		t.Errorf("token Role = %q, want %q", claims.Role, model.RoleUser)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if err := svc.Register(dto.RegisterDTO{Username: "carol", Email: "carol@example.com", Password: "plaintext1"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login(dto.LoginDTO{Email: "carol@example.com", Password: "wrong"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(dto.LoginDTO{Email: "nobody@example.com", Password: "plaintext1"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
