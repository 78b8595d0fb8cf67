package service

import (
	"errors"
	"testing"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", Password: "hash", Role: model.RoleUser}
	if err := repo.Create(user); err != nil {
		t.Fatal(err)
	}
	return user
}

func TestUpdateUserSelfOrAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	owner := seedUser(t, userRepo, "dana")
	other := seedUser(t, userRepo, "erin")

	if _, err := svc.UpdateUser(owner.ID, owner.ID, false, dto.UserUpdateDTO{Username: "dana2"}); err != nil {
		t.Errorf("self update: unexpected error %v", err)
	}

	if _, err := svc.UpdateUser(owner.ID, other.ID, false, dto.UserUpdateDTO{Username: "hijack"}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("update by another user: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.UpdateUser(owner.ID, other.ID, true, dto.UserUpdateDTO{Username: "admin-rename"})
	if err != nil {
		t.Fatalf("admin update: unexpected error %v", err)
	}
	if updated.Username != "admin-rename" {
		t.Errorf("Username = %q, want %q", updated.Username, "admin-rename")
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	user := seedUser(t, userRepo, "dana")

	if _, err := svc.UpdateUser(user.ID, user.ID, false, dto.UserUpdateDTO{Password: "new-secret"}); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}

	stored, err := userRepo.FindByID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Password == "new-secret" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "new-secret") {
		t.Error("stored hash does not verify against the new password")
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	if _, err := svc.GetUser(404); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	if err := svc.DeleteUser(404); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
