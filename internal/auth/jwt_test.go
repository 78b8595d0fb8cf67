package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/toeflcenter/backend/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{Username: "alice", Email: "alice@example.com", Role: model.RoleAdmin}
	user.ID = 42

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, model.RoleAdmin)
	}
	if claims.ID == "" {
		t.Error("token has no JTI")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one")
	verifier := NewJWTService("secret-two")
	user := &model.User{Role: model.RoleUser}
	user.ID = 1

	token, err := issuer.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret")

	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: 7,
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret")
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc123", "abc123", false},
		{"", "", true},
		{"abc123", "", true},
		{"Basic abc123", "", true},
		{"bearer abc123", "", true}, // scheme is case sensitive
	}
	for _, tc := range cases {
		got, err := ExtractBearerToken(tc.header)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ExtractBearerToken(%q): err = %v, want ErrInvalidFormat", tc.header, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractBearerToken(%q): unexpected error %v", tc.header, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
