package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService("middleware-test-secret")
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", mw.RequireAuth(), func(ctx *gin.Context) {
		id, _ := CurrentUserID(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": id, "admin": IsAdmin(ctx)})
	})
	router.GET("/admin-only", mw.RequireAuth(), mw.RequireRole(model.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, id uint, role string) string {
	t.Helper()
	user := &model.User{Role: role}
	user.ID = id
	token, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	return token
}

func TestRequireAuthNoToken(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	router, jwtService := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 15, model.RoleUser))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRoleRejectsUser(t *testing.T) {
	router, jwtService := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 15, model.RoleUser))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	router, jwtService := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 1, model.RoleAdmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
