package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/config"
	"github.com/TriCode435/Wellnest-Smart-Health/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	cfg := &config.Config{JWTSecret: "routes-secret", JWTTTL: time.Hour}
	app := fiber.New()
	RegisterRoutes(app, cfg, NewServices(cfg, nil))
	return app, cfg
}

func statusFor(t *testing.T, app *fiber.App, method, target, token string) int {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/auth/me", "/api/user/profile", "/api/trainer/assigned-users", "/api/admin/users", "/api/workout-plans"} {
		if status := statusFor(t, app, http.MethodGet, target, ""); status != http.StatusUnauthorized {
			t.Fatalf("GET %s: expected 401, got %d", target, status)
		}
	}
}

func TestRoleGroupsRejectOtherRoles(t *testing.T) {
	app, cfg := newTestApp(t)

	token, err := utils.NewJWTIssuer(cfg.JWTSecret, time.Hour).Issue(5, "alex", "USER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/trainer/profile"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPost, "/api/admin/assign?trainerId=1&userId=2"},
		{http.MethodPost, "/api/workout-plans"},
	}
	for _, tc := range cases {
		if status := statusFor(t, app, tc.method, tc.target, token); status != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", tc.method, tc.target, status)
		}
	}
}
