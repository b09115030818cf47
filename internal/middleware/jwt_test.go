package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pitchside/turf-booking/internal/utils"
)

const testSecret = "middleware-test-secret"

// echoWithGuard builds an echo instance with a single guarded route that
// reports the identity the middleware stored in context.
func echoWithGuard(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		id, ok := UserID(c)
		if !ok {
			return c.String(http.StatusInternalServerError, "no user id in context")
		}
		role, _ := c.Get(CtxRole).(string)
		return c.JSON(http.StatusOK, echo.Map{"user_id": id, "role": role})
	}, mw...)
	return e
}

func get(e *echo.Echo, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_ValidToken(t *testing.T) {
	t.Parallel()
	e := echoWithGuard(JWTAuth(testSecret))

	tok, err := utils.NewAccessToken(testSecret, 42, "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	rec := get(e, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestJWTAuth_Rejections(t *testing.T) {
	t.Parallel()
	e := echoWithGuard(JWTAuth(testSecret))

	expired, err := utils.NewAccessToken(testSecret, 42, "user", -1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	forged, err := utils.NewAccessToken("other-secret", 42, "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired", "Bearer " + expired.Token},
		{"wrong secret", "Bearer " + forged.Token},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := get(e, tc.header); rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	e := echoWithGuard(JWTAuth(testSecret), RequireRole("admin"))

	adminTok, err := utils.NewAccessToken(testSecret, 1, "admin", 1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	userTok, err := utils.NewAccessToken(testSecret, 2, "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	if rec := get(e, "Bearer "+adminTok.Token); rec.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", rec.Code)
	}
	if rec := get(e, "Bearer "+userTok.Token); rec.Code != http.StatusForbidden {
		t.Fatalf("user should be forbidden, got %d", rec.Code)
	}
}
