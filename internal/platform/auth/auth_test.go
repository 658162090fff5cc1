package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, roles []string) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name:  "Operator One",
		Roles: roles,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doRequest(mw echo.MiddlewareFunc, handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(handler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	token := signToken(t, []string{"operator"})
	var gotID string
	var gotRoles []string
	handler := func(c echo.Context) error {
		gotID = UserIDFromContext(c.Request().Context())
		gotRoles = RolesFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	rec := doRequest(Middleware(testSecret), handler, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if gotID != "user-1" {
		t.Errorf("user id: %q", gotID)
	}
	if len(gotRoles) != 1 || gotRoles[0] != "operator" {
		t.Errorf("roles: %v", gotRoles)
	}
}

func TestMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	if rec := doRequest(Middleware(testSecret), okHandler, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header: %d", rec.Code)
	}
	if rec := doRequest(Middleware(testSecret), okHandler, "Bearer not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: %d", rec.Code)
	}
	if rec := doRequest(Middleware(testSecret), okHandler, "Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: %d", rec.Code)
	}

	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("other"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if rec := doRequest(Middleware(testSecret), okHandler, "Bearer "+wrongKey); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	chain := func(roles []string, required ...string) int {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, roles))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		err := Middleware(testSecret)(RequireRole(required...)(okHandler))(c)
		if err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := chain([]string{"operator"}, "operator"); code != http.StatusOK {
		t.Errorf("operator on operator route: %d", code)
	}
	if code := chain([]string{"admin"}, "operator"); code != http.StatusOK {
		t.Errorf("admin bypass: %d", code)
	}
	if code := chain([]string{"operator"}, "admin"); code != http.StatusForbidden {
		t.Errorf("operator on admin route: %d", code)
	}
	if code := chain(nil, "operator"); code != http.StatusForbidden {
		t.Errorf("no roles: %d", code)
	}
}

func TestDevMiddlewareGrantsAdmin(t *testing.T) {
	rec := doRequest(DevMiddleware(), func(c echo.Context) error {
		roles := RolesFromContext(c.Request().Context())
		if len(roles) != 1 || roles[0] != "admin" {
			t.Errorf("roles: %v", roles)
		}
		return c.NoContent(http.StatusOK)
	}, "")
	if rec.Code != http.StatusOK {
		t.Errorf("status: %d", rec.Code)
	}
}
