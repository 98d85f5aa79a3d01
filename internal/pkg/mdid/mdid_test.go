package mdid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydestination/backend/internal/constant"
)

func extract(t *testing.T, prepare func(req *http.Request)) string {
	t.Helper()

	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = Extract(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	prepare(req)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return got
}

func TestExtract(t *testing.T) {
	t.Run("AuthorizationHeader", func(t *testing.T) {
		got := extract(t, func(req *http.Request) {
			req.Header.Set(fiber.HeaderAuthorization, constant.UserIDAuthorizationRealm+" user-123")
		})
		assert.Equal(t, "user-123", got)
	})

	t.Run("CookieFallback", func(t *testing.T) {
		got := extract(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: constant.UserIDCookieKey, Value: "cookie-user"})
		})
		assert.Equal(t, "cookie-user", got)
	})

	t.Run("HeaderWinsOverCookie", func(t *testing.T) {
		got := extract(t, func(req *http.Request) {
			req.Header.Set(fiber.HeaderAuthorization, constant.UserIDAuthorizationRealm+" header-user")
			req.AddCookie(&http.Cookie{Name: constant.UserIDCookieKey, Value: "cookie-user"})
		})
		assert.Equal(t, "header-user", got)
	})

	t.Run("ForeignRealmIgnored", func(t *testing.T) {
		got := extract(t, func(req *http.Request) {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer some-token")
		})
		assert.Empty(t, got)
	})

	t.Run("Anonymous", func(t *testing.T) {
		got := extract(t, func(req *http.Request) {})
		assert.Empty(t, got)
	})
}

func TestInject(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		Inject(c, "user-123")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, "user-123", resp.Header.Get(constant.UserIDSetHeader))

	found := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == constant.UserIDCookieKey {
			found = true
			assert.Equal(t, "user-123", cookie.Value)
		}
	}
	assert.True(t, found, "expected the user id cookie to be set")
}
