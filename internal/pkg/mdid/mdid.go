// Package mdid extracts the opaque user id issued by the external identity
// provider from incoming requests. The backend does not verify provider tokens
// itself; it trusts the id the client presents, the same way the original app
// trusted the signed-in uid it held locally.
package mdid

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mydestination/backend/internal/constant"
)

func Extract(ctx *fiber.Ctx) string {
	authorization := ctx.Get(fiber.HeaderAuthorization)
	userId := ""
	if strings.HasPrefix(authorization, constant.UserIDAuthorizationRealm) {
		userId = strings.TrimSpace(strings.TrimPrefix(authorization, constant.UserIDAuthorizationRealm))
	}

	if userId == "" {
		userId = ctx.Cookies(constant.UserIDCookieKey)
	}

	return userId
}

func Inject(ctx *fiber.Ctx, userId string) {
	userId = url.QueryEscape(userId)

	// Populate cookie
	ctx.Cookie(&fiber.Cookie{
		Name:     constant.UserIDCookieKey,
		Value:    userId,
		MaxAge:   int((time.Hour * 24 * 365).Seconds()),
		Path:     "/",
		Expires:  time.Now().Add(time.Hour * 24 * 365),
		SameSite: "None",
		Secure:   true,
	})

	// Sets the user id in response header, used for scenarios
	// where cookie is not able to be used, such as in the mobile client.
	ctx.Set(constant.UserIDSetHeader, userId)
}
