package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJwtApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", NewJwtMiddleware("s3cret"), func(ctx *fiber.Ctx) error {
		id, ok := UserIdFrom(ctx)
		if !ok {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		return ctx.JSON(fiber.Map{"id": id})
	})
	app.Get("/admin", NewJwtMiddleware("s3cret"), RequireRole("admin"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, auth string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJwtMiddleware(t *testing.T) {
	app := newJwtApp()

	valid, err := SignToken("s3cret", 124493, "player", time.Hour)
	require.NoError(t, err)
	expired, err := SignToken("s3cret", 124493, "player", -time.Minute)
	require.NoError(t, err)
	forged, err := SignToken("other", 124493, "admin", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, get(t, app, "/me", "Bearer "+valid))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", ""))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", valid))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", "Bearer "+expired))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", "Bearer "+forged))
}

func TestRequireRole(t *testing.T) {
	app := newJwtApp()

	player, err := SignToken("s3cret", 2, "player", time.Hour)
	require.NoError(t, err)
	admin, err := SignToken("s3cret", 2, "admin", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/admin", "Bearer "+player))
	assert.Equal(t, fiber.StatusNoContent, get(t, app, "/admin", "Bearer "+admin))
}
