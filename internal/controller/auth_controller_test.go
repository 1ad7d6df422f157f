package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct{}

func (stubAuthService) LoginURL() (string, error) {
	return "https://osu.ppy.sh/oauth/authorize?state=abc", nil
}

func (stubAuthService) LoginFlow(ctx context.Context, req *dto.LoginFlowRequest) (*dto.LoginFlowResponse, error) {
	if req.Code == "" {
		return nil, entity.ErrMissingAuthCode
	}
	return &dto.LoginFlowResponse{Username: "peppy", UserId: 2, Avatar: "https://a.ppy.sh/2", AccessToken: "jwt"}, nil
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAuthController(stubAuthService{}, logger.NewNopLogger()).RegisterRoutes(app.Group("/api"))
	return app
}

func TestBanner(t *testing.T) {
	resp, err := newAuthApp().Test(httptest.NewRequest("GET", "/api/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Backend API for the OCBS website. Not for public use.", body["message"])
}

func TestOsuRedirect(t *testing.T) {
	resp, err := newAuthApp().Test(httptest.NewRequest("GET", "/api/auth/osu", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://osu.ppy.sh/oauth/authorize?state=abc", resp.Header.Get("Location"))
}

func TestLoginFlowRoute(t *testing.T) {
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/loginFlow?apiId=s1&code=xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]interface{}{
		"username":     "peppy",
		"userId":       float64(2),
		"avatar":       "https://a.ppy.sh/2",
		"access_token": "jwt",
	}, body)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/loginFlow?apiId=s1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errBody serverutils.Response[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "No code provided", errBody.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/loginFlow?code=xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
