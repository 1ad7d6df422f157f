package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-secret"

type stubRegistrationService struct {
	registered map[int64]bool
	payments   map[uuid.UUID]string
}

func (s *stubRegistrationService) Register(ctx context.Context, osuUserId int64, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	if s.registered[osuUserId] {
		return nil, entity.ErrRegistrationExists
	}
	s.registered[osuUserId] = true
	return &dto.RegistrationResponse{OsuUserId: osuUserId, Discord: req.Discord, Status: "registered"}, nil
}

func (s *stubRegistrationService) Mine(ctx context.Context, osuUserId int64) (*dto.RegistrationResponse, error) {
	if !s.registered[osuUserId] {
		return nil, entity.ErrRegistrationNotFound
	}
	return &dto.RegistrationResponse{OsuUserId: osuUserId}, nil
}

func (s *stubRegistrationService) Withdraw(ctx context.Context, osuUserId int64) error {
	if !s.registered[osuUserId] {
		return entity.ErrRegistrationNotFound
	}
	delete(s.registered, osuUserId)
	return nil
}

func (s *stubRegistrationService) ListActive(ctx context.Context) ([]dto.PublicRegistrationResponse, error) {
	return []dto.PublicRegistrationResponse{}, nil
}

func (s *stubRegistrationService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.RegistrationResponse, error) {
	s.payments[id] = req.PaymentStatus
	return &dto.RegistrationResponse{Id: id, PaymentStatus: req.PaymentStatus}, nil
}

func newRegistrationApp() (*fiber.App, *stubRegistrationService) {
	svc := &stubRegistrationService{registered: map[int64]bool{}, payments: map[uuid.UUID]string{}}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewRegistrationController(svc).RegisterRoutes(app.Group("/api"), serverutils.NewJwtMiddleware(testSecret))
	return app, svc
}

func bearer(t *testing.T, osuUserId int64, role entity.PlayerRole) string {
	t.Helper()
	token, err := serverutils.SignToken(testSecret, osuUserId, string(role), time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, app *fiber.App, method, path, body, auth string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRegistrationRoutes(t *testing.T) {
	app, svc := newRegistrationApp()
	player := bearer(t, 2, entity.PlayerRolePlayer)
	body := `{"discord":"peppy","timezone":"UTC+8"}`

	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "POST", "/api/registrations", body, ""))
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, "POST", "/api/registrations", `{"discord":"p"}`, player))
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, "POST", "/api/registrations",
		`{"discord":"peppy","timezone":"UTC","contact_email":"not-an-email"}`, player))

	assert.Equal(t, fiber.StatusCreated, do(t, app, "POST", "/api/registrations", body, player))
	assert.True(t, svc.registered[2])
	assert.Equal(t, fiber.StatusConflict, do(t, app, "POST", "/api/registrations", body, player))

	assert.Equal(t, fiber.StatusOK, do(t, app, "GET", "/api/registrations/me", "", player))
	assert.Equal(t, fiber.StatusOK, do(t, app, "DELETE", "/api/registrations/me", "", player))
	assert.Equal(t, fiber.StatusNotFound, do(t, app, "GET", "/api/registrations/me", "", player))

	assert.Equal(t, fiber.StatusOK, do(t, app, "GET", "/api/registrations", "", ""))
}

func TestPaymentRouteRequiresAdmin(t *testing.T) {
	app, svc := newRegistrationApp()
	id := uuid.New()
	path := "/api/registrations/" + id.String() + "/payment"
	body := `{"payment_status":"paid"}`

	assert.Equal(t, fiber.StatusForbidden, do(t, app, "PATCH", path, body, bearer(t, 2, entity.PlayerRolePlayer)))

	admin := bearer(t, 124493, entity.PlayerRoleAdmin)
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, "PATCH", path, `{"payment_status":"refunded"}`, admin))
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, "PATCH", "/api/registrations/not-a-uuid/payment", body, admin))
	assert.Equal(t, fiber.StatusOK, do(t, app, "PATCH", path, body, admin))
	assert.Equal(t, "paid", svc.payments[id])
}
