// FILE: internal/controller/auth_controller.go
package controller

import (
	"ocbs-be/internal/dto"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/pkg/serverutils"
	"ocbs-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const bannerMessage = "Backend API for the OCBS website. Not for public use."

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
}

type authController struct {
	authService service.IAuthService
	logger      logger.ILogger
}

func NewAuthController(authService service.IAuthService, log logger.ILogger) IAuthController {
	return &authController{
		authService: authService,
		logger:      log,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Banner)
	r.Get("/auth/osu", c.Redirect)
	r.Get("/loginFlow", c.LoginFlow)
}

func (c *authController) Banner(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": bannerMessage})
}

func (c *authController) Redirect(ctx *fiber.Ctx) error {
	url, err := c.authService.LoginURL()
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Redirect(url, fiber.StatusTemporaryRedirect)
}

// LoginFlow finishes the osu! authorization-code login for the frontend.
func (c *authController) LoginFlow(ctx *fiber.Ctx) error {
	var req dto.LoginFlowRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.LoginFlow(ctx.UserContext(), &req)
	if err != nil {
		if statusOf(err) >= fiber.StatusInternalServerError {
			c.logger.Error("AuthController", "Login flow failed", map[string]interface{}{
				"api_id": req.ApiId,
				"error":  err,
			})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(res)
}
