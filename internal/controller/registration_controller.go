// FILE: internal/controller/registration_controller.go
package controller

import (
	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/serverutils"
	"ocbs-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRegistrationController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type registrationController struct {
	registrationService service.IRegistrationService
}

func NewRegistrationController(registrationService service.IRegistrationService) IRegistrationController {
	return &registrationController{
		registrationService: registrationService,
	}
}

func (c *registrationController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/registrations")
	h.Get("/", c.List)
	h.Post("/", jwtMiddleware, c.Register)
	h.Get("/me", jwtMiddleware, c.Mine)
	h.Delete("/me", jwtMiddleware, c.Withdraw)
	h.Patch("/:id/payment", jwtMiddleware, serverutils.RequireRole(string(entity.PlayerRoleAdmin)), c.UpdatePayment)
}

func (c *registrationController) List(ctx *fiber.Ctx) error {
	res, err := c.registrationService.ListActive(ctx.UserContext())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Registrations retrieved", res))
}

func (c *registrationController) Register(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFrom(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.CreateRegistrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.registrationService.Register(ctx.UserContext(), userId, &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registered", res))
}

func (c *registrationController) Mine(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFrom(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.registrationService.Mine(ctx.UserContext(), userId)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Registration retrieved", res))
}

func (c *registrationController) Withdraw(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFrom(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	if err := c.registrationService.Withdraw(ctx.UserContext(), userId); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Registration withdrawn", nil))
}

func (c *registrationController) UpdatePayment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid registration ID"))
	}

	var req dto.UpdatePaymentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.registrationService.UpdatePaymentStatus(ctx.UserContext(), id, &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment status updated", res))
}
