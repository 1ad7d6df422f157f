// FILE: internal/controller/mappool_controller.go
package controller

import (
	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/pkg/serverutils"
	"ocbs-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMapPoolController interface {
	RegisterRoutes(r fiber.Router)
}

type mapPoolController struct {
	mapPoolService service.IMapPoolService
	logger         logger.ILogger
}

func NewMapPoolController(mapPoolService service.IMapPoolService, log logger.ILogger) IMapPoolController {
	return &mapPoolController{
		mapPoolService: mapPoolService,
		logger:         log,
	}
}

func (c *mapPoolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mappool")
	h.Get("/stages", c.Stages)
	h.Get("/:stage", c.GetPool)
}

// GetPool serves the stage's pool artifact as stored in the cache.
func (c *mapPoolController) GetPool(ctx *fiber.Ctx) error {
	stage, err := entity.ParseStageSlug(ctx.Params("stage"))
	if err != nil {
		return writeError(ctx, err)
	}

	body, err := c.mapPoolService.GetPoolArtifact(ctx.UserContext(), stage)
	if err != nil {
		if statusOf(err) >= fiber.StatusInternalServerError {
			c.logger.Error("MapPoolController", "Failed to serve pool", map[string]interface{}{
				"stage": stage.Slug(),
				"error": err,
			})
		}
		return writeError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(body)
}

func (c *mapPoolController) Stages(ctx *fiber.Ctx) error {
	stages := c.mapPoolService.Stages()
	res := make([]dto.StageResponse, 0, len(stages))
	for _, s := range stages {
		res = append(res, dto.StageResponse{Id: int(s), Slug: s.Slug()})
	}
	return ctx.JSON(serverutils.SuccessResponse("Stages retrieved", res))
}
