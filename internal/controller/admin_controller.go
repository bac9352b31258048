package controller

import (
	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/logger"
	"codebiruni-be/internal/pkg/serverutils"
	"codebiruni-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminController interface {
	RegisterRoutes(api fiber.Router)
}

type adminController struct {
	dashboardService service.IDashboardService
	log              logger.ILogger
}

func NewAdminController(dashboardService service.IDashboardService, log logger.ILogger) AdminController {
	return &adminController{
		dashboardService: dashboardService,
		log:              log,
	}
}

func (c *adminController) RegisterRoutes(api fiber.Router) {
	group := api.Group("/admin/v1")
	group.Get("/dashboard", c.Dashboard)
	group.Get("/logs", c.GetLogs)
	group.Get("/logs/:id", c.GetLogById)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	stats, err := c.dashboardService.Stats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", stats))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var query dto.LogQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	logs, err := c.log.GetLogs(query.Level, query.Limit, query.Offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetLogById(ctx *fiber.Ctx) error {
	entry, err := c.log.GetLogById(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Log details", entry))
}
