package controller

import (
	"fmt"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/serverutils"
	"codebiruni-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContentController mounts the standard CRUD surface for one content
// collection under /<slug>/v1.
type ContentController[M any, P service.EntityPtr[M]] struct {
	svc  *service.ContentService[M, P]
	slug string
	// label is the human name used in response messages, e.g. "Project".
	label string
}

func NewContentController[M any, P service.EntityPtr[M]](
	svc *service.ContentService[M, P],
	slug, label string,
) *ContentController[M, P] {
	return &ContentController[M, P]{
		svc:   svc,
		slug:  slug,
		label: label,
	}
}

func (c *ContentController[M, P]) RegisterRoutes(api fiber.Router) {
	group := api.Group("/" + c.slug + "/v1")
	group.Get("/", c.List)
	group.Post("/", c.Create)
	group.Delete("/", c.DeleteMany)
	group.Get("/:id", c.Get)
	group.Put("/:id", c.Update)
	group.Delete("/:id", c.Delete)
}

func (c *ContentController[M, P]) List(ctx *fiber.Ctx) error {
	var query dto.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	items, err := c.svc.List(ctx.Context(), query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse(c.label+" list", items))
}

func (c *ContentController[M, P]) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	item, err := c.svc.Get(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if item == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("%s not found", c.label)))
	}

	return ctx.JSON(serverutils.SuccessResponse(c.label+" details", item))
}

func (c *ContentController[M, P]) Create(ctx *fiber.Ctx) error {
	var m M
	if err := ctx.BodyParser(&m); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&m); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.svc.Create(ctx.Context(), P(&m)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(c.label+" created", &m))
}

func (c *ContentController[M, P]) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	var m M
	if err := ctx.BodyParser(&m); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&m); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.svc.Update(ctx.Context(), id, P(&m)); err != nil {
		if isNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("%s not found", c.label)))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse(c.label+" updated", &m))
}

func (c *ContentController[M, P]) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	if err := c.svc.Delete(ctx.Context(), id); err != nil {
		if isNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("%s not found", c.label)))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any](c.label+" deleted", nil))
}

func (c *ContentController[M, P]) DeleteMany(ctx *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	count, err := c.svc.DeleteMany(ctx.Context(), req.Ids)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.DeletedResponse(c.label+" bulk delete", count))
}
