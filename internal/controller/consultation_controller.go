package controller

import (
	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/pkg/serverutils"
	"legal-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConsultationController interface {
	RegisterRoutes(r fiber.Router)
	Book(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type consultationController struct {
	service service.IConsultationService
}

func NewConsultationController(service service.IConsultationService) IConsultationController {
	return &consultationController{service: service}
}

func (c *consultationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/consultations")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Book)
	h.Get("", c.GetAll)
	h.Delete(":id", c.Cancel)
}

func (c *consultationController) Book(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BookConsultationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Book(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success book consultation", res))
}

func (c *consultationController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get consultations", res))
}

func (c *consultationController) Cancel(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.service.Cancel(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success cancel consultation", nil))
}
