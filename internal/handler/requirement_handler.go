package handler

import (
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type RequirementHandler struct {
	repo    repository.RequirementRepository
	usecase *usecase.RequirementUsecase
}

func NewRequirementHandler(repo repository.RequirementRepository, u *usecase.RequirementUsecase) *RequirementHandler {
	return &RequirementHandler{repo: repo, usecase: u}
}

func (h *RequirementHandler) GetWeekly(c *fiber.Ctx) error {
	list, err := h.repo.GetWeekly()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *RequirementHandler) SetWeekly(c *fiber.Ctx) error {
	var in usecase.RequirementInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	req, err := h.usecase.SetWeekly(in)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "requirement saved", "data": req})
}

func (h *RequirementHandler) DeleteWeekly(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if err := h.usecase.DeleteWeekly(id); err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "requirement deleted"})
}

// GET /api/admin/requirements/special?from=&to=
func (h *RequirementHandler) GetSpecial(c *fiber.Ctx) error {
	from, err := queryDateString(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDateString(c, "to")
	if err != nil {
		return respond(c, err)
	}
	list, err := h.repo.GetSpecial(from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *RequirementHandler) SetSpecial(c *fiber.Ctx) error {
	var in usecase.RequirementInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	req, err := h.usecase.SetSpecial(in)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "special requirement saved", "data": req})
}

func (h *RequirementHandler) DeleteSpecial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if err := h.usecase.DeleteSpecial(id); err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "special requirement deleted"})
}
