package handler

import (
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type CycleHandler struct {
	repo    repository.CycleRepository
	usecase *usecase.CycleUsecase
}

func NewCycleHandler(repo repository.CycleRepository, u *usecase.CycleUsecase) *CycleHandler {
	return &CycleHandler{repo: repo, usecase: u}
}

func (h *CycleHandler) GetAll(c *fiber.Ctx) error {
	cycles, err := h.repo.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cycles})
}

func (h *CycleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	cycle, err := h.repo.GetByID(id)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": cycle})
}

func (h *CycleHandler) Create(c *fiber.Ctx) error {
	var in usecase.CycleInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	cycle, err := h.usecase.Create(in)
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "cycle created", "data": cycle})
}

func (h *CycleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	var in usecase.CycleInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	cycle, err := h.usecase.Update(id, in)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "cycle updated", "data": cycle})
}

func (h *CycleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if err := h.usecase.Delete(id); err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "cycle deleted"})
}
