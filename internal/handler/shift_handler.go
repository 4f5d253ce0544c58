package handler

import (
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ShiftHandler struct {
	repo repository.ShiftRepository
}

func NewShiftHandler(repo repository.ShiftRepository) *ShiftHandler {
	return &ShiftHandler{repo: repo}
}

type ShiftRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}

func (h *ShiftHandler) GetAll(c *fiber.Ctx) error {
	shifts, err := h.repo.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shifts})
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" || req.ShortName == "" {
		return badRequest(c, "name and short_name are required")
	}

	shift := model.ShiftType{Name: req.Name, ShortName: req.ShortName, Color: req.Color, TextColor: req.TextColor}
	if err := h.repo.Create(&shift); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "shift created", "data": shift})
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	shift, err := h.repo.GetByID(id)
	if err != nil {
		return respond(c, err)
	}

	shift.Name = req.Name
	shift.ShortName = req.ShortName
	shift.Color = req.Color
	shift.TextColor = req.TextColor

	if err := h.repo.Update(shift); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "shift updated", "data": shift})
}

// Delete removes a shift type. Cycles and exceptions still pointing at it resolve
// to an unknown shift id rather than failing.
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if _, err := h.repo.GetByID(id); err != nil {
		return respond(c, err)
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "shift deleted"})
}
