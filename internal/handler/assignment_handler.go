package handler

import (
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AssignmentHandler struct {
	repo     repository.AssignmentRepository
	schedule *usecase.ScheduleUsecase
}

func NewAssignmentHandler(repo repository.AssignmentRepository, schedule *usecase.ScheduleUsecase) *AssignmentHandler {
	return &AssignmentHandler{repo: repo, schedule: schedule}
}

type AssignmentRequest struct {
	CycleID   uint   `json:"cycle_id"`
	StartDate string `json:"start_date"`
}

func (h *AssignmentHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *AssignmentHandler) GetByEmployee(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	a, err := h.repo.GetByEmployee(employeeID)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": a})
}

// Set assigns a cycle to the employee in the path, replacing any previous one.
func (h *AssignmentHandler) Set(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.CycleID == 0 {
		return badRequest(c, "cycle_id is required")
	}

	a, err := h.schedule.SetAssignment(employeeID, req.CycleID, req.StartDate)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "assignment saved", "data": a})
}

func (h *AssignmentHandler) Remove(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	if err := h.schedule.RemoveAssignment(employeeID); err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "assignment removed"})
}
