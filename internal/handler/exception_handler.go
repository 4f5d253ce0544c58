package handler

import (
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ExceptionHandler struct {
	repo     repository.ExceptionRepository
	schedule *usecase.ScheduleUsecase
}

func NewExceptionHandler(repo repository.ExceptionRepository, schedule *usecase.ScheduleUsecase) *ExceptionHandler {
	return &ExceptionHandler{repo: repo, schedule: schedule}
}

// exceptionView restores the 0 / shift-id "type" encoding on the way out.
type exceptionView struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employee_id"`
	AssignmentID uint   `json:"assignment_id"`
	Date         string `json:"date"`
	Type         int    `json:"type"`
	Note         string `json:"note"`
}

// GET /api/admin/exceptions?employee_id=&from=&to=
func (h *ExceptionHandler) Find(c *fiber.Ctx) error {
	var filter repository.ExceptionFilter
	var err error
	if filter.EmployeeID, err = queryOptionalUint(c, "employee_id"); err != nil {
		return respond(c, err)
	}
	if filter.From, err = queryDateString(c, "from"); err != nil {
		return respond(c, err)
	}
	if filter.To, err = queryDateString(c, "to"); err != nil {
		return respond(c, err)
	}

	rows, err := h.repo.Find(filter)
	if err != nil {
		return err
	}
	out := make([]exceptionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, exceptionView{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			AssignmentID: r.AssignmentID,
			Date:         r.Date,
			Type:         scheduling.TypeOf(scheduling.SlotFromPtr(r.ShiftID)),
			Note:         r.Note,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

func (h *ExceptionHandler) Set(c *fiber.Ctx) error {
	var in usecase.ExceptionInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.EmployeeID == 0 || in.AssignmentID == 0 {
		return badRequest(c, "employee_id and assignment_id are required")
	}
	ex, err := h.schedule.SetException(in)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "exception saved", "data": ex})
}

type BatchExceptionRequest struct {
	Items []usecase.ExceptionInput `json:"items"`
}

func (h *ExceptionHandler) SetBatch(c *fiber.Ctx) error {
	var req BatchExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.Items) == 0 {
		return badRequest(c, "items must not be empty")
	}
	n, err := h.schedule.SetExceptions(req.Items)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "exceptions saved", "count": n})
}

func (h *ExceptionHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "exception deleted"})
}
