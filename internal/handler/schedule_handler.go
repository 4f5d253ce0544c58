package handler

import (
	"schichtplan-backend/internal/scheduling"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	usecase *usecase.ScheduleUsecase
}

func NewScheduleHandler(u *usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{usecase: u}
}

// Resolve answers GET /api/schedule/resolve?employee_id=&date=
func (h *ScheduleHandler) Resolve(c *fiber.Ctx) error {
	employeeID, err := queryRequiredUint(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	date, err := queryDate(c, "date")
	if err != nil {
		return respond(c, err)
	}

	res, err := h.usecase.ResolveShift(employeeID, date)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"employee_id": res.EmployeeID,
		"date":        scheduling.FormatDate(res.Date),
		"weekday":     scheduling.Weekday(res.Date),
		"shift_id":    res.Slot,
		"overridden":  res.Overridden,
	}})
}

// Employee answers GET /api/schedule/employee/:id?from=&to=
func (h *ScheduleHandler) Employee(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	from, err := queryDate(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return respond(c, err)
	}

	days, err := h.usecase.EmployeeSchedule(employeeID, from, to)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"employee_id": employeeID, "data": days})
}
