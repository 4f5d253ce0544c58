package handler

import (
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type AbsenceHandler struct {
	absences  repository.AbsenceRepository
	overtime  repository.OvertimeRepository
	employees repository.EmployeeRepository
}

func NewAbsenceHandler(absences repository.AbsenceRepository, overtime repository.OvertimeRepository, employees repository.EmployeeRepository) *AbsenceHandler {
	return &AbsenceHandler{absences: absences, overtime: overtime, employees: employees}
}

// AbsenceRequest records one absence per calendar day from StartDate to EndDate.
type AbsenceRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Kind       string `json:"kind"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Note       string `json:"note"`
}

type OvertimeRequest struct {
	EmployeeID uint    `json:"employee_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Note       string  `json:"note"`
}

func validKind(kind string) bool {
	switch kind {
	case model.AbsenceSick, model.AbsenceVacation, model.AbsenceOther:
		return true
	}
	return false
}

// GET /api/admin/absences?employee_id=&kind=&from=&to=
func (h *AbsenceHandler) FindAbsences(c *fiber.Ctx) error {
	employeeID, err := queryOptionalUint(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	from, err := queryDateString(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDateString(c, "to")
	if err != nil {
		return respond(c, err)
	}
	list, err := h.absences.Find(employeeID, strings.ToUpper(c.Query("kind")), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *AbsenceHandler) CreateAbsence(c *fiber.Ctx) error {
	var req AbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.Kind = strings.ToUpper(req.Kind)
	if !validKind(req.Kind) {
		return badRequest(c, "kind must be SICK, VACATION or OTHER")
	}
	if req.EndDate == "" {
		req.EndDate = req.StartDate
	}

	// 1. Validate range
	start, err := scheduling.ParseDate(req.StartDate)
	if err != nil {
		return respond(c, err)
	}
	end, err := scheduling.ParseDate(req.EndDate)
	if err != nil {
		return respond(c, err)
	}
	if end.Before(start) {
		return badRequest(c, "end_date must not precede start_date")
	}
	if _, err := h.employees.FindByID(req.EmployeeID); err != nil {
		return respond(c, err)
	}

	// 2. One row per day
	dates := scheduling.DateRange(start, end)
	rows := make([]model.Absence, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, model.Absence{
			EmployeeID: req.EmployeeID,
			Date:       scheduling.FormatDate(d),
			Kind:       req.Kind,
			Note:       req.Note,
		})
	}
	if err := h.absences.CreateMany(rows); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "absence recorded", "data": rows})
}

func (h *AbsenceHandler) UpdateAbsence(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	var req AbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	absence, err := h.absences.GetByID(id)
	if err != nil {
		return respond(c, err)
	}
	if req.Kind != "" {
		kind := strings.ToUpper(req.Kind)
		if !validKind(kind) {
			return badRequest(c, "kind must be SICK, VACATION or OTHER")
		}
		absence.Kind = kind
	}
	if req.StartDate != "" {
		date, err := normalizeDate("start_date", req.StartDate)
		if err != nil {
			return respond(c, err)
		}
		absence.Date = date
	}
	absence.Note = req.Note

	if err := h.absences.Update(absence); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "absence updated", "data": absence})
}

func (h *AbsenceHandler) DeleteAbsence(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if _, err := h.absences.GetByID(id); err != nil {
		return respond(c, err)
	}
	if err := h.absences.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "absence deleted"})
}

func (h *AbsenceHandler) FindOvertime(c *fiber.Ctx) error {
	employeeID, err := queryOptionalUint(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	from, err := queryDateString(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDateString(c, "to")
	if err != nil {
		return respond(c, err)
	}
	list, err := h.overtime.Find(employeeID, from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *AbsenceHandler) CreateOvertime(c *fiber.Ctx) error {
	var req OvertimeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Hours <= 0 {
		return badRequest(c, "hours must be positive")
	}
	date, err := normalizeDate("date", req.Date)
	if err != nil {
		return respond(c, err)
	}
	if _, err := h.employees.FindByID(req.EmployeeID); err != nil {
		return respond(c, err)
	}

	entry := model.OvertimeEntry{EmployeeID: req.EmployeeID, Date: date, Hours: req.Hours, Note: req.Note}
	if err := h.overtime.Create(&entry); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "overtime recorded", "data": entry})
}

func (h *AbsenceHandler) DeleteOvertime(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if err := h.overtime.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "overtime deleted"})
}
