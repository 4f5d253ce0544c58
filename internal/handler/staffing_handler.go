package handler

import (
	"errors"
	"schichtplan-backend/internal/scheduling"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type StaffingHandler struct {
	staffing *usecase.StaffingUsecase
	notifier *usecase.NotificationUsecase
}

func NewStaffingHandler(staffing *usecase.StaffingUsecase, notifier *usecase.NotificationUsecase) *StaffingHandler {
	return &StaffingHandler{staffing: staffing, notifier: notifier}
}

// Aggregate answers GET /api/staffing?date=&group_id=
func (h *StaffingHandler) Aggregate(c *fiber.Ctx) error {
	date, err := queryDate(c, "date")
	if err != nil {
		return respond(c, err)
	}
	groupID, err := queryOptionalUint(c, "group_id")
	if err != nil {
		return respond(c, err)
	}

	counts, err := h.staffing.AggregateStaffing(date, groupID)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{
		"date":     scheduling.FormatDate(date),
		"group_id": groupID,
		"data":     counts,
	})
}

// Check answers GET /api/staffing/check?shift_id=&date=&group_id=
func (h *StaffingHandler) Check(c *fiber.Ctx) error {
	shiftID, err := queryRequiredUint(c, "shift_id")
	if err != nil {
		return respond(c, err)
	}
	date, err := queryDate(c, "date")
	if err != nil {
		return respond(c, err)
	}
	groupID, err := queryOptionalUint(c, "group_id")
	if err != nil {
		return respond(c, err)
	}

	verdict, err := h.staffing.CheckRequirement(shiftID, date, groupID)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": verdict})
}

func (h *StaffingHandler) Matrix(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return respond(c, err)
	}
	groupID, err := queryOptionalUint(c, "group_id")
	if err != nil {
		return respond(c, err)
	}

	matrix, err := h.staffing.Matrix(c.UserContext(), from, to, groupID)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": matrix})
}

// Notify mails the over-staffing digest for [from, to].
func (h *StaffingHandler) Notify(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return respond(c, err)
	}
	groupID, err := queryOptionalUint(c, "group_id")
	if err != nil {
		return respond(c, err)
	}

	n, err := h.notifier.SendOverstaffingDigest(c.UserContext(), from, to, groupID)
	if errors.Is(err, usecase.ErrNoRecipients) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "digest sent", "over_staffed": n})
}
