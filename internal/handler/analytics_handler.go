package handler

import (
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/usecase"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	usecase *usecase.AnalyticsUsecase
	now     func() time.Time
}

func NewAnalyticsHandler(u *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: u, now: time.Now}
}

type AnomalyRequest struct {
	Series []float64 `json:"series"`
}

// Anomalies runs the 2σ test on a caller-supplied series.
func (h *AnalyticsHandler) Anomalies(c *fiber.Ctx) error {
	var req AnomalyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	flags, band := h.usecase.Detect(req.Series)
	return c.JSON(fiber.Map{"data": flags, "band": band})
}

// Monthly answers GET /api/analytics/monthly?metric=&months=&group_id=
func (h *AnalyticsHandler) Monthly(c *fiber.Ctx) error {
	metric := c.Query("metric", usecase.MetricSick)
	months := c.QueryInt("months", 0)
	groupID, err := queryOptionalUint(c, "group_id")
	if err != nil {
		return respond(c, err)
	}

	report, err := h.usecase.Monthly(c.UserContext(), metric, months, groupID, h.now())
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": report})
}

// AbsenceSpans answers GET /api/analytics/absence-spans?employee_id=&kind=&from=&to=
func (h *AnalyticsHandler) AbsenceSpans(c *fiber.Ctx) error {
	employeeID, err := queryRequiredUint(c, "employee_id")
	if err != nil {
		return respond(c, err)
	}
	kind := strings.ToUpper(c.Query("kind", model.AbsenceSick))
	from, err := queryDateString(c, "from")
	if err != nil {
		return respond(c, err)
	}
	to, err := queryDateString(c, "to")
	if err != nil {
		return respond(c, err)
	}

	spans, err := h.usecase.AbsenceSpans(employeeID, kind, from, to)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"employee_id": employeeID, "kind": kind, "data": spans})
}
