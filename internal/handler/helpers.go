package handler

import (
	"errors"
	"schichtplan-backend/internal/scheduling"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// respond maps domain errors onto status codes. Anything unexpected is returned
// to Fiber so ErrorHandler logs it and answers 500.
func respond(c *fiber.Ctx, err error) error {
	var verr *scheduling.ValidationError
	var nf *scheduling.NotFoundError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	}
	return err
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// ErrorHandler is the app-wide Fiber error handler.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, &scheduling.ValidationError{Field: name, Reason: "must be a positive integer"}
	}
	return uint(id), nil
}

func queryDate(c *fiber.Ctx, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, &scheduling.ValidationError{Field: key, Reason: "is required"}
	}
	d, err := scheduling.ParseDate(v)
	if err != nil {
		return time.Time{}, &scheduling.ValidationError{Field: key, Reason: "expected YYYY-MM-DD"}
	}
	return d, nil
}

func queryOptionalUint(c *fiber.Ctx, key string) (*uint, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		return nil, &scheduling.ValidationError{Field: key, Reason: "must be a positive integer"}
	}
	id := uint(n)
	return &id, nil
}

func queryRequiredUint(c *fiber.Ctx, key string) (uint, error) {
	id, err := queryOptionalUint(c, key)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, &scheduling.ValidationError{Field: key, Reason: "is required"}
	}
	return *id, nil
}

// queryDateString validates an optional YYYY-MM-DD filter.
func queryDateString(c *fiber.Ctx, key string) (string, error) {
	v := c.Query(key)
	if v == "" {
		return "", nil
	}
	if _, err := scheduling.ParseDate(v); err != nil {
		return "", &scheduling.ValidationError{Field: key, Reason: "expected YYYY-MM-DD"}
	}
	return v, nil
}

func normalizeDate(field, v string) (string, error) {
	d, err := scheduling.ParseDate(v)
	if err != nil {
		return "", &scheduling.ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return scheduling.FormatDate(d), nil
}
