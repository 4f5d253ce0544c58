package handler

import (
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

type EmployeeRequest struct {
	Name        string `json:"name"`
	PersonnelNo string `json:"personnel_no"`
	Email       string `json:"email"`
	IsActive    *bool  `json:"is_active"`
}

// GetAll lists employees, optionally filtered by ?search= on name or personnel number.
func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return err
	}
	total, err := h.repo.Count()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employees, "total": total})
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	employee, err := h.repo.FindByID(id)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": employee})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" || req.PersonnelNo == "" {
		return badRequest(c, "name and personnel_no are required")
	}

	// 1. Personnel numbers are unique
	existing, err := h.repo.FindByPersonnelNo(req.PersonnelNo)
	if err != nil {
		return err
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "personnel_no already in use"})
	}

	// 2. Save
	employee := model.Employee{Name: req.Name, PersonnelNo: req.PersonnelNo, Email: req.Email, IsActive: true}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if err := h.repo.Create(&employee); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "employee created", "data": employee})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	employee, err := h.repo.FindByID(id)
	if err != nil {
		return respond(c, err)
	}

	if req.PersonnelNo != "" && req.PersonnelNo != employee.PersonnelNo {
		other, err := h.repo.FindByPersonnelNo(req.PersonnelNo)
		if err != nil {
			return err
		}
		if other != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "personnel_no already in use"})
		}
		employee.PersonnelNo = req.PersonnelNo
	}
	if req.Name != "" {
		employee.Name = req.Name
	}
	employee.Email = req.Email
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.repo.Update(employee); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "employee updated", "data": employee})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	if _, err := h.repo.FindByID(id); err != nil {
		return respond(c, err)
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "employee deleted"})
}
