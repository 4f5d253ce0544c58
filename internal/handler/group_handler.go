package handler

import (
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type GroupHandler struct {
	repo repository.GroupRepository
}

func NewGroupHandler(repo repository.GroupRepository) *GroupHandler {
	return &GroupHandler{repo: repo}
}

type GroupRequest struct {
	Name string `json:"name"`
}

type GroupMembersRequest struct {
	EmployeeIDs []uint `json:"employee_ids"`
}

func (h *GroupHandler) GetAll(c *fiber.Ctx) error {
	groups, err := h.repo.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": groups})
}

func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	group, err := h.repo.GetByID(id)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"data": group})
}

func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}
	group := model.Group{Name: req.Name}
	if err := h.repo.Create(&group); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "group created", "data": group})
}

func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}

	group, err := h.repo.GetByID(id)
	if err != nil {
		return respond(c, err)
	}
	group.Name = req.Name
	if err := h.repo.Update(group); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "group updated", "data": group})
}

// SetMembers replaces the member list. An empty list empties the group.
func (h *GroupHandler) SetMembers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respond(c, err)
	}
	var req GroupMembersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.repo.SetMembers(id, req.EmployeeIDs); err != nil {
		return respond(c, err)
	}
	members, err := h.repo.MemberIDs(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "members updated", "employee_ids": members})
}

func (h *GroupHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "group deleted"})
}
