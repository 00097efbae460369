package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/users", h.createUser)
	r.Get("/users", h.listUsers)
	r.Get("/users/:id", h.getUser)
	r.Put("/users/:id", h.updateUser)
	r.Delete("/users/:id", h.deleteUser)
	r.Get("/users/:id/bmi", h.getBMI)
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return c.JSON(out)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}

	u, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(u.Public())
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	u := new(User)
	if err := c.BodyParser(u); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	created, err := h.service.Create(c.UserContext(), *u)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(created.Public())
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}

	u := new(User)
	if err := c.BodyParser(u); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	updated, err := h.service.Update(c.UserContext(), id, *u)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(updated.Public())
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) getBMI(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}

	report, err := h.service.BMI(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(report)
}
