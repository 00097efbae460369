package goal

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/respond"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/goals", h.create)
	r.Get("/goals", h.list)
	r.Get("/goals/:id", h.get)
	r.Put("/goals/:id", h.update)
	r.Delete("/goals/:id", h.delete)
	r.Get("/goals/:id/achievement", h.achievement)
	r.Get("/users/:id/goals", h.listForUser)
}

func (h *Handler) list(c *fiber.Ctx) error {
	goals, err := h.service.List(c.UserContext())
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(goals)
}

func (h *Handler) listForUser(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	goals, err := h.service.ListByUser(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, user.ErrNotFound)
	}
	return c.JSON(goals)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	g, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(g)
}

func (h *Handler) create(c *fiber.Ctx) error {
	g := new(Goal)
	if err := c.BodyParser(g); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	created, err := h.service.Create(c.UserContext(), *g)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	g := new(Goal)
	if err := c.BodyParser(g); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	updated, err := h.service.Update(c.UserContext(), id, *g)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(updated)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) achievement(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	a, err := h.service.Achievement(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(a)
}
