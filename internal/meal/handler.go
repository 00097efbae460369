package meal

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
	r.Post("/meals", h.create)
	r.Get("/meals", h.list)
	r.Get("/meals/:id", h.get)
	r.Put("/meals/:id", h.update)
	r.Delete("/meals/:id", h.delete)
	r.Get("/meals/:id/totals", h.totals)
}

func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(items)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	m, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(m)
}

func (h *Handler) create(c *fiber.Ctx) error {
	m := new(Meal)
	if err := c.BodyParser(m); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	created, err := h.service.Create(c.UserContext(), *m)
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
	m := new(Meal)
	if err := c.BodyParser(m); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	updated, err := h.service.Update(c.UserContext(), id, *m)
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

func (h *Handler) totals(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	t, err := h.service.Totals(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(t)
}
