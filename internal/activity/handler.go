package activity

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
	r.Post("/activities", h.create)
	r.Get("/activities", h.list)
	r.Get("/activities/:id", h.get)
	r.Put("/activities/:id", h.update)
	r.Delete("/activities/:id", h.delete)
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
	a, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(a)
}

func (h *Handler) create(c *fiber.Ctx) error {
	a := new(Activity)
	if err := c.BodyParser(a); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	created, err := h.service.Create(c.UserContext(), *a)
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
	a := new(Activity)
	if err := c.BodyParser(a); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	updated, err := h.service.Update(c.UserContext(), id, *a)
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
