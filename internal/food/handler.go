package food

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
	r.Post("/foods", h.create)
	r.Get("/foods", h.list)
	r.Get("/foods/:id", h.get)
	r.Put("/foods/:id", h.update)
	r.Delete("/foods/:id", h.delete)
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
	f, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(f)
}

func (h *Handler) create(c *fiber.Ctx) error {
	f := new(Food)
	if err := c.BodyParser(f); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	created, err := h.service.Create(c.UserContext(), *f)
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
	f := new(Food)
	if err := c.BodyParser(f); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	updated, err := h.service.Update(c.UserContext(), id, *f)
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
