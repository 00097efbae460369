package professional

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
	r.Post("/professionals", h.create)
	r.Get("/professionals", h.list)
	r.Get("/professionals/:id", h.get)
	r.Put("/professionals/:id", h.update)
	r.Delete("/professionals/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	pros, err := h.service.List(c.UserContext())
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	out := make([]Professional, 0, len(pros))
	for _, p := range pros {
		out = append(out, p.Public())
	}
	return c.JSON(out)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	p, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(p.Public())
}

func (h *Handler) create(c *fiber.Ctx) error {
	p := new(Professional)
	if err := c.BodyParser(p); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	created, err := h.service.Create(c.UserContext(), *p)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(created.Public())
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	p := new(Professional)
	if err := c.BodyParser(p); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	updated, err := h.service.Update(c.UserContext(), id, *p)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(updated.Public())
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
