package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/clients", h.create)
	r.Get("/clients", h.list)
	r.Get("/clients/:id", h.get)
	r.Put("/clients/:id", h.update)
	r.Delete("/clients/:id", h.delete)
	r.Get("/professionals/:id/clients", h.listForProfessional)
}

func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(items)
}

func (h *Handler) listForProfessional(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	items, err := h.service.ListByProfessional(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, professional.ErrNotFound)
	}
	return c.JSON(items)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, ok, err := respond.ID(c, "id")
	if !ok {
		return err
	}
	cl, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrNotFound)
	}
	return c.JSON(cl)
}

func (h *Handler) create(c *fiber.Ctx) error {
	cl := new(Client)
	if err := c.BodyParser(cl); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	created, err := h.service.Create(c.UserContext(), *cl)
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
	cl := new(Client)
	if err := c.BodyParser(cl); err != nil {
		return respond.BadRequest(c, err.Error())
	}
	updated, err := h.service.Update(c.UserContext(), id, *cl)
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
