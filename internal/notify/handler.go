package notify

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sanaresoma/sanaresoma-backend/internal/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/notifications", h.list)
	r.Post("/notifications/:task", h.submit)
	r.Get("/tasks/:id", h.status)
}

func (h *Handler) list(c *fiber.Ctx) error {
	return c.JSON(h.service.Tasks())
}

func (h *Handler) submit(c *fiber.Ctx) error {
	var args json.RawMessage
	if body := c.Body(); len(body) > 0 {
		if !json.Valid(body) {
			return respond.BadRequest(c, "request body must be valid JSON")
		}
		args = append(json.RawMessage(nil), body...)
	}
	job, err := h.service.Submit(c.UserContext(), c.Params("task"), args)
	if errors.Is(err, ErrUnknownTask) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"taskId": job.ID,
		"task":   job.Task,
		"status": job.Status,
	})
}

func (h *Handler) status(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ErrJobNotFound.Error()})
	}
	job, err := h.service.Job(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err, ErrJobNotFound)
	}
	return c.JSON(job)
}
