// Package server assembles the fiber application.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

func New(log logrus.FieldLogger, handlers ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "sanaresoma"})
	app.Use(requestLogger(log))
	app.Use(recover.New())
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	for _, h := range handlers {
		h.RegisterRoutes(app)
	}
	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		log.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.OriginalURL(),
			"status":  status,
			"latency": time.Since(start).String(),
		}).Info("request")
		return err
	}
}
