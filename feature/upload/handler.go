package upload

import (
	"errors"

	"minio-upload/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/upload")
	group.Post("/base64", h.HandleUploadBase64)
	group.Post("/text", h.HandleUploadText)
}

// HandleUploadBase64 uploads base64 content.
func (h *Handler) HandleUploadBase64(c *fiber.Ctx) error {
	var in Base64Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.service.UploadBase64(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleUploadText uploads text content.
func (h *Handler) HandleUploadText(c *fiber.Ctx) error {
	var in TextInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.service.UploadText(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	logger.WithRayID(h.service.logger, c).Warn("Upload request failed",
		zap.Int("status", status), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrConfiguration):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrStorage):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
