package fetch

import (
	"errors"

	"blob-loader/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler serves object contents over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the fetch routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/:bucket/*", h.HandleFetch)
}

// HandleFetch returns an object's content as text.
// Failures are already logged by Fetch, so they are only mapped to a status here.
// @Summary Fetch Object
// @Description Returns the object stored under key in bucket, decoded as UTF-8 text.
// @Tags objects
// @Produce plain
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key (may contain slashes)"
// @Success 200 {string} string "Object content"
// @Failure 400 {object} map[string]string "Empty object key"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Bucket or object not found"
// @Failure 502 {object} map[string]string "Unexpected storage failure"
// @Router /objects/{bucket}/{key} [get]
func (h *Handler) HandleFetch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	text, err := Fetch(c.Context(), h.service.client, l, c.Params("bucket"), c.Params("*"))
	if err != nil {
		kind := KindOf(err)
		status := StatusCode(kind)
		if errors.Is(err, ErrEmptyIdentifier) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  kind.String(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// StatusCode maps a failure kind to an HTTP status.
func StatusCode(kind Kind) int {
	switch kind {
	case KindBucketNotFound, KindObjectNotFound:
		return fiber.StatusNotFound
	case KindAccessDenied:
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadGateway
	}
}
