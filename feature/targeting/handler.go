package targeting

import (
	"errors"

	"reach-estimator/core/graph"
	"reach-estimator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reach estimation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the targeting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/targeting")
	group.Get("/catalog", h.HandleCatalog)
	group.Post("/reach", h.HandleReach)
	group.Post("/reach/batch", h.HandleBatchReach)
	group.Post("/keywords/validate", h.HandleValidateKeywords)
}

type reachRequest struct {
	Account string `json:"account"`
	Options
}

type batchRequest struct {
	Account  string    `json:"account"`
	Requests []Options `json:"requests"`
}

type keywordsRequest struct {
	Keywords StringList `json:"keywords"`
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingAccount):
		return fiber.StatusBadRequest
	case IsValidationError(err):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, graph.ErrTransport), errors.Is(err, ErrMalformedReach):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleCatalog returns the valid genders, age classes and countries.
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.Catalog())
}

// HandleReach estimates the reach of one targeting spec.
func (h *Handler) HandleReach(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req reachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	reach, err := h.service.Reach(c.Context(), req.Account, req.Options)
	if err != nil {
		status := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Reach estimation failed", zap.Error(err))
		} else {
			l.Info("Reach request rejected", zap.Error(err))
		}
		body := fiber.Map{"error": err.Error()}
		var kwErr *InvalidKeywordError
		if errors.As(err, &kwErr) {
			body["keyword"] = kwErr.Keyword
		}
		return c.Status(status).JSON(body)
	}

	return c.JSON(reach)
}

// HandleBatchReach estimates the reach of many targeting specs.
func (h *Handler) HandleBatchReach(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	results, err := h.service.BatchReach(c.Context(), req.Account, req.Requests)
	if err != nil {
		l.Info("Batch reach request rejected", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"results": results})
}

// HandleValidateKeywords reports the validity of each keyword.
func (h *Handler) HandleValidateKeywords(c *fiber.Ctx) error {
	var req keywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if len(req.Keywords) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keywords are required"})
	}

	return c.JSON(fiber.Map{"results": h.service.ValidateKeywords(c.Context(), req.Keywords)})
}
