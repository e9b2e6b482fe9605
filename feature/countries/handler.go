package countries

import (
	"bytes"

	"country-db/core/logger"
	"country-db/feature/countries/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the country table.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the country routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/countries")
	group.Get("/", h.HandleList)
	group.Get("/audit", h.HandleAudit)
	group.Get("/:iso3", h.HandleGet)
	group.Post("/rebuild", h.HandleRebuild)
}

// HandleList returns the whole table.
// Query parameters: format (json, csv or yaml; default json) and ignore
// (drop countries without a dialing code).
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := export.ParseFormat(c.Query("format", string(export.FormatJSON)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ds, err := h.service.Countries(c.UserContext(), c.QueryBool("ignore", false))
	if err != nil {
		l.Error("Country build failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, ds); err != nil {
		l.Error("Country export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}

// HandleGet returns a single country by ISO3.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	iso3 := c.Params("iso3")

	record, ok, err := h.service.Country(c.UserContext(), iso3)
	if err != nil {
		l.Error("Country build failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "country not found: " + iso3,
		})
	}

	return c.JSON(record)
}

// HandleAudit returns the patch log, collisions and match report.
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	audit, err := h.service.Audit(c.UserContext())
	if err != nil {
		l.Error("Country build failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(audit)
}

// HandleRebuild discards the cached build and builds a new one.
func (h *Handler) HandleRebuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Rebuilding country table")

	build, err := h.service.Rebuild(c.UserContext())
	if err != nil {
		l.Error("Country rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"build_id": build.ID,
		"summary":  build.Summary(),
	})
}
