package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ekazakov/screening/pkg/health"
	"github.com/ekazakov/screening/pkg/screening"
)

// HealthHandler serves the informational and probe endpoints.
type HealthHandler struct {
	svc           health.ReadinessUseCase
	semanticModel string
	summaryModel  string
}

func NewHealthHandler(svc health.ReadinessUseCase, semanticModel, summaryModel string) *HealthHandler {
	return &HealthHandler{svc: svc, semanticModel: semanticModel, summaryModel: summaryModel}
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": screening.ServiceName,
		"message": "Service running successfully",
	})
}

// Version reports the service version and the model names in use.
// @Summary Version info
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /version [get]
func (h *HealthHandler) Version(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"version": screening.Version,
		"models": fiber.Map{
			"semantic": h.semanticModel,
			"summary":  h.summaryModel,
		},
		"description": screening.Description,
	})
}

// Ready: readiness check over the static resources.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
