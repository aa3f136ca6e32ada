package handler

import (
	"strconv"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/adapter/store"
	"github.com/gofiber/fiber/v3"
)

// AuditHandler serves the request audit trail.
type AuditHandler struct {
	store *store.PostgresStore
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(store *store.PostgresStore) *AuditHandler {
	return &AuditHandler{store: store}
}

// Register sets up audit routes.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("/audit", h.List)
}

// List returns recent audit records, newest first.
func (h *AuditHandler) List(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	records, err := h.store.ListAuditRecords(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}
