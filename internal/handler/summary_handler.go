package handler

import (
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/service"
	"github.com/gofiber/fiber/v3"
)

// SummaryHandler serves the LLM incident report.
type SummaryHandler struct {
	summary *service.SummaryService
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summary *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summary: summary}
}

// Register sets up summary routes.
func (h *SummaryHandler) Register(router fiber.Router) {
	router.Get("/summary", h.Summary)
}

// Summary generates a summary report for the live log file.
func (h *SummaryHandler) Summary(c fiber.Ctx) error {
	report, err := h.summary.Report(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(report)
}
