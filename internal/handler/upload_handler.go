package handler

import (
	"io"
	"strings"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/service"
	"github.com/gofiber/fiber/v3"
)

// UploadHandler handles log file uploads.
type UploadHandler struct {
	analyze *service.AnalyzeService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(analyze *service.AnalyzeService) *UploadHandler {
	return &UploadHandler{analyze: analyze}
}

// Register sets up upload routes.
func (h *UploadHandler) Register(router fiber.Router) {
	router.Post("/upload", h.Upload)
}

// Upload receives a log file, analyzes it and replaces the live session.
func (h *UploadHandler) Upload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "log file is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot open uploaded file"})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read uploaded file"})
	}

	report, err := h.analyze.ProcessLogFile(c.Context(), splitLines(string(content)))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"message":            "Log file analyzed successfully.",
		"total_lines":        report.TotalLines,
		"total_chunks":       report.TotalChunks,
		"severity_breakdown": report.Stats.Counts,
		"time_series":        report.Stats.TimeSeries,
		"error_types":        report.Stats.ErrorTypes,
	})
}

// splitLines splits uploaded content into lines, tolerating CRLF endings and
// ignoring a single trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
