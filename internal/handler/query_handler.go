package handler

import (
	"bufio"
	"fmt"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/service"
	"github.com/gofiber/fiber/v3"
)

// QueryHandler handles natural-language questions about the live log file.
type QueryHandler struct {
	query *service.QueryService
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(query *service.QueryService) *QueryHandler {
	return &QueryHandler{query: query}
}

// Register sets up query routes.
func (h *QueryHandler) Register(router fiber.Router) {
	router.Post("/query", h.Query)
	router.Post("/query/stream", h.QueryStream)
}

// Query answers a question with a structured response grounded in the
// retrieved log excerpts.
func (h *QueryHandler) Query(c fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	answer, err := h.query.Chat(c.Context(), body.Query)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(answer)
}

// QueryStream streams a plain-text answer via SSE.
func (h *QueryHandler) QueryStream(c fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	stream, err := h.query.ChatStream(c.Context(), body.Query)
	if err != nil {
		return errorJSON(c, err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		for token := range stream {
			fmt.Fprintf(w, "data: %s\n\n", token)
			w.Flush()
		}
		fmt.Fprint(w, "event: done\ndata: \n\n")
		w.Flush()
	})
}
