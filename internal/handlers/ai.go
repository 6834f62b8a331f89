package handlers

import (
	"shellwatch/internal/services/ai"
	"shellwatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	aiService ai.Service
}

func NewAIHandler(aiService ai.Service) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req ai.ChatRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	return c.JSON(fiber.Map{"reply": h.aiService.Chat(c.UserContext(), req)})
}

func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	var req ai.AnalyzeRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	analysis, err := h.aiService.Analyze(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(fiber.Map{"analysis": analysis})
}
