package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mimivibe/backend/api/http/presenter"
	"github.com/mimivibe/backend/pkg/llm"
)

// AskRequest is the inbound body for POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse carries the answer plus the provider's raw payload for
// debugging and forward compatibility.
type AskResponse struct {
	Response string         `json:"response"`
	Raw      map[string]any `json:"raw,omitempty"`
}

// AskHandler forwards questions to the shared LLM provider.
type AskHandler struct {
	provider llm.Provider
}

func NewAskHandler(p llm.Provider) *AskHandler { return &AskHandler{provider: p} }

// Ask sends the question to the configured LLM provider and returns the answer.
// @Summary Ask the LLM a question
// @Tags    ask
// @Accept  json
// @Produce json
// @Param   request body AskRequest true "Question for the model"
// @Success 200 {object} AskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	slog.Info("received question", "question", req.Question)

	res, err := h.provider.Ask(c.Context(), req.Question)
	if err != nil {
		// Full detail stays server-side; the caller gets a generic message.
		if pe, ok := llm.AsProviderError(err); ok {
			slog.Error("llm call failed", "kind", pe.Kind, "status", pe.StatusCode, "error", err)
		} else {
			slog.Error("llm call failed", "error", err)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to generate response")
	}
	return presenter.JSON(c, http.StatusOK, AskResponse{Response: res.Answer, Raw: res.Raw})
}
