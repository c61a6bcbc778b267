package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/chat"
)

// ChatHandler relays travel questions to the generative-AI provider.
type ChatHandler struct {
	Relay *chat.Relay
}

func NewChatHandler(relay *chat.Relay) *ChatHandler {
	return &ChatHandler{Relay: relay}
}

// Chat answers an authenticated user's travel question. Provider failures are
// a 500: there is no safe synthetic chat answer.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
		City   string `json:"city" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt and city are required"})
		return
	}

	answer, err := h.Relay.Ask(c.Request.Context(), req.City, req.Prompt)
	if err != nil {
		log.Printf("Chat provider call failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur IA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
