package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/composer"
)

// SuggestionHandler serves heuristic parameter suggestions.
type SuggestionHandler struct {
	composer *composer.Composer
}

func NewSuggestionHandler(comp *composer.Composer) *SuggestionHandler {
	return &SuggestionHandler{composer: comp}
}

type suggestionRequest struct {
	Seed *int64 `json:"seed,omitempty"`
}

// Suggest returns a coherent random parameter set. An optional seed
// makes the suggestion reproducible.
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req suggestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Invalid request body: " + err.Error(),
				"request_id": c.GetString("request_id"),
			})
			return
		}
	}

	comp := h.composer
	if req.Seed != nil {
		comp = composer.New(composer.WithSeed(*req.Seed))
	}

	params := comp.Suggest()
	params.Seed = req.Seed

	c.JSON(http.StatusOK, params)
}
