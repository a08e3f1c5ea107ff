package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

// ListStyles returns the style catalog with each genre's profile.
func ListStyles(c *gin.Context) {
	catalog := make([]*style.Profile, 0, len(style.All()))
	for _, st := range style.All() {
		catalog = append(catalog, style.ProfileFor(st))
	}

	c.JSON(http.StatusOK, gin.H{"styles": catalog})
}
