package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/composer"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/midi"
)

// maxUploadBytes bounds the uploaded MIDI file (1 MiB is generous for
// SMF data).
const maxUploadBytes = 1 << 20

// AnalysisHandler extracts composition parameters from uploaded MIDI
// files.
type AnalysisHandler struct {
	composer *composer.Composer
}

func NewAnalysisHandler(comp *composer.Composer) *AnalysisHandler {
	return &AnalysisHandler{composer: comp}
}

// Analyze accepts a multipart upload under the "file" field, parses it
// as a standard MIDI file and returns recovered parameters alongside
// the raw file summary.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Missing MIDI file upload under field \"file\"",
			"request_id": c.GetString("request_id"),
		})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":      "MIDI file too large",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Failed to read upload",
			"request_id": c.GetString("request_id"),
		})
		return
	}
	defer file.Close()

	info, err := midi.Read(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Not a readable MIDI file: " + err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	params := h.composer.Analyze(info)

	c.JSON(http.StatusOK, gin.H{
		"parameters": params,
		"file":       info,
		"notes":      len(info.Notes),
	})
}
