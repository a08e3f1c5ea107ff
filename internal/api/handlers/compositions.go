package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/composer"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/metrics"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/midi"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
)

const historyPageSize = 50

// CompositionHandler serves composition generation and history.
type CompositionHandler struct {
	composer   *composer.Composer
	db         *gorm.DB
	cloudwatch *metrics.Client
	sentry     *metrics.SentryMetrics
}

func NewCompositionHandler(comp *composer.Composer, db *gorm.DB, cw *metrics.Client) *CompositionHandler {
	return &CompositionHandler{
		composer:   comp,
		db:         db,
		cloudwatch: cw,
		sentry:     metrics.NewSentryMetrics(),
	}
}

// Create generates a composition from the posted parameters. Omitted
// fields fall back to the defaults; out-of-range values are clamped,
// not rejected. With ?format=midi the response is the rendered SMF
// file instead of the JSON event tree.
func (h *CompositionHandler) Create(c *gin.Context) {
	params := models.DefaultParameters()
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid request body: " + err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}
	params.Normalize()

	start := time.Now()
	composition, err := h.composer.Compose(params)
	elapsed := time.Since(start)

	h.sentry.RecordCompositionDuration(c.Request.Context(), elapsed, err == nil)
	if h.cloudwatch != nil {
		h.cloudwatch.RecordCompositionDuration(elapsed, err == nil)
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	h.sentry.RecordComposition(c.Request.Context(), params.Style, composition.TotalMeasures(), len(composition.Parts))
	if h.cloudwatch != nil {
		h.cloudwatch.RecordComposition(params.Style, composition.TotalMeasures())
	}

	h.saveRecord(params, composition)

	if c.Query("format") == "midi" {
		var buf bytes.Buffer
		if err := midi.Write(&buf, composition); err != nil {
			logger.Error("Failed to render MIDI", err, logger.Fields{
				"composition_id": composition.ID,
			})
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Failed to render MIDI file",
				"request_id": c.GetString("request_id"),
			})
			return
		}
		filename := fmt.Sprintf("composition-%s.mid", composition.ID)
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "audio/midi", buf.Bytes())
		return
	}

	c.JSON(http.StatusCreated, composition)
}

// List returns recent composition history, newest first. Without a
// database the endpoint reports history as disabled.
func (h *CompositionHandler) List(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"history_enabled": false,
			"compositions":    []models.CompositionRecord{},
		})
		return
	}

	var records []models.CompositionRecord
	if err := h.db.Order("created_at DESC").Limit(historyPageSize).Find(&records).Error; err != nil {
		logger.Error("Failed to load composition history", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Failed to load composition history",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history_enabled": true,
		"compositions":    records,
	})
}

// saveRecord persists request metadata when history is configured.
// Failures are logged and do not fail the request.
func (h *CompositionHandler) saveRecord(params models.Parameters, composition *models.Composition) {
	if h.db == nil {
		return
	}

	record := models.CompositionRecord{
		ID:              composition.ID,
		Title:           composition.Title,
		Style:           params.Style,
		Key:             composition.Key,
		Mode:            composition.Mode,
		Tempo:           composition.Tempo,
		DurationSeconds: params.Duration,
		Measures:        composition.TotalMeasures(),
		Instruments:     strings.Join(params.Instruments, ","),
		Seed:            params.Seed,
		CreatedAt:       composition.CreatedAt,
	}
	if err := h.db.Create(&record).Error; err != nil {
		logger.Error("Failed to save composition record", err, logger.Fields{
			"composition_id": composition.ID,
		})
	}
}
