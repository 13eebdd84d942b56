// Package server exposes card recognition over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/wbrown/cardocr"
	"github.com/wbrown/cardocr/imageutil"
)

const (
	// MaxUploadBytes bounds the size of an uploaded screenshot.
	MaxUploadBytes = 16 << 20
	// MaxImagePixels bounds the decoded size of an uploaded screenshot.
	MaxImagePixels = 16 << 20

	// multipartOverhead allows for boundaries and part headers around the
	// file in the request body.
	multipartOverhead = 1 << 20
)

// CardResponse is one recognized card in a response.
type CardResponse struct {
	Slot int    `json:"slot"`
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	Code string `json:"code"`
}

// RecognizeResponse is the body returned by POST /api/v1/recognize.
type RecognizeResponse struct {
	File   string         `json:"file"`
	Result string         `json:"result"`
	Cards  []CardResponse `json:"cards"`
}

// RecognizeHandler serves recognition requests with one Recognizer.
type RecognizeHandler struct {
	recognizer *cardocr.Recognizer
	log        zerolog.Logger
}

// NewRecognizeHandler creates a handler that recognizes uploads with
// recognizer and logs to log.
func NewRecognizeHandler(recognizer *cardocr.Recognizer, log zerolog.Logger) *RecognizeHandler {
	return &RecognizeHandler{recognizer: recognizer, log: log}
}

// New builds the gin engine with all routes registered.
func New(recognizer *cardocr.Recognizer, log zerolog.Logger) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), requestLogger(log))
	e.MaxMultipartMemory = MaxUploadBytes

	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewRecognizeHandler(recognizer, log)
	v1 := e.Group("/api").
		Group("/v1")
	v1.POST("/recognize", h.Recognize)
	return e
}

// Recognize decodes the multipart field "file" and returns its cards.
// Request bodies over MaxUploadBytes and images whose header declares more
// than MaxImagePixels are rejected with 413.
func (h *RecognizeHandler) Recognize(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+multipartOverhead)
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		h.log.Warn().Err(err).Msg("read file from form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read form file", "message": err.Error()})
		return
	}
	if file.Size > MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		h.log.Error().Err(err).Msg("open file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open form file", "message": err.Error()})
		return
	}
	defer f.Close()

	img, err := imageutil.DecodeBounded(f, MaxImagePixels)
	if errors.Is(err, imageutil.ErrImageTooLarge) {
		h.log.Warn().Err(err).Str("file", file.Filename).Msg("image too large")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image too large", "message": err.Error()})
		return
	}
	if err != nil {
		h.log.Warn().Err(err).Str("file", file.Filename).Msg("decode image")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode image", "message": err.Error()})
		return
	}

	result := h.recognizer.Recognize(img)
	resp := RecognizeResponse{
		File:   file.Filename,
		Result: result.String(),
		Cards:  make([]CardResponse, 0, len(result)),
	}
	for _, card := range result {
		resp.Cards = append(resp.Cards, CardResponse{
			Slot: card.Slot,
			Rank: card.Rank,
			Suit: card.Suit,
			Code: card.Code(),
		})
	}
	h.log.Info().Str("file", file.Filename).Str("result", resp.Result).Msg("recognized")
	c.JSON(http.StatusOK, resp)
}

// requestLogger logs one line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
