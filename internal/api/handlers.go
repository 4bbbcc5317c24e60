package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
)

const (
	// audioField is the multipart field carrying the recording.
	audioField = "audio_file"

	requestIDHeader = "X-Request-ID"

	processingFailed = "Error processing audio"
)

// Handler wires HTTP routes to the conversion pipeline.
type Handler struct {
	processor processor.Processor
	logger    logger.Logger
	metrics   *metrics.Metrics
	maxUpload int64
}

// NewHandler constructs a Handler instance. m may be nil, in which case no
// /metrics route is registered.
func NewHandler(proc processor.Processor, log logger.Logger, m *metrics.Metrics, maxUploadBytes int64) *Handler {
	return &Handler{
		processor: proc,
		logger:    log,
		metrics:   m,
		maxUpload: maxUploadBytes,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.requestID(), h.observe())
	router.POST("/process_audio", h.processAudio)
	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}
}

// processAudio accepts one audio file and answers with the rendered notes.
// Every pipeline failure collapses into the same 500 body; the cause is only
// logged.
func (h *Handler) processAudio(c *gin.Context) {
	ctx := c.Request.Context()
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	file, err := c.FormFile(audioField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "audio file too large"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": audioField + " is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Error processing audio: open upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": processingFailed})
		return
	}
	defer f.Close()

	doc, err := h.processor.Convert(ctx, processor.Upload{
		Filename: file.Filename,
		Body:     f,
	})
	if err != nil {
		h.logger.Error(ctx, "Error processing audio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": processingFailed})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestID tags the request context with the caller's X-Request-ID, or a
// fresh one, and echoes it back.
func (h *Handler) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func (h *Handler) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		if h.metrics != nil {
			h.metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), elapsed)
		}
		h.logger.Info(c.Request.Context(), "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
