package handlers

import (
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/parser"
	"pocketledger/internal/services"
)

// ParseHandler exposes the assistant. A single in-flight gate rejects a
// second parse while one is pending, so two parse results can never race
// their way toward the store. Results are candidates only; committing is the
// client's follow-up POST, which also means an abandoned confirmation flow
// simply never commits.
type ParseHandler struct {
	parser   parser.TransactionParser
	registry services.CategoryRegistrar
	store    services.TransactionStorer

	gate sync.Mutex
}

// NewParseHandler creates a new ParseHandler
func NewParseHandler(p parser.TransactionParser, registry services.CategoryRegistrar, store services.TransactionStorer) *ParseHandler {
	return &ParseHandler{parser: p, registry: registry, store: store}
}

// ParseTextRequest represents the free-text parse payload
type ParseTextRequest struct {
	Input string `json:"input" binding:"required"`
}

// ParseImageRequest represents the receipt-image parse payload
type ParseImageRequest struct {
	Data     string `json:"data" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

// ParseText parses free-text or voice-transcript input
// @Summary     Parse text input
// @Description Ask the assistant to turn free text into a transaction candidate, or answer a question about recent data
// @Tags        parse
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ParseTextRequest true "Free-text input"
// @Success     200 {object} parser.Result "RECORD candidate or ANSWER"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "A parse is already in progress"
// @Failure     502 {object} ErrorResponse "Assistant failure"
// @Router      /parse/text [post]
func (h *ParseHandler) ParseText(c *gin.Context) {
	var req ParseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if !h.gate.TryLock() {
		respondWithError(c, apperrors.ErrParseInFlight)
		return
	}
	defer h.gate.Unlock()

	result, err := h.parser.ParseText(
		c.Request.Context(),
		req.Input,
		h.registry.AvailableCategories(),
		h.store.All(),
	)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrParseFailed, err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseImage parses a photographed receipt
// @Summary     Parse a receipt image
// @Description Ask the assistant to extract a transaction candidate from a base64-encoded receipt image
// @Tags        parse
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ParseImageRequest true "Base64 image data and MIME type"
// @Success     200 {object} parser.Result "RECORD candidate"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "A parse is already in progress"
// @Failure     502 {object} ErrorResponse "Assistant failure"
// @Router      /parse/image [post]
func (h *ParseHandler) ParseImage(c *gin.Context) {
	var req ParseImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Image data is not valid base64"))
		return
	}

	if !h.gate.TryLock() {
		respondWithError(c, apperrors.ErrParseInFlight)
		return
	}
	defer h.gate.Unlock()

	result, err := h.parser.ParseImage(
		c.Request.Context(),
		data,
		req.MimeType,
		h.registry.AvailableCategories(),
	)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrParseFailed, err))
		return
	}

	c.JSON(http.StatusOK, result)
}
