package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"sheetboard/internal/models"
	"sheetboard/source"
)

// readOnlyGuidance is returned with 501 when a mutation hits the read-only
// CSV source.
const readOnlyGuidance = "the configured source is read-only; switch to the sheets (service account) or script (web app) source to enable writes"

type Handler struct {
	Source source.Source
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r createRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}

// ListSuggestions handles GET /api/suggestions.
func (h *Handler) ListSuggestions(c *gin.Context) {
	suggestions, err := h.list(c)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// CreateSuggestion handles POST /api/suggestions and the legacy POST
// /api/suggest alias (identical request and response shape).
func (h *Handler) CreateSuggestion(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Source.ReadOnly() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": readOnlyGuidance})
		return
	}

	row, err := h.Source.Append(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	response := gin.H{"status": "ok"}
	if row > 0 {
		response["row"] = row
	}
	c.JSON(http.StatusCreated, response)
}

// LikeSuggestion handles POST /api/suggestions/:row/like and the legacy POST
// /api/vote/:item_id alias; param names the path parameter carrying the row.
func (h *Handler) LikeSuggestion(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := strconv.Atoi(c.Param(param))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row must be an integer"})
			return
		}
		h.like(c, row)
	}
}

// LikeByBody handles the legacy POST /api/like alias, which carries the row
// in the request body instead of the path.
func (h *Handler) LikeByBody(c *gin.Context) {
	var req struct {
		Row *int `json:"row"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Row == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row must be an integer"})
		return
	}
	h.like(c, *req.Row)
}

// ListCards handles the legacy GET /api/cards alias: the canonical list with
// fields renamed, nothing else.
func (h *Handler) ListCards(c *gin.Context) {
	suggestions, err := h.list(c)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	cards := make([]models.Card, 0, len(suggestions))
	for _, s := range suggestions {
		cards = append(cards, s.AsCard())
	}
	c.JSON(http.StatusOK, cards)
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) list(c *gin.Context) ([]models.Suggestion, error) {
	rows, err := h.Source.Fetch(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return models.Normalize(rows), nil
}

func (h *Handler) like(c *gin.Context, row int) {
	if row < models.FirstDataRow {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row must be 2 or greater"})
		return
	}

	if h.Source.ReadOnly() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": readOnlyGuidance})
		return
	}

	likes, err := h.Source.Increment(c.Request.Context(), row)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"row": row, "likes": likes})
}

func (h *Handler) upstreamError(c *gin.Context, err error) {
	if errors.Is(err, source.ErrReadOnly) {
		c.JSON(http.StatusNotImplemented, gin.H{"error": readOnlyGuidance})
		return
	}

	zap.L().Error("Upstream source call failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "upstream source unavailable"})
}
