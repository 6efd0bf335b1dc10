// Package server exposes the advisory pipeline over HTTP. This is the
// boundary the chat front end talks to; the front end itself is an external
// collaborator.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fin-advisory/internal/advisory/advice"
	"fin-advisory/internal/advisory/profile"
	errs "fin-advisory/internal/common/errors"
	"fin-advisory/internal/common/logger"
)

// Advisor is the pipeline capability consumed by the HTTP layer.
type Advisor interface {
	Advise(ctx context.Context, message string, p profile.UserProfile) advice.AdvisoryResponse
}

// adviseRequest is the inbound payload. The profile is kept raw so it can be
// schema-validated before decoding.
type adviseRequest struct {
	Message string          `json:"message"`
	Profile json.RawMessage `json:"profile"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	advisor Advisor
	logger  logger.Logger
}

func NewHandler(advisor Advisor, log logger.Logger) *Handler {
	return &Handler{
		advisor: advisor,
		logger: log.With(map[string]interface{}{
			"component": "http-handler",
		}),
	}
}

// Advise handles POST /api/v1/advise.
func (h *Handler) Advise(c *gin.Context) {
	var req adviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message must not be empty"})
		return
	}

	if len(req.Profile) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "profile is required"})
		return
	}

	if err := profile.ValidateJSON(req.Profile); err != nil {
		stdErr := errs.NewProfileInvalidError(err.Error())
		h.logger.Warn("profile rejected", map[string]interface{}{
			"requestId": c.GetString(RequestIDKey),
			"code":      string(stdErr.Code),
			"error":     stdErr.Details,
		})
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var userProfile profile.UserProfile
	if err := json.Unmarshal(req.Profile, &userProfile); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "profile could not be decoded"})
		return
	}

	response := h.advisor.Advise(c.Request.Context(), req.Message, userProfile)
	c.JSON(http.StatusOK, response)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
