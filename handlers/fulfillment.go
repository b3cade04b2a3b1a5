package handlers

import (
	"errors"
	"net/http"

	"tripdesk/models"
	"tripdesk/services/fulfillment"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FulfillmentHandler exposes the dialog webhook over HTTP.
type FulfillmentHandler struct {
	Service fulfillment.FulfillmentService
	Logger  *zap.Logger
}

func NewFulfillmentHandler(svc fulfillment.FulfillmentService, logger *zap.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{Service: svc, Logger: logger}
}

// HandleIntentEvent receives one conversation turn from the dialog platform
// and responds with the next directive.
func (h *FulfillmentHandler) HandleIntentEvent(c *gin.Context) {
	var req models.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	requestID := uuid.New().String()
	h.Logger.Info("event received",
		zap.String("requestId", requestID),
		zap.String("userId", req.UserID),
		zap.String("intentName", req.CurrentIntent.Name),
		zap.String("invocationSource", req.InvocationSource),
	)

	directive, err := h.Service.Dispatch(req)
	if err != nil {
		var unsupported *fulfillment.UnsupportedIntentError
		if errors.As(err, &unsupported) {
			utils.JSONError(c, http.StatusBadRequest, "unsupported intent", unsupported.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "fulfillment failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, directive)
}
