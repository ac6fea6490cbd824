package handlers

import (
	"fmt"
	"log"
	"net/http"

	request "cleaning_coop/internal/adapter/http/dto/request"
	response "cleaning_coop/internal/adapter/http/dto/response"
	"cleaning_coop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves quotation authoring for request :id.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Save replaces the request's estimate. Totals in the body are ignored.
func (h *EstimateHandler) Save(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.EstimateRequest
	if !bindJSON(c, &payload) {
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), requestID, payload.ToDraft())
	if err != nil {
		log.Printf("[estimate][handler] save failed request_id=%d err=%v", requestID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(saved))
}

// Preview renders the draft as PDF without storing it.
func (h *EstimateHandler) Preview(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.EstimateRequest
	if !bindJSON(c, &payload) {
		return
	}

	pdf, err := h.usecase.Preview(c.Request.Context(), requestID, payload.ToDraft())
	if err != nil {
		log.Printf("[estimate][handler] preview failed request_id=%d err=%v", requestID, err)
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="estimate-%d.pdf"`, requestID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *EstimateHandler) Get(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	estimate, err := h.usecase.GetByRequestID(c.Request.Context(), requestID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
