package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	request "cleaning_coop/internal/adapter/http/dto/request"
	response "cleaning_coop/internal/adapter/http/dto/response"
	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves admin assignment and the company queue actions.
type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// Create assigns the company in the body to request :id.
func (h *AssignmentHandler) Create(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CreateAssignmentRequest
	if !bindJSON(c, &payload) {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), requestID, payload.CompanyID)
	if err != nil {
		log.Printf("[assignment][handler] create failed request_id=%d company_id=%d err=%v", requestID, payload.CompanyID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAssignment(created))
}

func (h *AssignmentHandler) ListForRequest(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.usecase.ListByRequestID(c.Request.Context(), requestID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssignments(items))
}

func (h *AssignmentHandler) ListForCompany(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.usecase.ListByCompanyID(c.Request.Context(), companyID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssignments(items))
}

func (h *AssignmentHandler) Accept(c *gin.Context) {
	h.transition(c, h.usecase.Accept)
}

func (h *AssignmentHandler) Start(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

// Decline takes an optional {"memo"} body.
func (h *AssignmentHandler) Decline(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.DeclineAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Decline(c.Request.Context(), id, payload.Memo)
	if err != nil {
		log.Printf("[assignment][handler] decline failed assignment_id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(updated))
}

func (h *AssignmentHandler) transition(c *gin.Context, apply func(ctx context.Context, id int64) (entities.Assignment, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	updated, err := apply(c.Request.Context(), id)
	if err != nil {
		log.Printf("[assignment][handler] transition failed assignment_id=%d path=%s err=%v", id, c.FullPath(), err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(updated))
}
