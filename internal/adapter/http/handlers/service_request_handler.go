package handlers

import (
	"log"
	"net/http"

	request "cleaning_coop/internal/adapter/http/dto/request"
	response "cleaning_coop/internal/adapter/http/dto/response"
	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase"
	"cleaning_coop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler serves the request lifecycle endpoints.
type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if !bindJSON(c, &payload) {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[request][handler] create failed org=%q err=%v", payload.OrganizationName, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// List accepts an optional ?status= filter.
func (h *ServiceRequestHandler) List(c *gin.Context) {
	var filter interfaces.RequestFilter
	if v := c.Query("status"); v != "" {
		status, err := entities.ParseRequestStatus(v)
		if err != nil {
			writeError(c, err)
			return
		}
		filter.Status = status
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(items))
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *ServiceRequestHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ChangeStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), id, in)
	if err != nil {
		log.Printf("[request][handler] change-status failed request_id=%d to=%s err=%v", id, in.Status, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func (h *ServiceRequestHandler) ApplyRegions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ApplyRegionsRequest
	if !bindJSON(c, &payload) {
		return
	}
	regions, err := payload.ToRegions()
	if err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.usecase.ApplyRegions(c.Request.Context(), id, regions)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func (h *ServiceRequestHandler) SaveWorkRows(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.SaveSeniorWorkRowsRequest
	if !bindJSON(c, &payload) {
		return
	}

	updated, err := h.usecase.SaveSeniorWorkRows(c.Request.Context(), id, payload.ToRows())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}
