package handlers

import (
	"net/http"

	request "cleaning_coop/internal/adapter/http/dto/request"
	response "cleaning_coop/internal/adapter/http/dto/response"
	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/matching"
	"cleaning_coop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the company pool and region matching.
type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

func (h *CompanyHandler) Register(c *gin.Context) {
	var payload request.RegisterCompanyRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}
	created, err := h.usecase.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCompany(created))
}

func (h *CompanyHandler) List(c *gin.Context) {
	var status entities.CompanyStatus
	if v := c.Query("status"); v != "" {
		s, err := (request.SetApprovalRequest{Status: v}).ResolveStatus()
		if err != nil {
			writeError(c, err)
			return
		}
		status = s
	}
	items, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanies(items))
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	company, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *CompanyHandler) SetApproval(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.SetApprovalRequest
	if !bindJSON(c, &payload) {
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.usecase.SetApproval(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(updated))
}

// Match runs the matcher against an uncommitted selection. Nothing is stored.
func (h *CompanyHandler) Match(c *gin.Context) {
	var payload request.MatchCompaniesRequest
	if !bindJSON(c, &payload) {
		return
	}
	regions, err := payload.ToRegions()
	if err != nil {
		writeError(c, err)
		return
	}
	order, err := matching.ParseOrder(payload.Order)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.usecase.Match(c.Request.Context(), regions, order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMatchResult(result))
}

// MatchForRequest matches with the selection applied on request :id.
func (h *CompanyHandler) MatchForRequest(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := matching.ParseOrder(c.Query("order"))
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.usecase.MatchForRequest(c.Request.Context(), requestID, order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMatchResult(result))
}
